package config

// Config is the optional project file at .quizbank/config.yml.
type Config struct {
	Version     int    `yaml:"version"`
	Catalog     string `yaml:"catalog"`
	Batch       string `yaml:"batch"`
	LockTimeout string `yaml:"lock_timeout"`
}

// Default returns the configuration used when no config file exists.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}
