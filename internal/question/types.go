package question

// Record is one exercise definition in the catalog. Field order here is the
// order keys are written to disk.
type Record struct {
	Title  string   `yaml:"title" validate:"required,notblank"`
	Prompt string   `yaml:"prompt" validate:"required,notblank"`
	Hints  []string `yaml:"hints" validate:"dive,notblank"`
	Tags   []string `yaml:"tags" validate:"dive,notblank"`
}

// New builds a record from its parts. The slices are copied.
func New(title, prompt string, hints, tags []string) Record {
	return Record{
		Title:  title,
		Prompt: prompt,
		Hints:  cloneStrings(hints),
		Tags:   cloneStrings(tags),
	}
}

// Map applies fn to every record and returns the results in the same order.
func Map(records []Record, fn func(Record) Record) []Record {
	mapped := make([]Record, 0, len(records))
	for _, record := range records {
		mapped = append(mapped, fn(record))
	}
	return mapped
}

func cloneStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	cloned := make([]string, len(values))
	copy(cloned, values)
	return cloned
}
