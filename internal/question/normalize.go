package question

import "strings"

// Normalize trims surrounding whitespace from every text field of a record.
func Normalize(record Record) Record {
	return Record{
		Title:  strings.TrimSpace(record.Title),
		Prompt: strings.TrimSpace(record.Prompt),
		Hints:  normalizeStringSlice(record.Hints),
		Tags:   normalizeStringSlice(record.Tags),
	}
}

func normalizeStringSlice(values []string) []string {
	normalized := make([]string, 0, len(values))
	for _, value := range values {
		normalized = append(normalized, strings.TrimSpace(value))
	}
	return normalized
}
