package catalog

import "quizbank/internal/question"

// Merge returns existing followed by batch in a new slice.
func Merge(existing, batch []question.Record) []question.Record {
	merged := make([]question.Record, 0, len(existing)+len(batch))
	merged = append(merged, existing...)
	return append(merged, batch...)
}
