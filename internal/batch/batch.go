package batch

import (
	"errors"
	"fmt"
	"sort"

	"quizbank/internal/question"
)

// Default is the batch seeded when none is selected.
const Default = "functional"

// ErrUnknownBatch is returned by Get for names that are not registered.
var ErrUnknownBatch = errors.New("unknown batch")

var builders = map[string]func() []question.Record{
	"functional": functional,
	"examples":   examples,
}

// Names returns the registered batch names in sorted order.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Exists reports whether name is a registered batch.
func Exists(name string) bool {
	_, ok := builders[name]
	return ok
}

// Get builds a fresh copy of the named batch.
func Get(name string) ([]question.Record, error) {
	build, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("%w %q (available: %v)", ErrUnknownBatch, name, Names())
	}
	return question.Map(build(), question.Normalize), nil
}
