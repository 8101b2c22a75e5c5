package frontdesk

import (
	"context"
	"iter"
	"slices"

	"github.com/pkg/errors"
)

// Archive is an append-only store of attended people. Load returns every
// stored person in the order they were appended; a store that does not exist
// yet is an empty archive, not an error.
type Archive interface {
	Load(ctx context.Context) ([]Person, error)
	Append(ctx context.Context, people []Person) error
}

// History is the stack of attended people, most recent first. It remembers
// how many of its entries have not been written to an [Archive] yet so that
// repeated saves never duplicate records.
type History struct {
	// Oldest first; the top of the stack is the last element.
	people  []Person
	unsaved int
}

// NewHistory creates an empty history.
func NewHistory() *History {
	return &History{people: make([]Person, 0)}
}

// Push places p on top of the history.
func (h *History) Push(p Person) {
	h.people = append(h.people, p)
	h.unsaved++
}

// Len returns the number of attended people.
func (h *History) Len() int {
	return len(h.people)
}

// Unsaved returns the number of people pushed since the history was last
// restored or persisted.
func (h *History) Unsaved() int {
	return h.unsaved
}

// All returns an iterator over the history, most recently attended first.
func (h *History) All() iter.Seq[Person] {
	return func(yield func(Person) bool) {
		for i := len(h.people) - 1; i >= 0; i-- {
			if !yield(h.people[i]) {
				return
			}
		}
	}
}

// Slice returns a copy of the history, most recently attended first.
func (h *History) Slice() []Person {
	return slices.Collect(h.All())
}

// Persist appends every unsaved entry to the archive, oldest first. On
// failure nothing is marked as saved and the history is left unchanged.
func (h *History) Persist(ctx context.Context, a Archive) error {
	if h.unsaved == 0 {
		return nil
	}

	pending := slices.Clone(h.people[len(h.people)-h.unsaved:])
	if err := a.Append(ctx, pending); err != nil {
		return errors.Wrapf(err, "persist %d attended people", len(pending))
	}

	h.unsaved = 0
	return nil
}

// Restore loads the archive and pushes each stored person in archive order,
// so the last stored person ends up on top. Restored entries sit beneath any
// entries pushed before the call and are not saved again.
func (h *History) Restore(ctx context.Context, a Archive) error {
	stored, err := a.Load(ctx)
	if err != nil {
		return errors.Wrap(err, "restore attendance history")
	}

	h.people = append(stored, h.people...)
	return nil
}
