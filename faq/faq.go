package faq

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrNoSuchEntry is returned when an index falls outside a List.
var ErrNoSuchEntry = errors.New("no such faq entry")

var validate = validator.New()

// Pair is a question and its answer as authored in the page content.
type Pair struct {
	Question string `validate:"required"`
	Answer   string `validate:"required"`
}

// Entry is one accordion item. The question and answer never change after
// construction; only Activate moves it between closed and open.
type Entry struct {
	pair Pair
	open bool
}

// NewEntry creates a closed entry. Empty question or answer text is rejected.
func NewEntry(question, answer string) (*Entry, error) {
	p := Pair{Question: question, Answer: answer}
	if err := validate.Struct(p); err != nil {
		return nil, fmt.Errorf("invalid faq entry %q: %w", question, err)
	}
	return &Entry{pair: p}, nil
}

func (e *Entry) Question() string { return e.pair.Question }
func (e *Entry) Answer() string   { return e.pair.Answer }

// IsOpen reports whether the answer is visible.
func (e *Entry) IsOpen() bool { return e.open }

// Activate toggles the entry between closed and open.
func (e *Entry) Activate() {
	e.open = !e.open
}

// List is the ordered set of entries shown on the page. Entries toggle
// independently; any number may be open at once.
type List struct {
	entries []*Entry
}

// NewList builds a list with one closed entry per pair, in the given order.
func NewList(pairs []Pair) (*List, error) {
	entries := make([]*Entry, 0, len(pairs))
	for i, p := range pairs {
		e, err := NewEntry(p.Question, p.Answer)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, e)
	}
	return &List{entries: entries}, nil
}

// Len returns the number of entries.
func (l *List) Len() int { return len(l.entries) }

// At returns the entry at index i.
func (l *List) At(i int) (*Entry, error) {
	if i < 0 || i >= len(l.entries) {
		return nil, fmt.Errorf("%w: index %d of %d", ErrNoSuchEntry, i, len(l.entries))
	}
	return l.entries[i], nil
}

// Activate toggles entry i and leaves every other entry untouched.
func (l *List) Activate(i int) error {
	e, err := l.At(i)
	if err != nil {
		return err
	}
	e.Activate()
	return nil
}

// Entries returns the entries in display order.
func (l *List) Entries() []*Entry {
	out := make([]*Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// OpenIndexes returns the indexes of the entries that are currently open.
// It is the observable accordion state the list tests assert against.
func (l *List) OpenIndexes() []int {
	var idx []int
	for i, e := range l.entries {
		if e.open {
			idx = append(idx, i)
		}
	}
	return idx
}
