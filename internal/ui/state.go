package ui

import (
	"unicode"
	"unicode/utf8"

	"github.com/modu-ai/switch/pkg/models"
)

// Key classifies one input event for the selector.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyBackspace
	KeyEscape
	KeyInterrupt
	KeyChar
)

// String returns the lowercase name of the key class.
func (k Key) String() string {
	switch k {
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyEnter:
		return "enter"
	case KeyBackspace:
		return "backspace"
	case KeyEscape:
		return "escape"
	case KeyInterrupt:
		return "interrupt"
	case KeyChar:
		return "char"
	default:
		return "other"
	}
}

// Event is one classified key press. Char is set only for KeyChar.
type Event struct {
	Key  Key
	Char rune
}

// Press returns a non-character event.
func Press(k Key) Event { return Event{Key: k} }

// Char returns a printable character event.
func Char(r rune) Event { return Event{Key: KeyChar, Char: r} }

// Type returns one character event per rune of s.
func Type(s string) []Event {
	events := make([]Event, 0, utf8.RuneCountInString(s))
	for _, r := range s {
		events = append(events, Char(r))
	}
	return events
}

// Outcome reports whether a transition ended the selection and with what.
// Selected is false for every terminal outcome that carries no reference.
type Outcome struct {
	Done      bool
	Selected  bool
	Reference models.ProjectReference
}

// State is the selector state. The zero value is an empty selector.
// Apply never mutates the receiver.
type State struct {
	items    []models.ProjectReference
	filter   string
	selected int
	filtered []models.ProjectReference
}

// NewState returns the initial state for items: empty filter, first row selected.
func NewState(items []models.ProjectReference) State {
	s := State{items: items}
	s.filtered = filterItems(items, "")
	return s.clamp()
}

// Items returns the snapshot the state was built from.
func (s State) Items() []models.ProjectReference { return s.items }

// Filter returns the current filter text.
func (s State) Filter() string { return s.filter }

// Selected returns the index of the highlighted row in Filtered.
func (s State) Selected() int { return s.selected }

// Filtered returns the items whose name contains the filter, in original order.
func (s State) Filtered() []models.ProjectReference { return s.filtered }

// Current returns the highlighted reference, if any row is visible.
func (s State) Current() (models.ProjectReference, bool) {
	if len(s.filtered) == 0 {
		return models.ProjectReference{}, false
	}
	return s.filtered[s.selected], true
}

// Apply runs one transition and returns the next state.
func (s State) Apply(ev Event) (State, Outcome) {
	switch ev.Key {
	case KeyUp:
		if len(s.filtered) > 0 && s.selected > 0 {
			s.selected--
		}
	case KeyDown:
		if len(s.filtered) > 0 && s.selected < len(s.filtered)-1 {
			s.selected++
		}
	case KeyBackspace:
		if s.filter != "" {
			_, size := utf8.DecodeLastRuneInString(s.filter)
			s = s.withFilter(s.filter[:len(s.filter)-size])
		}
	case KeyChar:
		if !unicode.IsPrint(ev.Char) {
			return s, Outcome{}
		}
		s = s.withFilter(s.filter + string(ev.Char))
	case KeyEscape, KeyInterrupt:
		return s, Outcome{Done: true}
	case KeyEnter:
		ref, ok := s.Current()
		if !ok {
			return s, Outcome{Done: true}
		}
		return s, Outcome{Done: true, Selected: true, Reference: ref}
	}
	return s.clamp(), Outcome{}
}

func (s State) withFilter(filter string) State {
	s.filter = filter
	s.filtered = filterItems(s.items, filter)
	s.selected = 0
	return s
}

func (s State) clamp() State {
	switch {
	case len(s.filtered) == 0:
		s.selected = 0
	case s.selected >= len(s.filtered):
		s.selected = len(s.filtered) - 1
	case s.selected < 0:
		s.selected = 0
	}
	return s
}

func filterItems(items []models.ProjectReference, filter string) []models.ProjectReference {
	if filter == "" {
		return items
	}
	out := make([]models.ProjectReference, 0, len(items))
	for _, it := range items {
		if matchName(it.Name, filter) {
			out = append(out, it)
		}
	}
	return out
}

// Simulate drives a selector over items with a scripted event sequence and
// returns the first terminal outcome. If the events run out first, the
// returned Outcome has Done false.
func Simulate(items []models.ProjectReference, events []Event) Outcome {
	s := NewState(items)
	for _, ev := range events {
		var out Outcome
		s, out = s.Apply(ev)
		if out.Done {
			return out
		}
	}
	return Outcome{}
}
