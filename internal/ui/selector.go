package ui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/modu-ai/switch/pkg/models"
)

// classifyKey maps a terminal key message onto selector events. A rune
// message produces one event per printable rune so pasted text filters the
// same way typed text does.
func classifyKey(msg tea.KeyMsg, keys selectorKeys) []Event {
	switch msg.Type {
	case tea.KeySpace:
		return []Event{Char(' ')}
	case tea.KeyRunes:
		if msg.Alt {
			return []Event{Press(KeyOther)}
		}
		events := make([]Event, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			events = append(events, Char(r))
		}
		return events
	}

	switch {
	case key.Matches(msg, keys.Quit):
		return []Event{Press(KeyInterrupt)}
	case key.Matches(msg, keys.Up):
		return []Event{Press(KeyUp)}
	case key.Matches(msg, keys.Down):
		return []Event{Press(KeyDown)}
	case key.Matches(msg, keys.Enter):
		return []Event{Press(KeyEnter)}
	case key.Matches(msg, keys.Back):
		return []Event{Press(KeyBackspace)}
	case key.Matches(msg, keys.Esc):
		return []Event{Press(KeyEscape)}
	}
	return []Event{Press(KeyOther)}
}

// selectorModel adapts State to bubbletea.
type selectorModel struct {
	state   State
	outcome Outcome
	theme   *Theme
	keys    selectorKeys
	help    help.Model
	rows    int
}

func newSelectorModel(items []models.ProjectReference, theme *Theme) selectorModel {
	return selectorModel{
		state: NewState(items),
		theme: theme,
		keys:  newSelectorKeys(),
		help:  newHelp(theme),
		rows:  maxVisibleRows,
	}
}

func (m selectorModel) Init() tea.Cmd { return nil }

func (m selectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		for _, ev := range classifyKey(msg, m.keys) {
			var out Outcome
			m.state, out = m.state.Apply(ev)
			if out.Done {
				m.outcome = out
				return m, tea.Quit
			}
		}
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		if msg.Height > 0 {
			m.rows = visibleRows(msg.Height)
		}
	}
	return m, nil
}

func (m selectorModel) View() string {
	if m.outcome.Done {
		return ""
	}
	return renderSelector(m.state, m.theme, m.help, m.keys, m.rows) + "\n"
}

// Selector runs the interactive project picker.
type Selector struct {
	theme    *Theme
	headless *HeadlessManager
	opts     []tea.ProgramOption
	logger   *slog.Logger
}

// SelectorOption configures a Selector.
type SelectorOption func(*Selector)

// WithProgramOptions appends bubbletea program options, mainly so tests
// can replace the terminal.
func WithProgramOptions(opts ...tea.ProgramOption) SelectorOption {
	return func(s *Selector) {
		s.opts = append(s.opts, opts...)
	}
}

// WithSelectorLogger sets the logger used by the selector.
func WithSelectorLogger(l *slog.Logger) SelectorOption {
	return func(s *Selector) {
		s.logger = l
	}
}

// NewSelector creates a Selector backed by the given theme and headless manager.
func NewSelector(theme *Theme, hm *HeadlessManager, opts ...SelectorOption) *Selector {
	s := &Selector{
		theme:    theme,
		headless: hm,
		logger:   slog.Default().With("module", "ui"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Select shows items and blocks until the user picks one or cancels.
// The boolean is false when nothing was selected; that is not an error.
func (s *Selector) Select(ctx context.Context, items []models.ProjectReference) (models.ProjectReference, bool, error) {
	if s.headless.IsHeadless() {
		return models.ProjectReference{}, false, ErrNotInteractive
	}

	opts := append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, s.opts...)
	p := tea.NewProgram(newSelectorModel(items, s.theme), opts...)

	final, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrInterrupted) {
			s.logger.Debug("selector interrupted")
			return models.ProjectReference{}, false, nil
		}
		return models.ProjectReference{}, false, fmt.Errorf("run selector: %w", err)
	}

	m, ok := final.(selectorModel)
	if !ok || !m.outcome.Selected {
		s.logger.Debug("no project selected", "items", len(items))
		return models.ProjectReference{}, false, nil
	}
	s.logger.Debug("project selected", "id", m.outcome.Reference.ID)
	return m.outcome.Reference, true, nil
}
