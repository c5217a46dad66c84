package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// InitAnswers is the result of the interactive init form.
type InitAnswers struct {
	Name     string
	Activate []string
}

// InitForm asks for a project name and its activation commands.
type InitForm struct {
	theme    *Theme
	headless *HeadlessManager
}

// NewInitForm creates an InitForm backed by the given theme and headless manager.
func NewInitForm(theme *Theme, hm *HeadlessManager) *InitForm {
	return &InitForm{theme: theme, headless: hm}
}

// Run shows the form. defaultName is used when the name is left blank.
func (f *InitForm) Run(defaultName string) (*InitAnswers, error) {
	if f.headless.IsHeadless() {
		return nil, ErrNotInteractive
	}

	var name, activate string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Project name").
				Description("Shown in the project selector.").
				Placeholder(defaultName).
				Value(&name),
			huh.NewText().
				Title("Activation commands").
				Description("One per line, run before the editor opens. Leave empty for none.").
				Value(&activate),
		),
	).WithTheme(newFormTheme(f.theme)).WithAccessible(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil, ErrCancelled
		}
		return nil, fmt.Errorf("init form: %w", err)
	}
	return parseAnswers(name, activate, defaultName), nil
}

// parseAnswers trims the raw form values. Blank activation lines are dropped.
func parseAnswers(name, activate, defaultName string) *InitAnswers {
	a := &InitAnswers{Name: strings.TrimSpace(name), Activate: []string{}}
	if a.Name == "" {
		a.Name = defaultName
	}
	for line := range strings.Lines(activate) {
		if v := strings.TrimSpace(line); v != "" {
			a.Activate = append(a.Activate, v)
		}
	}
	return a
}

// newFormTheme creates a huh.Theme matching the selector colours.
func newFormTheme(theme *Theme) *huh.Theme {
	t := huh.ThemeBase()
	if theme.NoColor {
		return t
	}

	primary := lipgloss.AdaptiveColor{Light: "#C45A3C", Dark: ColorPrimary}
	secondary := lipgloss.AdaptiveColor{Light: "#5B21B6", Dark: ColorSecondary}
	red := lipgloss.AdaptiveColor{Light: "#DC2626", Dark: ColorError}
	muted := lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: ColorMuted}
	border := lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: ColorBorder}

	t.Focused.Base = t.Focused.Base.BorderForeground(border)
	t.Focused.Card = t.Focused.Base
	t.Focused.Title = t.Focused.Title.Foreground(primary).Bold(true)
	t.Focused.Description = t.Focused.Description.Foreground(muted)
	t.Focused.ErrorIndicator = t.Focused.ErrorIndicator.Foreground(red)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(red)
	t.Focused.TextInput.Cursor = t.Focused.TextInput.Cursor.Foreground(primary)
	t.Focused.TextInput.Placeholder = t.Focused.TextInput.Placeholder.Foreground(muted)
	t.Focused.TextInput.Prompt = t.Focused.TextInput.Prompt.Foreground(secondary)

	t.Blurred = t.Focused
	t.Blurred.Base = t.Focused.Base.BorderStyle(lipgloss.HiddenBorder())
	t.Blurred.Card = t.Blurred.Base

	t.Group.Title = t.Focused.Title
	t.Group.Description = t.Focused.Description
	return t
}
