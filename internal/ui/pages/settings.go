package pages

import (
	"errors"
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/config"
	"github.com/leighmacdonald/zodiac-tui/internal/nav"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/command"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/component"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/input"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/model"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
)

type settingsIdx int

const (
	fieldTransition settingsIdx = iota
	fieldStagger
	fieldThreshold
	fieldDefaultPanel
	fieldSave
)

const maxDurationMs = 10000

var errSettingsParse = errors.New("invalid settings value")

// Settings edits the animation settings and writes them to the config file.
type Settings struct {
	fields     []*component.ValidatingTextInputModel
	focusIndex settingsIdx
	config     config.Config
	viewState  model.ViewState
	loader     config.Writer
}

func NewSettings(cfg config.Config, loader config.Writer) *Settings {
	settings := &Settings{loader: loader}
	settings.load(cfg)

	return settings
}

func (m *Settings) load(cfg config.Config) {
	m.config = cfg
	m.fields = []*component.ValidatingTextInputModel{
		component.NewValidatingTextInputModel("Transition ms", strconv.Itoa(cfg.TransitionMs), "800",
			component.IntRangeValidator{Min: 0, Max: maxDurationMs}),
		component.NewValidatingTextInputModel("Stagger ms", strconv.Itoa(cfg.StaggerMs), "100",
			component.IntRangeValidator{Min: 0, Max: maxDurationMs}),
		component.NewValidatingTextInputModel("Fade threshold", strconv.FormatFloat(cfg.FadeThreshold, 'f', -1, 64), "0.1",
			component.RatioValidator{}),
		component.NewValidatingTextInputModel("Default panel", cfg.DefaultPanel, string(reveal.PanelTitle),
			component.PanelValidator{Kinds: reveal.DefaultKinds}),
	}
	m.focusIndex = fieldTransition
	m.fields[fieldTransition].Focus()
}

func (m *Settings) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Settings) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case model.ViewState:
		m.viewState = msg

		return nil
	case config.Config:
		if m.viewState.Page != nav.PageSettings {
			m.load(msg)
		}

		return nil
	case tea.KeyMsg:
		if m.viewState.Page != nav.PageSettings {
			return nil
		}

		switch {
		case key.Matches(msg, input.Default.Back):
			m.load(m.config)

			return command.Navigate(nav.Home)
		case msg.Type == tea.KeyUp || msg.Type == tea.KeyShiftTab:
			if m.focusIndex > 0 {
				return m.changeInput(input.Up)
			}

			return nil
		case msg.Type == tea.KeyDown || msg.Type == tea.KeyTab:
			if m.focusIndex < fieldSave {
				return m.changeInput(input.Down)
			}

			return nil
		case key.Matches(msg, input.Default.Accept):
			if m.focusIndex != fieldSave {
				return m.changeInput(input.Down)
			}

			return m.save()
		}
	default:
		if m.viewState.Page != nav.PageSettings {
			return nil
		}
	}

	cmds := make([]tea.Cmd, len(m.fields))
	for index := range m.fields {
		m.fields[index], cmds[index] = m.fields[index].Update(msg)
	}

	return tea.Batch(cmds...)
}

func (m *Settings) save() tea.Cmd {
	for _, field := range m.fields {
		if field.Input.Err != nil {
			return command.SetStatusMessage("Settings are not valid, cannot save", true)
		}
	}

	cfg, errParse := m.parse()
	if errParse != nil {
		return command.SetStatusMessage(errParse.Error(), true)
	}

	if err := cfg.Validate(); err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	if err := m.loader.Write(cfg); err != nil {
		return command.SetStatusMessage(err.Error(), true)
	}

	m.config = cfg

	return tea.Batch(
		command.SetConfig(cfg),
		command.SetStatusMessage("Saved settings", false),
		command.Navigate(nav.Home))
}

// Editing reports whether a text field has focus, in which case global keys must not fire.
func (m *Settings) Editing() bool {
	return m.focusIndex < fieldSave
}

func (m *Settings) changeInput(dir input.Direction) tea.Cmd {
	switch dir { //nolint:exhaustive
	case input.Up:
		m.focusIndex--
	case input.Down:
		m.focusIndex++
	default:
		return nil
	}

	var cmd tea.Cmd
	for i := range m.fields {
		if settingsIdx(i) == m.focusIndex {
			cmd = m.fields[i].Focus()
		} else {
			m.fields[i].Blur()
		}
	}

	return cmd
}

func (m *Settings) View() string {
	fields := make([]string, 0, len(m.fields)+2)
	for _, field := range m.fields {
		fields = append(fields, field.View())
	}

	fields = append(fields, "")
	if m.focusIndex == fieldSave {
		fields = append(fields, styles.FocusedSubmitButton)
	} else {
		fields = append(fields, styles.BlurredSubmitButton)
	}

	form := lipgloss.JoinVertical(lipgloss.Left, fields...)

	return lipgloss.Place(m.viewState.Width, m.viewState.Content, lipgloss.Center, lipgloss.Center,
		model.Container("Settings", lipgloss.Width(form)+2, lipgloss.Height(form), form, true))
}

// parse reads the field values into a copy of the current config.
func (m *Settings) parse() (config.Config, error) {
	cfg := m.config

	transition, errTransition := strconv.Atoi(m.fields[fieldTransition].Input.Value())
	if errTransition != nil {
		return cfg, errors.Join(errTransition, errSettingsParse)
	}

	stagger, errStagger := strconv.Atoi(m.fields[fieldStagger].Input.Value())
	if errStagger != nil {
		return cfg, errors.Join(errStagger, errSettingsParse)
	}

	threshold, errThreshold := strconv.ParseFloat(m.fields[fieldThreshold].Input.Value(), 64)
	if errThreshold != nil {
		return cfg, errors.Join(errThreshold, errSettingsParse)
	}

	cfg.TransitionMs = transition
	cfg.StaggerMs = stagger
	cfg.FadeThreshold = threshold
	cfg.DefaultPanel = m.fields[fieldDefaultPanel].Input.Value()

	return cfg, nil
}
