package component

import (
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/styles"
)

var (
	errNotANumber   = errors.New("must be a number")
	errOutOfRange   = errors.New("value out of range")
	errUnknownPanel = errors.New("unknown panel")
)

type InputValidator interface {
	Validate(string) error
}

func NewTextInputModel(value string, placeholder string) textinput.Model {
	input := textinput.New()
	input.SetValue(value)
	input.CharLimit = 32
	input.Placeholder = placeholder
	input.PromptStyle = styles.NoStyle

	return input
}

func NewValidatingTextInputModel(label string, value string, placeholder string, validators ...InputValidator) *ValidatingTextInputModel {
	input := NewTextInputModel(value, placeholder)

	if len(validators) > 0 {
		input.Validate = func(s string) error {
			for _, validator := range validators {
				if err := validator.Validate(s); err != nil {
					return err
				}
			}

			return nil
		}
	}

	return &ValidatingTextInputModel{Input: input, Label: label}
}

type ValidatingTextInputModel struct {
	Label string
	Input textinput.Model
}

func (m *ValidatingTextInputModel) Init() tea.Cmd {
	return nil
}

func (m *ValidatingTextInputModel) Update(msg tea.Msg) (*ValidatingTextInputModel, tea.Cmd) {
	var cmd tea.Cmd
	m.Input, cmd = m.Input.Update(msg)

	return m, cmd
}

func (m *ValidatingTextInputModel) View() string {
	var errRow string
	if m.Input.Err != nil {
		errRow = lipgloss.NewStyle().Foreground(styles.Red).Render("Validation Error: " + m.Input.Err.Error())
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.PanelLabel.Render(m.Label+": "),
		lipgloss.JoinVertical(lipgloss.Top, m.Input.View(), errRow))
}

func (m *ValidatingTextInputModel) Focus() tea.Cmd {
	m.Input.PromptStyle = styles.FocusedStyle
	m.Input.TextStyle = styles.FocusedStyle

	return m.Input.Focus()
}

func (m *ValidatingTextInputModel) Blur() {
	m.Input.PromptStyle = styles.NoStyle
	m.Input.TextStyle = styles.NoStyle
	m.Input.Blur()
}

// IntRangeValidator accepts whole numbers within [Min, Max].
type IntRangeValidator struct {
	Min int
	Max int
}

func (v IntRangeValidator) Validate(value string) error {
	number, errParse := strconv.Atoi(value)
	if errParse != nil {
		return errors.Join(errParse, errNotANumber)
	}

	if number < v.Min || number > v.Max {
		return errors.Join(fmt.Errorf("%d is not within %d-%d", number, v.Min, v.Max), errOutOfRange)
	}

	return nil
}

// RatioValidator accepts decimals within [0, 1].
type RatioValidator struct{}

func (v RatioValidator) Validate(value string) error {
	ratio, errParse := strconv.ParseFloat(value, 64)
	if errParse != nil {
		return errors.Join(errParse, errNotANumber)
	}

	if ratio < 0 || ratio > 1 {
		return errors.Join(fmt.Errorf("%s is not within 0-1", value), errOutOfRange)
	}

	return nil
}

// PanelValidator accepts one of the known story panel names.
type PanelValidator struct {
	Kinds []reveal.PanelKind
}

func (v PanelValidator) Validate(value string) error {
	if !slices.Contains(v.Kinds, reveal.PanelKind(value)) {
		return errors.Join(fmt.Errorf("panel %q", value), errUnknownPanel)
	}

	return nil
}
