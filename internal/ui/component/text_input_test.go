package component_test

import (
	"testing"

	"github.com/leighmacdonald/zodiac-tui/internal/reveal"
	"github.com/leighmacdonald/zodiac-tui/internal/ui/component"
	"github.com/stretchr/testify/require"
)

func TestValidators(t *testing.T) {
	intRange := component.IntRangeValidator{Min: 0, Max: 5000}
	require.NoError(t, intRange.Validate("800"))
	require.Error(t, intRange.Validate("-1"))
	require.Error(t, intRange.Validate("fast"))

	ratio := component.RatioValidator{}
	require.NoError(t, ratio.Validate("0.1"))
	require.NoError(t, ratio.Validate("1"))
	require.Error(t, ratio.Validate("1.5"))
	require.Error(t, ratio.Validate(""))

	panel := component.PanelValidator{Kinds: reveal.DefaultKinds}
	require.NoError(t, panel.Validate("quote"))
	require.Error(t, panel.Validate("footer"))
}

func TestValidatingTextInput(t *testing.T) {
	field := component.NewValidatingTextInputModel("Stagger", "100", "100", component.IntRangeValidator{Max: 1000})
	require.Equal(t, "100", field.Input.Value())

	field.Input.SetValue("abc")
	require.Error(t, field.Input.Err)
	require.Contains(t, field.View(), "Validation Error")
}
