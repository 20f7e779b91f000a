package contract

import (
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func TestGetColorEnhancement(t *testing.T) {
	// Force color sequences on so assertions are deterministic in CI.
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	assert.Equal(t, BetterColor.Sprint("0.50x"), GetColorEnhancement("0.50x"))
	assert.Equal(t, WorseColor.Sprint("2.00x"), GetColorEnhancement("2.00x"))
	assert.Equal(t, "1.00x", GetColorEnhancement("1.00x"))
	assert.Equal(t, TokenColor.Sprint("---"), GetColorEnhancement("---"))
	assert.Equal(t, TokenColor.Sprint("<Unsupported units>"), GetColorEnhancement("<Unsupported units>"))
	assert.Equal(t, TokenColor.Sprint("INF"), GetColorEnhancement("INF"))
}

func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "true", "1", "YES"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, v)
	}
	for _, s := range []string{"no", "false", "0", "No"} {
		v, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, v)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}
