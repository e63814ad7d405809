package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptionsWithDefaults(t *testing.T) {
	opts := Options{}.withDefaults()

	assert.Equal(t, 800, opts.WindowWidth)
	assert.Equal(t, 600, opts.WindowHeight)
	assert.Equal(t, "glint", opts.WindowTitle)
}

func TestOptionsKeepExplicitValues(t *testing.T) {
	opts := Options{
		WindowWidth:  320,
		WindowHeight: 240,
		WindowTitle:  "triangle",
	}.withDefaults()

	assert.Equal(t, 320, opts.WindowWidth)
	assert.Equal(t, 240, opts.WindowHeight)
	assert.Equal(t, "triangle", opts.WindowTitle)
}
