package render

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amirbrooks/tasklist/internal/store"
)

func TestPlainPaletteLetters(t *testing.T) {
	p := PlainPalette{}
	assert.Equal(t, "C", p.Priority(store.PriorityCritical))
	assert.Equal(t, "L", p.Priority(store.PriorityLow))
	assert.Equal(t, "O", p.Due(store.DueOverdue))
	assert.Equal(t, "T", p.Due(store.DueToday))
	assert.Equal(t, "I", p.Due(store.DueInTime))
	assert.Equal(t, " ", p.Priority(""))
	assert.Equal(t, " ", p.Due(""))
}

func TestColorPaletteDistinguishesCodes(t *testing.T) {
	p := NewColorPalette(io.Discard)
	cells := map[string]string{
		"critical": p.Priority(store.PriorityCritical),
		"high":     p.Priority(store.PriorityHigh),
		"normal":   p.Priority(store.PriorityNormal),
		"low":      p.Priority(store.PriorityLow),
	}
	seen := map[string]string{}
	for name, cell := range cells {
		assert.Contains(t, cell, "\x1b[", name)
		if prev, dup := seen[cell]; dup {
			t.Fatalf("%s and %s render the same cell", prev, name)
		}
		seen[cell] = name
	}
	// Priority and due share the fixed color mapping.
	assert.Equal(t, p.Priority(store.PriorityCritical), p.Due(store.DueOverdue))
	assert.Equal(t, p.Priority(store.PriorityHigh), p.Due(store.DueToday))
	assert.Equal(t, p.Priority(store.PriorityNormal), p.Due(store.DueInTime))
	// Unknown values stay uncolored given the validated domain.
	assert.Equal(t, " ", p.Priority(""))
	assert.Equal(t, " ", p.Due(""))
}
