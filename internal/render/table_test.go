package render

import (
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amirbrooks/tasklist/internal/store"
)

func sampleTasks() []store.Task {
	return []store.Task{
		{
			Description: "Buy milk",
			Priority:    store.PriorityCritical,
			Date:        "2024-01-01",
			Time:        "09:30",
			Due:         store.DueOverdue,
		},
		{
			Description: "Write the quarterly report for the finance team before review",
			Priority:    store.PriorityNormal,
			Date:        "2024-02-10",
			Time:        "17:00",
			Due:         store.DueInTime,
		},
		{
			Description: "Pack for the trip\nPassport and charger",
			Priority:    store.PriorityLow,
			Date:        "2024-01-02",
			Time:        "18:00",
			Due:         store.DueToday,
		},
	}
}

func TestWrapDescriptionHardChunks(t *testing.T) {
	chunks := wrapDescription(strings.Repeat("a", 90), 44)
	require.Len(t, chunks, 3)
	for _, c := range chunks {
		assert.Len(t, []rune(c), 44)
	}
	assert.Equal(t, strings.Repeat("a", 44), chunks[0])
	assert.Equal(t, strings.Repeat("a", 44), chunks[1])
	assert.Equal(t, "aa"+strings.Repeat(" ", 42), chunks[2])
}

func TestWrapDescriptionSplitsLogicalLines(t *testing.T) {
	chunks := wrapDescription("one\ntwo", 44)
	require.Len(t, chunks, 2)
	assert.Equal(t, "one"+strings.Repeat(" ", 41), chunks[0])
	assert.Equal(t, "two"+strings.Repeat(" ", 41), chunks[1])
}

func TestWrapDescriptionCountsRunes(t *testing.T) {
	chunks := wrapDescription(strings.Repeat("ä", 50), 44)
	require.Len(t, chunks, 2)
	assert.Equal(t, strings.Repeat("ä", 44), chunks[0])
	assert.Equal(t, strings.Repeat("ä", 6)+strings.Repeat(" ", 38), chunks[1])
}

func TestTablePlainGolden(t *testing.T) {
	out := Table(sampleTasks(), PlainPalette{})
	g := goldie.New(t)
	g.Assert(t, "table_plain", []byte(out))
}

func TestTablePadsShortDescription(t *testing.T) {
	out := Table(sampleTasks()[:1], PlainPalette{})
	assert.Contains(t, out, "|Buy milk"+strings.Repeat(" ", 36)+"|")
}

func TestTableEmptyListIsHeaderOnly(t *testing.T) {
	out := Table(nil, PlainPalette{})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, lines[0], lines[2])
}

func TestTableColorCellsUseEscapes(t *testing.T) {
	plain := Table(sampleTasks(), PlainPalette{})
	color := Table(sampleTasks(), NewColorPalette(io.Discard))
	assert.Contains(t, color, "\x1b[")
	assert.NotEqual(t, plain, color)
}
