// Package render formats the task list as a fixed-width bordered table.
package render

import (
	"fmt"
	"strings"

	"github.com/amirbrooks/tasklist/internal/store"
)

// Column widths. The description column is word-wrapped by hard-chunking
// each logical line into runs of at most descWidth runes.
const (
	idxWidth  = 2
	dateWidth = 10
	timeWidth = 5
	descWidth = 44
)

// Table renders a border row, the header, a border row, then one block per
// task each followed by a border row. Continuation rows of a wrapped
// description leave every other column blank.
func Table(tasks []store.Task, pal Palette) string {
	border := "+" + strings.Repeat("-", idxWidth) +
		"+" + strings.Repeat("-", dateWidth) +
		"+" + strings.Repeat("-", timeWidth) +
		"+-+-+" + strings.Repeat("-", descWidth) + "+"

	var b strings.Builder
	b.WriteString(border + "\n")
	fmt.Fprintf(&b, "|%*s|%*s|%*s|P|D|%-*s|\n",
		idxWidth, "No", dateWidth, "Date", timeWidth, "Time", descWidth, "Description")
	b.WriteString(border + "\n")
	for i, t := range tasks {
		for j, chunk := range wrapDescription(t.Description, descWidth) {
			if j == 0 {
				fmt.Fprintf(&b, "|%*d|%*s|%*s|%s|%s|%s|\n",
					idxWidth, i+1, dateWidth, t.Date, timeWidth, t.Time,
					pal.Priority(t.Priority), pal.Due(t.Due), chunk)
			} else {
				fmt.Fprintf(&b, "|%*s|%*s|%*s| | |%s|\n",
					idxWidth, "", dateWidth, "", timeWidth, "", chunk)
			}
		}
		b.WriteString(border + "\n")
	}
	return b.String()
}

// wrapDescription splits at author-entered newlines, then chunks each
// logical line by rune count (not word-aware). Every chunk comes back
// right-padded to exactly width runes.
func wrapDescription(description string, width int) []string {
	var chunks []string
	for _, line := range strings.Split(description, "\n") {
		runes := []rune(line)
		if len(runes) == 0 {
			chunks = append(chunks, strings.Repeat(" ", width))
			continue
		}
		for len(runes) > 0 {
			n := min(width, len(runes))
			chunk := string(runes[:n])
			chunks = append(chunks, chunk+strings.Repeat(" ", width-n))
			runes = runes[n:]
		}
	}
	if len(chunks) == 0 {
		chunks = []string{strings.Repeat(" ", width)}
	}
	return chunks
}
