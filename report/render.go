package report

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"gopkg.in/yaml.v3"
)

// columnHeaders for the fixed-width text table.
var columnHeaders = []string{"#", "transformation", "members", "nearest"}

// RenderText formats r as a fixed-width, display-width-aware text
// table suitable for a terminal.
func RenderText(r Report) string {
	rows := make([][]string, 0, len(r.Rows)+1)
	rows = append(rows, columnHeaders)
	for _, row := range r.Rows {
		nearest := "-"
		if row.NearestIndex >= 0 {
			nearest = fmt.Sprintf("#%d (%.2f)", row.NearestIndex, row.NearestSimilarity)
		}
		rows = append(rows, []string{
			fmt.Sprintf("%d", row.Index),
			row.Transformation,
			fmt.Sprintf("%d", row.MemberCount),
			nearest,
		})
	}

	widths := columnWidths(rows)

	var b strings.Builder
	fmt.Fprintf(&b, "run %s — %d clusters\n\n", r.RunID, r.ClusterCount)
	for i, row := range rows {
		writeRow(&b, row, widths)
		if i == 0 {
			writeSeparator(&b, widths)
		}
	}
	return b.String()
}

func columnWidths(rows [][]string) []int {
	widths := make([]int, len(columnHeaders))
	for _, row := range rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func writeRow(b *strings.Builder, row []string, widths []int) {
	for i, cell := range row {
		pad := widths[i] - runewidth.StringWidth(cell)
		b.WriteString(cell)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString("  ")
	}
	b.WriteString("\n")
}

func writeSeparator(b *strings.Builder, widths []int) {
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w))
		b.WriteString("  ")
	}
	b.WriteString("\n")
}

// RenderYAML marshals r as YAML.
func RenderYAML(r Report) ([]byte, error) {
	return yaml.Marshal(r)
}

// RenderJSON marshals r as indented JSON.
func RenderJSON(r Report) ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}
