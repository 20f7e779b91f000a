// Package core has the domain logic of modelprof: report rendering,
// profile loading, and the executors that glue configuration, store, and
// output together.
package core

import (
	"fmt"
	"strings"

	"github.com/modelprof/modelprof/schema"
)

// DefaultTitle is the banner rendered at the top of every text report.
const DefaultTitle = "Model Profiler"

// valuePrecision is the decimal precision of metric value cells.
const valuePrecision = 4

// Layout holds the column widths of a text report. Widths exclude the
// single-space gutters; every row of a report renders to the same total
// width as its border lines.
type Layout struct {
	LineWidth    int // inner width of the top and bottom borders
	LabelWidth   int // metric label column
	EnhanceWidth int // enhancement column, comparison reports only
	ValueWidth   int // value columns
}

// Layout presets for the two report shapes.
var (
	ProfileLayout    = Layout{LineWidth: 63, LabelWidth: 40, ValueWidth: 20}
	ComparisonLayout = Layout{LineWidth: 122, LabelWidth: 40, EnhanceWidth: 25, ValueWidth: 25}
)

// Options controls the optional parts of a text report.
type Options struct {
	Title string // banner title, DefaultTitle when empty
	Notes bool   // append the footnote section with metric descriptions
}

func (o Options) title() string {
	if o.Title == "" {
		return DefaultTitle
	}
	return o.Title
}

// RenderProfile renders the text report for a single profile status. Rows
// follow the status's key order; callers wanting the canonical display
// order apply schema.DisplayOrder first.
func RenderProfile(status *schema.Status, opts Options) string {
	l := ProfileLayout
	var b, notes strings.Builder

	b.WriteString("\n")
	writeBorder(&b, l.LineWidth)
	writeTitle(&b, opts.title(), l.LineWidth)
	writeRule(&b, l.LabelWidth, l.ValueWidth)
	fmt.Fprintf(&b, "|%*s | %*s|\n", l.LabelWidth, "Param Name ("+status.Name()+")", l.ValueWidth, "Value")
	fmt.Fprintf(&b, "|%*s | %*s|\n", l.LabelWidth, "Backend: "+status.Backend(), l.ValueWidth, "")
	writeRule(&b, l.LabelWidth, l.ValueWidth)

	for _, row := range ProfileRows(status) {
		label := row.Label + " (" + row.Units + ")"
		fmt.Fprintf(&b, "|%*s | %s|\n", l.LabelWidth, label, row.Value.Format(l.ValueWidth, valuePrecision))
		fmt.Fprintf(&notes, "* %s: %s\n", row.Label, row.Description)
	}
	writeRule(&b, l.LabelWidth, l.ValueWidth)

	writeFootnote(&b, &notes, opts, l.LineWidth)
	return b.String()
}

// RenderComparison renders the text report comparing a base status against
// a target status. Join semantics follow ComparisonRows.
func RenderComparison(base, target *schema.Status, opts Options) string {
	l := ComparisonLayout
	var b, notes strings.Builder

	b.WriteString("\n")
	writeBorder(&b, l.LineWidth)
	writeTitle(&b, opts.title(), l.LineWidth)
	writeRule(&b, l.LabelWidth, l.EnhanceWidth, l.ValueWidth, l.ValueWidth)
	fmt.Fprintf(&b, "|%*s | %*s| %*s| %*s|\n",
		l.LabelWidth, "Param Name",
		l.EnhanceWidth, "Enhancement",
		l.ValueWidth, "Value ("+base.Name()+")",
		l.ValueWidth, "Value ("+target.Name()+")")
	fmt.Fprintf(&b, "|%*s | %*s| %*s| %*s|\n",
		l.LabelWidth, "",
		l.EnhanceWidth, "",
		l.ValueWidth, "Backend: "+base.Backend(),
		l.ValueWidth, "Backend: "+target.Backend())
	writeRule(&b, l.LabelWidth, l.EnhanceWidth, l.ValueWidth, l.ValueWidth)

	for _, row := range ComparisonRows(base, target) {
		label := row.Label + " (" + row.Units + ")"
		fmt.Fprintf(&b, "|%*s | %*s| %s| %s|\n",
			l.LabelWidth, label,
			l.EnhanceWidth, row.Enhancement,
			row.BaseValue.Format(l.ValueWidth, valuePrecision),
			row.TargetValue.Format(l.ValueWidth, valuePrecision))
		fmt.Fprintf(&notes, "* %s: %s\n", row.Label, row.Description)
	}
	writeRule(&b, l.LabelWidth, l.EnhanceWidth, l.ValueWidth, l.ValueWidth)

	writeFootnote(&b, &notes, opts, l.LineWidth)
	return b.String()
}

// writeBorder writes the full-width border line.
func writeBorder(b *strings.Builder, width int) {
	b.WriteString("+" + strings.Repeat("-", width) + "+\n")
}

// writeTitle writes the centered banner line. Centering is left-biased:
// the extra space of an odd pad goes to the right.
func writeTitle(b *strings.Builder, title string, width int) {
	pad := width - len(title)
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	b.WriteString("|" + strings.Repeat(" ", left) + title + strings.Repeat(" ", pad-left) + "|\n")
}

// writeRule writes a column separator line. Each segment spans its column
// width plus the one-space gutter.
func writeRule(b *strings.Builder, widths ...int) {
	b.WriteString("+")
	for _, w := range widths {
		b.WriteString(strings.Repeat("-", w+1) + "+")
	}
	b.WriteString("\n")
}

// writeFootnote appends the note section listing metric descriptions,
// closed by a full-width border. Without notes the report ends at the
// table's bottom rule.
func writeFootnote(b, notes *strings.Builder, opts Options, width int) {
	if !opts.Notes {
		return
	}
	b.WriteString("Note: \n")
	b.WriteString(notes.String())
	b.WriteString("+" + strings.Repeat("-", width) + "+")
}
