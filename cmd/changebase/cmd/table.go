package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/calebcase/changebase/digit"
	"github.com/calebcase/changebase/display"
	"github.com/calebcase/changebase/explain"
)

// termLimit bounds the significant digits of powers and products in a table.
const termLimit = 8

// cell is one term in a row. Only hi is highlighted.
type cell struct {
	pre, hi, post string
}

func (c cell) width() int {
	return runewidth.StringWidth(c.pre + c.hi + c.post)
}

type row struct {
	label string
	cells []cell
}

// table lays out the steps that turn a representation back into a value.
type table struct {
	rows      []row
	total     string
	truncated bool
	highlight func(a ...interface{}) string
}

func newTable(b *explain.Breakdown, label string) *table {
	t := &table{
		total:     display.RoundedString(b.Sum, 0),
		truncated: b.Truncated,
		highlight: color.New(color.FgRed).SprintFunc(),
	}

	power := func(p explain.Term) string {
		return fmt.Sprintf("(%s^%d)", label, p.Exponent)
	}

	positioned := row{label: fmt.Sprintf("Output value w/base-%s positioned values:", label)}
	values := row{label: fmt.Sprintf("Representing base-%s digits as base-10 numbers:", label)}
	evaluated := row{label: "Evaluating the exponents on the base:"}
	multiplied := row{label: "Multiplying to get:"}

	for _, term := range b.Terms {
		v := term.Value.String()

		positioned.cells = append(positioned.cells, cell{hi: term.Digit, post: power(term)})
		values.cells = append(values.cells, cell{hi: v, post: power(term)})
		evaluated.cells = append(evaluated.cells, cell{
			pre:  v + "(",
			hi:   display.RoundedString(term.Power, termLimit),
			post: ")",
		})
		multiplied.cells = append(multiplied.cells, cell{
			hi: display.RoundedString(term.Product, termLimit),
		})
	}

	t.rows = append(t.rows, positioned)

	if b.Base.GreaterThan(decimal.New(10, 0)) {
		t.rows = append(t.rows, values)
	}

	t.rows = append(t.rows, evaluated, multiplied)

	return t
}

func (t *table) write(w io.Writer) (err error) {
	const footer = "Adding everything:"

	labelWidth := runewidth.StringWidth(footer)
	var widths []int

	for _, r := range t.rows {
		if lw := runewidth.StringWidth(r.label); lw > labelWidth {
			labelWidth = lw
		}

		for i, c := range r.cells {
			if i >= len(widths) {
				widths = append(widths, 0)
			}

			if cw := c.width(); cw > widths[i] {
				widths[i] = cw
			}
		}
	}

	for _, r := range t.rows {
		parts := make([]string, 0, len(r.cells)+1)

		for i, c := range r.cells {
			pad := strings.Repeat(" ", widths[i]-c.width())
			parts = append(parts, c.pre+t.highlight(c.hi)+c.post+pad)
		}

		if t.truncated {
			parts = append(parts, digit.Ellipsis)
		}

		_, err = fmt.Fprintf(w, "%s  %s\n", runewidth.FillLeft(r.label, labelWidth), strings.TrimRight(strings.Join(parts, " + "), " "))
		if err != nil {
			return err
		}
	}

	total := t.highlight(t.total)
	if t.truncated {
		total += " + " + digit.Ellipsis
	}

	_, err = fmt.Fprintf(w, "%s  %s\n", runewidth.FillLeft(footer, labelWidth), total)

	return err
}
