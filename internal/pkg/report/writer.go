package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"
)

// TimeLayout is the timestamp format of every report.
const TimeLayout = "2006-01-02 15:04:05"

// Writer prints one report. Errors are sticky: after the first failed write
// every call is a no-op and Err reports the failure.
type Writer struct {
	out io.Writer
	err error
}

// NewWriter returns a report writer on out.
func NewWriter(out io.Writer) *Writer {
	return &Writer{out: out}
}

// Err returns the first write error.
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) printf(format string, args ...interface{}) {
	if w.err != nil {
		return
	}
	_, w.err = fmt.Fprintf(w.out, format, args...)
}

// Heading prints a styled title followed by a separator.
func (w *Writer) Heading(title string) {
	w.printf("%s\n%s\n", RenderHeading(title), RenderSeparator())
}

// Line prints one plain line.
func (w *Writer) Line(format string, args ...interface{}) {
	w.printf(format+"\n", args...)
}

// Pass prints an outcome line in pass styling.
func (w *Writer) Pass(format string, args ...interface{}) {
	w.printf("%s\n", RenderPass(fmt.Sprintf(format, args...)))
}

// Warn prints an outcome line in warning styling.
func (w *Writer) Warn(format string, args ...interface{}) {
	w.printf("%s\n", RenderWarn(fmt.Sprintf(format, args...)))
}

// Fail prints an outcome line in failure styling.
func (w *Writer) Fail(format string, args ...interface{}) {
	w.printf("%s\n", RenderFail(fmt.Sprintf(format, args...)))
}

// Blank prints an empty line.
func (w *Writer) Blank() {
	w.printf("\n")
}

// Fields prints label/value pairs with the values aligned in one column.
func (w *Writer) Fields(pairs ...Field) {
	if w.err != nil {
		return
	}
	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	for _, p := range pairs {
		if _, err := fmt.Fprintf(tw, "%s:\t%s\n", p.Label, Dash(p.Value)); err != nil {
			w.err = err
			return
		}
	}
	w.err = tw.Flush()
}

// Table prints rows under upper-case column headers. An empty table prints
// the muted "(none)" marker instead.
func (w *Writer) Table(headers []string, rows [][]string) {
	if w.err != nil {
		return
	}
	if len(rows) == 0 {
		w.printf("%s\n", RenderMuted("(none)"))
		return
	}

	tw := tabwriter.NewWriter(w.out, 0, 0, 2, ' ', 0)
	upper := make([]string, len(headers))
	for i, h := range headers {
		upper[i] = strings.ToUpper(h)
	}
	if _, err := fmt.Fprintln(tw, strings.Join(upper, "\t")); err != nil {
		w.err = err
		return
	}
	for _, row := range rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = Dash(c)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			w.err = err
			return
		}
	}
	w.err = tw.Flush()
}

// Field is one label/value line of a Fields block.
type Field struct {
	Label string
	Value string
}

// F builds a Field.
func F(label string, value interface{}) Field {
	return Field{Label: label, Value: fmt.Sprint(value)}
}

// Dash substitutes "-" for an empty value.
func Dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// Time formats a timestamp, or "-" when it is zero.
func Time(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(TimeLayout)
}
