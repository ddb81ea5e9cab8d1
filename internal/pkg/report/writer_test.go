//go:build unit
// +build unit

package report

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_Fields(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Fields(F("Name", "CR-100"), F("Impacted customer", ""), F("Severity", 2))
	require.NoError(t, w.Err())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Name:               CR-100", lines[0])
	assert.Equal(t, "Impacted customer:  -", lines[1])
	assert.Equal(t, "Severity:           2", lines[2])
}

func TestWriter_Table(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Table([]string{"name", "stage"}, [][]string{{"14.1.6", "PRODUCTION"}, {"14.1.7", ""}})
	require.NoError(t, w.Err())

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "NAME    STAGE", lines[0])
	assert.Equal(t, "14.1.6  PRODUCTION", lines[1])
	assert.Equal(t, "14.1.7  -", lines[2])
}

func TestWriter_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Table([]string{"name"}, nil)
	assert.Contains(t, buf.String(), "(none)")
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_StickyError(t *testing.T) {
	w := NewWriter(failingWriter{})

	w.Line("first")
	w.Line("second")
	w.Table([]string{"a"}, [][]string{{"b"}})
	require.Error(t, w.Err())
	assert.Equal(t, "disk full", w.Err().Error())
}

func TestTimeAndDash(t *testing.T) {
	assert.Equal(t, "-", Time(time.Time{}))
	assert.Equal(t, "-", Dash("  "))
	assert.Equal(t, "x", Dash("x"))

	ts := time.Date(2026, 10, 17, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-10-17 09:30:00", Time(ts))
}

func TestWriter_StyledLines(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	w.Heading("change request CR-100")
	w.Pass("approved by %s", "ccbchair")
	w.Warn("already approved")
	w.Fail("not authorized")
	require.NoError(t, w.Err())

	out := buf.String()
	assert.Contains(t, out, "CHANGE REQUEST CR-100")
	assert.Contains(t, out, "approved by ccbchair")
	assert.Contains(t, out, "already approved")
	assert.Contains(t, out, "not authorized")
}
