package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/goccy/go-json"
)

// Separator sits between the script name and its command on a text line.
const Separator = ": "

type Format string

const (
	FormatText Format = "text"
	FormatJSON Format = "json"
)

// Entry is one reported scripts-table pair.
type Entry struct {
	Name    string `json:"name"`
	Command string `json:"command"`
	Kind    string `json:"kind"`
}

// FormatLine renders an entry as "name: command".
func FormatLine(name, command string) string {
	return name + Separator + command
}

// ParseLine splits a line produced by FormatLine on the first separator.
func ParseLine(line string) (name, command string, err error) {
	name, command, ok := strings.Cut(line, Separator)
	if !ok {
		return "", "", fmt.Errorf("invalid format, expected 'name: command': %s", line)
	}
	return name, command, nil
}

// Writer emits entries to w, one per line.
type Writer struct {
	w      io.Writer
	format Format
	enc    *json.Encoder
}

func NewWriter(w io.Writer, format Format) *Writer {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return &Writer{w: w, format: format, enc: enc}
}

func (w *Writer) Write(entry Entry) error {
	switch w.format {
	case FormatJSON:
		if err := w.enc.Encode(entry); err != nil {
			return fmt.Errorf("failed to marshal JSON output: %w", err)
		}
	case FormatText, "":
		if _, err := fmt.Fprintln(w.w, FormatLine(entry.Name, entry.Command)); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown output format: %s", w.format)
	}
	return nil
}
