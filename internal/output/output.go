// Package output writes the finished object when the editor exits.
package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"

	"jsonedit/internal/editor"
	"jsonedit/internal/errors"
	"jsonedit/internal/log"
)

// Options controls where and how the object is written.
type Options struct {
	Path   string // Write here instead of the default writer
	Indent string // Pretty-print with this indent; "" keeps it compact
}

// Render serializes pairs and applies the indent. The encoded bytes are
// decoded again before they are returned so that a malformed object is
// reported instead of printed.
func Render(pairs editor.Pairs, indent string) ([]byte, error) {
	data, err := pairs.ToJSON()
	if err != nil {
		return nil, err
	}

	check, err := editor.PairsFromJSON(data)
	if err != nil || check.Len() != pairs.Len() {
		return nil, errors.NewSerializationError("encoded object does not decode to the same pairs", "", err)
	}

	if indent != "" {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", indent); err != nil {
			return nil, errors.NewSerializationError("cannot indent object", "", err)
		}
		data = buf.Bytes()
	}
	return append(data, '\n'), nil
}

// Emit renders pairs and writes them to opts.Path, or to w when no path is
// set. Nothing is written if rendering fails.
func Emit(w io.Writer, pairs editor.Pairs, opts Options) error {
	data, err := Render(pairs, opts.Indent)
	if err != nil {
		return err
	}

	if opts.Path != "" {
		if err := os.WriteFile(opts.Path, data, 0644); err != nil {
			return errors.NewOutputError("cannot write json", opts.Path, err)
		}
	} else if _, err := w.Write(data); err != nil {
		return errors.NewOutputError("cannot write json", "", err)
	}

	log.LogWithFields(
		log.F("pairs", pairs.Len()),
		log.F("bytes", len(data)),
		log.F("path", opts.Path),
	).Info("emitted json")
	return nil
}
