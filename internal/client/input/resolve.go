package input

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	dErrors "clientrec/pkg/domain-errors"
	s "clientrec/pkg/string"
)

var (
	errNotObject = errors.New("not a JSON object")
	errTrailing  = errors.New("trailing data after JSON object")

	utf8BOM = []byte("\xef\xbb\xbf")
)

// Fields resolves in into one raw value per layout key.
// Delimited segments are canonicalized; all other values are returned as given.
func Fields(in Input, layout Layout) ([]any, error) {
	switch v := in.(type) {
	case Positional:
		if len(v.Values) != len(layout) {
			return nil, dErrors.New(dErrors.CodeFormat,
				fmt.Sprintf("expected %d positional values, got %d", len(layout), len(v.Values)))
		}
		values := make([]any, len(v.Values))
		copy(values, v.Values)
		return values, nil
	case Text:
		// JSON first; any decode failure falls through to the delimited form.
		if m, err := decodeObject([]byte(v.Value)); err == nil {
			return fromMapping(m, layout), nil
		}
		return splitDelimited(v.Value, layout)
	case Delimited:
		return splitDelimited(v.Value, layout)
	case JSONText:
		m, err := decodeObject([]byte(v.Value))
		if err != nil {
			return nil, dErrors.Wrap(err, dErrors.CodeFormat, "invalid JSON: "+err.Error())
		}
		return fromMapping(m, layout), nil
	case Mapping:
		return fromMapping(v.Values, layout), nil
	case File:
		return fromFile(v, layout)
	case nil:
		return nil, dErrors.New(dErrors.CodeFormat, "unsupported construction shape: no input")
	default:
		return nil, dErrors.New(dErrors.CodeFormat,
			fmt.Sprintf("unsupported construction shape: %T", in))
	}
}

// SplitDelimited splits a delimited line into exactly len(layout) canonical segments.
func SplitDelimited(line string, layout Layout) ([]string, error) {
	parts := strings.Split(line, Separator)
	if len(parts) != len(layout) {
		return nil, dErrors.New(dErrors.CodeFormat,
			fmt.Sprintf("expected %d %q-separated segments (%s), got %d",
				len(layout), Separator, strings.Join(layout, Separator), len(parts)))
	}
	s.CanonicalSlice(parts)
	return parts, nil
}

func splitDelimited(line string, layout Layout) ([]any, error) {
	parts, err := SplitDelimited(line, layout)
	if err != nil {
		return nil, err
	}
	values := make([]any, len(parts))
	for i, p := range parts {
		values[i] = p
	}
	return values, nil
}

// fromMapping reads layout keys from m. Absent keys read as "" and are left
// for field validation to reject.
func fromMapping(m map[string]any, layout Layout) []any {
	values := make([]any, len(layout))
	for i, key := range layout {
		v, ok := m[key]
		if !ok {
			v = ""
		}
		values[i] = v
	}
	return values
}

func fromFile(f File, layout Layout) ([]any, error) {
	data, err := ReadDocument(f.Path, f.MaxBytes)
	if err != nil {
		return nil, err
	}
	m, err := decodeObject(data)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeFormat,
			fmt.Sprintf("invalid JSON in %s: %s", f.Path, err.Error()))
	}
	return fromMapping(m, layout), nil
}

// ReadDocument reads at most maxBytes from path. The handle is released on
// every return path.
func ReadDocument(path string, maxBytes int64) ([]byte, error) {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxDocumentBytes
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeFile, fmt.Sprintf("cannot open %s: %s", path, describeOpenError(err)))
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxBytes+1))
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeFile, fmt.Sprintf("cannot read %s", path))
	}
	if int64(len(data)) > maxBytes {
		return nil, dErrors.New(dErrors.CodeFormat,
			fmt.Sprintf("document %s exceeds %d bytes", path, maxBytes))
	}
	return bytes.TrimPrefix(data, utf8BOM), nil
}

func describeOpenError(err error) string {
	switch {
	case errors.Is(err, os.ErrNotExist):
		return "file not found"
	case errors.Is(err, os.ErrPermission):
		return "permission denied"
	default:
		return err.Error()
	}
}

// decodeObject decodes exactly one JSON object. Numbers stay json.Number so
// they can be told apart from strings during validation.
func decodeObject(data []byte) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var m map[string]any
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	if m == nil {
		return nil, errNotObject
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, errTrailing
	}
	return m, nil
}
