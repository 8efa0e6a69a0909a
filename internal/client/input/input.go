// Package input defines the shapes a client record can be constructed from and
// resolves each of them into an ordered list of raw field values.
//
// The variants form a closed set:
//   - Positional: values already in field order
//   - Text: a single string, tried as a JSON object first and as a
//     delimited line second
//   - Delimited: a ";"-separated line
//   - JSONText: a JSON object in text form
//   - Mapping: an already decoded JSON object
//   - File: a path to a JSON document
//
// Resolution does not validate field values. It only guarantees that the
// returned slice has one entry per layout key, in layout order.
package input

import (
	"fmt"

	dErrors "clientrec/pkg/domain-errors"
)

// Shape names an input variant. It is used as a metrics label.
type Shape string

const (
	ShapePositional Shape = "positional"
	ShapeText       Shape = "text"
	ShapeDelimited  Shape = "delimited"
	ShapeJSONText   Shape = "json_text"
	ShapeMapping    Shape = "mapping"
	ShapeFile       Shape = "file"
)

// Separator splits the fields of a delimited line. It cannot be escaped.
const Separator = ";"

// DefaultMaxDocumentBytes bounds a JSON document read from disk.
const DefaultMaxDocumentBytes int64 = 1 << 20

// Input is one construction source. Only the variants of this package implement it.
type Input interface {
	Shape() Shape
	sealed()
}

// Layout lists the keys of a record kind in positional order.
type Layout []string

// Positional carries field values in layout order.
type Positional struct {
	Values []any
}

// Text is a single string of unknown encoding.
type Text struct {
	Value string
}

// Delimited is a ";"-separated line.
type Delimited struct {
	Value string
}

// JSONText is a JSON object in text form.
type JSONText struct {
	Value string
}

// Mapping is a decoded JSON object.
type Mapping struct {
	Values map[string]any
}

// File points at a JSON document on disk. MaxBytes <= 0 means DefaultMaxDocumentBytes.
type File struct {
	Path     string
	MaxBytes int64
}

func (Positional) Shape() Shape { return ShapePositional }
func (Text) Shape() Shape       { return ShapeText }
func (Delimited) Shape() Shape  { return ShapeDelimited }
func (JSONText) Shape() Shape   { return ShapeJSONText }
func (Mapping) Shape() Shape    { return ShapeMapping }
func (File) Shape() Shape       { return ShapeFile }

func (Positional) sealed() {}
func (Text) sealed()       {}
func (Delimited) sealed()  {}
func (JSONText) sealed()   {}
func (Mapping) sealed()    {}
func (File) sealed()       {}

// FromArgs picks an input variant from a loose argument list, checking in order:
// a single Input is returned as is, a single string becomes Text, a single
// mapping becomes Mapping, and exactly fieldCount values become Positional.
// Any other shape is a format error.
func FromArgs(fieldCount int, args ...any) (Input, error) {
	if len(args) == 1 {
		switch v := args[0].(type) {
		case Input:
			return v, nil
		case string:
			return Text{Value: v}, nil
		case map[string]any:
			return Mapping{Values: v}, nil
		case map[string]string:
			m := make(map[string]any, len(v))
			for k, val := range v {
				m[k] = val
			}
			return Mapping{Values: m}, nil
		}
	}
	if len(args) == fieldCount {
		values := make([]any, len(args))
		copy(values, args)
		return Positional{Values: values}, nil
	}
	return nil, dErrors.New(dErrors.CodeFormat,
		fmt.Sprintf("unsupported construction shape: %d argument(s), want 1 or %d", len(args), fieldCount))
}
