// Package input decodes determinant requests the way a form-based front end
// would hand them over: a method tag plus a grid whose cells may be numbers,
// numeric strings, empty strings or nulls. Empty and null cells become 0.
package input

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

var (
	// ErrEmptyDocument is returned when a document or inline grid has no content.
	ErrEmptyDocument = errors.New("input: empty document")

	// ErrDecode wraps YAML/JSON syntax errors and cell conversion failures.
	ErrDecode = errors.New("input: cannot decode request")
)

// Request is one determinant computation as submitted by a caller.
type Request struct {
	Method     string      `mapstructure:"method" json:"method"`
	Matrix     [][]float64 `mapstructure:"matrix" json:"matrix"`
	Legacy     bool        `mapstructure:"legacy" json:"legacy,omitempty"`
	ChioPolicy string      `mapstructure:"chio_policy" json:"chio_policy,omitempty"`
}

// Decode reads a YAML or JSON document (JSON is valid YAML) into a Request.
//
//	method: laplace
//	matrix:
//	  - [1, 2, ""]
//	  - ["3", null, 4]
//	  - [0, 1, 1]
//
// Unknown keys are rejected so typos do not silently fall back to defaults.
func Decode(r io.Reader) (Request, error) {
	var raw map[string]any
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Request{}, ErrEmptyDocument
		}
		return Request{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if len(raw) == 0 {
		return Request{}, ErrEmptyDocument
	}

	var req Request
	if err := weakDecode(raw, &req); err != nil {
		return Request{}, err
	}

	return req, nil
}

// ParseInline parses a compact grid: rows separated by ';' or newlines,
// cells by ',' or blanks. "1,2;3,4" and "1 2\n3 4" are the same 2×2 grid;
// "1,,2" has an empty middle cell (0).
func ParseInline(s string) ([][]float64, error) {
	var cells [][]any
	for _, line := range strings.FieldsFunc(s, func(r rune) bool { return r == ';' || r == '\n' }) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		var parts []string
		if strings.Contains(line, ",") {
			parts = strings.Split(line, ",")
		} else {
			parts = strings.Fields(line)
		}
		row := make([]any, len(parts))
		for j, p := range parts {
			row[j] = strings.TrimSpace(p)
		}
		cells = append(cells, row)
	}
	if len(cells) == 0 {
		return nil, ErrEmptyDocument
	}

	var grid [][]float64
	if err := weakDecode(cells, &grid); err != nil {
		return nil, err
	}

	return grid, nil
}

// weakDecode converts loosely typed YAML/JSON/string data into out.
func weakDecode(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if err := dec.Decode(in); err != nil {
		return fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return nil
}
