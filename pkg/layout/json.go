package layout

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/matzehuels/layoutrail/pkg/errors"
)

// =============================================================================
// Wire Format
// =============================================================================

type wireSpec struct {
	FormatID   *string     `json:"formatId"`
	WidthPx    *float64    `json:"widthPx"`
	HeightPx   *float64    `json:"heightPx"`
	TextBlocks []wireBlock `json:"textBlocks"`
}

type wireBlock struct {
	ID    *blockID  `json:"id"`
	BBox  *wireRect `json:"bbox"`
	Role  *string   `json:"role"`
	Scale *float64  `json:"scale"`
}

// blockID is a block id as written in the document. Ids are only ever
// printed, so any JSON scalar is accepted and kept as its literal text
// (3 stays "3"); objects and arrays are rejected.
type blockID string

func (id *blockID) UnmarshalJSON(data []byte) error {
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = blockID(s)
	case '{':
		return &json.UnmarshalTypeError{Value: "object", Type: reflect.TypeOf("")}
	case '[':
		return &json.UnmarshalTypeError{Value: "array", Type: reflect.TypeOf("")}
	default:
		*id = blockID(data)
	}
	return nil
}

type wireRect struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Width  *float64 `json:"width"`
	Height *float64 `json:"height"`
}

// =============================================================================
// Public API
// =============================================================================

// Read decodes a single LayoutSpec JSON document from r.
//
// The document must be one JSON object; anything after it other than
// whitespace is rejected. Syntax errors are reported as
// [errors.ErrCodeInvalidInput], well-formed JSON of the wrong shape as
// [errors.ErrCodeInvalidFormat]. Read does not close r.
func Read(r io.Reader) (*Spec, error) {
	dec := json.NewDecoder(r)

	var raw *wireSpec
	if err := dec.Decode(&raw); err != nil {
		return nil, decodeError(err)
	}
	if raw == nil {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "layout must be a JSON object, got null")
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New(errors.ErrCodeInvalidInput, "unexpected data after layout document")
	}

	return raw.toSpec(), nil
}

// ReadBytes decodes a LayoutSpec from an in-memory document.
func ReadBytes(data []byte) (*Spec, error) {
	return Read(bytes.NewReader(data))
}

// ReadFile opens the file at path and decodes it with [Read].
func ReadFile(path string) (*Spec, error) {
	info, err := os.Stat(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "stat %s", path)
	}
	if info.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is a directory", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	spec, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return spec, nil
}

// =============================================================================
// Internal Implementation
// =============================================================================

func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if stderrors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return errors.New(errors.ErrCodeInvalidFormat, "layout must be a JSON object, got %s", typeErr.Value)
		}
		return errors.New(errors.ErrCodeInvalidFormat, "%s: expected %s, got %s", typeErr.Field, typeErr.Type, typeErr.Value)
	}
	if err == io.EOF {
		return errors.New(errors.ErrCodeInvalidInput, "empty layout document")
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode layout")
}

func (w *wireSpec) toSpec() *Spec {
	s := &Spec{
		WidthPx:    w.WidthPx,
		HeightPx:   w.HeightPx,
		TextBlocks: make([]TextBlock, 0, len(w.TextBlocks)),
	}
	if w.FormatID != nil {
		s.FormatID = *w.FormatID
	}
	for _, b := range w.TextBlocks {
		s.TextBlocks = append(s.TextBlocks, b.toTextBlock())
	}
	return s
}

func (b wireBlock) toTextBlock() TextBlock {
	tb := TextBlock{
		ID:    DefaultBlockID,
		Scale: DefaultScale,
	}
	if b.ID != nil {
		tb.ID = string(*b.ID)
	}
	if b.Role != nil {
		tb.Role = Role(*b.Role)
	}
	if b.Scale != nil {
		tb.Scale = *b.Scale
	}
	if b.BBox != nil {
		tb.BBox = Rect{
			X:      valueOr(b.BBox.X, 0),
			Y:      valueOr(b.BBox.Y, 0),
			Width:  valueOr(b.BBox.Width, 0),
			Height: valueOr(b.BBox.Height, 0),
		}
	}
	return tb
}

func valueOr(v *float64, def float64) float64 {
	if v == nil {
		return def
	}
	return *v
}
