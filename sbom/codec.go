package sbom

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joshyorko/transitive-sbom/common"
	"github.com/joshyorko/transitive-sbom/pathlib"
	"gopkg.in/yaml.v2"
)

// Shape is the serialization form of an SPDX document.
type Shape string

const (
	ShapeJSON Shape = "json"
	ShapeYAML Shape = "yaml"
)

const (
	JSONMediaType = "application/spdx+json"
	YAMLMediaType = "application/spdx+yaml"
)

var (
	ErrInvalidDocument = errors.New("invalid SPDX document")
)

// ShapeOf picks the shape from the file name; anything that is not YAML is JSON.
func ShapeOf(filename string) Shape {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".yaml", ".yml":
		return ShapeYAML
	default:
		return ShapeJSON
	}
}

// GetMediaType returns the appropriate media type for the given shape.
func GetMediaType(shape Shape) string {
	switch shape {
	case ShapeYAML:
		return YAMLMediaType
	default:
		return JSONMediaType
	}
}

func ParseJSON(content []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(content)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("%w: no JSON content", ErrInvalidDocument)
	}
	document := &Document{}
	if err := json.Unmarshal(trimmed, document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return document.settle(), nil
}

func ParseYAML(content []byte) (*Document, error) {
	if len(bytes.TrimSpace(content)) == 0 {
		return nil, fmt.Errorf("%w: no YAML content", ErrInvalidDocument)
	}
	document := &Document{}
	if err := yaml.Unmarshal(content, document); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	return document.settle(), nil
}

func Parse(content []byte, shape Shape) (*Document, error) {
	if shape == ShapeYAML {
		return ParseYAML(content)
	}
	return ParseJSON(content)
}

// settle drops null entries from element lists and builds the index.
func (it *Document) settle() *Document {
	files := it.Files[:0]
	for _, file := range it.Files {
		if file != nil {
			files = append(files, file)
		}
	}
	packages := it.Packages[:0]
	for _, pkg := range it.Packages {
		if pkg != nil {
			packages = append(packages, pkg)
		}
	}
	relations := it.Relationships[:0]
	for _, relation := range it.Relationships {
		if relation != nil {
			relations = append(relations, relation)
		}
	}
	it.Files, it.Packages, it.Relationships = nilIfEmpty(files), nilIfEmpty(packages), nilIfEmpty(relations)
	it.Reindex()
	return it
}

func nilIfEmpty[T any](values []T) []T {
	if len(values) == 0 {
		return nil
	}
	return values
}

// JSON renders the document as two space indented SPDX JSON.
func (it *Document) JSON() ([]byte, error) {
	sink := bytes.NewBuffer(nil)
	encoder := json.NewEncoder(sink)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(it); err != nil {
		return nil, err
	}
	return sink.Bytes(), nil
}

func (it *Document) YAML() ([]byte, error) {
	return yaml.Marshal(it)
}

func (it *Document) Encode(shape Shape) ([]byte, error) {
	if shape == ShapeYAML {
		return it.YAML()
	}
	return it.JSON()
}

// LoadDocument reads an SPDX document in the shape its file name tells.
func LoadDocument(filename string) (*Document, error) {
	defer common.Timeline("load %s", filename)

	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read %q: %w", filename, err)
	}
	document, err := Parse(content, ShapeOf(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %q: %w", filename, err)
	}
	common.Trace("Loaded %q with %d packages and %d relationships.", filename, len(document.Packages), len(document.Relationships))
	return document, nil
}

// SaveDocument writes the document in the shape its file name tells and
// returns the written content.
func SaveDocument(document *Document, filename string) ([]byte, error) {
	content, err := document.Encode(ShapeOf(filename))
	if err != nil {
		return nil, fmt.Errorf("failed to encode %q: %w", filename, err)
	}
	if err := pathlib.EnsureParentDirectory(filename); err != nil {
		return nil, fmt.Errorf("failed to prepare %q: %w", filename, err)
	}
	if err := os.WriteFile(filename, content, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write %q: %w", filename, err)
	}
	return content, nil
}
