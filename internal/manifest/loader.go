package manifest

import (
	"io"
	"os"
)

// ScriptsField is the top-level manifest field holding named commands.
const ScriptsField = "scripts"

// Manifest is a decoded package manifest.
type Manifest struct {
	Path string
	Root Value
}

// Load reads and decodes the manifest at path. The file is closed before
// Load returns, whatever the outcome.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}

	root, err := Decode(data)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	return &Manifest{Path: path, Root: root}, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	return io.ReadAll(f)
}

// Field returns the top-level field name. It reports false when the field is
// missing or the document is not a mapping.
func (m *Manifest) Field(name string) (Value, bool) {
	root, ok := m.Root.AsMapping()
	if !ok {
		return Value{}, false
	}
	return root.Get(name)
}

// Scripts returns the scripts table when the manifest has one that is a mapping.
func (m *Manifest) Scripts() (*Mapping, bool) {
	field, ok := m.Field(ScriptsField)
	if !ok {
		return nil, false
	}
	return field.AsMapping()
}
