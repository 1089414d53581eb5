package parametric

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/gogpu/parametric/internal/logging"
	"github.com/gogpu/parametric/pattern"
)

// ErrNoLines is returned by Reload for a document without a
// parametric_lines key.
var ErrNoLines = errors.New("parametric: document has no parametric_lines")

// Document is a configuration file. Lines is nil when the document has no
// parametric_lines key.
type Document struct {
	Lines *pattern.Config `json:"parametric_lines"`
}

// LoadDocument decodes a document from r. Only malformed JSON is an
// error; malformed values inside the pattern fall back to defaults.
func LoadDocument(r io.Reader) (Document, error) {
	var doc Document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Document{}, fmt.Errorf("parametric: decode document: %w", err)
	}
	return doc, nil
}

// LoadFile reads and decodes the document at path.
func LoadFile(path string) (Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return Document{}, fmt.Errorf("parametric: open config: %w", err)
	}
	defer f.Close()

	doc, err := LoadDocument(f)
	if err != nil {
		return Document{}, fmt.Errorf("%w (%s)", err, path)
	}
	logging.Logger().Info("loaded config", "path", path)
	return doc, nil
}
