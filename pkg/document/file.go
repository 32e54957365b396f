package document

import (
	"fmt"
	"os"
)

// ReadFile reads and decodes a layout document from path.
// Decode errors carry the MALFORMED_DOCUMENT code; open errors wrap the
// underlying cause with the path for context.
func ReadFile(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	doc, err := Decode(data)
	if err != nil {
		return Document{}, fmt.Errorf("decode %s: %w", path, err)
	}
	return doc, nil
}

// WriteFile serializes the document and writes it to path.
func WriteFile(doc Document, path string) error {
	data, err := doc.Marshal()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
