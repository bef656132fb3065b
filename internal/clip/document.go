package clip

import (
	"encoding/json"
	"fmt"
)

// Document is the persisted knowledge document: the single collection of
// all captured clips. Order in the array carries no meaning; read-time
// sorting is the caller's concern.
type Document struct {
	Clips []Clip `json:"clips"`
}

// Encode serializes the document as indented UTF-8 JSON.
func (d Document) Encode() ([]byte, error) {
	b, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("clip: encode document: %w", err)
	}
	return b, nil
}

// DecodeDocument parses a persisted knowledge document.
func DecodeDocument(b []byte) (Document, error) {
	var d Document
	if err := json.Unmarshal(b, &d); err != nil {
		return Document{}, fmt.Errorf("clip: decode document: %w", err)
	}
	return d, nil
}
