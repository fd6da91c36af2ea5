package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Document is an untyped JSON object as accepted from clients.
type Document map[string]interface{}

// DecodeDocument parses a JSON object, keeping numbers as json.Number so
// the stored form matches what was sent.
func DecodeDocument(data []byte) (Document, error) {
	return decodeDocument(string(data))
}

func decodeDocument(raw string) (Document, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var doc Document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	if doc == nil {
		return nil, fmt.Errorf("decode document: not a JSON object")
	}
	return doc, nil
}
