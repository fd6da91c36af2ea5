package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrInvalidPrice is returned when a stored menu document carries a price
// that cannot be read as a number.
var ErrInvalidPrice = errors.New("menu item price is not a number")

// MenuItem is a menu document. Body holds the document exactly as it was
// submitted; Category and Available are projections used for filtering.
type MenuItem struct {
	Seq       uint64    `gorm:"primaryKey;autoIncrement"`
	ID        string    `gorm:"type:varchar(36);uniqueIndex;not null"`
	Category  *string   `gorm:"type:varchar(255);index"`
	Available bool      `gorm:"not null;default:false;index"`
	Body      string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"not null"`
}

// NewMenuItem builds a storable menu item from an arbitrary document.
// Identifier keys in the document are dropped; the store assigns the id.
func NewMenuItem(doc Document) (*MenuItem, error) {
	body := make(Document, len(doc))
	for k, v := range doc {
		if k == "id" || k == "_id" {
			continue
		}
		body[k] = v
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode menu document: %w", err)
	}

	item := &MenuItem{Body: string(raw)}
	if category, ok := body["category"].(string); ok {
		item.Category = &category
	}
	// only a literal boolean true counts as available
	if available, ok := body["available"].(bool); ok {
		item.Available = available
	}
	return item, nil
}

// Document returns the stored body with the store identifier under "id".
func (m *MenuItem) Document() (Document, error) {
	doc, err := decodeDocument(m.Body)
	if err != nil {
		return nil, err
	}
	doc["id"] = m.ID
	return doc, nil
}

// Pricing decodes the document once and returns its name and unit price.
// The name is nil unless it is a string. A missing price is zero.
func (m *MenuItem) Pricing() (*string, float64, error) {
	doc, err := decodeDocument(m.Body)
	if err != nil {
		return nil, 0, err
	}
	price, err := unitPrice(doc)
	if err != nil {
		return nil, 0, err
	}
	return documentName(doc), price, nil
}

func documentName(doc Document) *string {
	if name, ok := doc["name"].(string); ok {
		return &name
	}
	return nil
}

func unitPrice(doc Document) (float64, error) {
	raw, ok := doc["price"]
	if !ok {
		return 0, nil
	}

	switch v := raw.(type) {
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, v.String())
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidPrice, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrInvalidPrice, raw)
	}
}
