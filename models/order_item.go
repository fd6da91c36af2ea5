package models

// OrderLineItem copies name and price from the menu item so later menu
// changes never alter a past order. LineTotal is price × quantity, unrounded.
type OrderLineItem struct {
	ItemID    string  `json:"item_id"`
	Name      *string `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"line_total"`
}
