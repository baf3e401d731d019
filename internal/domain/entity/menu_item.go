// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Kind identifies one of the three menu-item variants the catalog serves.
// The three variants share the same shape and lifecycle; only their wire and
// storage representations differ.
type Kind int

const (
	KindAppetizer Kind = iota
	KindDrink
	KindMainCourse
)

// String returns the human-readable label used in user-facing messages.
func (k Kind) String() string {
	switch k {
	case KindAppetizer:
		return "appetizer"
	case KindDrink:
		return "drink"
	case KindMainCourse:
		return "main course"
	default:
		return "unknown"
	}
}

// MenuItem is a single sellable item in the catalog.
// ID is nil until the store assigns one; an item is update-eligible only once
// it carries an ID. ReceiptID is a reserved link to the order that consumed
// the item and is always nil today.
type MenuItem struct {
	ID        *int64
	Kind      Kind
	Name      string
	Price     int // whole currency units, never negative
	ReceiptID *int64
}

// Persisted reports whether the store has assigned this item an identity.
func (m MenuItem) Persisted() bool {
	return m.ID != nil
}

// MenuItemUpdate is an explicit update request: it always carries the target
// id alongside the replacement field values, so callers never mutate a
// default-constructed item to smuggle an identity in.
type MenuItemUpdate struct {
	ID        int64
	Kind      Kind
	Name      string
	Price     int
	ReceiptID *int64
}
