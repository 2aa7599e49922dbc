package store

import "time"

// OrderLine is the persisted shape of one fetched order line. UnitPrice is
// kept as the exact decimal string the marketplace returned; conversion to
// a decimal value happens in the adapter layer.
type OrderLine struct {
	ID        string
	Date      time.Time
	Product   string
	Quantity  int
	UnitPrice string
}
