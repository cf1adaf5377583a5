package enums

// CartEventKind names the signals broadcast after cart mutations so that
// independent views reconcile without direct coupling.
type CartEventKind string

const (
	CartEventUpdated     CartEventKind = "cart_updated"
	CartEventItemRemoved CartEventKind = "item_removed"
	CartEventCleared     CartEventKind = "cart_cleared"
)

// String implements fmt.Stringer.
func (k CartEventKind) String() string {
	return string(k)
}
