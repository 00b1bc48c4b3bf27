package m_cart

// Key layout for cart snapshots in the local store.
// These provide type-safe key references and prevent typos.
const (
	// KeyPrefix namespaces cart snapshots within the store.
	KeyPrefix = "cart/"

	// DefaultSlot is the fixed slot id of the storefront cart.
	DefaultSlot = "viveres-cart"
)

// Key returns the store key for a cart id.
func Key(cartID string) []byte {
	return []byte(KeyPrefix + cartID)
}
