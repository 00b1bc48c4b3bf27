package m_cart

// Data is the persisted snapshot for one cart. The layout deliberately
// mirrors the storefront's wire shape: an array of {product, quantity}
// records. There is no version tag; unreadable snapshots are discarded
// on load.
type Data struct {
	CartID string     `json:"cartId"`
	Lines  []LineData `json:"items"`
}

// LineData is one persisted cart line.
type LineData struct {
	Product  ProductData `json:"product"`
	Quantity int         `json:"quantity"`
}

// ProductData is the product snapshot captured at add time.
type ProductData struct {
	ID       string `json:"id"`
	SKU      string `json:"sku"`
	Name     string `json:"name"`
	Price    int64  `json:"price"`
	Image    string `json:"image"`
	Category string `json:"category"`
}
