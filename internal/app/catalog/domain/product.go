package domain

import "math"

// Product is the aggregate for catalog entries. Products are loaded
// wholesale from the feed and immutable afterwards, so the aggregate only
// exposes getters and derived values.
type Product struct {
	id            string
	sku           string
	name          string
	price         Money
	originalPrice *Money
	image         string
	category      string
	rating        float64
	stock         int
	isOffer       bool
	isNew         bool
	tags          []string
}

// NewProduct creates a validated Product.
func NewProduct(
	id, sku, name string,
	price Money,
	originalPrice *Money,
	image, category string,
	rating float64,
	stock int,
	isOffer, isNew bool,
	tags []string,
) (*Product, error) {
	if id == "" {
		return nil, ErrEmptyID
	}
	if sku == "" {
		return nil, ErrEmptySKU
	}
	if name == "" {
		return nil, ErrEmptyName
	}
	if category == "" {
		return nil, ErrInvalidCategory
	}
	if !price.IsPositive() {
		return nil, ErrInvalidPrice
	}
	if originalPrice != nil && !price.LessThan(*originalPrice) {
		return nil, ErrInvalidOriginalPrice
	}
	if rating < 0 || rating > 5 {
		return nil, ErrInvalidRating
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}

	p := &Product{
		id:            id,
		sku:           sku,
		name:          name,
		price:         price,
		image:         image,
		category:      category,
		rating:        rating,
		stock:         stock,
		isOffer:       isOffer,
		isNew:         isNew,
		tags:          append([]string(nil), tags...),
	}
	if originalPrice != nil {
		op := *originalPrice
		p.originalPrice = &op
	}
	return p, nil
}

// Getters
func (p *Product) ID() string       { return p.id }
func (p *Product) SKU() string      { return p.sku }
func (p *Product) Name() string     { return p.name }
func (p *Product) Price() Money     { return p.price }
func (p *Product) Image() string    { return p.image }
func (p *Product) Category() string { return p.category }
func (p *Product) Rating() float64  { return p.rating }
func (p *Product) Stock() int       { return p.stock }
func (p *Product) IsOffer() bool    { return p.isOffer }
func (p *Product) IsNew() bool      { return p.isNew }

// OriginalPrice returns the strike-through price, or nil if the product
// has none.
func (p *Product) OriginalPrice() *Money {
	if p.originalPrice == nil {
		return nil
	}
	op := *p.originalPrice
	return &op
}

// Tags returns a copy of the tag list.
func (p *Product) Tags() []string {
	return append([]string(nil), p.tags...)
}

// InStock returns true if at least one unit is available.
func (p *Product) InStock() bool {
	return p.stock > 0
}

// HasDiscount returns true if the product carries an original price to
// strike through.
func (p *Product) HasDiscount() bool {
	return p.originalPrice != nil
}

// DiscountPercent returns the rounded percentage saved against the
// original price, or 0 when there is no original price.
func (p *Product) DiscountPercent() int {
	if p.originalPrice == nil {
		return 0
	}
	orig := float64(p.originalPrice.Amount())
	cur := float64(p.price.Amount())
	return int(math.Round((orig - cur) / orig * 100))
}
