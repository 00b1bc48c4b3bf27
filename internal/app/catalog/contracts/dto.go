package contracts

import (
	"time"

	"github.com/light-bringer/storefront-service/internal/app/catalog/domain"
	"github.com/light-bringer/storefront-service/internal/pkg/sched"
)

// ProductDTO is a data transfer object for catalog queries.
type ProductDTO struct {
	ID                     string   `json:"id"`
	SKU                    string   `json:"sku"`
	Name                   string   `json:"name"`
	Price                  int64    `json:"price"`
	PriceFormatted         string   `json:"priceFormatted"`
	OriginalPrice          *int64   `json:"originalPrice,omitempty"`
	OriginalPriceFormatted string   `json:"originalPriceFormatted,omitempty"`
	Image                  string   `json:"image"`
	Category               string   `json:"category"`
	Rating                 float64  `json:"rating"`
	Stock                  int      `json:"stock"`
	IsOffer                bool     `json:"isOffer"`
	IsNew                  bool     `json:"isNew"`
	Tags                   []string `json:"tags"`
	DiscountPercent        int      `json:"discountPercent,omitempty"`
}

// OfferDTO is a limited-time offer derived from a discounted product,
// including its live countdown state.
type OfferDTO struct {
	ID              string         `json:"id"`
	Product         ProductDTO     `json:"product"`
	DiscountPercent int            `json:"discount"`
	EndDate         time.Time      `json:"endDate"`
	Description     string         `json:"description"`
	Countdown       sched.Remaining `json:"countdown"`
}

// NewProductDTO maps a domain product to its transfer representation.
func NewProductDTO(p *domain.Product) ProductDTO {
	dto := ProductDTO{
		ID:              p.ID(),
		SKU:             p.SKU(),
		Name:            p.Name(),
		Price:           p.Price().Amount(),
		PriceFormatted:  p.Price().Format(),
		Image:           p.Image(),
		Category:        p.Category(),
		Rating:          p.Rating(),
		Stock:           p.Stock(),
		IsOffer:         p.IsOffer(),
		IsNew:           p.IsNew(),
		Tags:            p.Tags(),
		DiscountPercent: p.DiscountPercent(),
	}
	if op := p.OriginalPrice(); op != nil {
		amount := op.Amount()
		dto.OriginalPrice = &amount
		dto.OriginalPriceFormatted = op.Format()
	}
	return dto
}
