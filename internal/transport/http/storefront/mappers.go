package storefront

import (
	catalogdomain "github.com/light-bringer/storefront-service/internal/app/catalog/domain"
)

// moneyFromAmount maps a raw DTO amount back to a domain Money. Amounts
// coming out of the catalog are already validated, so the error only
// guards against impossible negatives.
func moneyFromAmount(amount int64) (catalogdomain.Money, error) {
	return catalogdomain.NewMoney(amount)
}
