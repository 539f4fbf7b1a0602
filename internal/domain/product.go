package domain

import "github.com/pkg/errors"

// Product is a catalog item as it comes from the record store.
// Category is a free-form key used only for grouping.
type Product struct {
	ID       string  `json:"id"`
	Category string  `json:"category"`
	Cost     float64 `json:"cost"`
	Price    float64 `json:"price"`
}

func (p *Product) UnmarshalJSON(data []byte) error {
	type product Product

	var raw product
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product(raw)
	return p.Validate()
}

// Validate rejects negative cost and price.
func (p Product) Validate() error {
	if p.Cost < 0 {
		return errors.Wrapf(ErrNegativeAmount, "product %q cost %v", p.ID, p.Cost)
	}
	if p.Price < 0 {
		return errors.Wrapf(ErrNegativeAmount, "product %q price %v", p.ID, p.Price)
	}

	return nil
}
