package domain

import (
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/seller-dashboard-api/pkg/utils"
)

const SaleDateLayout = "2006-01-02"

// Sale is one sales record. Several sales may share the same date.
type Sale struct {
	Date     time.Time `json:"date"`
	Quantity int       `json:"quantity"`
	Revenue  float64   `json:"revenue"`
}

type saleJSON struct {
	Date     string  `json:"date"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

func (s Sale) MarshalJSON() ([]byte, error) {
	return json.Marshal(saleJSON{
		Date:     s.Date.Format(SaleDateLayout),
		Quantity: s.Quantity,
		Revenue:  s.Revenue,
	})
}

func (s *Sale) UnmarshalJSON(data []byte) error {
	var raw saleJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if raw.Date == "" {
		return ErrMissingSaleDate
	}

	date, err := utils.ParseDate(raw.Date)
	if err != nil {
		return errors.Wrapf(err, "invalid sale date %q", raw.Date)
	}

	s.Date = *date
	s.Quantity = raw.Quantity
	s.Revenue = raw.Revenue

	return s.Validate()
}

// Validate rejects negative quantities and revenue.
func (s Sale) Validate() error {
	if s.Quantity < 0 {
		return errors.Wrapf(ErrNegativeAmount, "sale quantity %d", s.Quantity)
	}
	if s.Revenue < 0 {
		return errors.Wrapf(ErrNegativeAmount, "sale revenue %v", s.Revenue)
	}

	return nil
}
