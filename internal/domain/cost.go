package domain

import (
	"io"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	CostMonthLayout = "2006-01"
	costMonthKey    = "month"
)

type CostLine struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// CostRecord holds the expense lines of one calendar month. On the wire it is
// a flat object where every key other than "month" is an expense line, e.g.
// {"month":"2024-05","shipping":200,"marketing":50}. Line order is the key
// order of the document.
type CostRecord struct {
	Month time.Time
	Lines []CostLine
}

// ParseCostMonth accepts "2006-01" and full dates, keeping only year and month.
func ParseCostMonth(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, ErrMissingCostMonth
	}

	for _, layout := range []string{CostMonthLayout, SaleDateLayout} {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC), nil
		}
	}

	return time.Time{}, errors.Errorf("invalid cost month %q", value)
}

func (c CostRecord) Total() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Amount
	}

	return total
}

func (c CostRecord) MarshalJSON() ([]byte, error) {
	stream := json.BorrowStream(nil)
	defer json.ReturnStream(stream)

	stream.WriteObjectStart()
	stream.WriteObjectField(costMonthKey)
	stream.WriteString(c.Month.Format(CostMonthLayout))
	for _, line := range c.Lines {
		stream.WriteMore()
		stream.WriteObjectField(line.Name)
		stream.WriteFloat64(line.Amount)
	}
	stream.WriteObjectEnd()

	if stream.Error != nil {
		return nil, stream.Error
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

func (c *CostRecord) UnmarshalJSON(data []byte) error {
	var (
		month   string
		lines   []CostLine
		lineErr error
	)

	iter := jsoniter.ParseBytes(json, data)
	iter.ReadObjectCB(func(it *jsoniter.Iterator, key string) bool {
		if key == costMonthKey {
			if it.WhatIsNext() != jsoniter.StringValue {
				lineErr = errors.New("cost record month must be a string")
				return false
			}
			month = it.ReadString()
			return true
		}

		if it.WhatIsNext() != jsoniter.NumberValue {
			lineErr = errors.Errorf("cost line %q must be a number", key)
			return false
		}

		amount := it.ReadFloat64()
		if amount < 0 {
			lineErr = errors.Wrapf(ErrNegativeAmount, "cost line %q", key)
			return false
		}

		lines = append(lines, CostLine{Name: key, Amount: amount})
		return true
	})

	if lineErr != nil {
		return lineErr
	}
	if iter.Error != nil && iter.Error != io.EOF {
		return errors.Wrap(iter.Error, "decode cost record")
	}

	parsed, err := ParseCostMonth(month)
	if err != nil {
		return err
	}

	c.Month = parsed
	c.Lines = lines

	return nil
}
