package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCostRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantErr   bool
		wantMonth time.Time
		wantLines []CostLine
	}{
		{
			name:      "keeps line order and skips month key",
			input:     `{"shipping":200,"month":"2024-05","marketing":50,"packaging":50}`,
			wantMonth: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			wantLines: []CostLine{
				{Name: "shipping", Amount: 200},
				{Name: "marketing", Amount: 50},
				{Name: "packaging", Amount: 50},
			},
		},
		{
			name:      "accepts full date as month",
			input:     `{"month":"2024-05-17","fba_fees":10.5}`,
			wantMonth: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
			wantLines: []CostLine{{Name: "fba_fees", Amount: 10.5}},
		},
		{
			name:      "record without lines",
			input:     `{"month":"2023-12"}`,
			wantMonth: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			name:    "non numeric line",
			input:   `{"month":"2024-05","shipping":"200"}`,
			wantErr: true,
		},
		{
			name:    "negative line",
			input:   `{"month":"2024-05","shipping":-1}`,
			wantErr: true,
		},
		{
			name:    "missing month",
			input:   `{"shipping":200}`,
			wantErr: true,
		},
		{
			name:    "invalid month",
			input:   `{"month":"May 2024","shipping":200}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var record CostRecord
			err := json.Unmarshal([]byte(tt.input), &record)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantMonth, record.Month)
			assert.Equal(t, tt.wantLines, record.Lines)
		})
	}
}

func TestCostRecord_MarshalJSON(t *testing.T) {
	record := CostRecord{
		Month: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC),
		Lines: []CostLine{
			{Name: "shipping", Amount: 200},
			{Name: "marketing", Amount: 50.5},
		},
	}

	data, err := json.Marshal(record)
	require.NoError(t, err)
	assert.Equal(t, `{"month":"2024-05","shipping":200,"marketing":50.5}`, string(data))

	var decoded CostRecord
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, record, decoded)
}

func TestCostRecord_Total(t *testing.T) {
	record := CostRecord{Lines: []CostLine{{Name: "a", Amount: 1.5}, {Name: "b", Amount: 2.5}}}
	assert.Equal(t, 4.0, record.Total())
	assert.Equal(t, 0.0, CostRecord{}.Total())
}

func TestSale_JSON(t *testing.T) {
	var sales []Sale
	err := json.Unmarshal([]byte(`[{"date":"2024-01-03","quantity":10,"revenue":99.9}]`), &sales)
	require.NoError(t, err)
	require.Len(t, sales, 1)
	assert.Equal(t, time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC), sales[0].Date)
	assert.Equal(t, 10, sales[0].Quantity)

	data, err := json.Marshal(sales[0])
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-01-03","quantity":10,"revenue":99.9}`, string(data))

	var missing Sale
	assert.ErrorContains(t, json.Unmarshal([]byte(`{"quantity":1}`), &missing), ErrMissingSaleDate.Error())
	assert.Error(t, json.Unmarshal([]byte(`{"date":"03/01/2024"}`), &missing))
}

func TestRecords_RejectNegativeAmounts(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target interface{}
	}{
		{name: "sale quantity", input: `{"date":"2024-01-03","quantity":-1,"revenue":10}`, target: &Sale{}},
		{name: "sale revenue", input: `{"date":"2024-01-03","quantity":1,"revenue":-10}`, target: &Sale{}},
		{name: "product cost", input: `{"id":"P1","category":"Books","cost":-5,"price":10}`, target: &Product{}},
		{name: "product price", input: `{"id":"P1","category":"Books","cost":5,"price":-10}`, target: &Product{}},
		{name: "cost line", input: `{"month":"2024-01","ads":-1}`, target: &CostRecord{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := json.Unmarshal([]byte(tt.input), tt.target)
			assert.ErrorContains(t, err, ErrNegativeAmount.Error())
		})
	}
}

func TestProduct_JSON(t *testing.T) {
	var products []Product
	err := json.Unmarshal([]byte(`[{"id":"P1","category":"Books","cost":0,"price":12.5}]`), &products)
	require.NoError(t, err)
	assert.Equal(t, []Product{{ID: "P1", Category: "Books", Cost: 0, Price: 12.5}}, products)

	assert.ErrorIs(t, Product{ID: "P2", Cost: -1}.Validate(), ErrNegativeAmount)
	assert.ErrorIs(t, Sale{Quantity: -3}.Validate(), ErrNegativeAmount)
	assert.NoError(t, Sale{Quantity: 0, Revenue: 0}.Validate())
}

func TestTimeRange_Months(t *testing.T) {
	assert.Equal(t, 3, TimeRange3M.Months())
	assert.Equal(t, 6, TimeRange6M.Months())
	assert.Equal(t, 0, TimeRange12M.Months())
	assert.Equal(t, 0, TimeRange("1y").Months())
}
