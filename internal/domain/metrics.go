package domain

// DerivedMetric is a labelled integer percentage in [0,100].
type DerivedMetric struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type MonthlyPoint struct {
	Name    string `json:"name"`
	Month   string `json:"month"`
	Sales   int    `json:"sales"`
	Returns int    `json:"returns"`
}

type Overview struct {
	TotalProducts int     `json:"total_products"`
	TotalSales    int     `json:"total_sales"`
	Revenue       float64 `json:"revenue"`
}

type SalesSummary struct {
	TotalSales   int     `json:"total_sales"`
	TotalReturns int     `json:"total_returns"`
	ReturnRate   float64 `json:"return_rate"`
}

type TimeRange string

const (
	TimeRange3M  TimeRange = "3m"
	TimeRange6M  TimeRange = "6m"
	TimeRange12M TimeRange = "12m"
)

// Months returns how many trailing points the range keeps. Zero means all.
func (r TimeRange) Months() int {
	switch r {
	case TimeRange3M:
		return 3
	case TimeRange6M:
		return 6
	default:
		return 0
	}
}
