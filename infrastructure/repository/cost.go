package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func listCostsQuery() (string, []interface{}, error) {
	return squirrel.
		Select("cr.month, cl.name, cl.amount").
		From(costRecordsTable).
		LeftJoin("cost_lines cl ON cl.month = cr.month").
		OrderBy("cr.month ASC", "cl.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// ListCosts folds the joined rows back into one record per month, keeping
// the stored line order.
func (r *RecordRepository) ListCosts(ctx context.Context) ([]domain.CostRecord, error) {
	costsSQL, args, err := listCostsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, costsSQL, args...)
	if err != nil {
		return nil, wrapQueryError(err, "cost_records")
	}
	defer rows.Close()

	costs := make([]domain.CostRecord, 0)
	for rows.Next() {
		var (
			month  time.Time
			name   sql.NullString
			amount sql.NullFloat64
		)
		if err := rows.Scan(&month, &name, &amount); err != nil {
			return nil, wrapQueryError(err, "cost_records")
		}

		costs = appendCostRow(costs, month, name, amount)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "cost_records")
	}

	return costs, nil
}

// appendCostRow expects rows ordered by month.
func appendCostRow(costs []domain.CostRecord, month time.Time, name sql.NullString, amount sql.NullFloat64) []domain.CostRecord {
	month = time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)

	if len(costs) == 0 || !costs[len(costs)-1].Month.Equal(month) {
		costs = append(costs, domain.CostRecord{Month: month})
	}

	if name.Valid {
		last := &costs[len(costs)-1]
		last.Lines = append(last.Lines, domain.CostLine{Name: name.String, Amount: amount.Float64})
	}

	return costs
}
