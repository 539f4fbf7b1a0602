package repository

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func listSalesQuery() (string, []interface{}, error) {
	return squirrel.
		Select("s.sale_date, s.quantity, s.revenue").
		From(salesTable).
		OrderBy("s.sale_date ASC", "s.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *RecordRepository) ListSales(ctx context.Context) ([]domain.Sale, error) {
	salesSQL, args, err := listSalesQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, salesSQL, args...)
	if err != nil {
		return nil, wrapQueryError(err, "sales")
	}
	defer rows.Close()

	sales := make([]domain.Sale, 0)
	for rows.Next() {
		var (
			sale     domain.Sale
			saleDate time.Time
		)
		if err := rows.Scan(&saleDate, &sale.Quantity, &sale.Revenue); err != nil {
			return nil, wrapQueryError(err, "sales")
		}

		sale.Date = time.Date(saleDate.Year(), saleDate.Month(), saleDate.Day(), 0, 0, 0, 0, time.UTC)
		if err := sale.Validate(); err != nil {
			return nil, err
		}

		sales = append(sales, sale)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "sales")
	}

	return sales, nil
}
