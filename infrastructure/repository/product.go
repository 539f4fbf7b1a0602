package repository

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/vfg2006/seller-dashboard-api/internal/domain"
)

func listProductsQuery() (string, []interface{}, error) {
	return squirrel.
		Select("p.id, p.category, p.cost, p.price").
		From(productsTable).
		OrderBy("p.id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func (r *RecordRepository) ListProducts(ctx context.Context) ([]domain.Product, error) {
	productsSQL, args, err := listProductsQuery()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(ctx, productsSQL, args...)
	if err != nil {
		return nil, wrapQueryError(err, "products")
	}
	defer rows.Close()

	products := make([]domain.Product, 0)
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(&product.ID, &product.Category, &product.Cost, &product.Price); err != nil {
			return nil, wrapQueryError(err, "products")
		}
		if err := product.Validate(); err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, wrapQueryError(err, "products")
	}

	return products, nil
}
