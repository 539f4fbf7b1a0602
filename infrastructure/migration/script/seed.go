package main

import (
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/vfg2006/seller-dashboard-api/infrastructure/recordfile"
	"github.com/vfg2006/seller-dashboard-api/internal/domain"
	"github.com/vfg2006/seller-dashboard-api/pkg/utils"
)

// batchSize keeps each INSERT well below the postgres parameter limit.
const batchSize = 500

type statement struct {
	sql  string
	args []interface{}
}

type idGenerator func() (string, error)

// buildSeedStatements turns a record document into INSERT statements.
// Products without an id get a generated one; cost records repeating a month
// are skipped so the first one wins.
func buildSeedStatements(doc *recordfile.Document, newID idGenerator) ([]statement, error) {
	if newID == nil {
		newID = utils.GenerateID
	}

	var statements []statement

	products := squirrel.Insert("products").Columns("id", "category", "cost", "price")
	for i, product := range doc.Products {
		id := product.ID
		if id == "" {
			generated, err := newID()
			if err != nil {
				return nil, errors.Wrap(err, "generate product id")
			}
			id = generated
		}

		products = products.Values(id, product.Category, product.Cost, product.Price)
		if (i+1)%batchSize == 0 || i == len(doc.Products)-1 {
			stmt, err := toStatement(products)
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
			products = squirrel.Insert("products").Columns("id", "category", "cost", "price")
		}
	}

	sales := squirrel.Insert("sales").Columns("id", "sale_date", "quantity", "revenue")
	for i, sale := range doc.Sales {
		id, err := newID()
		if err != nil {
			return nil, errors.Wrap(err, "generate sale id")
		}

		sales = sales.Values(id, sale.Date.Format(domain.SaleDateLayout), sale.Quantity, sale.Revenue)
		if (i+1)%batchSize == 0 || i == len(doc.Sales)-1 {
			stmt, err := toStatement(sales)
			if err != nil {
				return nil, err
			}
			statements = append(statements, stmt)
			sales = squirrel.Insert("sales").Columns("id", "sale_date", "quantity", "revenue")
		}
	}

	seen := make(map[time.Time]bool)
	for _, record := range doc.Costs {
		if seen[record.Month] {
			logrus.WithField("month", record.Month.Format(domain.CostMonthLayout)).
				Warn("migration: duplicated cost month skipped")
			continue
		}
		seen[record.Month] = true

		month := record.Month.Format(domain.SaleDateLayout)
		stmt, err := toStatement(squirrel.Insert("cost_records").Columns("month").Values(month))
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)

		if len(record.Lines) == 0 {
			continue
		}

		lines := squirrel.Insert("cost_lines").Columns("month", "position", "name", "amount")
		for position, line := range record.Lines {
			lines = lines.Values(month, position, line.Name, line.Amount)
		}
		stmt, err = toStatement(lines)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	return statements, nil
}

func toStatement(builder squirrel.InsertBuilder) (statement, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return statement{}, errors.Wrap(err, "build insert")
	}

	return statement{sql: query, args: args}, nil
}
