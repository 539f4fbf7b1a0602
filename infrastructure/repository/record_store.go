package repository

import (
	"context"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"github.com/vfg2006/seller-dashboard-api/infrastructure/database/postgres"
)

const (
	productsTable    = "products p"
	salesTable       = "sales s"
	costRecordsTable = "cost_records cr"

	pqUndefinedTable = "42P01"
)

var ErrSchemaNotFound = errors.New("record tables not found, run the migration script")

// RecordRepository reads products, sales and costs from PostgreSQL.
type RecordRepository struct {
	conn postgres.Conn
}

func NewRecordRepository(conn postgres.Conn) *RecordRepository {
	return &RecordRepository{
		conn: conn,
	}
}

func (r *RecordRepository) Ping(ctx context.Context) error {
	return r.conn.Ping(ctx)
}

func wrapQueryError(err error, table string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		if pqErr.Code == pqUndefinedTable {
			return errors.Wrapf(ErrSchemaNotFound, "%s: %s", table, pqErr.Message)
		}
		return errors.Wrapf(err, "database error on %s (code: %s)", table, pqErr.Code)
	}

	return errors.Wrapf(err, "failed to query %s", table)
}
