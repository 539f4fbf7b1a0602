package main

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS products (
		id VARCHAR(32) PRIMARY KEY,
		category TEXT NOT NULL,
		cost NUMERIC(14,4) NOT NULL CHECK (cost >= 0),
		price NUMERIC(14,4) NOT NULL CHECK (price >= 0)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id VARCHAR(32) PRIMARY KEY,
		sale_date DATE NOT NULL,
		quantity INTEGER NOT NULL CHECK (quantity >= 0),
		revenue NUMERIC(14,4) NOT NULL CHECK (revenue >= 0)
	)`,
	`CREATE INDEX IF NOT EXISTS sales_sale_date_idx ON sales (sale_date)`,
	`CREATE TABLE IF NOT EXISTS cost_records (
		month DATE PRIMARY KEY
	)`,
	// position keeps the expense line order of the source document
	`CREATE TABLE IF NOT EXISTS cost_lines (
		month DATE NOT NULL REFERENCES cost_records (month) ON DELETE CASCADE,
		position INTEGER NOT NULL,
		name TEXT NOT NULL,
		amount NUMERIC(14,4) NOT NULL CHECK (amount >= 0),
		PRIMARY KEY (month, position)
	)`,
}

var truncateStatement = `TRUNCATE TABLE cost_lines, cost_records, sales, products`
