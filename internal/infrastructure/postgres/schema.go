package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Esquema de la base de datos. users.email y products.sku llevan constraint
// único; el de sku es global (no por usuario) y resuelve en una sola sentencia
// la carrera entre verificación e inserción.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id            TEXT PRIMARY KEY,
		name          TEXT NOT NULL,
		email         TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		created_at    TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS products (
		id           TEXT PRIMARY KEY,
		name         TEXT NOT NULL,
		category     TEXT NOT NULL,
		sku          TEXT UNIQUE NOT NULL,
		stock        INTEGER NOT NULL DEFAULT 0 CHECK (stock >= 0),
		price        NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		cost         NUMERIC(14,2) NOT NULL CHECK (cost >= 0),
		status       TEXT NOT NULL DEFAULT 'in-stock',
		last_updated TIMESTAMPTZ NOT NULL DEFAULT now(),
		supplier     TEXT NOT NULL DEFAULT '',
		user_id      TEXT NOT NULL REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS customers (
		id         TEXT PRIMARY KEY,
		name       TEXT NOT NULL,
		email      TEXT NOT NULL DEFAULT '',
		phone      TEXT NOT NULL DEFAULT '',
		address    TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id    TEXT NOT NULL REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS sales (
		id          TEXT PRIMARY KEY,
		product_id  TEXT NOT NULL,
		customer_id TEXT NOT NULL,
		quantity    INTEGER NOT NULL CHECK (quantity > 0),
		price       NUMERIC(14,2) NOT NULL CHECK (price >= 0),
		total       NUMERIC(14,2) NOT NULL CHECK (total >= 0),
		sale_date   TIMESTAMPTZ NOT NULL DEFAULT now(),
		user_id     TEXT NOT NULL REFERENCES users (id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_products_user ON products (user_id, last_updated DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_customers_user ON customers (user_id, created_at DESC)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_user ON sales (user_id, sale_date DESC)`,
}

// EnsureSchema crea las tablas e índices si no existen. Se ejecuta al arranque.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range schemaStatements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("aplicar esquema: %w", err)
		}
	}
	return nil
}
