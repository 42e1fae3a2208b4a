package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jcastellr/bizpulse-api/internal/application/usecase"
	"github.com/jcastellr/bizpulse-api/internal/domain/repository"
)

// TxRunner ejecuta una función con repos atados a una misma transacción.
// Commit solo si fn devuelve nil; cualquier error hace rollback completo.
type TxRunner struct {
	pool *pgxpool.Pool
}

// NewTxRunner crea el ejecutor de transacciones de ventas.
func NewTxRunner(pool *pgxpool.Pool) usecase.SaleTxRunner {
	return &TxRunner{pool: pool}
}

func (r *TxRunner) Run(ctx context.Context, fn func(products repository.ProductRepository, sales repository.SaleRepository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("iniciar transacción: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(NewProductRepository(tx), NewSaleRepository(tx)); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("confirmar transacción: %w", err)
	}
	return nil
}
