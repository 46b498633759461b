package worker

import (
	"context"

	"github.com/shopspring/decimal"
)

type Repository interface {
	Create(ctx context.Context, w Worker) (Worker, error)
	List(ctx context.Context) ([]Worker, error)
	GetByID(ctx context.Context, id string) (Worker, error)
	UpdateRate(ctx context.Context, id string, rate decimal.Decimal) error
	Delete(ctx context.Context, id string) error
}
