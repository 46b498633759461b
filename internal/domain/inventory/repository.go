package inventory

import "context"

type Repository interface {
	AppendStock(ctx context.Context, entry StockEntry) (StockEntry, error)
	StockLevels(ctx context.Context) ([]StockLevel, error)
	DeleteStockByColor(ctx context.Context, color string) error

	CreateColor(ctx context.Context, c Color) (Color, error)
	ListColors(ctx context.Context) ([]Color, error)
	DeleteColorByName(ctx context.Context, name string) error
}
