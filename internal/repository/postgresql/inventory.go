package postgresql

import (
	"context"
	"fmt"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/inventory"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
)

type inventoryRepository struct {
	db *database.DB
}

func NewInventoryRepository(db *database.DB) inventory.Repository {
	return &inventoryRepository{db: db}
}

// AppendStock implements inventory.Repository.
func (r *inventoryRepository) AppendStock(ctx context.Context, entry inventory.StockEntry) (inventory.StockEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO stock_entries (color, quantity, note, recorded_at)
		VALUES ($1, $2, $3, NOW())
		RETURNING id, recorded_at
	`

	err := q.QueryRow(ctx, query, entry.Color, entry.Quantity, entry.Note).Scan(&entry.ID, &entry.RecordedAt)
	if err != nil {
		return inventory.StockEntry{}, fmt.Errorf("failed to append stock entry: %w", err)
	}

	return entry, nil
}

// StockLevels implements inventory.Repository. Available stock per color is
// the sum of all movement rows, negative usage entries included.
func (r *inventoryRepository) StockLevels(ctx context.Context) ([]inventory.StockLevel, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT color, COALESCE(SUM(quantity), 0)
		FROM stock_entries
		GROUP BY color
		ORDER BY color ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate stock levels: %w", err)
	}
	defer rows.Close()

	var levels []inventory.StockLevel
	for rows.Next() {
		var level inventory.StockLevel
		if err := rows.Scan(&level.Color, &level.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan stock level: %w", err)
		}
		levels = append(levels, level)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate stock levels: %w", err)
	}

	return levels, nil
}

// DeleteStockByColor implements inventory.Repository.
func (r *inventoryRepository) DeleteStockByColor(ctx context.Context, color string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM stock_entries WHERE LOWER(color) = LOWER($1)`, color); err != nil {
		return fmt.Errorf("failed to delete stock entries: %w", err)
	}

	return nil
}

// CreateColor implements inventory.Repository.
func (r *inventoryRepository) CreateColor(ctx context.Context, c inventory.Color) (inventory.Color, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO colors (name, image_url)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query, c.Name, c.ImageURL).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		return inventory.Color{}, fmt.Errorf("failed to create color: %w", err)
	}

	return c, nil
}

// ListColors implements inventory.Repository.
func (r *inventoryRepository) ListColors(ctx context.Context) ([]inventory.Color, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, image_url, created_at
		FROM colors
		ORDER BY id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list colors: %w", err)
	}
	defer rows.Close()

	var colors []inventory.Color
	for rows.Next() {
		var c inventory.Color
		if err := rows.Scan(&c.ID, &c.Name, &c.ImageURL, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan color: %w", err)
		}
		colors = append(colors, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate colors: %w", err)
	}

	return colors, nil
}

// DeleteColorByName implements inventory.Repository. Matching is
// case-insensitive, same as the spreadsheet behavior.
func (r *inventoryRepository) DeleteColorByName(ctx context.Context, name string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM colors WHERE LOWER(name) = LOWER($1)`, name)
	if err != nil {
		return fmt.Errorf("failed to delete color: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return inventory.ErrColorNotFound
	}

	return nil
}
