package inventory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/stitchlabs/workshop-backend-go/internal/domain/inventory"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/database"
	"github.com/stitchlabs/workshop-backend-go/internal/pkg/locker"
	"github.com/stitchlabs/workshop-backend-go/internal/repository/postgresql"
	"github.com/stitchlabs/workshop-backend-go/internal/service/file"
)

type InventoryService struct {
	db            *database.DB
	writeLock     *locker.WriteLock
	inventoryRepo inventory.Repository
	fileService   *file.FileService
}

func NewInventoryService(
	db *database.DB,
	writeLock *locker.WriteLock,
	inventoryRepo inventory.Repository,
	fileService *file.FileService,
) *InventoryService {
	return &InventoryService{
		db:            db,
		writeLock:     writeLock,
		inventoryRepo: inventoryRepo,
		fileService:   fileService,
	}
}

// StockLevels returns the per-color sum of all stock movements.
func (s *InventoryService) StockLevels(ctx context.Context) ([]inventory.StockLevelResponse, error) {
	levels, err := s.inventoryRepo.StockLevels(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.StockLevelResponse, 0, len(levels))
	for _, level := range levels {
		responses = append(responses, inventory.StockLevelResponse{
			Color:    level.Color,
			Quantity: level.Quantity,
		})
	}
	return responses, nil
}

// AddStock appends a positive stock movement for the color.
func (s *InventoryService) AddStock(ctx context.Context, req inventory.StockDeltaRequest) error {
	return s.appendMovement(ctx, req, false)
}

// UseStock appends a negative stock movement. Levels can go below zero; the
// ledger records what happened rather than enforcing availability.
func (s *InventoryService) UseStock(ctx context.Context, req inventory.StockDeltaRequest) error {
	return s.appendMovement(ctx, req, true)
}

func (s *InventoryService) appendMovement(ctx context.Context, req inventory.StockDeltaRequest, negate bool) error {
	if err := req.Validate(); err != nil {
		return err
	}

	qty := req.ParsedQuantity()
	if negate {
		qty = qty.Neg()
	}

	return s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			_, err := s.inventoryRepo.AppendStock(txCtx, inventory.StockEntry{
				Color:    strings.TrimSpace(req.Color),
				Quantity: qty,
				Note:     req.Notes,
			})
			return err
		})
	})
}

func (s *InventoryService) ListColors(ctx context.Context) ([]inventory.ColorResponse, error) {
	colors, err := s.inventoryRepo.ListColors(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]inventory.ColorResponse, 0, len(colors))
	for _, c := range colors {
		responses = append(responses, inventory.ColorResponse{
			Name:  c.Name,
			Image: c.ImageURL,
		})
	}
	return responses, nil
}

func (s *InventoryService) AddColor(ctx context.Context, req inventory.AddColorRequest) (inventory.ColorResponse, error) {
	if err := req.Validate(); err != nil {
		return inventory.ColorResponse{}, err
	}

	newColor := inventory.Color{Name: strings.TrimSpace(req.ColorName)}

	if req.ImageData != "" {
		url, err := s.fileService.SaveBase64Image(ctx, "colors", req.ImageData)
		if err != nil {
			return inventory.ColorResponse{}, err
		}
		newColor.ImageURL = &url
	}

	var created inventory.Color
	err := s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			var err error
			created, err = s.inventoryRepo.CreateColor(txCtx, newColor)
			return err
		})
	})
	if err != nil {
		return inventory.ColorResponse{}, err
	}

	return inventory.ColorResponse{Name: created.Name, Image: created.ImageURL}, nil
}

// DeleteColor removes the swatch and every stock movement recorded under it,
// in one transaction.
func (s *InventoryService) DeleteColor(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return inventory.ErrColorNotFound
	}

	colors, err := s.inventoryRepo.ListColors(ctx)
	if err != nil {
		return err
	}
	var imageURL *string
	for _, c := range colors {
		if strings.EqualFold(c.Name, name) {
			imageURL = c.ImageURL
			break
		}
	}

	err = s.writeLock.WithLock(ctx, func() error {
		return postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
			txCtx := postgresql.TxContext(ctx, tx)

			if err := s.inventoryRepo.DeleteColorByName(txCtx, name); err != nil {
				return err
			}
			return s.inventoryRepo.DeleteStockByColor(txCtx, name)
		})
	})
	if err != nil {
		return err
	}

	if imageURL != nil {
		if err := s.fileService.Delete(ctx, *imageURL); err != nil {
			slog.Warn("failed to delete color image", "color", name, "error", err)
		}
	}

	return nil
}
