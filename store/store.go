// Package store holds the persistence backends for food order records.
//
// Every backend addresses a record by an opaque string key and offers
// single-document get, partial update and delete. Which backend is used is
// decided once at startup; see Open and Lazy.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/yeremiapane/food-order-app/config"
	"github.com/yeremiapane/food-order-app/database"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

var (
	ErrNotFound   = errors.New("food order not found")
	ErrInvalidKey = errors.New("invalid food order key")
)

type Store interface {
	Get(ctx context.Context, id string) (models.FoodOrder, error)
	// Update writes the three editable fields of an existing record and
	// leaves everything else untouched.
	Update(ctx context.Context, id string, in models.FoodOrderInput) error
	// Delete removes the record. Deleting a missing record is not an error.
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]models.FoodOrder, error)
	Create(ctx context.Context, order models.FoodOrder) (models.FoodOrder, error)
	Close() error
}

// Open connects the backend selected by cfg.StoreDriver.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.StoreDriver {
	case config.DriverFirestore:
		return OpenFirestore(ctx, cfg.FirestoreProjectID, cfg.Collection)
	case config.DriverSQLite, config.DriverMySQL:
		db, err := config.InitDB(cfg, utils.InfoLogger)
		if err != nil {
			return nil, err
		}
		if err := database.Migrate(db, cfg.Collection); err != nil {
			return nil, fmt.Errorf("migrate %s: %w", cfg.Collection, err)
		}
		return NewGormStore(db, cfg.Collection), nil
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}
}
