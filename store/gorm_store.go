package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/yeremiapane/food-order-app/models"
	"gorm.io/gorm"
)

// GormStore keeps food orders in one relational table, one row per record.
type GormStore struct {
	DB    *gorm.DB
	Table string
}

func NewGormStore(db *gorm.DB, table string) *GormStore {
	return &GormStore{DB: db, Table: table}
}

func (s *GormStore) table(ctx context.Context) *gorm.DB {
	return s.DB.WithContext(ctx).Table(s.Table)
}

func (s *GormStore) Get(ctx context.Context, id string) (models.FoodOrder, error) {
	if id == "" {
		return models.FoodOrder{}, ErrInvalidKey
	}

	var order models.FoodOrder
	if err := s.table(ctx).Where("id = ?", id).First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FoodOrder{}, ErrNotFound
		}
		return models.FoodOrder{}, fmt.Errorf("get food order %s: %w", id, err)
	}
	return order, nil
}

func (s *GormStore) Update(ctx context.Context, id string, in models.FoodOrderInput) error {
	if id == "" {
		return ErrInvalidKey
	}

	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Table(s.Table).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrNotFound
		}

		return tx.Table(s.Table).Where("id = ?", id).Updates(map[string]interface{}{
			"name":       in.Name,
			"price":      in.Price,
			"quantity":   in.Quantity,
			"updated_at": time.Now(),
		}).Error
	})
	if err != nil && !errors.Is(err, ErrNotFound) {
		return fmt.Errorf("update food order %s: %w", id, err)
	}
	return err
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrInvalidKey
	}

	if err := s.table(ctx).Where("id = ?", id).Delete(&models.FoodOrder{}).Error; err != nil {
		return fmt.Errorf("delete food order %s: %w", id, err)
	}
	return nil
}

func (s *GormStore) List(ctx context.Context) ([]models.FoodOrder, error) {
	var orders []models.FoodOrder
	if err := s.table(ctx).Order("name ASC").Order("id ASC").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list food orders: %w", err)
	}
	return orders, nil
}

func (s *GormStore) Create(ctx context.Context, order models.FoodOrder) (models.FoodOrder, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}

	if err := s.table(ctx).Create(&order).Error; err != nil {
		return models.FoodOrder{}, fmt.Errorf("create food order: %w", err)
	}
	return order, nil
}

func (s *GormStore) Close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
