package database

import (
	"context"

	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/utils"
)

type FoodOrderSeeder interface {
	List(ctx context.Context) ([]models.FoodOrder, error)
	Create(ctx context.Context, order models.FoodOrder) (models.FoodOrder, error)
}

var demoFoodOrders = []models.FoodOrder{
	{Name: "Pizza", Price: "10", Quantity: "2"},
	{Name: "Nasi Goreng", Price: "15000", Quantity: "1"},
	{Name: "Iced Tea", Price: "3.50", Quantity: "4"},
}

// SeedFoodOrders inserts a few sample records into an empty collection and
// returns how many were created.
func SeedFoodOrders(ctx context.Context, s FoodOrderSeeder) (int, error) {
	existing, err := s.List(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, order := range demoFoodOrders {
		created, err := s.Create(ctx, order)
		if err != nil {
			return i, err
		}
		if utils.InfoLogger != nil {
			utils.InfoLogger.WithField("id", created.ID).Infof("Seeded food order %q", created.Name)
		}
	}
	return len(demoFoodOrders), nil
}
