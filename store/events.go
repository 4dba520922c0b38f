package store

import (
	"context"

	"github.com/yeremiapane/food-order-app/models"
)

const (
	EventFoodOrderUpdated = "food_order_updated"
	EventFoodOrderDeleted = "food_order_deleted"
)

type Publisher interface {
	Publish(event string, data interface{})
}

type FoodOrderEvent struct {
	ID string `json:"id"`
	models.FoodOrderInput
}

type eventStore struct {
	Store
	pub Publisher
}

// WithEvents publishes an event after every successful Update and Delete.
func WithEvents(s Store, pub Publisher) Store {
	return &eventStore{Store: s, pub: pub}
}

func (e *eventStore) Update(ctx context.Context, id string, in models.FoodOrderInput) error {
	if err := e.Store.Update(ctx, id, in); err != nil {
		return err
	}
	e.pub.Publish(EventFoodOrderUpdated, FoodOrderEvent{ID: id, FoodOrderInput: in})
	return nil
}

func (e *eventStore) Delete(ctx context.Context, id string) error {
	if err := e.Store.Delete(ctx, id); err != nil {
		return err
	}
	e.pub.Publish(EventFoodOrderDeleted, FoodOrderEvent{ID: id})
	return nil
}
