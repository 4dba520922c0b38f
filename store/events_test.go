package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-order-app/models"
)

type published struct {
	event string
	data  interface{}
}

type capturePublisher struct {
	events []published
}

func (p *capturePublisher) Publish(event string, data interface{}) {
	p.events = append(p.events, published{event, data})
}

func TestWithEventsPublishesAfterSuccess(t *testing.T) {
	backend := setupGormStore(t)
	seedPizza(t, backend)
	pub := &capturePublisher{}
	s := WithEvents(backend, pub)
	ctx := context.Background()

	in := models.FoodOrderInput{Name: "Pizza", Price: "11", Quantity: "2"}
	require.NoError(t, s.Update(ctx, "abc123", in))
	require.NoError(t, s.Delete(ctx, "abc123"))

	require.Len(t, pub.events, 2)
	assert.Equal(t, EventFoodOrderUpdated, pub.events[0].event)
	assert.Equal(t, FoodOrderEvent{ID: "abc123", FoodOrderInput: in}, pub.events[0].data)
	assert.Equal(t, EventFoodOrderDeleted, pub.events[1].event)
	assert.Equal(t, FoodOrderEvent{ID: "abc123"}, pub.events[1].data)
}

func TestWithEventsSilentOnFailure(t *testing.T) {
	pub := &capturePublisher{}
	s := WithEvents(setupGormStore(t), pub)

	err := s.Update(context.Background(), "ghost", models.FoodOrderInput{})
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, pub.events)
}
