package store

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yeremiapane/food-order-app/models"
)

// These run against the Firestore emulator only.
func setupFirestoreStore(t *testing.T) *FirestoreStore {
	t.Helper()
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	s, err := OpenFirestore(context.Background(), "demo-food-order", "FoodOrder-"+uuid.NewString())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestFirestoreStoreRoundTrip(t *testing.T) {
	s := setupFirestoreStore(t)
	ctx := context.Background()
	seedPizza(t, s)

	got, err := s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, models.FoodOrderInput{Name: "Pizza", Price: "10", Quantity: "2"}, got.Input())

	in := got.Input()
	in.Quantity = "5"
	require.NoError(t, s.Update(ctx, "abc123", in))

	got, err = s.Get(ctx, "abc123")
	require.NoError(t, err)
	assert.Equal(t, "Pizza", got.Name)
	assert.Equal(t, "10", got.Price)
	assert.Equal(t, "5", got.Quantity)

	orders, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)

	require.NoError(t, s.Delete(ctx, "abc123"))
	_, err = s.Get(ctx, "abc123")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestFirestoreStoreMissingAndInvalid(t *testing.T) {
	s := setupFirestoreStore(t)
	ctx := context.Background()

	err := s.Update(ctx, "ghost", models.FoodOrderInput{Name: "x"})
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = s.Get(ctx, "a/b")
	assert.ErrorIs(t, err, ErrInvalidKey)

	assert.ErrorIs(t, s.Delete(ctx, ""), ErrInvalidKey)
}
