package store

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/yeremiapane/food-order-app/models"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreStore keeps food orders as documents of one Firestore collection.
// Document payloads are decoded through models.DecodeFoodOrder.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

func NewFirestoreStore(client *firestore.Client, collection string) *FirestoreStore {
	return &FirestoreStore{client: client, collection: collection}
}

// OpenFirestore creates a client using application default credentials, or
// the emulator when FIRESTORE_EMULATOR_HOST is set.
func OpenFirestore(ctx context.Context, projectID, collection string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("firestore client: %w", err)
	}
	return NewFirestoreStore(client, collection), nil
}

func (s *FirestoreStore) doc(id string) (*firestore.DocumentRef, error) {
	if id == "" || strings.Contains(id, "/") {
		return nil, ErrInvalidKey
	}
	ref := s.client.Collection(s.collection).Doc(id)
	if ref == nil {
		return nil, ErrInvalidKey
	}
	return ref, nil
}

func (s *FirestoreStore) Get(ctx context.Context, id string) (models.FoodOrder, error) {
	ref, err := s.doc(id)
	if err != nil {
		return models.FoodOrder{}, err
	}

	snap, err := ref.Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return models.FoodOrder{}, ErrNotFound
		}
		return models.FoodOrder{}, fmt.Errorf("get food order %s: %w", id, err)
	}
	if !snap.Exists() {
		return models.FoodOrder{}, ErrNotFound
	}

	order, err := models.DecodeFoodOrder(ref.ID, snap.Data())
	if err != nil {
		return models.FoodOrder{}, fmt.Errorf("get food order %s: %w", id, err)
	}
	order.CreatedAt = snap.CreateTime
	order.UpdatedAt = snap.UpdateTime
	return order, nil
}

func (s *FirestoreStore) Update(ctx context.Context, id string, in models.FoodOrderInput) error {
	ref, err := s.doc(id)
	if err != nil {
		return err
	}

	_, err = ref.Update(ctx, []firestore.Update{
		{Path: models.FieldName, Value: in.Name},
		{Path: models.FieldPrice, Value: in.Price},
		{Path: models.FieldQuantity, Value: in.Quantity},
	})
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}
		return fmt.Errorf("update food order %s: %w", id, err)
	}
	return nil
}

func (s *FirestoreStore) Delete(ctx context.Context, id string) error {
	ref, err := s.doc(id)
	if err != nil {
		return err
	}

	if _, err := ref.Delete(ctx); err != nil {
		return fmt.Errorf("delete food order %s: %w", id, err)
	}
	return nil
}

// List reads the whole collection and sorts it locally; ordering server-side
// by name would drop documents that lack the field.
func (s *FirestoreStore) List(ctx context.Context) ([]models.FoodOrder, error) {
	iter := s.client.Collection(s.collection).Documents(ctx)
	defer iter.Stop()

	var orders []models.FoodOrder
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list food orders: %w", err)
		}

		order, err := models.DecodeFoodOrder(snap.Ref.ID, snap.Data())
		if err != nil {
			return nil, fmt.Errorf("list food orders: %w", err)
		}
		order.CreatedAt = snap.CreateTime
		order.UpdatedAt = snap.UpdateTime
		orders = append(orders, order)
	}

	sort.Slice(orders, func(i, j int) bool {
		if orders[i].Name != orders[j].Name {
			return orders[i].Name < orders[j].Name
		}
		return orders[i].ID < orders[j].ID
	})
	return orders, nil
}

func (s *FirestoreStore) Create(ctx context.Context, order models.FoodOrder) (models.FoodOrder, error) {
	if order.ID == "" {
		order.ID = uuid.NewString()
	}
	ref, err := s.doc(order.ID)
	if err != nil {
		return models.FoodOrder{}, err
	}

	if _, err := ref.Create(ctx, order.Input().Fields()); err != nil {
		return models.FoodOrder{}, fmt.Errorf("create food order: %w", err)
	}
	return order, nil
}

func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
