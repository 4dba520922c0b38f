package models

import (
	"errors"
	"fmt"
	"time"
)

// Document keys as they are stored in the FoodOrder collection.
const (
	FieldName     = "name"
	FieldPrice    = "Price"
	FieldQuantity = "Quantity"
)

var ErrMalformedDocument = errors.New("malformed food order document")

type FoodOrder struct {
	ID        string    `gorm:"primaryKey;type:varchar(191)" json:"id" firestore:"-"`
	Name      string    `gorm:"type:varchar(255);not null;default:''" json:"name" firestore:"name"`
	Price     string    `gorm:"type:varchar(255);not null;default:''" json:"Price" firestore:"Price"`
	Quantity  string    `gorm:"type:varchar(255);not null;default:''" json:"Quantity" firestore:"Quantity"`
	CreatedAt time.Time `json:"created_at,omitempty" firestore:"-"`
	UpdatedAt time.Time `json:"updated_at,omitempty" firestore:"-"`
}

// FoodOrderInput is the editable part of a FoodOrder. The zero value is a
// renderable form: every field is defined and empty.
type FoodOrderInput struct {
	Name     string `json:"name" form:"name"`
	Price    string `json:"Price" form:"Price"`
	Quantity string `json:"Quantity" form:"Quantity"`
}

func (o FoodOrder) Input() FoodOrderInput {
	return FoodOrderInput{Name: o.Name, Price: o.Price, Quantity: o.Quantity}
}

// Fields returns the input keyed by document field name, the shape used for
// partial updates.
func (in FoodOrderInput) Fields() map[string]interface{} {
	return map[string]interface{}{
		FieldName:     in.Name,
		FieldPrice:    in.Price,
		FieldQuantity: in.Quantity,
	}
}

// DecodeFoodOrder turns a raw document payload into a FoodOrder. Missing keys
// decode to empty strings; a key holding anything other than text is an error.
func DecodeFoodOrder(id string, doc map[string]interface{}) (FoodOrder, error) {
	order := FoodOrder{ID: id}

	targets := []struct {
		key string
		dst *string
	}{
		{FieldName, &order.Name},
		{FieldPrice, &order.Price},
		{FieldQuantity, &order.Quantity},
	}

	for _, t := range targets {
		raw, ok := doc[t.key]
		if !ok || raw == nil {
			continue
		}
		switch v := raw.(type) {
		case string:
			*t.dst = v
		case []byte:
			*t.dst = string(v)
		default:
			return FoodOrder{}, fmt.Errorf("%w: field %q has type %T", ErrMalformedDocument, t.key, raw)
		}
	}

	return order, nil
}
