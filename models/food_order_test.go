package models

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeFoodOrder(t *testing.T) {
	tests := []struct {
		name    string
		doc     map[string]interface{}
		want    FoodOrder
		wantErr bool
	}{
		{
			name: "all fields present",
			doc:  map[string]interface{}{"name": "Pizza", "Price": "10", "Quantity": "2"},
			want: FoodOrder{ID: "abc123", Name: "Pizza", Price: "10", Quantity: "2"},
		},
		{
			name: "missing fields decode empty",
			doc:  map[string]interface{}{"name": "Soup"},
			want: FoodOrder{ID: "abc123", Name: "Soup"},
		},
		{
			name: "nil document",
			doc:  nil,
			want: FoodOrder{ID: "abc123"},
		},
		{
			name: "bytes are text",
			doc:  map[string]interface{}{"Price": []byte("7.50")},
			want: FoodOrder{ID: "abc123", Price: "7.50"},
		},
		{
			name: "unknown keys ignored",
			doc:  map[string]interface{}{"name": "Tea", "extra": 42},
			want: FoodOrder{ID: "abc123", Name: "Tea"},
		},
		{
			name:    "numeric price rejected",
			doc:     map[string]interface{}{"name": "Pizza", "Price": int64(10)},
			wantErr: true,
		},
		{
			name:    "nested quantity rejected",
			doc:     map[string]interface{}{"Quantity": map[string]interface{}{"n": "2"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeFoodOrder("abc123", tt.doc)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.Is(err, ErrMalformedDocument))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFoodOrderInputFields(t *testing.T) {
	in := FoodOrder{ID: "x", Name: "Pizza", Price: "10", Quantity: "2"}.Input()

	assert.Equal(t, FoodOrderInput{Name: "Pizza", Price: "10", Quantity: "2"}, in)
	assert.Equal(t, map[string]interface{}{
		"name":     "Pizza",
		"Price":    "10",
		"Quantity": "2",
	}, in.Fields())
}
