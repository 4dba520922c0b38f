package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/yeremiapane/food-order-app/models"
)

// Opener connects a backend. It is called at most once per Lazy.
type Opener func() (Store, error)

// Lazy is a process-wide store handle that connects on first use. After that
// it only forwards calls; a failed open is returned from every call.
type Lazy struct {
	open   Opener
	once   sync.Once
	opened atomic.Bool
	store  Store
	err    error
}

func NewLazy(open Opener) *Lazy {
	return &Lazy{open: open}
}

func (l *Lazy) resolve() (Store, error) {
	l.once.Do(func() {
		l.store, l.err = l.open()
		if l.err != nil {
			l.err = fmt.Errorf("open food order store: %w", l.err)
		}
		l.opened.Store(true)
	})
	return l.store, l.err
}

func (l *Lazy) Get(ctx context.Context, id string) (models.FoodOrder, error) {
	s, err := l.resolve()
	if err != nil {
		return models.FoodOrder{}, err
	}
	return s.Get(ctx, id)
}

func (l *Lazy) Update(ctx context.Context, id string, in models.FoodOrderInput) error {
	s, err := l.resolve()
	if err != nil {
		return err
	}
	return s.Update(ctx, id, in)
}

func (l *Lazy) Delete(ctx context.Context, id string) error {
	s, err := l.resolve()
	if err != nil {
		return err
	}
	return s.Delete(ctx, id)
}

func (l *Lazy) List(ctx context.Context) ([]models.FoodOrder, error) {
	s, err := l.resolve()
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

func (l *Lazy) Create(ctx context.Context, order models.FoodOrder) (models.FoodOrder, error) {
	s, err := l.resolve()
	if err != nil {
		return models.FoodOrder{}, err
	}
	return s.Create(ctx, order)
}

// Close releases the backend if it was ever opened.
func (l *Lazy) Close() error {
	if !l.opened.Load() || l.store == nil {
		return nil
	}
	return l.store.Close()
}
