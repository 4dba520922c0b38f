// Package forms binds a single food order record to editable form state and
// performs the load, update and delete actions behind the edit page.
package forms

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/store"
)

// User-facing messages. The error slot holds one of the Err* strings.
const (
	MsgUpdated      = "Food item updated successfully"
	MsgDeleted      = "Food item deleted successfully"
	ErrFetchFailed  = "Error fetching data"
	ErrUpdateFailed = "Error updating food item"
	ErrDeleteFailed = "Error deleting food item"
)

var ErrUnknownField = errors.New("unknown food order field")

type State int

const (
	StateInitial State = iota
	StateLoading
	StateLoaded
	StateLoadError
	StateUpdating
	StateDeleting
	StateNavigated
	StateMutationError
)

func (s State) String() string {
	switch s {
	case StateInitial:
		return "initial"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateLoadError:
		return "load-error"
	case StateUpdating:
		return "updating"
	case StateDeleting:
		return "deleting"
	case StateNavigated:
		return "navigated-away"
	case StateMutationError:
		return "mutation-error"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Store is the subset of store.Store the form needs.
type Store interface {
	Get(ctx context.Context, id string) (models.FoodOrder, error)
	Update(ctx context.Context, id string, in models.FoodOrderInput) error
	Delete(ctx context.Context, id string) error
}

type Navigator interface {
	Navigate(route string)
}

type Notifier interface {
	Notify(message string)
}

type Deps struct {
	Store        Store
	Navigator    Navigator
	Notifier     Notifier
	ListingRoute string
	Logger       logrus.FieldLogger
}

// EditFoodOrderForm is the state of one editing session. It is not safe for
// concurrent use; each request builds its own.
type EditFoodOrderForm struct {
	ID     string
	Values models.FoodOrderInput
	Error  string
	State  State

	deps Deps
}

// NewEditFoodOrderForm starts a session for id, taken verbatim from the
// route. An empty id means the route is not resolved yet.
func NewEditFoodOrderForm(id string, deps Deps) *EditFoodOrderForm {
	if deps.Logger == nil {
		deps.Logger = logrus.StandardLogger()
	}
	return &EditFoodOrderForm{ID: id, State: StateInitial, deps: deps}
}

func (f *EditFoodOrderForm) log() *logrus.Entry {
	return f.deps.Logger.WithField("id", f.ID)
}

// Load reads the record once. A missing record leaves the form blank and is
// only logged.
func (f *EditFoodOrderForm) Load(ctx context.Context) {
	if f.ID == "" {
		return
	}

	f.State = StateLoading
	order, err := f.deps.Store.Get(ctx, f.ID)
	switch {
	case err == nil:
		f.Values = order.Input()
		f.State = StateLoaded
	case errors.Is(err, store.ErrNotFound):
		f.log().Info("No document found!")
		f.State = StateLoaded
	default:
		f.log().WithError(err).Error("Error fetching data")
		f.Error = ErrFetchFailed
		f.State = StateLoadError
	}
}

// SetField changes exactly one field, named as in the stored document.
func (f *EditFoodOrderForm) SetField(name, value string) error {
	switch name {
	case models.FieldName:
		f.Values.Name = value
	case models.FieldPrice:
		f.Values.Price = value
	case models.FieldQuantity:
		f.Values.Quantity = value
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, name)
	}
	return nil
}

// Update writes the current values and navigates to the listing once the
// store confirms.
func (f *EditFoodOrderForm) Update(ctx context.Context) {
	if f.ID == "" {
		return
	}

	f.State = StateUpdating
	if err := f.deps.Store.Update(ctx, f.ID, f.Values); err != nil {
		f.log().WithError(err).Error("Error updating food item")
		f.Error = ErrUpdateFailed
		f.State = StateMutationError
		return
	}

	f.done(MsgUpdated)
}

// Delete removes the record and navigates to the listing once the store
// confirms.
func (f *EditFoodOrderForm) Delete(ctx context.Context) {
	if f.ID == "" {
		return
	}

	f.State = StateDeleting
	if err := f.deps.Store.Delete(ctx, f.ID); err != nil {
		f.log().WithError(err).Error("Error deleting food item")
		f.Error = ErrDeleteFailed
		f.State = StateMutationError
		return
	}

	f.done(MsgDeleted)
}

func (f *EditFoodOrderForm) done(message string) {
	if f.deps.Notifier != nil {
		f.deps.Notifier.Notify(message)
	}
	f.State = StateNavigated
	f.deps.Navigator.Navigate(f.deps.ListingRoute)
}
