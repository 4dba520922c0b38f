package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/food-order-app/store"
	"github.com/yeremiapane/food-order-app/utils"
)

type FoodOrderAPIController struct {
	Store store.Store
}

func NewFoodOrderAPIController(s store.Store) *FoodOrderAPIController {
	return &FoodOrderAPIController{Store: s}
}

func storeErrorStatus(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidKey):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// GetAllFoodOrders
func (ac *FoodOrderAPIController) GetAllFoodOrders(c *gin.Context) {
	orders, err := ac.Store.List(c.Request.Context())
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of food orders", orders)
}

// GetFoodOrderByID
func (ac *FoodOrderAPIController) GetFoodOrderByID(c *gin.Context) {
	order, err := ac.Store.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food order detail", order)
}

// UpdateFoodOrder changes only the keys present in the body.
func (ac *FoodOrderAPIController) UpdateFoodOrder(c *gin.Context) {
	var body struct {
		Name     *string `json:"name"`
		Price    *string `json:"Price"`
		Quantity *string `json:"Quantity"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	id := c.Param("id")

	order, err := ac.Store.Get(ctx, id)
	if err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}

	in := order.Input()
	if body.Name != nil {
		in.Name = *body.Name
	}
	if body.Price != nil {
		in.Price = *body.Price
	}
	if body.Quantity != nil {
		in.Quantity = *body.Quantity
	}

	if err := ac.Store.Update(ctx, id, in); err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}

	order.Name, order.Price, order.Quantity = in.Name, in.Price, in.Quantity
	utils.RespondJSON(c, http.StatusOK, "Food order updated", order)
}

// DeleteFoodOrder
func (ac *FoodOrderAPIController) DeleteFoodOrder(c *gin.Context) {
	id := c.Param("id")
	if err := ac.Store.Delete(c.Request.Context(), id); err != nil {
		utils.RespondError(c, storeErrorStatus(err), err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Food order deleted", gin.H{"id": id})
}
