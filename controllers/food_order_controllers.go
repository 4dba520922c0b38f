package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/yeremiapane/food-order-app/forms"
	"github.com/yeremiapane/food-order-app/middlewares"
	"github.com/yeremiapane/food-order-app/models"
	"github.com/yeremiapane/food-order-app/store"
)

const (
	flashCookie = "flash"
	// EditPathPrefix is where listing rows link to; the slug segment is
	// accepted and ignored by the edit routes.
	EditPathPrefix = "/FoodSingle/edit"
)

type FoodOrderController struct {
	Store        store.Store
	ListingRoute string
	Log          *logrus.Logger
}

func NewFoodOrderController(s store.Store, listingRoute string, log *logrus.Logger) *FoodOrderController {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &FoodOrderController{Store: s, ListingRoute: listingRoute, Log: log}
}

// redirectNavigator turns the form's navigation into a 303 redirect.
type redirectNavigator struct {
	c         *gin.Context
	navigated bool
}

func (n *redirectNavigator) Navigate(route string) {
	n.navigated = true
	n.c.Redirect(http.StatusSeeOther, route)
}

// flashNotifier carries the confirmation to the next page in a short-lived
// cookie. It must run before the redirect writes headers.
type flashNotifier struct {
	c *gin.Context
}

func (n flashNotifier) Notify(message string) {
	n.c.SetCookie(flashCookie, message, 60, "/", "", false, true)
}

func (fc *FoodOrderController) requestLog(c *gin.Context) *logrus.Entry {
	return fc.Log.WithField("request_id", c.GetString(middlewares.RequestIDKey))
}

func (fc *FoodOrderController) newForm(c *gin.Context, nav forms.Navigator) *forms.EditFoodOrderForm {
	return forms.NewEditFoodOrderForm(c.Param("id"), forms.Deps{
		Store:        fc.Store,
		Navigator:    nav,
		Notifier:     flashNotifier{c: c},
		ListingRoute: fc.ListingRoute,
		Logger:       fc.requestLog(c),
	})
}

func (fc *FoodOrderController) renderEdit(c *gin.Context, form *forms.EditFoodOrderForm) {
	c.HTML(http.StatusOK, "edit_food_item.html", gin.H{
		"Values": form.Values,
		"Error":  form.Error,
		"Action": c.Request.URL.Path,
	})
}

// ShowEditForm
// GET /FoodSingle/:slug/:id
func (fc *FoodOrderController) ShowEditForm(c *gin.Context) {
	form := fc.newForm(c, &redirectNavigator{c: c})
	form.Load(c.Request.Context())
	fc.renderEdit(c, form)
}

// SubmitEditForm applies the posted fields and runs the chosen action.
// POST /FoodSingle/:slug/:id
func (fc *FoodOrderController) SubmitEditForm(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		c.String(http.StatusBadRequest, "invalid form data")
		return
	}

	nav := &redirectNavigator{c: c}
	form := fc.newForm(c, nav)

	for field, values := range c.Request.PostForm {
		if field == "action" || len(values) == 0 {
			continue
		}
		if err := form.SetField(field, values[0]); err != nil {
			fc.requestLog(c).WithField("id", form.ID).Debugf("Ignoring form field: %v", err)
		}
	}

	switch c.PostForm("action") {
	case "update":
		// the form starts blank, so an absent field would be stored as ""
		for _, field := range []string{models.FieldName, models.FieldPrice, models.FieldQuantity} {
			if _, ok := c.Request.PostForm[field]; !ok {
				c.String(http.StatusBadRequest, "missing field "+field)
				return
			}
		}
		form.Update(c.Request.Context())
	case "delete":
		form.Delete(c.Request.Context())
	default:
		c.String(http.StatusBadRequest, "unknown action")
		return
	}

	if nav.navigated {
		return
	}
	fc.renderEdit(c, form)
}

// ListFoodItems renders the listing page and consumes the flash cookie.
func (fc *FoodOrderController) ListFoodItems(c *gin.Context) {
	flash, _ := c.Cookie(flashCookie)
	if flash != "" {
		c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	}

	errMsg := ""
	items, err := fc.Store.List(c.Request.Context())
	if err != nil {
		fc.requestLog(c).WithError(err).Error("Error listing food items")
		errMsg = forms.ErrFetchFailed
	}

	c.HTML(http.StatusOK, "food_items.html", gin.H{
		"Items":      items,
		"Flash":      flash,
		"Error":      errMsg,
		"EditPrefix": EditPathPrefix,
	})
}
