package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"pizzaria-storefront/internal/domain"
	cartitemrepo "pizzaria-storefront/internal/repository/cartitem"

	"github.com/gin-gonic/gin"
)

type addCartItemRequest struct {
	CustomerID  int64   `json:"customerId" binding:"required"`
	PizzaID     int64   `json:"pizzaId" binding:"required"`
	Variant     string  `json:"variant"`
	UnitPrice   float64 `json:"price"`
	DisplayName string  `json:"name" binding:"required"`
}

// listCartItems answers with the bare item array; this endpoint predates the
// envelope and the mobile client treats any non-array body as a failure.
func (h handlers) listCartItems(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		respondFail(c, http.StatusBadRequest, "customerId is required")
		return
	}

	items, err := h.deps.CartItems.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondFail(c, http.StatusInternalServerError, "failed to load cart")
		return
	}
	if items == nil {
		items = []domain.LineItem{}
	}
	c.JSON(http.StatusOK, items)
}

func (h handlers) addCartItem(c *gin.Context) {
	var req addCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if req.UnitPrice < 0 {
		respondFail(c, http.StatusBadRequest, "price must not be negative")
		return
	}

	item, err := h.deps.CartItems.Create(c.Request.Context(), cartitemrepo.CreateInput{
		CustomerID:  req.CustomerID,
		PizzaID:     req.PizzaID,
		Variant:     req.Variant,
		UnitPrice:   req.UnitPrice,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		respondFail(c, http.StatusInternalServerError, "failed to add item")
		return
	}
	respondOK(c, http.StatusCreated, "item added", item)
}

func (h handlers) deleteCartItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid item id")
		return
	}

	if err := h.deps.CartItems.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "item not found")
			return
		}
		respondFail(c, http.StatusInternalServerError, "failed to delete item")
		return
	}
	respondOK(c, http.StatusOK, "item removed", nil)
}

func (h handlers) deleteCartItemsByPizza(c *gin.Context) {
	pizzaID, err := strconv.ParseInt(c.Query("pizzaId"), 10, 64)
	if err != nil || pizzaID <= 0 {
		respondFail(c, http.StatusBadRequest, "pizzaId is required")
		return
	}
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		respondFail(c, http.StatusBadRequest, "customerId is required")
		return
	}

	removed, err := h.deps.CartItems.DeleteByPizza(c.Request.Context(), pizzaID, customerID)
	if err != nil {
		respondFail(c, http.StatusInternalServerError, "failed to delete items")
		return
	}
	respondOK(c, http.StatusOK, "items removed", gin.H{"removed": removed})
}
