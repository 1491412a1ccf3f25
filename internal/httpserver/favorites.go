package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"pizzaria-storefront/internal/domain"
	favoriterepo "pizzaria-storefront/internal/repository/favorite"

	"github.com/gin-gonic/gin"
)

type favoriteRequest struct {
	CustomerID  int64   `json:"customerId" binding:"required"`
	PizzaID     int64   `json:"pizzaId" binding:"required"`
	DisplayName string  `json:"name" binding:"required"`
	UnitPrice   float64 `json:"price"`
}

func (h handlers) listFavorites(c *gin.Context) {
	customerID, err := strconv.ParseInt(c.Query("customerId"), 10, 64)
	if err != nil || customerID <= 0 {
		respondFail(c, http.StatusBadRequest, "customerId is required")
		return
	}

	favs, err := h.deps.Favorites.ListByCustomer(c.Request.Context(), customerID)
	if err != nil {
		respondFail(c, http.StatusInternalServerError, "failed to load favorites")
		return
	}
	if favs == nil {
		favs = []domain.Favorite{}
	}
	c.JSON(http.StatusOK, favs)
}

// createFavorites accepts a batch; the mobile client always sends a
// one-element array.
func (h handlers) createFavorites(c *gin.Context) {
	var reqs []favoriteRequest
	if err := c.ShouldBindJSON(&reqs); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if len(reqs) == 0 {
		respondFail(c, http.StatusBadRequest, "empty favorites payload")
		return
	}

	created := make([]domain.Favorite, 0, len(reqs))
	for _, req := range reqs {
		if req.UnitPrice <= 0 {
			respondFail(c, http.StatusBadRequest, "price must be positive")
			return
		}
		fav, err := h.deps.Favorites.Create(c.Request.Context(), favoriterepo.CreateInput{
			CustomerID:  req.CustomerID,
			PizzaID:     req.PizzaID,
			DisplayName: req.DisplayName,
			UnitPrice:   req.UnitPrice,
		})
		if err != nil {
			if errors.Is(err, domain.ErrAlreadyExists) {
				respondFail(c, http.StatusConflict, "already a favorite")
				return
			}
			respondFail(c, http.StatusInternalServerError, "failed to save favorite")
			return
		}
		created = append(created, *fav)
	}
	respondOK(c, http.StatusCreated, "favorites saved", created)
}

func (h handlers) deleteFavorite(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		respondFail(c, http.StatusBadRequest, "invalid favorite id")
		return
	}

	if err := h.deps.Favorites.DeleteByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondFail(c, http.StatusNotFound, "favorite not found")
			return
		}
		respondFail(c, http.StatusInternalServerError, "failed to delete favorite")
		return
	}
	respondOK(c, http.StatusOK, "favorite removed", nil)
}
