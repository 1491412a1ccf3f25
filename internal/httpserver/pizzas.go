package httpserver

import (
	"net/http"

	"pizzaria-storefront/internal/domain"

	"github.com/gin-gonic/gin"
)

// listPizzas answers with the bare catalog array, like the cart list.
func (h handlers) listPizzas(c *gin.Context) {
	pizzas, err := h.deps.Pizzas.List(c.Request.Context())
	if err != nil {
		respondFail(c, http.StatusInternalServerError, "failed to load menu")
		return
	}
	if pizzas == nil {
		pizzas = []domain.Pizza{}
	}
	c.JSON(http.StatusOK, pizzas)
}
