package httpserver

import (
	"log"

	accountsvc "pizzaria-storefront/internal/service/account"
	cartitemrepo "pizzaria-storefront/internal/repository/cartitem"
	favoriterepo "pizzaria-storefront/internal/repository/favorite"
	pizzarepo "pizzaria-storefront/internal/repository/pizza"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps bundles what the route handlers need.
type Deps struct {
	Pizzas    pizzarepo.Repository
	CartItems cartitemrepo.Repository
	Favorites favoriterepo.Repository
	Accounts  *accountsvc.Service
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	h := handlers{deps: deps, logger: logger}

	router.POST("/signup", h.signup)
	router.POST("/login", h.login)
	router.GET("/customers/:id", h.getCustomer)
	router.PUT("/customers/:id", h.updateCustomer)

	router.GET("/pizzas", h.listPizzas)

	router.GET("/cart-items", h.listCartItems)
	router.POST("/cart-items", h.addCartItem)
	router.DELETE("/cart-items/:id", h.deleteCartItem)
	router.DELETE("/cart-items", h.deleteCartItemsByPizza)

	router.GET("/favorites", h.listFavorites)
	router.POST("/favorites", h.createFavorites)
	router.DELETE("/favorites/:id", h.deleteFavorite)

	return router
}

type handlers struct {
	deps   Deps
	logger *log.Logger
}
