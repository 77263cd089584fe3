package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"
	"app/internal/middleware"
	"app/internal/repository"

	"github.com/labstack/echo/v4"
)

type Handlers struct {
	Auth    *handler.AuthHandler
	Product *handler.ProductHandler
	Cart    *handler.CartHandler
	Order   *handler.OrderHandler
	Contact *handler.ContactHandler
}

// 全ルートは/api配下
func RegisterRoutes(e *echo.Echo, cfg *config.Config, h Handlers, userRepo repository.UserRepository) {
	api := e.Group("/api")

	//死活確認
	api.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"message": "Asha Medical Store API",
			"status":  "running",
		})
	})

	authJWT := middleware.AuthJWT(cfg)

	h.Auth.RegisterRoutes(api, authJWT, userRepo)
	h.Product.RegisterRoutes(api)
	h.Cart.RegisterRoutes(api, authJWT, userRepo)
	h.Order.RegisterRoutes(api, authJWT, userRepo)
	h.Contact.RegisterRoutes(api)
}
