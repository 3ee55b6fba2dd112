package router

import (
	"africahub/internal/rest"

	"github.com/labstack/echo/v4"
)

func SetupUserRoutes(api *echo.Group, handler *rest.UserHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	users := api.Group("/users")

	users.POST("/register", handler.Register)
	users.POST("/login", handler.Login)

	users.POST("/logout", handler.Logout, authRequired)
	users.GET("/:id", handler.GetUserByID, authRequired, adminOnly)
}

func SetupProductRoutes(api *echo.Group, handler *rest.ProductHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	products := api.Group("/products")

	products.GET("", handler.GetAllProducts)
	products.GET("/:id", handler.GetProductByID)
	products.POST("", handler.CreateProduct, authRequired, adminOnly)
	products.PUT("/:id", handler.UpdateProduct, authRequired, adminOnly)
	products.DELETE("/:id", handler.DeleteProduct, authRequired, adminOnly)
}

func SetupSectorRoutes(api *echo.Group, handler *rest.SectorHandler, authRequired echo.MiddlewareFunc, adminOnly echo.MiddlewareFunc) {
	sectors := api.Group("/sectors")

	sectors.GET("", handler.GetAllSectors)
	sectors.GET("/:slug", handler.GetSectorBySlug)
	sectors.POST("", handler.CreateSector, authRequired, adminOnly)
}

func SetupInteractionRoutes(api *echo.Group, handler *rest.InteractionHandler, authRequired echo.MiddlewareFunc) {
	interactions := api.Group("/interactions", authRequired)

	interactions.POST("", handler.Track)
	interactions.GET("", handler.GetRecent)
}

func SetupQuoteRoutes(api *echo.Group, handler *rest.QuoteHandler, authRequired echo.MiddlewareFunc) {
	quotes := api.Group("/quotes", authRequired)

	quotes.POST("", handler.CreateQuoteRequest)
	quotes.GET("", handler.GetMyQuotes)
}

func SetupRecommendationRoutes(api *echo.Group, handler *rest.RecommendHandler, authRequired echo.MiddlewareFunc) {
	reco := api.Group("/recommendations", authRequired)

	reco.POST("/stream", handler.StartStream)
	reco.DELETE("/stream/:user_id", handler.StopStream)
}
