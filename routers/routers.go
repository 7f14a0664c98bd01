package routers

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"Storefront/config"
	"Storefront/handlers"
	"Storefront/middleware"
)

func SetupRouters(cfg config.Config, env *handlers.Env) *gin.Engine {
	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Fulfillment-Key"},
		ExposeHeaders:    []string{"Authorization"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))
	if err := router.SetTrustedProxies(nil); err != nil {
		return nil
	}

	router.OPTIONS("/*path", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	// Every route resolves the session if a token is present; gating is
	// per-group below.
	router.Use(middleware.AuthMiddleware(cfg.JWT.Secret, env.Sessions))
	{
		// Catalog pages.
		router.GET("/api/v1/products", func(c *gin.Context) {
			handlers.GetProductListHandler(c, env)
		})
		router.GET("/api/v1/products/search", func(c *gin.Context) {
			handlers.SearchProductsHandler(c, env)
		})
		router.GET("/api/v1/products/deals", func(c *gin.Context) {
			handlers.GetDealsHandler(c, env)
		})
		router.GET("/api/v1/products/brands", func(c *gin.Context) {
			handlers.GetBrandListHandler(c, env)
		})
		router.GET("/api/v1/products/filter", func(c *gin.Context) {
			handlers.FilterProductsHandler(c, env)
		})
		router.GET("/api/v1/products/:productID", func(c *gin.Context) {
			handlers.GetProductDataHandler(c, env)
		})

		// Account entry points.
		router.POST("/api/v1/register", func(c *gin.Context) {
			handlers.RegisterHandler(c, env)
		})
		router.POST("/api/v1/login", func(c *gin.Context) {
			handlers.LoginHandler(c, env)
		})
		router.POST("/api/v1/forgot-password", func(c *gin.Context) {
			handlers.ForgotPasswordHandler(c, env)
		})

		// Cart. Add and checkout record a pending action for anonymous
		// visitors instead of hard-rejecting, so login can resume them.
		router.POST("/api/v1/carts/add", func(c *gin.Context) {
			handlers.AddToCartHandler(c, env)
		})
		router.POST("/api/v1/carts/update", func(c *gin.Context) {
			handlers.UpdateCartItemQuantityHandler(c, env)
		})
		router.DELETE("/api/v1/carts/:productID", func(c *gin.Context) {
			handlers.DeleteCartItemHandler(c, env)
		})
		router.DELETE("/api/v1/carts", func(c *gin.Context) {
			handlers.ClearCartHandler(c, env)
		})
		router.GET("/api/v1/carts", func(c *gin.Context) {
			handlers.GetCartHandler(c, env)
		})
		router.GET("/api/v1/carts/count", func(c *gin.Context) {
			handlers.GetCartCountHandler(c, env)
		})
		router.POST("/api/v1/orders", func(c *gin.Context) {
			handlers.SendOrderHandler(c, env)
		})
		router.POST("/api/v1/favorites/toggle", func(c *gin.Context) {
			handlers.ToggleFavoriteHandler(c, env)
		})

		// Logged-in area: profile, history, addresses, favorites.
		loginRequired := router.Group("/api/v1/user")
		loginRequired.Use(middleware.CheckLoginMiddleware())
		{
			loginRequired.GET("/profile", func(c *gin.Context) {
				handlers.GetUserProfileHandler(c, env)
			})
			loginRequired.PATCH("/profile", func(c *gin.Context) {
				handlers.UpdateUserProfileHandler(c, env)
			})
			loginRequired.PATCH("/password", func(c *gin.Context) {
				handlers.UpdatePasswordHandler(c, env)
			})
			loginRequired.GET("/checkout/prefill", func(c *gin.Context) {
				handlers.GetCheckoutPrefillHandler(c, env)
			})
			loginRequired.GET("/orders", func(c *gin.Context) {
				handlers.GetOrderListHandler(c, env)
			})
			loginRequired.GET("/orders/:orderID", func(c *gin.Context) {
				handlers.GetOrderDataHandler(c, env)
			})
			loginRequired.GET("/addresses", func(c *gin.Context) {
				handlers.GetAddressListHandler(c, env)
			})
			loginRequired.POST("/addresses", func(c *gin.Context) {
				handlers.CreateAddressHandler(c, env)
			})
			loginRequired.PATCH("/addresses/:addressID/default", func(c *gin.Context) {
				handlers.SetDefaultAddressHandler(c, env)
			})
			loginRequired.DELETE("/addresses/:addressID", func(c *gin.Context) {
				handlers.DeleteAddressHandler(c, env)
			})
			loginRequired.GET("/favorites", func(c *gin.Context) {
				handlers.GetFavoriteListHandler(c, env)
			})
			loginRequired.DELETE("/favorites/:productID", func(c *gin.Context) {
				handlers.RemoveFavoriteHandler(c, env)
			})
			loginRequired.POST("/favorites/:productID/cart", func(c *gin.Context) {
				handlers.AddFavoriteToCartHandler(c, env)
			})
			loginRequired.POST("/logout", func(c *gin.Context) {
				handlers.LogOutHandler(c, env)
			})
		}

		// Fulfillment side: the only authority that moves order status.
		fulfillment := router.Group("/api/v1/fulfillment")
		fulfillment.Use(middleware.CheckFulfillmentKeyMiddleware(cfg.Fulfillment.Key))
		{
			fulfillment.PATCH("/orders/:orderID/status", func(c *gin.Context) {
				handlers.UpdateOrderStatusHandler(c, env)
			})
		}
	}

	return router
}
