package router

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VPodolski/MakiMora/internal/cache"
	"github.com/VPodolski/MakiMora/internal/config"
	"github.com/VPodolski/MakiMora/internal/constants"
	publichandlers "github.com/VPodolski/MakiMora/internal/http/handlers/public"
	staffhandlers "github.com/VPodolski/MakiMora/internal/http/handlers/staff"
	"github.com/VPodolski/MakiMora/internal/http/response"
	"github.com/VPodolski/MakiMora/internal/logger"
	"github.com/VPodolski/MakiMora/internal/provider"
)

// SetupRouter builds the HTTP route tree.
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)
	staffHandler := staffhandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	loginRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:login", redisPrefix),
		WindowSeconds: cfg.Security.LoginRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.LoginRateLimit.MaxAttempts,
	}

	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	r.GET("/health", func(c *gin.Context) {
		response.Success(c, gin.H{"status": "ok"})
	})

	apiV1 := r.Group("/api/v1")
	{
		// Customer endpoints, no authentication.
		apiV1.POST("/orders", publicHandler.CreateOrder)
		apiV1.GET("/orders/track/:number", publicHandler.TrackOrder)
		apiV1.GET("/locations", publicHandler.ListLocations)
		apiV1.GET("/locations/:id/menu", publicHandler.GetMenu)

		auth := apiV1.Group("/auth")
		{
			auth.POST("/login", RateLimitMiddleware(redisClient, loginRule, KeyByIPAndJSONField("email")), publicHandler.Login)
		}

		// Live order feed. Token travels as a query parameter, so the
		// handler authenticates on its own.
		apiV1.GET("/ws/orders", staffHandler.SubscribeOrders)

		// Staff endpoints.
		staff := apiV1.Group("")
		staff.Use(JWTAuthMiddleware(c.AuthService, c.UserRepo))
		{
			staff.GET("/orders", staffHandler.ListOrders)
			staff.GET("/orders/:id", staffHandler.GetOrder)
			staff.PATCH("/orders/:id/status",
				RequireRoles(constants.RoleManager),
				staffHandler.UpdateOrderStatus)

			kitchen := staff.Group("")
			kitchen.Use(RequireRoles(constants.RoleSushiChef, constants.RoleManager))
			{
				kitchen.GET("/kitchen/queue", staffHandler.KitchenQueue)
				kitchen.PATCH("/orders/:id/items/:item_id/status", staffHandler.UpdateItemStatus)
			}

			packing := staff.Group("")
			packing.Use(RequireRoles(constants.RolePacker, constants.RoleManager))
			{
				packing.GET("/packing/queue", staffHandler.PackingQueue)
				packing.PATCH("/orders/:id/packed", staffHandler.MarkPacked)
			}

			courier := staff.Group("")
			courier.Use(RequireRoles(constants.RoleCourier, constants.RoleManager))
			{
				courier.GET("/courier/queue", staffHandler.CourierQueue)
				courier.PATCH("/orders/:id/assign-courier", staffHandler.AssignCourier)
				courier.PATCH("/orders/:id/delivered", staffHandler.MarkDelivered)
			}

			manager := staff.Group("")
			manager.Use(RequireRoles(constants.RoleManager))
			{
				manager.POST("/locations", staffHandler.CreateLocation)
				manager.GET("/manage/locations", staffHandler.ListLocations)
				manager.GET("/manage/locations/:id", staffHandler.GetLocation)
				manager.PUT("/locations/:id", staffHandler.UpdateLocation)
				manager.DELETE("/locations/:id", staffHandler.DeactivateLocation)

				manager.POST("/categories", staffHandler.CreateCategory)
				manager.GET("/categories", staffHandler.ListCategories)
				manager.PUT("/categories/:id", staffHandler.UpdateCategory)
				manager.DELETE("/categories/:id", staffHandler.DeleteCategory)

				manager.POST("/products", staffHandler.CreateProduct)
				manager.GET("/products", staffHandler.ListProducts)
				manager.GET("/products/:id", staffHandler.GetProduct)
				manager.PUT("/products/:id", staffHandler.UpdateProduct)
				manager.PATCH("/products/:id/stop-list", staffHandler.SetStopList)
				manager.DELETE("/products/:id", staffHandler.DeleteProduct)

				manager.POST("/inventory-supplies", staffHandler.CreateSupply)
				manager.GET("/inventory-supplies", staffHandler.ListSupplies)
				manager.GET("/inventory-supplies/:id", staffHandler.GetSupply)
				manager.PATCH("/inventory-supplies/:id/status", staffHandler.UpdateSupplyStatus)

				manager.POST("/courier-earnings/adjustments", staffHandler.RecordAdjustment)

				manager.GET("/dashboard", staffHandler.Dashboard)
			}

			hr := staff.Group("")
			hr.Use(RequireRoles(constants.RoleHR, constants.RoleManager))
			{
				hr.POST("/users", staffHandler.CreateUser)
				hr.GET("/users", staffHandler.ListUsers)
				hr.GET("/users/:id", staffHandler.GetUser)
				hr.PUT("/users/:id", staffHandler.UpdateUser)
				hr.DELETE("/users/:id", staffHandler.DeactivateUser)
			}

			earnings := staff.Group("")
			earnings.Use(RequireRoles(constants.RoleCourier, constants.RoleManager, constants.RoleHR))
			{
				earnings.GET("/courier-earnings", staffHandler.ListEarnings)
				earnings.GET("/courier-earnings/summary", staffHandler.EarningSummary)
			}
		}
	}

	return r
}
