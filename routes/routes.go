package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ehc32/Hostal-Acuario-sub000/controllers"
	"github.com/ehc32/Hostal-Acuario-sub000/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	arc *controllers.AdminRoomController,
	rc *controllers.ReservationController,
	fc *controllers.FavoriteController,
	rvc *controllers.ReviewController,
	uc *controllers.UserController,
	cc *controllers.ConfigController,
) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Logger(), gin.Recovery())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", controllers.Register)
			auth.POST("/login", controllers.Login)
		}

		// Public browsing pages
		rooms := api.Group("/rooms")
		{
			rooms.GET("", controllers.GetRooms)
			rooms.GET("/:slug", controllers.GetRoomBySlug)
			rooms.GET("/:slug/reviews", rvc.ListForRoom)
			rooms.POST("/:slug/reviews", middleware.OptionalAuth(), rvc.Create)
		}

		reservations := api.Group("/reservations")
		{
			// Guests may book; an attached session wins over the guest payload
			reservations.POST("/create", middleware.OptionalAuth(), rc.Create)
			reservations.GET("", middleware.RequireAuth(), rc.List)
			reservations.GET("/:id", middleware.RequireAuth(), rc.Get)
			reservations.PATCH("/:id", middleware.RequireAdmin(), rc.UpdateStatus)
			reservations.DELETE("/:id", middleware.RequireAdmin(), rc.Delete)
		}

		favorites := api.Group("/favorites", middleware.RequireAuth())
		{
			favorites.GET("", fc.List)
			favorites.POST("", fc.Toggle)
		}

		admin := api.Group("/admin", middleware.RequireAdmin())
		{
			adminRooms := admin.Group("/rooms")
			{
				adminRooms.GET("", arc.List)
				adminRooms.POST("", arc.Create)
				adminRooms.POST("/import", arc.Import)
				adminRooms.GET("/:id", arc.Get)
				adminRooms.PUT("/:id", arc.Update)
				adminRooms.DELETE("/:id", arc.Delete)
			}

			adminUsers := admin.Group("/users")
			{
				adminUsers.GET("", uc.List)
				adminUsers.PUT("", uc.Update)
				adminUsers.DELETE("", uc.Delete)
			}

			adminConfig := admin.Group("/config")
			{
				adminConfig.GET("", cc.Get)
				adminConfig.PUT("", cc.Update)
			}
		}
	}

	return r
}
