package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/ehc32/Hostal-Acuario-sub000/config"
	"github.com/ehc32/Hostal-Acuario-sub000/controllers"
	"github.com/ehc32/Hostal-Acuario-sub000/routes"
	"github.com/ehc32/Hostal-Acuario-sub000/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		log.Println("warning: JWT_SECRET is not set, using the development default")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("database connection established, migrations applied")

	// Services
	roomService := services.NewRoomService(db)
	reservationService := services.NewReservationService(db)
	favoriteService := services.NewFavoriteService(db)
	reviewService := services.NewReviewService(db)
	userService := services.NewUserService(db)
	configService := services.NewConfigService(db)

	// Controllers
	adminRoomController := controllers.NewAdminRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)
	favoriteController := controllers.NewFavoriteController(favoriteService)
	reviewController := controllers.NewReviewController(reviewService, roomService)
	userController := controllers.NewUserController(userService)
	configController := controllers.NewConfigController(configService)

	router := routes.SetupRouter(
		adminRoomController,
		reservationController,
		favoriteController,
		reviewController,
		userController,
		configController,
	)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced to shutdown: %v", err)
	}

	log.Println("server stopped gracefully")
}
