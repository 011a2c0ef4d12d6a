package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"yatra/cmd/fx/account_fx"
	"yatra/cmd/fx/itinerary_fx"
	"yatra/cmd/fx/planner_fx"
	"yatra/cmd/fx/store_fx"
	"yatra/internal/api/controllers"
	"yatra/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	app := fx.New(
		store_fx.Module,
		planner_fx.Module,
		itinerary_fx.Module,
		account_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Printf("Starting HTTP server on port %s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, itineraryController, accountController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	itineraryController *controllers.ItineraryController,
	accountController *controllers.AccountController) {

	api := r.Group("/api")
	api.POST("/generate-itinerary", itineraryController.GenerateItineraryHandler)
	api.POST("/save-itinerary", itineraryController.SaveItineraryHandler)
	api.GET("/itinerary/:id", itineraryController.GetItineraryHandler)
	api.GET("/itineraries", itineraryController.ListItinerariesHandler)

	accounts := r.Group("/accounts")
	accounts.POST("", accountController.CreateAccountHandler)
	accounts.GET("/:id", accountController.GetAccountHandler)
}
