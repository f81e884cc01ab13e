package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"tripy/cmd/fx/booking_fx"
	"tripy/cmd/fx/controllers_fx"
	"tripy/cmd/fx/db_fx"
	"tripy/cmd/fx/nlp_fx"
	"tripy/cmd/fx/payment_fx"
	"tripy/cmd/fx/search_fx"
	"tripy/cmd/fx/trip_fx"
	"tripy/internal/api/controllers"
	"tripy/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		nlp_fx.Module,
		search_fx.Module,
		trip_fx.Module,
		booking_fx.Module,
		payment_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
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
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, tripController, bookingController, paymentController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	tripController *controllers.TripController,
	bookingController *controllers.BookingController,
	paymentController *controllers.PaymentController) {

	api := r.Group("/api")

	tripGroup := api.Group("/trip")
	tripGroup.POST("/turn", tripController.HandleTurn)
	tripGroup.POST("/select-transport", tripController.SelectTransport)
	tripGroup.POST("/select-hotel", tripController.SelectHotel)

	bookingGroup := api.Group("/bookings")
	bookingGroup.Use(middleware.JWTAuthMiddleware())
	bookingGroup.POST("", bookingController.BookTrip)
	bookingGroup.GET("", bookingController.ListBookings)
	bookingGroup.GET("/:bookingId", bookingController.GetBooking)

	paymentGroup := api.Group("/payments")
	paymentGroup.POST("/checkout", middleware.JWTAuthMiddleware(), paymentController.CreateCheckout)
	paymentGroup.POST("/webhook", paymentController.Webhook)
}
