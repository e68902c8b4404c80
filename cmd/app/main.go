package main

import (
	"context"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"
	"log"
	"os"
	"subly/cmd/fx/db_fx"
	"subly/cmd/fx/payment_fx"
	"subly/cmd/fx/product_fx"
	"subly/cmd/fx/subscription_fx"
	"subly/cmd/fx/user_fx"
	"subly/internal/api/controllers"
	"subly/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		product_fx.Module,
		user_fx.Module,
		payment_fx.Module,
		subscription_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Println("Starting HTTP server at ${PORT}")
				if err := engine.Run(":" + os.Getenv("PORT")); err != nil {
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
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	subscriptionController *controllers.SubscriptionController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, userController, paymentController, subscriptionController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	userController *controllers.UserController,
	paymentController *controllers.PaymentController,
	subscriptionController *controllers.SubscriptionController) {

	accountsGroup := r.Group("/accounts")
	accountsGroup.POST("/register", userController.Register)
	accountsGroup.POST("/login", userController.Login)

	paymentsGroup := r.Group("/payments")
	paymentsGroup.Use(middleware.JWTAuthMiddleware())
	paymentsGroup.POST("/checkout", paymentController.Checkout)
	paymentsGroup.POST("/refund", paymentController.Refund)

	subscriptionGroup := r.Group("/subscription")
	subscriptionGroup.Use(middleware.JWTAuthMiddleware())
	subscriptionGroup.POST("/reissue", subscriptionController.ReissueSubscription)
	subscriptionGroup.GET("/current", subscriptionController.GetCurrentSubscription)
}
