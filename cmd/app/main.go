package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/account_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/ai_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/assistant_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/badge_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/bookmark_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/cache_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/clock_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/controllers_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/country_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/db_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/entitlement_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/event_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/mail_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/memcache_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/offline_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/payment_fx"
	"github.com/nickross327/culturecompass-app-sub000/cmd/fx/pulse_fx"
	"github.com/nickross327/culturecompass-app-sub000/internal/api/controllers"
	"github.com/nickross327/culturecompass-app-sub000/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	app := fx.New(
		db_fx.Module,
		cache_fx.Module,
		memcache_fx.Module,
		mail_fx.Module,
		ai_fx.Module,
		clock_fx.Module,

		event_fx.Module,
		entitlement_fx.Module,
		badge_fx.Module,
		account_fx.Module,
		country_fx.Module,
		bookmark_fx.Module,
		pulse_fx.Module,
		assistant_fx.Module,
		payment_fx.Module,
		offline_fx.Module,
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
	accountController *controllers.AccountController,
	countryController *controllers.CountryController,
	bookmarkController *controllers.BookmarkController,
	achievementsController *controllers.AchievementsController,
	pulseController *controllers.PulseController,
	assistantController *controllers.AssistantController,
	paymentController *controllers.PaymentController,
	offlineController *controllers.OfflineController,
	premiumChecker middleware.PremiumChecker,
) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r,
		accountController,
		countryController,
		bookmarkController,
		achievementsController,
		pulseController,
		assistantController,
		paymentController,
		offlineController,
		premiumChecker)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	countryController *controllers.CountryController,
	bookmarkController *controllers.BookmarkController,
	achievementsController *controllers.AchievementsController,
	pulseController *controllers.PulseController,
	assistantController *controllers.AssistantController,
	paymentController *controllers.PaymentController,
	offlineController *controllers.OfflineController,
	premiumChecker middleware.PremiumChecker) {

	auth := r.Group("/auth")
	auth.POST("/register", accountController.Register)
	auth.POST("/login", accountController.Login)
	auth.POST("/forgot-password", accountController.ForgotPassword)
	auth.POST("/reset-password", accountController.ResetPassword)

	// Country browsing is open; the guide endpoint decodes a token when one
	// is present so free-tier checks see the caller.
	countries := r.Group("/countries")
	countries.GET("", countryController.ListCountries)
	countries.GET("/search", countryController.SearchCountries)
	countries.GET("/:name", middleware.OptionalAuthMiddleware(), countryController.GetCountryGuide)
	countries.GET("/:name/phrases", middleware.OptionalAuthMiddleware(), countryController.ListPhrases)
	countries.GET("/:name/pulse", pulseController.ListTips)

	r.GET("/plans", paymentController.ListPlans)
	r.GET("/plans/:code", paymentController.GetPlan)
	r.POST("/payments/webhook", paymentController.Webhook)

	accounts := r.Group("/accounts", middleware.JWTAuthMiddleware())
	accounts.GET("/me", accountController.Me)
	accounts.POST("/trial", accountController.StartTrial)
	accounts.POST("/share", accountController.CompleteShare)
	accounts.DELETE("/me", accountController.RequestDeletion)

	bookmarks := r.Group("/bookmarks", middleware.JWTAuthMiddleware())
	bookmarks.POST("", bookmarkController.CreateBookmark)
	bookmarks.GET("", bookmarkController.ListBookmarks)
	bookmarks.DELETE("/:id", bookmarkController.DeleteBookmark)

	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	favorites.POST("", bookmarkController.CreateFavorite)
	favorites.GET("", bookmarkController.ListFavorites)
	favorites.DELETE("/:id", bookmarkController.DeleteFavorite)

	r.GET("/achievements", middleware.JWTAuthMiddleware(), achievementsController.GetAchievements)

	pulse := r.Group("/pulse", middleware.JWTAuthMiddleware())
	pulse.POST("/tips", pulseController.CreateTip)
	pulse.POST("/tips/:id/upvote", pulseController.UpvoteTip)
	pulse.POST("/tips/:id/report", pulseController.ReportTip)

	payments := r.Group("/payments", middleware.JWTAuthMiddleware())
	payments.POST("/checkout", paymentController.CreateCheckout)

	assistant := r.Group("/assistant",
		middleware.JWTAuthMiddleware(),
		middleware.RequirePremium(premiumChecker))
	assistant.POST("/concierge", assistantController.Concierge)
	assistant.POST("/planner", assistantController.Planner)
	assistant.POST("/translate", assistantController.Translate)
	assistant.POST("/packing", assistantController.PackingList)

	// Offline packs enforce pro-only inside the service; the JWT gate here
	// just guarantees an identity.
	offline := r.Group("/offline", middleware.JWTAuthMiddleware())
	offline.POST("/:name", offlineController.DownloadPack)
	offline.GET("/:name", offlineController.GetPack)
}
