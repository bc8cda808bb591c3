package main

import (
	"log"
	"net/http"

	"storefront-be/internal/cart"
	"storefront-be/internal/category"
	"storefront-be/internal/config"
	"storefront-be/internal/db"
	"storefront-be/internal/handlers"
	"storefront-be/internal/importer"
	"storefront-be/internal/logger"
	"storefront-be/internal/middleware"
	"storefront-be/internal/order"
	"storefront-be/internal/product"
	"storefront-be/internal/report"
	"storefront-be/internal/user"
)

func main() {
	cfg := config.LoadConfig()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	categoryRepo := category.NewRepository(database)

	cartRepo := cart.NewRepository(database)
	cartSvc := cart.NewService(cartRepo, productRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	reportRepo := report.NewRepository(database)
	reportSvc := report.NewService(reportRepo)

	importSvc := importer.NewService(database, categoryRepo)

	mux := handlers.NewRouter(
		handlers.NewProductHandler(productSvc, categoryRepo),
		handlers.NewCartHandler(cartSvc),
		handlers.NewOrderHandler(orderSvc),
		handlers.NewAuthHandler(userSvc),
		handlers.NewReportHandler(reportSvc, importSvc),
	)

	var handler http.Handler = mux
	handler = middleware.SessionMiddleware(handler)
	handler = middleware.RateLimitMiddleware(handler)
	handler = middleware.AuthMiddleware(handler)
	handler = logger.LoggingMiddleware(handler)
	handler = logger.RequestIDMiddleware(handler)

	log.Printf("storefront API running at http://localhost:%s/", cfg.AppPort)
	log.Fatal(http.ListenAndServe(":"+cfg.AppPort, handler))
}
