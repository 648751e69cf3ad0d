package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	. "ordergate/internal"
)

func main() {
	//decimals at json as string
	//https://github.com/shopspring/decimal/issues/21
	decimal.MarshalJSONWithoutQuotes = true

	cfg := NewConfig()
	z, err := zap.NewProduction()
	if err != nil {
		log.Fatal(err)
	}
	sugaredLogger := z.Sugar()

	repository, err := NewRepository(cfg.DatabaseURI, sugaredLogger)
	if err != nil {
		sugaredLogger.Fatal(err)
	}
	defer repository.Close()

	var tokenCache ITokenCache
	if cfg.RedisAddr != "" {
		tokenCache = NewRedisTokenCache(cfg.RedisAddr)
	}

	gateway := NewGateway(cfg.GatewayBaseURL, cfg.GatewayInvoicePath, cfg.GatewayUsername, cfg.GatewayPassword, sugaredLogger)
	service := NewService(repository, gateway, tokenCache, cfg.JWTSecret, sugaredLogger)
	handlers := NewHandlers(service, sugaredLogger)

	app := fiber.New()
	app.Use(logger.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	api := app.Group("/api")
	api.Post("/session", handlers.CreateSession)

	api.Use(SessionMiddleware(repository, cfg.JWTSecret, sugaredLogger))
	api.Post("/orders/place", handlers.PlaceOrder)
	api.Post("/invoices/by-customer", handlers.InvoicesByCustomer)

	go func() {
		sugaredLogger.Fatal(app.Listen(cfg.RunAddress))
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	sugaredLogger.Info("Shutting down service...")

	if err = app.Shutdown(); err != nil {
		sugaredLogger.Error(err)
	}
}
