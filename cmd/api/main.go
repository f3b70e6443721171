package main

import (
	"context"
	"fmt"
	"os"

	_ "mediamind_portal/docs"
	"mediamind_portal/internal/adapter/http/routes"
	"mediamind_portal/internal/config"
	"mediamind_portal/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
	"go.uber.org/zap"
)

// @title           MediaMind Client Portal API
// @version         1.0
// @description     Client inquiries, payment proofs, invoices and the public service catalog.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey SessionCookie
// @in header
// @name Cookie
// @description Session JWT issued at login, sent as the client_token cookie (Cookie: client_token=<jwt>).

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "[main] config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "[main] logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := routes.Run(context.Background(), cfg, log); err != nil {
		log.Error("[main] server stopped", zap.Error(err))
		_ = log.Sync()
		os.Exit(1)
	}
}
