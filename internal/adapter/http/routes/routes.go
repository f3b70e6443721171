package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "mediamind_portal/docs" // registers the swagger spec
	"mediamind_portal/internal/adapter/http/handlers"
	"mediamind_portal/internal/adapter/http/middleware"
	"mediamind_portal/internal/adapter/persistence/catalog"
	"mediamind_portal/internal/adapter/persistence/repository"
	"mediamind_portal/internal/config"
	"mediamind_portal/internal/domain/invoice"
	"mediamind_portal/internal/infrastructure/auth"
	"mediamind_portal/internal/infrastructure/database"
	"mediamind_portal/internal/infrastructure/pdf"
	"mediamind_portal/internal/infrastructure/storage"
	"mediamind_portal/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Inquiry      *handlers.InquiryHandler
	PaymentProof *handlers.PaymentProofHandler
	Invoice      *handlers.InvoiceHandler
	Catalog      *handlers.CatalogHandler
}

// Run wires the application and serves HTTP until ctx is cancelled or the
// process receives SIGINT/SIGTERM.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	gin.SetMode(cfg.Server.GinMode)

	h, verifier, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}
	router := NewRouter(logger, verifier, cfg.Auth.CookieName, h)

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(cfg.Server.Port),
		Handler:           router,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("[http] listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("[http] shutting down", zap.Duration("timeout", cfg.Server.ShutdownTimeout))
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// NewRouter mounts the public and session-protected routes under /v1.
func NewRouter(logger *zap.Logger, verifier middleware.SessionVerifier, cookieName string, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(logger), middleware.Recovery(logger))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, h.Catalog)

	authed := v1.Group("", middleware.SessionAuth(verifier, cookieName))
	addInquiryRoutes(authed, h.Inquiry, h.PaymentProof, h.Invoice)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, middleware.SessionVerifier, error) {
	verifier, err := auth.NewSessionVerifier(cfg.Auth.JWTSecret, cfg.Auth.Leeway, logger)
	if err != nil {
		return Handlers{}, nil, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("dynamodb: %w", err)
	}
	awsCfg, err := database.NewAWSConfig(ctx, cfg.Assets.Region, cfg.DynamoDB.AccessKeyID, cfg.DynamoDB.SecretAccessKey)
	if err != nil {
		return Handlers{}, nil, fmt.Errorf("asset host: %w", err)
	}
	assetHost := storage.NewS3AssetHost(storage.NewS3Client(awsCfg, cfg.Assets), cfg.Assets, logger)

	catalogRepo, err := catalog.NewEmbeddedCatalogRepository()
	if err != nil {
		return Handlers{}, nil, err
	}
	inquiryRepo := repository.NewInquiryDynamoRepository(ddb, cfg.DynamoDB.InquiriesTable, cfg.DynamoDB.ClientIDIndex)

	renderer := invoice.NewRenderer(invoice.Branding{
		BrandName:   cfg.Invoice.BrandName,
		ThankYou:    cfg.Invoice.ThankYou,
		ContactLine: cfg.Invoice.ContactLine,
	})

	inquiryUseCase := usecase.NewInquiryUseCase(inquiryRepo, catalogRepo, logger)
	proofUseCase := usecase.NewPaymentProofUseCase(inquiryRepo, assetHost, cfg.Assets.KeyPrefix, cfg.Assets.MaxUploadBytes, logger)
	invoiceUseCase := usecase.NewInvoiceUseCase(inquiryRepo, renderer, pdf.NewFPDFWriter(), logger)
	catalogUseCase := usecase.NewCatalogUseCase(catalogRepo)

	return Handlers{
		Inquiry:      handlers.NewInquiryHandler(inquiryUseCase, logger),
		PaymentProof: handlers.NewPaymentProofHandler(proofUseCase, cfg.Assets.MaxUploadBytes, logger),
		Invoice:      handlers.NewInvoiceHandler(invoiceUseCase, logger),
		Catalog:      handlers.NewCatalogHandler(catalogUseCase, cfg.Site, logger),
	}, verifier, nil
}
