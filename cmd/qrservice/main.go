package main

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/rishimulani16/QR-Code/internal/config"
	"github.com/rishimulani16/QR-Code/internal/handler"
	"github.com/rishimulani16/QR-Code/internal/mailer"
	"github.com/rishimulani16/QR-Code/internal/middleware"
	"github.com/rishimulani16/QR-Code/internal/qrcode"
	"github.com/rishimulani16/QR-Code/internal/repository"
	"github.com/rishimulani16/QR-Code/internal/service"
)

func main() {
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	sugar := logger.Sugar()

	sugar.Infow("Starting QR code service")

	cfg, err := config.ParseFlags()
	if err != nil {
		sugar.Fatalw("Configuration error",
			"error", err.Error())
	}

	sugar.Infow("Configuration loaded",
		"server_address", cfg.ServerAddress,
		"file_storage_path", cfg.FileStoragePath,
		"page_size", cfg.PageSize,
	)

	var repo repository.Repository
	if cfg.DatabaseDSN != "" {
		pgRepo, err := repository.NewPostgresRepository(cfg.DatabaseDSN)
		if err != nil {
			sugar.Fatalw("Failed to initialize PostgreSQL repository",
				"error", err.Error())
		}
		repo = pgRepo
		sugar.Infow("Using PostgreSQL repository")
	} else {
		repo = repository.NewMemoryRepository(cfg.FileStoragePath, logger)
		sugar.Infow("Using in-memory repository",
			"file_storage_path", cfg.FileStoragePath)
	}
	defer repo.Close()

	codec := qrcode.NewCodec()
	mail := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom, logger)

	qrService := service.NewQRService(repo, codec, mail, cfg.PageSize, logger)

	auth := middleware.NewAuthMiddleware(cfg.AuthSecret, logger)
	h := handler.NewHandler(qrService, logger, auth)

	r := h.SetupRouter()

	sugar.Infow("Server starting",
		"address", cfg.ServerAddress,
	)

	if err := http.ListenAndServe(cfg.ServerAddress, r); err != nil {
		sugar.Fatalw(err.Error(), "event", "start server")
	}
}
