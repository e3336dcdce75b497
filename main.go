package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/AzharuddinMalik/MAD-ERP/config"
	"github.com/AzharuddinMalik/MAD-ERP/controllers"
	"github.com/AzharuddinMalik/MAD-ERP/middleware"
	"github.com/AzharuddinMalik/MAD-ERP/repository"
	"github.com/AzharuddinMalik/MAD-ERP/routes"
	"github.com/AzharuddinMalik/MAD-ERP/service"
	"github.com/AzharuddinMalik/MAD-ERP/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	cfg := config.LoadConfig()

	if !cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	if err := repository.InitMongoDB(cfg.MongoURI, cfg.MongoDB); err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer repository.CloseMongoDB()

	if err := repository.InitializeCollections(); err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to initialize collections")
	}
	if err := repository.InitializeAdminAccount(); err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to seed admin account")
	}

	fileStore, err := service.NewFileStore(cfg.UploadDir)
	if err != nil {
		utils.Logger.Fatal().Err(err).Msg("failed to prepare upload directory")
	}
	controllers.SetFileStore(fileStore)

	r := gin.New()
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())

	routes.RegisterRoutes(r, cfg.UploadDir)

	// Roster counts drift during the day; true them up overnight
	service.ScheduleDailyTaskAt(2, 0, 0, service.ReconcileLabourCounts)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: r,
	}

	go func() {
		utils.Logger.Info().Int("port", cfg.Port).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			utils.Logger.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	utils.Logger.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		utils.Logger.Error().Err(err).Msg("forced shutdown")
	}

	utils.Logger.Info().Msg("server stopped")
}
