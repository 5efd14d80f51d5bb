package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"ideagen-backend/internal/config"
	"ideagen-backend/internal/handler"
	"ideagen-backend/internal/model"
	"ideagen-backend/internal/router"
	"ideagen-backend/internal/service"
	"ideagen-backend/internal/utils"
	"ideagen-backend/pkg/logger"
	"ideagen-backend/pkg/tracer"

	"github.com/gin-gonic/gin"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "./configs/config.yaml", "path to the YAML config file")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if err := logger.Init(cfg.Log.Level, cfg.Log.Format); err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}

	ctx := context.Background()

	shutdownTracer, err := tracer.Init(ctx, tracer.Config{
		ServiceName: cfg.Tracing.ServiceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRate:  cfg.Tracing.SampleRate,
		Enabled:     cfg.Tracing.Enabled,
	})
	if err != nil {
		logger.Fatalf("Failed to init tracer: %v", err)
	}

	httpClient := utils.NewHTTPClient(cfg.LLM.Timeout, cfg.LLM.DebugRequest)
	chatModel, err := model.NewChatModel(ctx, cfg.LLM, httpClient)
	if err != nil {
		logger.Fatalf("Failed to create chat model: %v", err)
	}

	ideaService := service.NewIdeaService(chatModel, cfg.LLM)
	ideaHandler := handler.NewIdeaHandler(ideaService, cfg.API.StrictStatus)

	gin.SetMode(gin.ReleaseMode)
	engine := router.New(cfg, ideaHandler)

	server := &http.Server{
		Addr:           fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:        engine,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}

	go func() {
		logger.Infof("listening on port %d (provider %s, model %s)", cfg.Server.Port, cfg.LLM.Provider, cfg.LLM.Model)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("server shutdown failed: %v", err)
	}
	if err := shutdownTracer(shutdownCtx); err != nil {
		logger.Errorf("tracer shutdown failed: %v", err)
	}
	logger.Info("server stopped")
}
