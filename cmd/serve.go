package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shohaib/portfolio-cms/internal/api/http/router"
	httpserver "github.com/shohaib/portfolio-cms/internal/api/http/server"
	"github.com/shohaib/portfolio-cms/internal/logger"
	"github.com/shohaib/portfolio-cms/internal/model"
	"github.com/shohaib/portfolio-cms/internal/server"
	"github.com/shohaib/portfolio-cms/internal/service"
	"github.com/shohaib/portfolio-cms/internal/token"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}
}

func runServe(cmd *cobra.Command, opts *rootOptions) error {
	ctx := cmd.Context()

	cfg, err := opts.config()
	if err != nil {
		return err
	}
	log := logger.NewWithWriter(cmd.OutOrStdout(), cfg.LogLevel, cfg.LogJSON)

	if err := cfg.ValidateAuth(); err != nil {
		return fmt.Errorf("refusing to start: %w", err)
	}

	store, closeStore, err := openContentStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			log.Error("failed to close content store", "error", err)
		}
	}()

	uploads, err := openUploadStorage(ctx, cfg)
	if err != nil {
		return err
	}

	tokenManager := token.NewJWT(cfg.JWT.Secret, cfg.JWT.TTL)
	authService := service.NewAuth(cfg.Admin.Email, cfg.Admin.PasswordHash, tokenManager, log)

	contentOpts := []service.ContentOption{service.WithCategoryCreate(cfg.Content.AllowCategoryCreate)}
	if uploads.checker != nil {
		contentOpts = append(contentOpts, service.WithReferenceChecker(uploads.checker))
	}
	uploadService := service.NewUpload(uploads.storage, cfg.Upload.AllowedTypes, log)
	contentService := service.NewContent(store, uploadService, log, contentOpts...)

	handler := router.New(authService, contentService, tokenManager, router.Options{
		AllowedOrigins: cfg.HTTP.AllowedOrigins,
		MaxBodyBytes:   cfg.HTTP.MaxUploadBytes,
		UploadsPrefix:  uploads.prefix,
		Uploads:        uploads.handler,
	}, log).Register()

	srv := httpserver.NewHTTPServer(handler, cfg.HTTP.Address,
		httpserver.WithTimeouts(cfg.HTTP.ReadTimeout, cfg.HTTP.WriteTimeout))
	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	errCh := make(chan error, 1)
	go func(s model.Server) {
		log.Info("Starting server on",
			"address", s.Address(),
			"content_backend", cfg.Content.Backend,
			"upload_backend", cfg.Upload.Backend,
			"https", cfg.HTTP.EnableHTTPS)
		errCh <- s.Start(sl)
	}(srv)

	logAppVersion(cmd.OutOrStdout())

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server stopped: %w", err)
		}
		return nil
	case <-ctx.Done():
		log.Info("received interruption signal, shutting down")
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer shutdownCancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		log.Error("error during server shutdown", "error", err, "address", srv.Address())
	}
	if err := <-errCh; err != nil {
		log.Error("server stopped with error", "error", err)
	}

	log.Info("shutdown complete")
	return nil
}
