package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/api"
	"github.com/carson-networks/household-server/internal/blob"
	"github.com/carson-networks/household-server/internal/config"
	"github.com/carson-networks/household-server/internal/handlers/v1/auth"
	"github.com/carson-networks/household-server/internal/identity"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/metrics"
	"github.com/carson-networks/household-server/internal/operator"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
	"github.com/carson-networks/household-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("household-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}
	if err := logging.ApplyLevel(logger, envConfig.LogLevel); err != nil {
		logrus.WithError(err).Fatal("logging.ApplyLevel")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	if err := dbStorage.Ping(ctx); err != nil {
		logger.WithError(err).Warn("storage.Ping: database not reachable yet")
	}

	blobs, blobDir, err := openBlobStore(ctx, envConfig)
	if err != nil {
		logrus.WithError(err).Fatal("openBlobStore")
		return
	}

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.OperatorWorkers)
	delegator.Start()
	defer delegator.Stop()

	provider := identity.NewJWTProvider(dbStorage.Identities, envConfig.JWTSecret, envConfig.JWTTTL)
	svc := service.NewService(dbStorage, delegator, provider, blobs, nil)

	httpRest := api.Rest{
		Logger:  logger,
		Port:    envConfig.Port,
		Service: svc,
		Guard:   session.NewGuard(provider, dbStorage.Profiles, envConfig.AuthTransport),
		Metrics: metrics.NewRegistry(),
		Cookies: auth.CookieSettings{
			Enabled: envConfig.AuthTransport.AcceptsCookie(),
			Secure:  envConfig.CookieSecure,
		},
		CORSOrigins: envConfig.CORSOrigins,
		BlobDir:     blobDir,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("HttpServer.Serve")
	}
	logger.Info("household-server stopped")
}

// openBlobStore returns the configured avatar store and, for the local backend, the
// directory the server exposes under /blobs/.
func openBlobStore(ctx context.Context, env *config.Config) (blob.Store, string, error) {
	if env.BlobBackend == config.BlobBackendGCS {
		store, err := blob.NewGCSStore(ctx, env.GCSBucket, env.GCSCredentialsFile)
		return store, "", err
	}
	store, err := blob.NewLocalStore(env.BlobLocalDir, env.BlobPublicURL)
	if err != nil {
		return nil, "", err
	}
	return store, store.Dir(), nil
}
