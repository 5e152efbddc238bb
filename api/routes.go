package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/household-server/internal/apperr"
	"github.com/carson-networks/household-server/internal/handlers/v1/auth"
	"github.com/carson-networks/household-server/internal/handlers/v1/category"
	"github.com/carson-networks/household-server/internal/handlers/v1/settings"
	"github.com/carson-networks/household-server/internal/handlers/v1/status"
	"github.com/carson-networks/household-server/internal/handlers/v1/summary"
	"github.com/carson-networks/household-server/internal/handlers/v1/transaction"
	"github.com/carson-networks/household-server/internal/logging"
	"github.com/carson-networks/household-server/internal/metrics"
	"github.com/carson-networks/household-server/internal/service"
	"github.com/carson-networks/household-server/internal/session"
)

const shutdownTimeout = 15 * time.Second

type Rest struct {
	Logger      *logrus.Logger
	Port        string
	Service     *service.Service
	Guard       *session.Guard
	Metrics     *metrics.Registry
	Cookies     auth.CookieSettings
	CORSOrigins []string
	// BlobDir is served under /blobs/ when avatars are stored on local disk.
	BlobDir string
}

// Handler builds the complete HTTP handler: huma operations, liveness, metrics and CORS.
func (r *Rest) Handler() http.Handler {
	apperr.Install()

	mux := http.NewServeMux()
	config := huma.DefaultConfig("Household API", "1.0.0")
	config.Info.Description = "Shared household budget: groups, categories, transactions and monthly summaries."
	api := humago.New(mux, config)

	api.UseMiddleware(logging.Middleware(r.Logger), r.Metrics.Middleware, recoverer(api, r.Logger))
	authenticated := huma.Middlewares{r.Guard.Middleware(api)}

	auth.NewLoginHandler(r.Service.Auth, r.Cookies).Register(api)
	auth.NewLogoutHandler(r.Cookies).Register(api)
	auth.NewSignUpHandler(r.Service.Auth).Register(api)
	auth.NewSessionHandler(authenticated).Register(api)

	transaction.NewCreateTransactionHandler(r.Service.Transaction, authenticated).Register(api)
	transaction.NewListTransactionsHandler(r.Service.Transaction, authenticated).Register(api)
	transaction.NewExpensesByCategoryHandler(r.Service.Transaction, authenticated).Register(api)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction, authenticated).Register(api)

	category.NewListCategoriesHandler(r.Service.Category, authenticated).Register(api)
	category.NewCreateCategoryHandler(r.Service.Category, authenticated).Register(api)
	category.NewDeleteCategoryHandler(r.Service.Category, authenticated).Register(api)

	summary.NewHandler(r.Service.Summary, authenticated).Register(api)

	settings.NewSettingsHandler(r.Service.Profile, authenticated).Register(api)
	settings.NewUpdateProfileHandler(r.Service.Profile, authenticated).Register(api)
	settings.NewUpdateAvatarHandler(r.Service.Profile, authenticated).Register(api)
	settings.NewRenameGroupHandler(r.Service.Profile, authenticated).Register(api)

	statusHandler := status.NewHandler()
	mux.HandleFunc("/{$}", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("GET /metrics", r.Metrics.Handler())
	if r.BlobDir != "" {
		mux.Handle("GET /blobs/", http.StripPrefix("/blobs/", http.FileServer(http.Dir(r.BlobDir))))
	}

	return cors.New(cors.Options{
		AllowedOrigins:   r.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler(mux)
}

// Serve listens until ctx is cancelled, then drains in-flight requests.
func (r *Rest) Serve(ctx context.Context) error {
	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           r.Handler(),
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		r.Logger.WithField("port", r.Port).Info("HttpServer.Serve.listening")
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	r.Logger.Info("HttpServer.Serve.shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.shutdown error")
		return err
	}
	return nil
}
