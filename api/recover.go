package api

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/sirupsen/logrus"
)

// recoverer turns a panicking operation into a 500 instead of dropping the connection.
func recoverer(api huma.API, log *logrus.Logger) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		defer func() {
			if rec := recover(); rec != nil {
				operation := "unknown"
				if op := ctx.Operation(); op != nil {
					operation = op.OperationID
				}
				log.WithField("panic", rec).Errorf("Handler.%v.Panic", operation)
				_ = huma.WriteErr(api, ctx, http.StatusInternalServerError, "Erro interno no servidor")
			}
		}()
		next(ctx)
	}
}
