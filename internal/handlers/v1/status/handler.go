package status

import (
	"errors"
	"io"
	"net/http"

	"github.com/carson-networks/household-server/internal/logging"
)

// Message is the liveness text served on the root path.
const Message = "Servidor está rodando!"

type Handler struct{}

func NewHandler() Handler {
	return Handler{}
}

func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet && req.Method != http.MethodHead {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	logData.AddData("userAgent", req.UserAgent())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if req.Method == http.MethodGet {
		if _, err := io.WriteString(w, Message); err != nil {
			return err
		}
	}
	return nil
}
