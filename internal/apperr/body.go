package apperr

import (
	"github.com/danielgtaylor/huma/v2"
)

// ErrorBody is the `{"error": "..."}` payload every failing route returns.
type ErrorBody struct {
	status  int
	Message string `json:"error" doc:"Human readable error message"`
}

func (e *ErrorBody) Error() string {
	return e.Message
}

func (e *ErrorBody) GetStatus() int {
	return e.status
}

// Install replaces huma's RFC 7807 error model with ErrorBody.
func Install() {
	huma.NewError = func(status int, message string, errs ...error) huma.StatusError {
		if message == "" && len(errs) > 0 && errs[0] != nil {
			message = errs[0].Error()
		}
		// Schema validation details are folded into the message.
		if status == 422 && len(errs) > 0 && errs[0] != nil {
			message = message + ": " + errs[0].Error()
		}
		return &ErrorBody{status: status, Message: message}
	}
}
