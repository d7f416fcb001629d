package response

import (
	"encoding/json"
	"errors"
	"lessons/shared/constant"
	"lessons/shared/failure"
	"lessons/shared/logger"
	"net/http"
)

type Data[T any] struct {
	Data *T `json:"data,omitempty"`
}

// Error carries only the status code and a stable message, never the cause.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type Message struct {
	Message *string `json:"message,omitempty"`
}

// WithMessage sends a response with a simple text message
func WithMessage(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Message{Message: &message})
}

// WithJSON sends a response containing a JSON object
func WithJSON(writer http.ResponseWriter, code int, jsonPayload any) {
	response(writer, code, Data[any]{Data: &jsonPayload})
}

// WithError sends a response with an error message. Anything that is not a failure.Failure
// is reported as a bare 500.
func WithError(writer http.ResponseWriter, err error) {
	code := failure.GetCode(err)

	message := http.StatusText(http.StatusInternalServerError)
	if isFailure(err) {
		message = err.Error()
	}

	response(writer, code, Error{Code: code, Message: message})
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithError(writer, failure.TooManyRequests(constant.ResponseErrorRequestLimitExceeded))
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithError(writer, failure.ServiceUnavailable(constant.ResponseErrorPrepareShutdown))
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithError(writer, failure.ServiceUnavailable(constant.ResponseErrorUnhealthy))
}

func isFailure(err error) bool {
	var fail *failure.Failure

	return errors.As(err, &fail)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
