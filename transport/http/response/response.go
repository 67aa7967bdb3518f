package response

import (
	"encoding/json"
	"net/http"

	"todoapi/shared/constant"
	"todoapi/shared/failure"
	"todoapi/shared/logger"
)

// Success is the envelope head every successful JSON body carries; route payloads embed it.
type Success struct {
	Status string `json:"status"`
}

func NewSuccess() Success {
	return Success{Status: constant.ResponseStatusSuccess}
}

type FailData struct {
	Message string `json:"message"`
}

// Fail is the body of every client-visible failure.
type Fail struct {
	Status string   `json:"status"`
	Data   FailData `json:"data"`
}

// WithJSON sends payload as the whole body.
func WithJSON(writer http.ResponseWriter, code int, payload any) {
	response(writer, code, payload)
}

// WithSuccess sends a bare {"status":"success"}.
func WithSuccess(writer http.ResponseWriter, code int) {
	response(writer, code, NewSuccess())
}

// WithFail sends a fail envelope with message.
func WithFail(writer http.ResponseWriter, code int, message string) {
	response(writer, code, Fail{
		Status: constant.ResponseStatusFail,
		Data:   FailData{Message: message},
	})
}

// WithError turns err into a response. Client errors keep their message; anything else is
// logged and answered with a plain 500 so store details never reach the caller.
func WithError(writer http.ResponseWriter, err error) {
	if failure.IsClientError(err) {
		WithFail(writer, failure.GetCode(err), err.Error())

		return
	}

	logger.ErrorWithStack(err)
	http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

// WithHTML sends body as an HTML page.
func WithHTML(writer http.ResponseWriter, code int, body []byte) {
	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeHTML)
	writer.WriteHeader(code)

	if _, err := writer.Write(body); err != nil {
		logger.ErrorWithStack(err)
	}
}

// WithRequestLimitExceeded sends a default response for when the request limit is exceeded
func WithRequestLimitExceeded(writer http.ResponseWriter) {
	WithFail(writer, http.StatusTooManyRequests, constant.ResponseErrorRequestLimitExceeded)
}

// WithPreparingShutdown sends a default response for when the server is preparing to shut down
func WithPreparingShutdown(writer http.ResponseWriter) {
	WithFail(writer, http.StatusServiceUnavailable, constant.ResponseErrorPrepareShutdown)
}

// WithUnhealthy sends a default response for when the server is unhealthy
func WithUnhealthy(writer http.ResponseWriter) {
	WithFail(writer, http.StatusServiceUnavailable, constant.ResponseErrorUnhealthy)
}

func response(writer http.ResponseWriter, code int, payload any) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.ErrorWithStack(err)
		http.Error(writer, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)

		return
	}

	writer.Header().Set(constant.RequestHeaderContentType, constant.ContentTypeJSON)
	writer.WriteHeader(code)
	_, err = writer.Write(response)

	if err != nil {
		logger.ErrorWithStack(err)
	}
}
