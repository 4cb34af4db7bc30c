package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/arena_errors"
)

func decodeJsonBody(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("invalid request payload, %s", err.Error())
	}
	return nil
}

// decodeOptionalJsonBody is decodeJsonBody for endpoints whose payload may
// be absent. Chunked requests report ContentLength -1, so emptiness has to
// be detected from the reader itself, not the header.
func decodeOptionalJsonBody(body io.Reader, v any) error {
	decoder := json.NewDecoder(body)
	if err := decoder.Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			// no body at all, leave v as its zero value
			return nil
		}
		return fmt.Errorf("invalid request payload, %s", err.Error())
	}
	return nil
}

func respondWithJson(w http.ResponseWriter, statusCode int, payload []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(payload)
}

func marshalAndRespond(w http.ResponseWriter, statusCode int, v any) {
	responseBytes, err := json.Marshal(v)
	if err != nil {
		log.Errorf("unable to marshal response %v, %v", v, err)
		http.Error(w, arena_errors.ErrInternal.Error(), http.StatusInternalServerError)
		return
	}
	respondWithJson(w, statusCode, responseBytes)
}

// handlerError maps the service sentinels onto http status codes. Internal
// errors are reported with a generic message so nothing leaks.
func handlerError(err error, w http.ResponseWriter) {
	switch {
	case errors.Is(err, arena_errors.ErrInvalidInput),
		errors.Is(err, arena_errors.ErrInvalidRequest),
		errors.Is(err, arena_errors.ErrInvalidState):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, arena_errors.ErrInvalidUserCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, arena_errors.ErrUnAuthorized):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, arena_errors.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, arena_errors.ErrEntityAlreadyExist),
		errors.Is(err, arena_errors.ErrUserAlreadyExists),
		errors.Is(err, arena_errors.ErrWriteConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, arena_errors.ErrRateLimited):
		http.Error(w, err.Error(), http.StatusTooManyRequests)
	default:
		http.Error(w, arena_errors.ErrInternal.Error(), http.StatusInternalServerError)
	}
}
