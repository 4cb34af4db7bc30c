package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/tesseract-club/arena/internal/service/contest_service"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
)

// HandlerGetPublicContests is the unauthenticated discovery feed.
func (a *Api) HandlerGetPublicContests(w http.ResponseWriter, r *http.Request) {
	request := contest_service.GetContestsRequest{
		Status:   r.URL.Query().Get("status"),
		Page:     queryInt(r, "page", defaultPage),
		PageSize: queryInt(r, "limit", defaultPageSize),
	}

	contests, err := a.ContestServiceConfig.ListPublicContests(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, contests)
}

func (a *Api) HandlerGetContest(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contest, serviceErr := a.ContestServiceConfig.GetContestById(r.Context(), contestId)
	if serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, contest)
}

func (a *Api) HandlerGetMyContests(w http.ResponseWriter, r *http.Request) {
	contests, err := a.ContestServiceConfig.ListMyContests(r.Context())
	if err != nil {
		handlerError(err, w)
		return
	}

	type response struct {
		Contests []contest_service.ContestView `json:"contests"`
	}
	marshalAndRespond(w, http.StatusOK, response{Contests: contests})
}

func contestIdParam(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(chi.URLParam(r, "contest_id"))
}

func queryInt(r *http.Request, key string, fallback int32) int32 {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return int32(value)
}
