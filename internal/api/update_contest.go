package api

import (
	"net/http"

	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func (a *Api) HandlerUpdateContest(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var request contest_service.ContestInput
	if err := decodeJsonBody(r.Body, &request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contest, serviceErr := a.ContestServiceConfig.UpdateContest(
		r.Context(),
		contestId,
		request,
	)
	if serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, contest)
}

func (a *Api) HandlerDeleteContest(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if serviceErr := a.ContestServiceConfig.DeleteContest(r.Context(), contestId); serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	respondWithJson(w, http.StatusOK, []byte(`{"message": "contest deleted successfully"}`))
}
