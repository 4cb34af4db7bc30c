package api

import (
	"net/http"

	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func (a *Api) HandlerCreateContest(w http.ResponseWriter, r *http.Request) {
	var request contest_service.ContestInput
	if err := decodeJsonBody(r.Body, &request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contest, err := a.ContestServiceConfig.CreateContest(r.Context(), request)
	if err != nil {
		handlerError(err, w)
		return
	}

	marshalAndRespond(w, http.StatusCreated, contest)
}
