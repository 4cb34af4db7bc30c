package api

import (
	"net/http"

	"github.com/tesseract-club/arena/internal/service/contest_service"
)

func (a *Api) HandlerJoinContest(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	// private contests carry the password in the body
	type params struct {
		Password string `json:"password"`
	}
	var request params
	if err := decodeOptionalJsonBody(r.Body, &request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	contest, serviceErr := a.ContestServiceConfig.JoinContest(
		r.Context(),
		contestId,
		request.Password,
	)
	if serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	marshalAndRespond(w, http.StatusOK, contest)
}

func (a *Api) HandlerLeaveContest(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if serviceErr := a.ContestServiceConfig.LeaveContest(r.Context(), contestId); serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	respondWithJson(w, http.StatusOK, []byte(`{"message": "successfully left contest"}`))
}

func (a *Api) HandlerGetContestParticipants(w http.ResponseWriter, r *http.Request) {
	contestId, err := contestIdParam(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	participants, serviceErr := a.ContestServiceConfig.GetContestParticipants(
		r.Context(),
		contestId,
	)
	if serviceErr != nil {
		handlerError(serviceErr, w)
		return
	}

	type response struct {
		Participants []contest_service.Participant `json:"participants"`
		TotalCount   int                           `json:"totalCount"`
	}
	marshalAndRespond(w, http.StatusOK, response{
		Participants: participants,
		TotalCount:   len(participants),
	})
}
