package api

import (
	"net/http"

	log "github.com/sirupsen/logrus"
	"github.com/tesseract-club/arena/internal/service/auth_service"
	"github.com/tesseract-club/arena/middleware"
)

func (a *Api) HandlerSignUp(w http.ResponseWriter, r *http.Request) {
	var request auth_service.UserRegistration
	if err := decodeJsonBody(r.Body, &request); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	response, jwtToken, tokenExpiry, err := a.AuthServiceConfig.SignUp(
		r.Context(),
		request,
	)
	if err != nil {
		handlerError(err, w)
		return
	}

	// signup logs the user in right away
	cookie := &http.Cookie{
		Name:     middleware.KeyJwtSessionCookieName,
		Value:    jwtToken,
		Expires:  tokenExpiry,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	log.WithFields(log.Fields{
		"user_id": response.User.ID,
		"role":    response.User.Role,
	}).Info("signed up")

	marshalAndRespond(w, http.StatusCreated, response)
}
