package service

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
)

type contextKey string

const (
	MinContestPasswordLength            = 6
	KeyJWTSecret                        = "JWT_SECRET"
	KeyCtxUserCredClaims     contextKey = "UserCredClaims"
)

var (
	validate *validator.Validate
)

func InitializeServices() {
	validate = initValidator() // used for validating struct fields
}

func initValidator() *validator.Validate {
	log.Info("initializing validator")
	validate := validator.New(validator.WithRequiredStructEnabled())

	// This makes error.Field() return "start_date" instead of "StartDate"
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}
