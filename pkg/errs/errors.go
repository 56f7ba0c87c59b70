package errs

import (
	"errors"
	"net/http"
)

const (
	ErrStatusInternalServer         = http.StatusInternalServerError
	ErrStatusClient                 = http.StatusBadRequest
	ErrStatusNotLoggedIn            = http.StatusUnauthorized
	ErrStatusNoPermission           = http.StatusForbidden
	ErrStatusNotFound               = http.StatusNotFound
	ErrStatusFileSizeExceedingLimit = http.StatusRequestEntityTooLarge
	ErrStatusConflict               = http.StatusConflict
	ErrBadGateway                   = http.StatusBadGateway
)

var (
	ErrInternalServer = errors.New("Internal server error")
	ErrClient         = errors.New("Bad request")
	ErrNotLoggedIn    = errors.New("Unauthorized access")
	ErrUnauthorized   = errors.New("Forbidden access")
	ErrNotFound       = errors.New("Resource not found")
	ErrValidation     = errors.New("Validation failed")
	ErrConflict       = errors.New("Conflicting record found")
	ErrNotAnImage     = errors.New("Uploaded file is not an image")
	ErrFileTooLarge   = errors.New("Uploaded file exceeds the size limit")
	ErrUnavailable    = errors.New("Backend temporarily unavailable")
)

var errorMap = map[error]int{
	ErrInternalServer: ErrStatusInternalServer,
	ErrClient:         ErrStatusClient,
	ErrNotLoggedIn:    ErrStatusNotLoggedIn,
	ErrUnauthorized:   ErrStatusNoPermission,
	ErrNotFound:       ErrStatusNotFound,
	ErrValidation:     ErrStatusClient,
	ErrConflict:       ErrStatusConflict,
	ErrNotAnImage:     ErrStatusClient,
	ErrFileTooLarge:   ErrStatusFileSizeExceedingLimit,
	ErrUnavailable:    ErrBadGateway,
}

func GetErrorStatusCode(err error) int {
	for sentinel, code := range errorMap {
		if errors.Is(err, sentinel) {
			return code
		}
	}
	return ErrStatusInternalServer
}
