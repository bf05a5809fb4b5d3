package api

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/nikita-rudenko/exercise-tracker/internal"
	"github.com/nikita-rudenko/exercise-tracker/internal/response"
	"github.com/nikita-rudenko/exercise-tracker/internal/storage"
)

// HandleError is the single place that maps an error to a status and body.
// Validation errors report the first offending field; known domain errors
// carry their own status; anything else is a 500.
func HandleError(c *gin.Context, logger internal.Logger, err error) {
	resp := mapError(err)
	logger.Errorf("[request_id=%s] %d: %s (%v)", c.GetString("request_id"), resp.Status, resp.Message, err)
	c.JSON(resp.Status, resp)
}

func mapError(err error) *internal.AppError {
	var appErr *internal.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		// report the first validation error
		return response.BadRequest("invalid value for field '" + verrs[0].Field() + "'")
	}

	switch {
	case errors.Is(err, storage.ErrUsernameTaken):
		return response.Conflict("username already exists")
	case errors.Is(err, storage.ErrUserNotFound):
		return response.NotFound("user doesn't exist")
	}

	return response.InternalError("Internal Server Error")
}
