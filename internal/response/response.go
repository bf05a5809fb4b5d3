package response

import "github.com/nikita-rudenko/exercise-tracker/internal"

// Every failing response carries the same body shape:
// {"status": <code>, "message": <text>}.

func BadRequest(msg string) *internal.AppError {
	return internal.NewAppError(400, msg)
}

func NotFound(msg string) *internal.AppError {
	return internal.NewAppError(404, msg)
}

func Conflict(msg string) *internal.AppError {
	return internal.NewAppError(409, msg)
}

func InternalError(msg string) *internal.AppError {
	return internal.NewAppError(500, msg)
}
