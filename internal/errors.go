package internal

// AppError is the error shape every failing response carries.
// Status doubles as the HTTP status code.
type AppError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(status int, msg string) *AppError {
	return &AppError{Status: status, Message: msg}
}
