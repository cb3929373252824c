package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal server error")
)

// FieldError is one entry of the structured validation-failure list
// returned on 400 responses.
type FieldError struct {
	Field   string `json:"param"`
	Message string `json:"msg"`
}

type AppError struct {
	BaseError error
	Message   string
	Fields    []FieldError
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.BaseError.Error(), e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.BaseError.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func New(base error, msg string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Err: err}
}

func NewNotFound(msg string) *AppError {
	return &AppError{BaseError: ErrNotFound, Message: msg}
}

func NewBadRequest(msg string) *AppError {
	return &AppError{BaseError: ErrInvalidInput, Message: msg}
}

func NewValidation(fields []FieldError) *AppError {
	return &AppError{BaseError: ErrInvalidInput, Message: "validation failed", Fields: fields}
}

func NewUnauthorized(msg string) *AppError {
	return &AppError{BaseError: ErrUnauthorized, Message: msg}
}

func NewConflict(msg string) *AppError {
	return &AppError{BaseError: ErrConflict, Message: msg}
}

func NewInternal(msg string, err error) *AppError {
	return &AppError{BaseError: ErrInternal, Message: msg, Err: err}
}

// ToHTTPStatus maps the error taxonomy onto response codes. Missing and
// malformed identifiers both land on 404.
func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	}
	return http.StatusInternalServerError
}
