package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	CodeNotFound      = "RESOURCE_NOT_FOUND"
	CodeBusinessRule  = "BUSINESS_RULE_VIOLATED"
	CodeAuthorization = "AUTHORIZATION_ERROR"
	CodeAccessDenied  = "ACCESS_DENIED"
	CodeValidation    = "VALIDATION_ERROR"
	CodeInternal      = "INTERNAL_SERVER_ERROR"
)

// Error is a domain failure carrying the HTTP status and machine code the
// boundary layer renders. It propagates uncaught from the point of detection.
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(entity string, key any) *Error {
	return &Error{
		Status:  http.StatusNotFound,
		Code:    CodeNotFound,
		Message: fmt.Sprintf("%s with id '%v' not found", entity, key),
	}
}

func Duplicate(entity, field string, value any) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeBusinessRule,
		Message: fmt.Sprintf("%s with %s '%v' already exists", entity, field, value),
	}
}

func InsufficientStock(product string, requested, available int) *Error {
	return &Error{
		Status:  http.StatusConflict,
		Code:    CodeBusinessRule,
		Message: fmt.Sprintf("insufficient stock for '%s': requested %d, available %d", product, requested, available),
	}
}

func BusinessRule(msg string) *Error {
	return &Error{Status: http.StatusConflict, Code: CodeBusinessRule, Message: msg}
}

func InvalidCredentials() *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeAuthorization, Message: "invalid credentials"}
}

func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Code: CodeAuthorization, Message: msg}
}

func AccessDenied(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Code: CodeAccessDenied, Message: msg}
}

func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Code: CodeValidation, Message: msg}
}

func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Code: CodeInternal, Message: err.Error()}
}

// As unwraps err into *Error if it is one.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func IsNotFound(err error) bool {
	e, ok := As(err)
	return ok && e.Code == CodeNotFound
}
