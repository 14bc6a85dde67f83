package api

import (
	"errors"
	"fmt"
)

// Категории ошибок запроса. Сопоставляются через errors.Is.
var (
	// ErrUnauthorized — сервер отклонил токен (401). Токен уже удалён.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrRequestFailed — любой другой не-2xx ответ.
	ErrRequestFailed = errors.New("request failed")
	// ErrMalformedResponse — успешный ответ, тело которого не является ожидаемым JSON.
	ErrMalformedResponse = errors.New("malformed response")
	// ErrNetwork — ответ не получен (транспортная ошибка).
	ErrNetwork = errors.New("network error")
)

// Error describes a failed call. Kind is one of the sentinels above.
type Error struct {
	Kind    error
	Method  string
	URL     string
	Status  int
	Message string
	// Redirect is the surface the caller should navigate to; set only for
	// ErrUnauthorized when the caller is not already on the login surface.
	Redirect Surface
	Err      error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "" && e.Status != 0:
		return fmt.Sprintf("%s %s: %v (%d): %s", e.Method, e.URL, e.Kind, e.Status, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v: %v", e.Method, e.URL, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Kind)
	}
}

// Is matches the error category.
func (e *Error) Is(target error) bool { return target == e.Kind }

// Unwrap returns the underlying cause (transport or decode error).
func (e *Error) Unwrap() error { return e.Err }

// RedirectOf returns the navigation target carried by err, if any.
func RedirectOf(err error) (Surface, bool) {
	var e *Error
	if errors.As(err, &e) && e.Redirect != "" {
		return e.Redirect, true
	}
	return "", false
}

// MessageOf returns the server-provided message carried by err, if any.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return ""
}
