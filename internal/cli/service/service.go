// Package service содержит юзкейсы CLI поверх api.API: вход/выход, места, отзывы.
package service

import (
	"errors"
	"net/url"
	"strings"
)

// ErrNotAuthenticated is returned when an operation needs a session and there is none.
var ErrNotAuthenticated = errors.New("not authenticated")

func join(base string, parts ...string) string {
	res := strings.TrimRight(base, "/")
	for _, p := range parts {
		res += "/" + url.PathEscape(p)
	}
	return res
}
