package http

import (
	"context"
	"net/http"
	"time"

	"github.com/fwojciec/mdview"
)

// Ensure CookieStorage implements mdview.Storage at compile time.
var _ mdview.Storage = (*CookieStorage)(nil)

// CookieMaxAge is how long stored preferences live in the browser.
const CookieMaxAge = 365 * 24 * time.Hour

// CookieStorage keeps client preferences in cookies for the duration of
// one request: values come from the request and writes are sent back as
// Set-Cookie headers. Writes must happen before the response body.
type CookieStorage struct {
	r   *http.Request
	w   http.ResponseWriter
	set map[string]string
}

// NewCookieStorage creates a CookieStorage for one request.
func NewCookieStorage(w http.ResponseWriter, r *http.Request) *CookieStorage {
	return &CookieStorage{r: r, w: w, set: make(map[string]string)}
}

// GetItem returns the value written in this request or sent by the client.
func (s *CookieStorage) GetItem(_ context.Context, key string) (string, error) {
	if v, ok := s.set[key]; ok {
		return v, nil
	}
	c, err := s.r.Cookie(key)
	if err != nil {
		return "", mdview.Errorf(mdview.ENOTFOUND, "item %q not found", key)
	}
	return c.Value, nil
}

// SetItem sends value to the client under key.
func (s *CookieStorage) SetItem(_ context.Context, key, value string) error {
	s.set[key] = value
	http.SetCookie(s.w, &http.Cookie{
		Name:     key,
		Value:    value,
		Path:     "/",
		MaxAge:   int(CookieMaxAge / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
