// Package session persists the member's auth session the way the web
// frontend keeps it in localStorage: a single JSON record under a fixed
// key, validated lazily on every read.
package session

import (
    "strings"
    "time"
)

// AuthSession is the bearer credential returned by the members/login
// endpoint.  AccessTokenExpiresIn is an absolute expiry instant in epoch
// milliseconds (the backend's field name is kept although it reads like a
// duration).  Email is optional display data.
type AuthSession struct {
    GrantType            string `json:"grantType"`
    AccessToken          string `json:"accessToken"`
    AccessTokenExpiresIn int64  `json:"accessTokenExpiresIn"`
    Email                string `json:"email,omitempty"`
}

// IsValidAt reports whether the session can authenticate a request at the
// given instant: the token must be non-empty and, when an expiry is set,
// it must lie strictly in the future.
func (s *AuthSession) IsValidAt(now time.Time) bool {
    if s == nil || s.AccessToken == "" {
        return false
    }
    if s.AccessTokenExpiresIn != 0 && s.AccessTokenExpiresIn <= now.UnixMilli() {
        return false
    }
    return true
}

// IsValid is IsValidAt against the wall clock.
func (s *AuthSession) IsValid() bool {
    return s.IsValidAt(time.Now())
}

// Header renders the Authorization header value, "{grantType} {accessToken}".
func (s *AuthSession) Header() string {
    if s == nil || s.AccessToken == "" {
        return ""
    }
    return strings.TrimSpace(s.GrantType + " " + s.AccessToken)
}
