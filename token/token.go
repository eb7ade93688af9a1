// Package token inspects bearer credentials without verifying signatures.
// The backend owns the signing key; the client only decides whether a
// persisted token is worth sending at all.
package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"campus-connect-client/model"
)

// WellFormed reports whether tok has the three dot-separated segments of a
// serialized JWT. It says nothing about expiry.
func WellFormed(tok string) bool {
	if strings.TrimSpace(tok) == "" {
		return false
	}

	return len(strings.Split(tok, ".")) == 3
}

// IsExpired decodes the claims segment and checks the embedded expiration
// timestamp against now. Undecodable tokens count as expired (fails closed);
// a token without an exp claim does not expire client-side.
func IsExpired(tok string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return true
	}
	if exp == nil {
		return false
	}

	return !exp.Time.After(time.Now())
}

// Check classifies an unusable token. A nil result means the token may be
// attached to outgoing requests.
func Check(tok string) error {
	if !WellFormed(tok) {
		return model.ErrTokenMalformed
	}
	if IsExpired(tok) {
		return model.ErrTokenExpired
	}

	return nil
}

// IsValid is the full usability check: structurally well-formed and not
// expired.
func IsValid(tok string) bool {
	return Check(tok) == nil
}
