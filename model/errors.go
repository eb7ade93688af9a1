package model

import "errors"

var (
	// Credential/session related errors
	ErrUnauthorized         = errors.New("unauthorized")
	ErrTokenMalformed       = errors.New("token is malformed")
	ErrTokenExpired         = errors.New("token expired")
	ErrVerificationPending  = errors.New("account is pending verification")
	ErrVerificationRejected = errors.New("account verification was rejected")

	// Transport related errors
	ErrServerUnreachable = errors.New("unable to connect to server")

	// Local state related errors
	ErrKeyNotFound = errors.New("key not found")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
	ErrStaleResult  = errors.New("result superseded by a newer request")
)
