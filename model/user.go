package model

// Role of an authenticated account.
const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Verification states reported by the backend for student accounts.
const (
	VerificationPending  = "pending"
	VerificationVerified = "verified"
	VerificationRejected = "rejected"
)

// User is the authenticated account record owned by the session manager and
// mirrored into the local store for restart survival.
type User struct {
	ID                 string `json:"id"`
	Email              string `json:"email"`
	Name               string `json:"name"`
	Role               string `json:"role"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
	IDCardURL          string `json:"idCardUrl,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the issued token plus the account record. The
// top-level verificationStatus gates whether the login is accepted at all.
type LoginResponse struct {
	Token              string `json:"token"`
	User               User   `json:"user"`
	VerificationStatus string `json:"verificationStatus,omitempty"`
}

// SignupRequest is encoded as multipart form data; IDCard travels as a file
// part when present.
type SignupRequest struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
	Name     string `validate:"required"`
	Role     string `validate:"required,oneof=student admin"`
	IDCard   *Upload
}

type SignupResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// VerifyResponse is returned by the token verification endpoint. The user
// object uses the backend's raw document shape.
type VerifyResponse struct {
	User struct {
		ID    string `json:"_id"`
		Email string `json:"email"`
		Name  string `json:"name"`
		Role  string `json:"role"`
	} `json:"user"`
}

// Upload is an in-memory file destined for a multipart part.
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}
