package api

import (
	"context"
	"fmt"

	"campus-connect-client/model"
)

type AuthAPI struct {
	c *Client
}

func (a *AuthAPI) Login(ctx context.Context, email string, password string) (*model.LoginResponse, error) {
	payload := model.LoginRequest{Email: email, Password: password}

	var out model.LoginResponse
	if err := a.c.sendJSON(ctx, "POST", "/auth/login", payload, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Signup registers a new account. The optional ID card is downscaled before
// upload so oversized phone photos do not blow the backend's body limit.
func (a *AuthAPI) Signup(ctx context.Context, req model.SignupRequest) (*model.SignupResponse, error) {
	if err := a.c.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", model.ErrInvalidInput, err)
	}

	fields := map[string]string{
		"email":    req.Email,
		"password": req.Password,
		"name":     req.Name,
		"role":     req.Role,
	}

	files := map[string]*model.Upload{}
	if req.IDCard != nil {
		prepared, err := prepareIDCard(req.IDCard, a.c.idCardMaxDim)
		if err != nil {
			return nil, err
		}
		files["idCard"] = prepared
	}

	var out model.SignupResponse
	if err := a.c.sendMultipart(ctx, "POST", "/auth/signup", fields, files, &out); err != nil {
		return nil, err
	}

	return &out, nil
}

// Verify asks the backend to confirm the currently attached token and
// returns the canonical account record.
func (a *AuthAPI) Verify(ctx context.Context) (*model.VerifyResponse, error) {
	var out model.VerifyResponse
	if err := a.c.getJSON(ctx, "/auth/verify", &out); err != nil {
		return nil, err
	}

	return &out, nil
}
