// Package auth obtains bearer credentials from the platform. The layer
// never stores or refreshes a token; callers pass the returned token to
// the other clients on each call.
package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

var validate = validator.New()

// Client is the authentication slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates an auth client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// Credentials is a login request.
type Credentials struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

// Registration is a new-account request.
type Registration struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"required"`
}

type identityResponse struct {
	Token string `json:"token"`
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Login exchanges credentials for an authenticated identity.
func (c *Client) Login(ctx context.Context, creds Credentials) (*domain.Identity, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, missingField(err)
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/auth/login", "", creds)
	if err != nil {
		return nil, err
	}
	return decodeIdentity(raw)
}

// Register creates an account and returns its authenticated identity.
func (c *Client) Register(ctx context.Context, reg Registration) (*domain.Identity, error) {
	if err := validate.Struct(reg); err != nil {
		return nil, missingField(err)
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/auth/register", "", reg)
	if err != nil {
		return nil, err
	}
	return decodeIdentity(raw)
}

// decodeIdentity rejects a success response that lacks the token or id the
// rest of the layer depends on.
func decodeIdentity(raw []byte) (*domain.Identity, error) {
	var resp identityResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w", err)
	}
	if resp.Token == "" || resp.ID == "" {
		return nil, &gateway.InvalidPayloadError{Reason: "auth response missing token or id"}
	}
	return &domain.Identity{
		Token: resp.Token,
		ID:    resp.ID,
		Email: resp.Email,
		Role:  resp.Role,
	}, nil
}

func missingField(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return gateway.MissingParam(strings.ToLower(verrs[0].Field()))
	}
	return err
}
