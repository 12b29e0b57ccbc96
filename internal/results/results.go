// Package results fetches historical assessment results.
package results

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

// Client is the results-facing slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a results client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// UserResults returns the given user's assessment results with attempt
// dates parsed at the boundary.
func (c *Client) UserResults(ctx context.Context, userID, credential string) ([]domain.Result, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if userID == "" {
		return nil, gateway.MissingParam("user ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodGet, "/users/"+userID+"/results", credential, nil)
	if err != nil {
		return nil, err
	}
	var records []domain.ResultRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode user results: %w", err)
	}
	return domain.Results(records), nil
}
