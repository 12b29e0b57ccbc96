// Package catalog lists courses and their contents.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

// Client is the catalog-facing slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates a catalog client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// AvailableCourses returns the public course listing. No credential is
// required.
func (c *Client) AvailableCourses(ctx context.Context) ([]domain.Course, error) {
	raw, err := c.gw.Send(ctx, http.MethodGet, "/courses/available", "", nil)
	if err != nil {
		return nil, err
	}
	return decodeCourses(raw)
}

// Courses returns the authenticated course listing.
func (c *Client) Courses(ctx context.Context, credential string) ([]domain.Course, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	raw, err := c.gw.Send(ctx, http.MethodGet, "/courses", credential, nil)
	if err != nil {
		return nil, err
	}
	return decodeCourses(raw)
}

// CourseContents returns the content items of a course, in whatever order
// the server returns them. Callers sort by Order when a specific display
// sequence is required.
func (c *Client) CourseContents(ctx context.Context, courseID, credential string) ([]domain.ContentItem, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodGet, "/courses/"+courseID+"/contents", credential, nil)
	if err != nil {
		return nil, err
	}
	var records []domain.ContentRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode course contents: %w", err)
	}
	return domain.ContentItems(records), nil
}

func decodeCourses(raw []byte) ([]domain.Course, error) {
	var records []domain.CourseRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode course list: %w", err)
	}
	return domain.Courses(records), nil
}
