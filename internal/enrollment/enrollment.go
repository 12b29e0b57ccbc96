// Package enrollment joins courses and lists a user's joined courses.
package enrollment

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

// Client is the enrollment-facing slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates an enrollment client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// JoinCourse enrolls the authenticated user in a course and returns the
// server's confirmation payload unchanged. The call is not idempotent:
// joining an already-joined course surfaces the server's conflict message,
// with no local de-duplication.
func (c *Client) JoinCourse(ctx context.Context, courseID, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/courses/"+courseID+"/join", credential, nil)
	if err != nil {
		return nil, err
	}
	var confirmation map[string]json.RawMessage
	if err := json.Unmarshal(raw, &confirmation); err != nil {
		return nil, fmt.Errorf("failed to decode join confirmation: %w", err)
	}
	return confirmation, nil
}

// JoinedCourses returns the courses the given user has joined.
func (c *Client) JoinedCourses(ctx context.Context, userID, credential string) ([]domain.Course, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if userID == "" {
		return nil, gateway.MissingParam("user ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodGet, "/users/"+userID+"/courses", credential, nil)
	if err != nil {
		return nil, err
	}
	var records []domain.CourseRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("failed to decode joined courses: %w", err)
	}
	return domain.Courses(records), nil
}
