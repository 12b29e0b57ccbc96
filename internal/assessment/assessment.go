// Package assessment drives the start/submit protocol for timed
// multiple-choice assessments. The layer holds no session state across
// calls: a start returns a snapshot, a submit sends the answers, and any
// attempt lifecycle beyond that is the caller's and the server's concern.
package assessment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/pranavsoni27/edusync-go/internal/domain"
	"github.com/pranavsoni27/edusync-go/internal/gateway"
)

// DefaultDuration is the session duration, in minutes, assumed when the
// server omits one.
const DefaultDuration = 30

// Client is the assessment-facing slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates an assessment client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// CourseAssessments lists a course's assessments, passing each record
// through unchanged.
func (c *Client) CourseAssessments(ctx context.Context, courseID, credential string) ([]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodGet, "/courses/"+courseID+"/assessments", credential, nil)
	if err != nil {
		return nil, err
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("failed to decode assessment list: %w", err)
	}
	return list, nil
}

// Start begins an assessment attempt and returns the session snapshot. A
// successful HTTP status is not sufficient proof of a usable session: the
// payload must carry a questions list, or the call fails with
// *gateway.InvalidPayloadError. A missing duration defaults to
// DefaultDuration.
func (c *Client) Start(ctx context.Context, assessmentID, credential string) (*domain.Session, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if assessmentID == "" {
		return nil, gateway.MissingParam("assessment ID")
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/assessments/"+assessmentID+"/start", credential, nil)
	if err != nil {
		return nil, err
	}
	return decodeSession(assessmentID, raw)
}

// Submit sends the answers for an assessment attempt. The selected options
// are serialized positionally, in the set's insertion order, each parsed
// as an integer index; a non-numeric option fails with
// *InvalidAnswerError before any network call. The server's submission
// result is passed through unchanged.
func (c *Client) Submit(ctx context.Context, assessmentID string, answers *AnswerSet, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if assessmentID == "" {
		return nil, gateway.MissingParam("assessment ID")
	}
	if answers == nil {
		return nil, gateway.MissingParam("answers")
	}
	indices, err := answers.indices()
	if err != nil {
		return nil, err
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/assessments/"+assessmentID+"/submit", credential, indices)
	if err != nil {
		return nil, err
	}
	var result map[string]json.RawMessage
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("failed to decode submission result: %w", err)
	}
	return result, nil
}

// decodeSession validates the session shape and applies the duration
// default. Fields beyond questions and duration are kept in Meta,
// unchanged.
func decodeSession(assessmentID string, raw []byte) (*domain.Session, error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, &gateway.InvalidPayloadError{Reason: "session payload is not an object"}
	}

	questionsRaw, ok := payload["questions"]
	if !ok {
		return nil, &gateway.InvalidPayloadError{Reason: "session has no questions list"}
	}
	// A JSON null would decode into a nil slice without complaint; null is
	// not a list.
	if bytes.Equal(bytes.TrimSpace(questionsRaw), []byte("null")) {
		return nil, &gateway.InvalidPayloadError{Reason: "questions is not a list"}
	}
	var questions []domain.Question
	if err := json.Unmarshal(questionsRaw, &questions); err != nil {
		return nil, &gateway.InvalidPayloadError{Reason: "questions is not a list"}
	}

	duration := DefaultDuration
	if durationRaw, ok := payload["duration"]; ok {
		var d int
		if err := json.Unmarshal(durationRaw, &d); err == nil && d > 0 {
			duration = d
		}
	}

	meta := make(map[string]json.RawMessage)
	for key, value := range payload {
		if key == "questions" || key == "duration" {
			continue
		}
		meta[key] = value
	}

	return &domain.Session{
		AssessmentID: assessmentID,
		Questions:    questions,
		Duration:     duration,
		Meta:         meta,
	}, nil
}
