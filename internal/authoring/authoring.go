// Package authoring is the instructor path: uploading courses, course
// content and assessments, and reading student performance.
package authoring

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

// Client is the authoring-facing slice of the access layer.
type Client struct {
	gw *gateway.Gateway
}

// NewClient creates an authoring client over the given gateway.
func NewClient(gw *gateway.Gateway) *Client {
	return &Client{gw: gw}
}

// CourseUpload is a new course to publish.
type CourseUpload struct {
	Title        string `json:"title" validate:"required"`
	Description  string `json:"description"`
	InstructorID string `json:"instructorId,omitempty"`
	MediaURL     string `json:"mediaUrl,omitempty"`
}

// UploadCourse publishes a course and returns the created record.
func (c *Client) UploadCourse(ctx context.Context, course CourseUpload, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if err := validate.Struct(course); err != nil {
		return nil, missingField(err, map[string]string{"Title": "course title"})
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/courses", credential, course)
	if err != nil {
		return nil, err
	}
	return decodeObject(raw, "created course")
}

// ContentUpload is a new content item for a course. URL, title and
// description are required; type defaults to document and order to 0.
type ContentUpload struct {
	Title       string             `json:"title" validate:"required"`
	Description string             `json:"description" validate:"required"`
	Type        domain.ContentType `json:"type"`
	URL         string             `json:"url" validate:"required"`
	Order       int                `json:"order"`
}

// UploadContent attaches a content item to a course and returns the
// created record.
func (c *Client) UploadContent(ctx context.Context, courseID string, content ContentUpload, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	if err := validate.Struct(content); err != nil {
		return nil, missingField(err, map[string]string{
			"Title":       "content title",
			"Description": "content description",
			"URL":         "content URL",
		})
	}
	if content.Type == "" {
		content.Type = domain.ContentDocument
	}
	raw, err := c.gw.Send(ctx, http.MethodPost, "/courses/"+courseID+"/content", credential, content)
	if err != nil {
		return nil, err
	}
	return decodeObject(raw, "created content")
}

// AssessmentDraft is a new assessment to attach to a course. Duration is
// passed through unmodified; unlike the student start path, no default is
// applied here.
type AssessmentDraft struct {
	CourseID  string            `json:"-"`
	Title     string            `json:"title" validate:"required"`
	Questions []domain.Question `json:"-" validate:"required,min=1"`
	Duration  int               `json:"duration,omitempty"`
}

// questionPayload is the exact wire shape for an authored question. Zero
// values for the correct-option index and marks are still sent.
type questionPayload struct {
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
	Marks              int      `json:"marks"`
}

// CreateAssessment attaches an assessment to a course and returns the
// created record.
func (c *Client) CreateAssessment(ctx context.Context, courseID string, draft AssessmentDraft, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	if err := validate.Struct(draft); err != nil {
		return nil, missingField(err, map[string]string{
			"Title":     "assessment title",
			"Questions": "at least one question",
		})
	}

	questions := make([]questionPayload, len(draft.Questions))
	for i, q := range draft.Questions {
		questions[i] = questionPayload{
			Text:               q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
			Marks:              q.Marks,
		}
	}
	body := map[string]any{
		"title":     draft.Title,
		"questions": questions,
	}
	if draft.Duration != 0 {
		body["duration"] = draft.Duration
	}

	raw, err := c.gw.Send(ctx, http.MethodPost, "/courses/"+courseID+"/assessments", credential, body)
	if err != nil {
		return nil, err
	}
	return decodeObject(raw, "created assessment")
}

// UploadAssessment is CreateAssessment with the course taken from the
// draft itself.
func (c *Client) UploadAssessment(ctx context.Context, draft AssessmentDraft, credential string) (map[string]json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if draft.CourseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	return c.CreateAssessment(ctx, draft.CourseID, draft, credential)
}

// StudentPerformance returns the course's performance payload unchanged;
// no field renaming is applied.
func (c *Client) StudentPerformance(ctx context.Context, courseID, credential string) (json.RawMessage, error) {
	if credential == "" {
		return nil, gateway.ErrMissingCredential
	}
	if courseID == "" {
		return nil, gateway.MissingParam("course ID")
	}
	return c.gw.Send(ctx, http.MethodGet, "/courses/"+courseID+"/student-performance", credential, nil)
}

// missingField translates a required-field validation failure into the
// local-validation error the caller sees, so no network call is made.
func missingField(err error, labels map[string]string) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		field := verrs[0].Field()
		if label, ok := labels[field]; ok {
			return gateway.MissingParam(label)
		}
		return gateway.MissingParam(strings.ToLower(field))
	}
	return err
}

func decodeObject(raw []byte, what string) (map[string]json.RawMessage, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", what, err)
	}
	return obj, nil
}
