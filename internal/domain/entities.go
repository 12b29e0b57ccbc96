package domain

import (
	"encoding/json"
	"time"
)

// Course is a catalog entry. The server is the sole source of truth;
// instances are snapshots owned by the caller.
type Course struct {
	ID           string
	Title        string
	Description  string
	InstructorID string
	MediaURL     string // optional
}

// ContentType enumerates the kinds of course content the platform serves.
type ContentType string

const (
	ContentDocument ContentType = "document"
	ContentVideo    ContentType = "video"
	ContentLink     ContentType = "link"
)

// ContentItem is a single piece of course material. Order is the
// server-assigned display sort key and must not be recomputed locally.
type ContentItem struct {
	ID          string
	Title       string
	Description string
	Type        ContentType
	URL         string
	Order       int
}

// Question is one multiple-choice question. CorrectOptionIndex and Marks
// are populated on the authoring path; student-facing sessions should not
// carry them, but the transport does not guarantee their absence.
type Question struct {
	ID                 string   `json:"id,omitempty"`
	Text               string   `json:"text"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex,omitempty"`
	Marks              int      `json:"marks,omitempty"`
}

// Session is one assessment attempt's worth of questions plus a duration
// in minutes. It is a single-shot snapshot returned by the start operation;
// nothing in this layer mutates or persists it. Meta carries any
// server-supplied fields beyond the known ones, unchanged.
type Session struct {
	AssessmentID string
	Questions    []Question
	Duration     int
	Meta         map[string]json.RawMessage
}

// Result is a historical assessment outcome, server-authoritative and
// read-only.
type Result struct {
	ID           string
	AssessmentID string
	UserID       string
	Score        float64
	AttemptDate  time.Time
}

// Identity is the authenticated account returned by login and register.
type Identity struct {
	Token string
	ID    string
	Email string
	Role  string
}
