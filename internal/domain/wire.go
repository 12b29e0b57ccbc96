package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

// Wire records mirror the field names the platform API uses. Conversion to
// the entity types renames the per-record id fields (courseId, contentId,
// resultId) to the stable "id" and passes everything else through.

// CourseRecord is the wire shape of a course.
type CourseRecord struct {
	CourseID     string `json:"courseId"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	InstructorID string `json:"instructorId"`
	MediaURL     string `json:"mediaUrl"`
}

// Course converts the record into its entity form.
func (r CourseRecord) Course() Course {
	return Course{
		ID:           r.CourseID,
		Title:        r.Title,
		Description:  r.Description,
		InstructorID: r.InstructorID,
		MediaURL:     r.MediaURL,
	}
}

// Courses converts a list of wire records.
func Courses(records []CourseRecord) []Course {
	return lo.Map(records, func(r CourseRecord, _ int) Course {
		return r.Course()
	})
}

// ContentRecord is the wire shape of a content item.
type ContentRecord struct {
	ContentID   string `json:"contentId"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Order       int    `json:"order"`
}

// ContentItem converts the record into its entity form. The server-assigned
// Order is carried through untouched.
func (r ContentRecord) ContentItem() ContentItem {
	return ContentItem{
		ID:          r.ContentID,
		Title:       r.Title,
		Description: r.Description,
		Type:        ContentType(r.Type),
		URL:         r.URL,
		Order:       r.Order,
	}
}

// ContentItems converts a list of wire records.
func ContentItems(records []ContentRecord) []ContentItem {
	return lo.Map(records, func(r ContentRecord, _ int) ContentItem {
		return r.ContentItem()
	})
}

// Timestamp decodes the attempt-date wire forms the platform emits: RFC 3339
// with or without fractional seconds, a bare date, or a millisecond epoch
// number.
type Timestamp time.Time

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var value string
		if err := json.Unmarshal(data, &value); err != nil {
			return err
		}
		for _, layout := range timestampLayouts {
			if parsed, err := time.Parse(layout, value); err == nil {
				*t = Timestamp(parsed)
				return nil
			}
		}
		return fmt.Errorf("unrecognized date value %q", value)
	}
	millis, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return fmt.Errorf("unrecognized date value %s", s)
	}
	*t = Timestamp(time.UnixMilli(millis).UTC())
	return nil
}

// Time returns the underlying time value.
func (t Timestamp) Time() time.Time {
	return time.Time(t)
}

// ResultRecord is the wire shape of an assessment result.
type ResultRecord struct {
	ResultID     string    `json:"resultId"`
	AssessmentID string    `json:"assessmentId"`
	UserID       string    `json:"userId"`
	Score        float64   `json:"score"`
	AttemptDate  Timestamp `json:"attemptDate"`
}

// Result converts the record into its entity form. The attempt date is the
// only field needing type conversion beyond renaming.
func (r ResultRecord) Result() Result {
	return Result{
		ID:           r.ResultID,
		AssessmentID: r.AssessmentID,
		UserID:       r.UserID,
		Score:        r.Score,
		AttemptDate:  r.AttemptDate.Time(),
	}
}

// Results converts a list of wire records.
func Results(records []ResultRecord) []Result {
	return lo.Map(records, func(r ResultRecord, _ int) Result {
		return r.Result()
	})
}
