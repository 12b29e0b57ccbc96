package assessment

import (
	"fmt"
	"strconv"

	"github.com/pranavsoni27/edusync-go/internal/domain"
)

// AnswerSet maps question identifiers to selected option indices while
// preserving insertion order. Submission serializes the selected values in
// that order and the server matches them positionally against the question
// sequence, so the set must be built in the order the questions were
// presented. Resolve produces an explicitly question-ordered set for
// callers that do not want to rely on insertion order.
type AnswerSet struct {
	order    []string
	selected map[string]string
}

// NewAnswerSet creates an empty answer set.
func NewAnswerSet() *AnswerSet {
	return &AnswerSet{selected: make(map[string]string)}
}

// Set records the selected option for a question. Overwriting an existing
// answer keeps the question's original position.
func (a *AnswerSet) Set(questionID, selected string) {
	if _, ok := a.selected[questionID]; !ok {
		a.order = append(a.order, questionID)
	}
	a.selected[questionID] = selected
}

// Get returns the selected option for a question.
func (a *AnswerSet) Get(questionID string) (string, bool) {
	v, ok := a.selected[questionID]
	return v, ok
}

// Len returns the number of answered questions.
func (a *AnswerSet) Len() int {
	return len(a.order)
}

// Values returns the selected options in insertion order.
func (a *AnswerSet) Values() []string {
	values := make([]string, len(a.order))
	for i, id := range a.order {
		values[i] = a.selected[id]
	}
	return values
}

// Resolve returns a new set whose order follows the given question
// sequence rather than insertion order. Unanswered questions are skipped;
// an answer referencing a question not in the sequence is an error.
func (a *AnswerSet) Resolve(questions []domain.Question) (*AnswerSet, error) {
	known := make(map[string]bool, len(questions))
	resolved := NewAnswerSet()
	for _, q := range questions {
		known[q.ID] = true
		if v, ok := a.selected[q.ID]; ok {
			resolved.Set(q.ID, v)
		}
	}
	for _, id := range a.order {
		if !known[id] {
			return nil, fmt.Errorf("answer references unknown question %q", id)
		}
	}
	return resolved, nil
}

// InvalidAnswerError reports a selected option that is not a numeric index.
// It is a data-integrity fault raised before any network call.
type InvalidAnswerError struct {
	QuestionID string
	Value      string
}

func (e *InvalidAnswerError) Error() string {
	return fmt.Sprintf("answer for question %q is not a numeric option index: %q", e.QuestionID, e.Value)
}

// indices parses the selected options, in insertion order, as integer
// option indices.
func (a *AnswerSet) indices() ([]int, error) {
	indices := make([]int, len(a.order))
	for i, id := range a.order {
		n, err := strconv.Atoi(a.selected[id])
		if err != nil {
			return nil, &InvalidAnswerError{QuestionID: id, Value: a.selected[id]}
		}
		indices[i] = n
	}
	return indices, nil
}
