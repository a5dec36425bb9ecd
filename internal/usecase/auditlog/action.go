package auditlog

import (
	"context"
	"fmt"
	"time"

	"course-sectioning/internal/domain/student"

	"github.com/google/uuid"
)

// Result is the outcome of one resectioning attempt.
type Result string

const (
	// ResultSuccess: a new enrollment was committed.
	ResultSuccess Result = "SUCCESS"
	// ResultNull: a change was committed that left the request unassigned.
	ResultNull Result = "NULL"
	// ResultFalse: nothing changed, nothing was persisted.
	ResultFalse Result = "FALSE"
	// ResultFailure: the attempt was aborted and compensated.
	ResultFailure Result = "FAILURE"
)

type EnrollmentType string

const (
	EnrollmentPrevious EnrollmentType = "PREVIOUS"
	EnrollmentComputed EnrollmentType = "COMPUTED"
	EnrollmentStored   EnrollmentType = "STORED"
)

type Level string

const (
	LevelDebug Level = "DEBUG"
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelFatal Level = "FATAL"
)

const (
	EntityStudent  = "STUDENT"
	EntityOffering = "OFFERING"
)

const OperationCheckOffering = "check-offering"

type Entity struct {
	Type       string `json:"type"`
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id,omitempty"`
	Name       string `json:"name,omitempty"`
}

type EnrollmentSnapshot struct {
	Type       EnrollmentType      `json:"type"`
	Enrollment *student.Enrollment `json:"enrollment"`
}

type Option struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type Message struct {
	Level     Level     `json:"level"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Action is the structured record of one resectioning attempt, or of an
// offering-level failure when Student is nil.
type Action struct {
	ID          uuid.UUID            `json:"id"`
	Operation   string               `json:"operation"`
	Student     *Entity              `json:"student,omitempty"`
	Offering    *Entity              `json:"offering,omitempty"`
	Request     *student.Request     `json:"request,omitempty"`
	Enrollments []EnrollmentSnapshot `json:"enrollments,omitempty"`
	Options     []Option             `json:"options,omitempty"`
	Result      Result               `json:"result"`
	CPUTime     time.Duration        `json:"cpu_time"`
	StartTime   time.Time            `json:"start_time"`
	EndTime     time.Time            `json:"end_time"`
	Messages    []Message            `json:"messages,omitempty"`
}

// NewAction starts a record at the given wall-clock time.
func NewAction(operation string, start time.Time) *Action {
	return &Action{
		ID:        uuid.New(),
		Operation: operation,
		StartTime: start,
	}
}

func (a *Action) WithStudent(st *student.Student) *Action {
	if st != nil {
		a.Student = &Entity{Type: EntityStudent, ID: st.ID, ExternalID: st.ExternalID, Name: st.Name}
	}
	return a
}

func (a *Action) WithOffering(id int64, name string) *Action {
	a.Offering = &Entity{Type: EntityOffering, ID: id, Name: name}
	return a
}

// WithRequest stores a copy so later assignments do not rewrite the audit trail.
func (a *Action) WithRequest(req *student.Request) *Action {
	a.Request = req.Clone()
	return a
}

func (a *Action) AddEnrollment(t EnrollmentType, e *student.Enrollment) {
	if e == nil {
		return
	}
	a.Enrollments = append(a.Enrollments, EnrollmentSnapshot{Type: t, Enrollment: e.Clone()})
}

// Enrollment returns the last recorded enrollment of the given type.
func (a *Action) Enrollment(t EnrollmentType) *student.Enrollment {
	for i := len(a.Enrollments) - 1; i >= 0; i-- {
		if a.Enrollments[i].Type == t {
			return a.Enrollments[i].Enrollment
		}
	}
	return nil
}

func (a *Action) AddOption(key, value string) {
	a.Options = append(a.Options, Option{Key: key, Value: value})
}

func (a *Action) Option(key string) (string, bool) {
	for _, o := range a.Options {
		if o.Key == key {
			return o.Value, true
		}
	}
	return "", false
}

func (a *Action) AddMessage(level Level, at time.Time, format string, args ...any) {
	a.Messages = append(a.Messages, Message{Level: level, Text: fmt.Sprintf(format, args...), Timestamp: at})
}

// HasMessage reports whether a message of the level was recorded.
func (a *Action) HasMessage(level Level) bool {
	for _, m := range a.Messages {
		if m.Level == level {
			return true
		}
	}
	return false
}

// Finish stamps the outcome, the consumed CPU time and the wall-clock end.
func (a *Action) Finish(result Result, cpu time.Duration, end time.Time) {
	a.Result = result
	a.CPUTime = cpu
	a.EndTime = end
}

// Sink receives finished actions. Implementations must not retain the action
// for mutation.
type Sink interface {
	Record(ctx context.Context, a *Action) error
}
