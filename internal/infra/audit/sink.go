package audit

import (
	"context"
	"errors"
	"log/slog"

	"course-sectioning/internal/infra/db"
	"course-sectioning/internal/usecase/auditlog"
)

// SlogSink writes one structured log line per action.
type SlogSink struct {
	logger *slog.Logger
}

func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

func (s *SlogSink) Record(ctx context.Context, a *auditlog.Action) error {
	attrs := []slog.Attr{
		slog.String("action_id", a.ID.String()),
		slog.String("operation", a.Operation),
		slog.String("result", string(a.Result)),
		slog.Duration("cpu_time", a.CPUTime),
		slog.Duration("wall_time", a.EndTime.Sub(a.StartTime)),
	}
	if a.Student != nil {
		attrs = append(attrs, slog.Int64("student_id", a.Student.ID), slog.String("student", a.Student.ExternalID))
	}
	if a.Offering != nil {
		attrs = append(attrs, slog.Int64("offering_id", a.Offering.ID), slog.String("offering", a.Offering.Name))
	}
	for _, o := range a.Options {
		attrs = append(attrs, slog.String("option."+o.Key, o.Value))
	}
	if e := a.Enrollment(auditlog.EnrollmentStored); e != nil {
		attrs = append(attrs, slog.String("enrollment", e.String()))
	}
	if n := len(a.Messages); n > 0 {
		attrs = append(attrs, slog.String("last_message", a.Messages[n-1].Text))
	}

	level := slog.LevelInfo
	if a.Result == auditlog.ResultFailure {
		level = slog.LevelError
	}
	s.logger.LogAttrs(ctx, level, "sectioning action", attrs...)
	return nil
}

type ActionWriter interface {
	Insert(ctx context.Context, tx db.DBTX, a *auditlog.Action) error
}

// PostgresSink stores actions in sectioning_actions, outside of any
// candidate transaction so that failures are recorded too.
type PostgresSink struct {
	db     db.DBTX
	writer ActionWriter
}

func NewPostgresSink(dbtx db.DBTX, writer ActionWriter) *PostgresSink {
	return &PostgresSink{db: dbtx, writer: writer}
}

func (s *PostgresSink) Record(ctx context.Context, a *auditlog.Action) error {
	return s.writer.Insert(ctx, s.db, a)
}

// MultiSink fans an action out to every sink and joins their errors.
type MultiSink []auditlog.Sink

func NewMultiSink(sinks ...auditlog.Sink) MultiSink {
	return MultiSink(sinks)
}

func (m MultiSink) Record(ctx context.Context, a *auditlog.Action) error {
	var errs []error
	for _, s := range m {
		if err := s.Record(ctx, a); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
