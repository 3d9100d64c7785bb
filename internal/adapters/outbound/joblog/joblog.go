package joblog

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/groundtrack/runcheck/internal/domain"
)

// Writer implements domain.JobLogger by appending JSON lines to a job log
// file, one entry per violation plus a closing summary. Processing
// operators archive these logs with the job output.
type Writer struct {
	log      *zap.Logger
	workflow string
}

// New opens (or creates) the job log at path. workflow names the
// processing stage being validated and is stamped on every entry.
func New(path, workflow string) (*Writer, error) {
	cfg := zap.NewProductionConfig()
	cfg.OutputPaths = []string{path}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.EncoderConfig.TimeKey = "time"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true

	log, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("opening job log %s: %w", path, err)
	}
	return &Writer{log: log, workflow: workflow}, nil
}

// LogReport writes every violation and a summary entry for the run.
func (w *Writer) LogReport(report *domain.Report) error {
	for _, viol := range report.Violations {
		fields := []zap.Field{
			zap.String("workflow", w.workflow),
			zap.String("config", report.ConfigFile),
			zap.String("path", viol.Path),
		}
		if viol.Expected != "" {
			fields = append(fields, zap.String("expected", viol.Expected), zap.String("actual", viol.Actual))
		}
		if len(viol.Allowed) > 0 {
			fields = append(fields, zap.Strings("allowed", viol.Allowed), zap.String("actual", viol.Actual))
		}
		w.log.Warn(viol.Reason, fields...)
	}

	fields := []zap.Field{
		zap.String("workflow", w.workflow),
		zap.String("config", report.ConfigFile),
		zap.String("status", report.Status),
		zap.Int("violations", len(report.Violations)),
	}
	if report.CommitHash != "" {
		fields = append(fields, zap.String("commit", report.CommitHash))
	}
	w.log.Info("validation complete", fields...)
	return nil
}

// Close flushes buffered entries.
func (w *Writer) Close() error {
	// Sync on a plain file can return EINVAL on some platforms; entries
	// are already written at this point.
	_ = w.log.Sync()
	return nil
}
