package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns the CLI logger. Status and debug lines go to w (stderr
// in main) so that calendars written to stdout stay clean.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
		Prefix:          appName,
	})
}

// progress times one render from option resolution to the written file.
type progress struct {
	logger  *log.Logger
	subject string
	begun   time.Time
}

// newProgress starts timing the render described by subject, e.g. "2024-02".
func newProgress(l *log.Logger, subject string) *progress {
	return &progress{logger: l, subject: subject, begun: time.Now()}
}

// done logs that the calendar was written to dest.
func (p *progress) done(dest string) {
	p.logger.Info("wrote calendar",
		"calendar", p.subject,
		"to", dest,
		"elapsed", time.Since(p.begun).Round(time.Microsecond))
}

type loggerKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// loggerFromContext falls back to log.Default when no logger is attached,
// e.g. for commands run outside RootCommand.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
