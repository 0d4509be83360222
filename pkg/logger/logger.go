// Package logger provides tooling for structured logging.
package logger

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"

	"go.llib.dev/testcase/clock"
)

type Logger struct {
	Out io.Writer
	// Level is the minimum level that is written to Out.
	// When empty, LevelInfo is used.
	Level Level

	Separator string

	MessageKey   string
	LevelKey     string
	TimestampKey string

	// MarshalFunc is used to serialise the logging message event.
	// When nil it defaults to JSON format.
	MarshalFunc func(any) ([]byte, error)
}

const (
	levelDefaultKey   = "level"
	messageDefaultKey = "message"
	timestampKey      = "timestamp"
)

// outLock serialises writes, so concurrent log entries never interleave on the same writer.
var outLock sync.Mutex

func (l Logger) Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelDebug, msg, ds)
}

func (l Logger) Info(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelInfo, msg, ds)
}

func (l Logger) Warn(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelWarn, msg, ds)
}

func (l Logger) Error(ctx context.Context, msg string, ds ...LoggingDetail) {
	l.log(ctx, LevelError, msg, ds)
}

func (l Logger) log(ctx context.Context, level Level, msg string, ds []LoggingDetail) {
	if !isLevelEnabled(l.Level, level) {
		return
	}
	entry := l.toLogEntry(level, msg, ds, clock.Now())
	bs, err := l.marshalFunc()(entry)
	if err != nil {
		return
	}
	outLock.Lock()
	defer outLock.Unlock()
	_, _ = l.writer().Write(append(bs, []byte(l.separator())...))
}

func (l Logger) toLogEntry(level Level, msg string, ds []LoggingDetail, at time.Time) logEntry {
	le := make(logEntry)
	for _, ld := range ds {
		if ld == nil {
			continue
		}
		ld.addTo(le)
	}
	le[coalesce(l.LevelKey, levelDefaultKey)] = level
	le[coalesce(l.MessageKey, messageDefaultKey)] = msg
	le[coalesce(l.TimestampKey, timestampKey)] = at.Format(time.RFC3339)
	return le
}

func (l Logger) writer() io.Writer {
	if l.Out != nil {
		return l.Out
	}
	return os.Stdout
}

func (l Logger) marshalFunc() func(any) ([]byte, error) {
	if l.MarshalFunc != nil {
		return l.MarshalFunc
	}
	return json.Marshal
}

func (l Logger) separator() string {
	if l.Separator != "" {
		return l.Separator
	}
	if os.PathSeparator == '\\' {
		return "\r\n"
	}
	return "\n"
}

func coalesce(key, defaultKey string) string {
	if key == "" {
		return defaultKey
	}
	return key
}
