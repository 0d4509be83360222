package logger

import "context"

var Default Logger

func Debug(ctx context.Context, msg string, ds ...LoggingDetail) {
	Default.Debug(ctx, msg, ds...)
}
