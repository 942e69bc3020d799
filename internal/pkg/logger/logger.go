package logger

import (
	"context"
	"fmt"
	"strings"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/app/middleware"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/models"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	serviceName string
)

func init() {

	err := configs.LoadEnv()
	if err != nil {
		fmt.Printf("error loading .env file : %v", err)
	}
	serviceName = configs.SERVICE_NAME
	if serviceName == "" {
		serviceName = "apifintech"
	}

	var logLevel zapcore.Level
	switch strings.ToLower(configs.LOG_LEVEL) {
	case "debug":
		logLevel = zap.DebugLevel
	case "info":
		logLevel = zap.InfoLevel
	case "warn":
		logLevel = zap.WarnLevel
	case "error":
		logLevel = zap.ErrorLevel
	case "panic":
		logLevel = zap.PanicLevel
	default:
		logLevel = zap.InfoLevel
	}

	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(logLevel)
	config.Encoding = "json"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "log_level"
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.TimeKey = "timestamp"
	config.OutputPaths = []string{"stdout"}
	config.EncoderConfig.CallerKey = ""
	config.EncoderConfig.StacktraceKey = ""
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder

	log, _ = config.Build(zap.AddCallerSkip(1))
}

func Info(args ...interface{}) {
	logMessage(zap.InfoLevel, args...)
}

func Debug(args ...interface{}) {
	logMessage(zap.DebugLevel, args...)
}

func Error(args ...interface{}) {
	logMessage(zap.ErrorLevel, args...)
}

func Warn(args ...interface{}) {
	logMessage(zap.WarnLevel, args...)
}

func Panic(args ...interface{}) {
	logMessage(zap.PanicLevel, args...)
}

// logMessage accepts an optional leading context.Context followed by a
// printf-style message. When a context is present, request and trace
// identifiers are attached to the entry.
func logMessage(level zapcore.Level, args ...interface{}) {
	var msg string
	var fields []zapcore.Field
	var ctx context.Context

	if len(args) > 0 {
		if firstArg, ok := args[0].(context.Context); ok {
			ctx = firstArg
			msg = formatMessage(args[1:]...)
		} else {
			msg = formatMessage(args...)
		}
	}

	fields = append(fields, extractEssentialFields(ctx)...)

	switch level {
	case zap.DebugLevel:
		log.Debug(msg, fields...)
	case zap.InfoLevel:
		log.Info(msg, fields...)
	case zap.WarnLevel:
		log.Warn(msg, fields...)
	case zap.ErrorLevel:
		log.Error(msg, fields...)
	case zap.PanicLevel:
		log.Panic(msg, fields...)
	}
}

func formatMessage(args ...interface{}) string {
	if len(args) == 0 {
		return ""
	}
	msg, ok := args[0].(string)
	if !ok {
		msg = fmt.Sprintf("%v", args[0])
	}

	if len(args) > 1 {
		msg = fmt.Sprintf(msg, args[1:]...)
	}
	return msg
}

func extractEssentialFields(ctx context.Context) []zapcore.Field {
	var fields []zapcore.Field

	if ctx != nil {
		if details, ok := ctx.Value(middleware.LogDetailsKey).(models.RequestDetails); ok {
			fields = append(fields, zap.String("request_id", details.RequestID))
		}
		span := trace.SpanFromContext(ctx)
		if span != nil {
			spanContext := span.SpanContext()
			if spanContext.HasTraceID() {
				fields = append(fields, zap.String("trace_id", spanContext.TraceID().String()))
			}
		}

		fields = append(fields, zap.String("service_name", serviceName))
	}

	return fields
}
