package zap

import (
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/oggyb/ballou-sms/internal/logger"
)

const callerSkip = 1

var _ logger.Full = (*Logger)(nil)

// Logger is a zap sugared logger exposed through the logger interfaces.
type Logger struct {
	l  *zap.Logger
	sl *zap.SugaredLogger
}

// New builds a development logger when dev is true, a JSON production logger
// otherwise. Unknown levels fall back to info.
func New(level string, dev bool) *Logger {
	var cfg zap.Config

	if dev {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	switch level {
	case "error":
		cfg.Level.SetLevel(zap.ErrorLevel)
	case "warn":
		cfg.Level.SetLevel(zap.WarnLevel)
	case "debug":
		cfg.Level.SetLevel(zap.DebugLevel)
	default:
		cfg.Level.SetLevel(zap.InfoLevel)
	}

	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder

	l, err := cfg.Build(zap.AddCallerSkip(callerSkip))
	if err != nil {
		log.Fatal(err)
	}

	return FromZap(l)
}

// NewNop returns a logger that discards everything. Handy in tests.
func NewNop() *Logger {
	return FromZap(zap.NewNop())
}

// FromZap wraps an existing zap logger.
func FromZap(l *zap.Logger) *Logger {
	return &Logger{
		l:  l,
		sl: l.Sugar(),
	}
}

// Named returns a child logger tagged with the component name.
func (o *Logger) Named(name string) *Logger {
	return FromZap(o.l.Named(name))
}

func (o *Logger) Debugw(msg string, args ...any) {
	o.sl.Debugw(msg, args...)
}

func (o *Logger) Infow(msg string, args ...any) {
	o.sl.Infow(msg, args...)
}

func (o *Logger) Warnw(msg string, args ...any) {
	o.sl.Warnw(msg, args...)
}

func (o *Logger) Errorw(msg string, err any, args ...any) {
	args = append(args, "error", err)
	o.sl.Errorw(msg, args...)
}

func (o *Logger) Fatalw(msg string, err any, args ...any) {
	args = append(args, "error", err)
	o.sl.Fatalw(msg, args...)
}

func (o *Logger) Sync() {
	if err := o.sl.Sync(); err != nil {
		log.Println("Fail to sync zap-logger", err)
	}
}
