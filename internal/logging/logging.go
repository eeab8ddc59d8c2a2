package logging

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the structured logger shared by the CLI commands.
type Logger struct {
	*zap.SugaredLogger
}

// NewLogger logs to stderr. Verbose switches to debug level with caller
// information.
func NewLogger(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	if !verbose {
		encoderCfg.TimeKey = ""
		encoderCfg.CallerKey = ""
	}

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	opts := []zap.Option{}
	if verbose {
		opts = append(opts, zap.AddCaller())
	}

	return &Logger{SugaredLogger: zap.New(core, opts...).Sugar()}
}

// NewNop returns a logger that discards everything.
func NewNop() *Logger {
	return &Logger{SugaredLogger: zap.NewNop().Sugar()}
}

func (l *Logger) Sync() {
	_ = l.SugaredLogger.Sync()
}
