package logger

import (
	"os"
	"path/filepath"

	"github.com/natefinch/lumberjack"
	"github.com/rs/xid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type ZapOptions struct {
	// File enables a rotated JSON log next to the console output.
	File string
	// RunID tags every entry; a fresh xid is used when empty.
	RunID string
}

var (
	sugarLogger *zap.SugaredLogger
	zapLevel    = zap.NewAtomicLevelAt(zap.InfoLevel)
)

// StartZap switches the package to the zap driver and returns the run id.
func StartZap(opts ZapOptions) (string, error) {
	runID := opts.RunID
	if runID == "" {
		runID = xid.New().String()
	}

	consoleCfg := zap.NewDevelopmentEncoderConfig()
	consoleCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewConsoleEncoder(consoleCfg), zapcore.Lock(os.Stdout), zapLevel),
	}

	if opts.File != "" {
		if err := os.MkdirAll(filepath.Dir(opts.File), os.ModePerm); err != nil {
			return "", err
		}
		hook := &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    64, // megabytes
			MaxBackups: 10,
			MaxAge:     7, // days
			Compress:   false,
		}
		cores = append(cores, zapcore.NewCore(
			zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(hook), zapLevel))
	}

	logger := zap.New(zapcore.NewTee(cores...)).With(zap.String("run", runID))
	sugarLogger = logger.Sugar()
	SetLogger(LD_ZAP)
	return runID, nil
}

func syncZapLevel(ll int32) {
	switch ll {
	case LL_DEBUG:
		zapLevel.SetLevel(zap.DebugLevel)
	case LL_INFO:
		zapLevel.SetLevel(zap.InfoLevel)
	case LL_WARNING:
		zapLevel.SetLevel(zap.WarnLevel)
	case LL_ERROR:
		zapLevel.SetLevel(zap.ErrorLevel)
	}
}
