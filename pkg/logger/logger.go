package logger

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	dirMode  os.FileMode = 0o750
	fileMode os.FileMode = 0o600
)

type Logger struct {
	l     *zap.Logger
	Info  func(msg string, fields ...zap.Field)
	Debug func(msg string, fields ...zap.Field)
	Warn  func(msg string, fields ...zap.Field)
	Error func(msg string, fields ...zap.Field)
}

type loggerConfigurator struct {
	level      string
	logPath    string
	isTerminal bool
	isFile     bool
}

type option func(*loggerConfigurator)

// SetLevel задает уровень логирования.
func SetLevel(level string) option {
	return func(l *loggerConfigurator) {
		if level != "" {
			l.level = level
		}
	}
}

// SetLogPath включает запись лога в файл.
func SetLogPath(path string) option {
	return func(l *loggerConfigurator) {
		if path != "" {
			l.logPath = path
			l.isFile = true
		}
	}
}

func SetEnableTerminalOutput(t bool) option {
	return func(lc *loggerConfigurator) {
		lc.isTerminal = t
	}
}

// New создает логгер сервиса.
func New(options ...option) (*Logger, error) {
	l := &Logger{}
	cfg := loggerConfigurator{
		level:      "info",
		isTerminal: true,
		isFile:     false,
	}

	for _, opt := range options {
		opt(&cfg)
	}

	if cfg.isFile {
		if err := os.MkdirAll(filepath.Dir(cfg.logPath), dirMode); err != nil {
			log.Println("failed create directory for logs")
		}
	}

	z, err := prepareCore(cfg)
	if err != nil {
		return nil, err
	}
	l.l = z
	l.Info = z.Info
	l.Debug = z.Debug
	l.Warn = z.Warn
	l.Error = z.Error

	return l, nil
}

func prepareCore(cfg loggerConfigurator) (*zap.Logger, error) {
	level, err := zap.ParseAtomicLevel(cfg.level)
	if err != nil {
		return nil, fmt.Errorf("failed parse level: %w", err)
	}

	productionCfg := zap.NewProductionEncoderConfig()
	productionCfg.TimeKey = "timestamp"
	productionCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	developmentCfg := zap.NewDevelopmentEncoderConfig()
	developmentCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	outputs := []zapcore.Core{}
	if cfg.isFile {
		f, err := os.OpenFile(cfg.logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fileMode)
		if err != nil {
			return nil, fmt.Errorf("failed create log file: %w", err)
		}
		outputs = append(outputs, zapcore.NewCore(zapcore.NewJSONEncoder(productionCfg), zapcore.AddSync(f), level))
	}
	if cfg.isTerminal {
		outputs = append(outputs, zapcore.NewCore(zapcore.NewConsoleEncoder(developmentCfg), zapcore.AddSync(os.Stdout), level))
	}

	core := zapcore.NewTee(outputs...)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

func (l *Logger) Sync() {
	_ = l.l.Sync()
}
