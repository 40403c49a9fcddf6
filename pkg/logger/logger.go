package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Options параметры логгера
type Options struct {
	File       string // путь к файлу логов, пусто - только stdout
	Level      string // debug, info, warn, error
	Format     string // text или json
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Service    string
}

// Logger printf-логгер поверх slog с ротацией файла через lumberjack
type Logger struct {
	slog *slog.Logger
	file *lumberjack.Logger
}

// New создает логгер: stdout всегда, файл - если указан
func New(opts Options) (*Logger, error) {
	level, err := parseLevel(opts.Level)
	if err != nil {
		return nil, err
	}

	writers := []io.Writer{os.Stdout}

	var file *lumberjack.Logger
	if opts.File != "" {
		file = &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		}
		writers = append(writers, file)
	}

	return newWithWriter(io.MultiWriter(writers...), level, opts.Format, opts.Service, file), nil
}

// NewWriter создает логгер, пишущий в произвольный writer (используется в тестах)
func NewWriter(w io.Writer, level string) *Logger {
	lvl, err := parseLevel(level)
	if err != nil {
		lvl = slog.LevelInfo
	}
	return newWithWriter(w, lvl, "text", "", nil)
}

// Nop логгер, отбрасывающий все сообщения
func Nop() *Logger {
	return newWithWriter(io.Discard, slog.LevelError, "text", "", nil)
}

func newWithWriter(w io.Writer, level slog.Level, format, service string, file *lumberjack.Logger) *Logger {
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.EqualFold(format, "json") {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}

	l := slog.New(handler)
	if service != "" {
		l = l.With(slog.String("service", service))
	}

	return &Logger{slog: l, file: file}
}

func (l *Logger) Debug(format string, v ...interface{}) {
	l.slog.Debug(fmt.Sprintf(format, v...))
}

func (l *Logger) Info(format string, v ...interface{}) {
	l.slog.Info(fmt.Sprintf(format, v...))
}

func (l *Logger) Warn(format string, v ...interface{}) {
	l.slog.Warn(fmt.Sprintf(format, v...))
}

func (l *Logger) Error(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
}

// Fatal пишет ошибку и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.slog.Error(fmt.Sprintf(format, v...))
	_ = l.Close()
	os.Exit(1)
}

// Close закрывает файл логов, если он открыт
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("logger: unknown level %q", s)
	}
}
