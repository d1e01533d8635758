// Package output writes git-branch-name's diagnostics.
//
// Standard output carries only the resolved name; everything else goes
// through Splog to the diagnostic stream and, optionally, a rotating log file.
package output

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Prefix starts every console diagnostic line
const Prefix = "git-branch-name: "

// consoleHandler prints each record as a single prefixed line, the way the
// command reports failures. Attributes and groups are not rendered.
type consoleHandler struct {
	writer io.Writer
	debug  bool
	quiet  bool
	styles *styles
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	if h.quiet {
		return false
	}
	return level > slog.LevelDebug || h.debug
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	_, err := io.WriteString(h.writer, h.styles.render(record.Level, Prefix+record.Message)+"\n")
	return err
}

func (h *consoleHandler) WithAttrs(_ []slog.Attr) slog.Handler { return h }

func (h *consoleHandler) WithGroup(_ string) slog.Handler { return h }

// Rotation limits of the log file; each can be raised through the environment.
const (
	defaultLogMaxSizeMB  = 1
	defaultLogMaxBackups = 2
	defaultLogMaxAgeDays = 30
)

// envInt reads a non-negative integer from the environment, falling back to def.
func envInt(name string, def int) int {
	n, err := strconv.Atoi(os.Getenv(name))
	if err != nil || n < 0 {
		return def
	}
	return n
}

// newLogFile opens the rotating log at path, creating its directory.
func newLogFile(path string) (*lumberjack.Logger, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    envInt("GIT_BRANCH_NAME_LOG_MAX_SIZE", defaultLogMaxSizeMB),
		MaxBackups: envInt("GIT_BRANCH_NAME_LOG_MAX_BACKUPS", defaultLogMaxBackups),
		MaxAge:     envInt("GIT_BRANCH_NAME_LOG_MAX_AGE", defaultLogMaxAgeDays),
	}, nil
}

// fileHandler records every level with a millisecond timestamp, unprefixed.
func fileHandler(w io.Writer) slog.Handler {
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String(a.Key, a.Value.Time().Format("2006-01-02 15:04:05.000"))
			}
			return a
		},
	})
}

// teeHandler sends a record to the console and to the log file.
type teeHandler struct {
	console slog.Handler
	file    slog.Handler
}

func (h *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.console.Enabled(ctx, level) || h.file.Enabled(ctx, level)
}

func (h *teeHandler) Handle(ctx context.Context, record slog.Record) error {
	if h.console.Enabled(ctx, record.Level) {
		if err := h.console.Handle(ctx, record); err != nil {
			return err
		}
	}
	return h.file.Handle(ctx, record)
}

func (h *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &teeHandler{console: h.console.WithAttrs(attrs), file: h.file.WithAttrs(attrs)}
}

func (h *teeHandler) WithGroup(name string) slog.Handler {
	return &teeHandler{console: h.console.WithGroup(name), file: h.file.WithGroup(name)}
}

// Options configures a Splog
type Options struct {
	// Writer receives diagnostics; os.Stderr when nil
	Writer io.Writer
	// Quiet suppresses all console output; the log file is unaffected
	Quiet bool
	// Debug enables debug records on the console
	Debug bool
	// LogFilePath enables a rotating file log holding every record
	LogFilePath string
}

// Splog is the diagnostic logger of one run
type Splog struct {
	logger  *slog.Logger
	logFile io.Closer
}

// NewSplogWithOptions creates a logger on opts.Writer, teeing into a log file
// when opts.LogFilePath is set.
func NewSplogWithOptions(opts Options) (*Splog, error) {
	writer := opts.Writer
	if writer == nil {
		writer = os.Stderr
	}

	var handler slog.Handler = &consoleHandler{
		writer: writer,
		debug:  opts.Debug,
		quiet:  opts.Quiet,
		styles: newStyles(writer),
	}
	splog := &Splog{}

	if opts.LogFilePath != "" {
		logFile, err := newLogFile(opts.LogFilePath)
		if err != nil {
			return nil, err
		}
		splog.logFile = logFile
		handler = &teeHandler{console: handler, file: fileHandler(logFile)}
	}

	splog.logger = slog.New(handler)
	return splog, nil
}

func (s *Splog) log(level slog.Level, format string, args []interface{}) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	s.logger.Log(context.Background(), level, msg)
}

// Error writes a one-line diagnostic
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Error(format string, args ...interface{}) {
	s.log(slog.LevelError, format, args)
}

// Debug writes a debug message
// nolint // format string validation is handled internally via fmt.Sprintf
func (s *Splog) Debug(format string, args ...interface{}) {
	s.log(slog.LevelDebug, format, args)
}

// Close closes the log file if one was opened
func (s *Splog) Close() error {
	if s.logFile != nil {
		return s.logFile.Close()
	}
	return nil
}
