package utils

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// Level orders log severities; messages below the logger's level are dropped.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelError
)

// ParseLevel maps a configuration value to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

type GeneratorLogger struct {
	file       *os.File
	logger     *log.Logger
	multiWrite io.Writer
	level      Level
}

// NewGeneratorLogger writes diagnostics to out and, when logPath is not
// empty, appends them to that file as well.
func NewGeneratorLogger(out io.Writer, level Level, logPath string) (*GeneratorLogger, error) {
	var file *os.File
	multiWrite := out

	if logPath != "" {
		if dir := filepath.Dir(logPath); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory: %w", err)
			}
		}

		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file: %w", err)
		}
		file = f
		multiWrite = io.MultiWriter(out, file)
	}

	return &GeneratorLogger{
		file:       file,
		logger:     log.New(multiWrite, "", 0),
		multiWrite: multiWrite,
		level:      level,
	}, nil
}

func (gl *GeneratorLogger) LogInfo(format string, v ...interface{}) {
	gl.log(LevelInfo, "INFO", format, v...)
}

func (gl *GeneratorLogger) LogError(format string, v ...interface{}) {
	gl.log(LevelError, "ERROR", format, v...)
}

func (gl *GeneratorLogger) LogDebug(format string, v ...interface{}) {
	gl.log(LevelDebug, "DEBUG", format, v...)
}

func (gl *GeneratorLogger) log(level Level, name string, format string, v ...interface{}) {
	if level < gl.level {
		return
	}
	message := fmt.Sprintf(format, v...)
	gl.logger.Printf("[%s] %s", name, message)
}

func (gl *GeneratorLogger) Close() error {
	if gl.file == nil {
		return nil
	}
	return gl.file.Close()
}
