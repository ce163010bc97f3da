// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sync"
)

// Logger defines the interface for logging operations.
type Logger interface {
	// Printf formats and prints a log message.
	Printf(format string, v ...any)
	// Println prints a log message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// New returns the logger for the given switches: a silent JSONLogger unless
// verbose is set, then a JSONLogger if structured is set and a CLILogger otherwise.
func New(verbose, structured bool) Logger {
	switch {
	case !verbose:
		return NewJSONLogger(os.Stderr, true)
	case structured:
		return NewJSONLogger(os.Stderr, false)
	default:
		return NewCLILogger()
	}
}

// CLILogger implements Logger using the standard log package.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a new CLI logger writing to stderr with timestamps disabled.
func NewCLILogger() *CLILogger {
	l := log.New(os.Stderr, "", 0)
	return &CLILogger{logger: l}
}

// Printf formats and prints a log message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a log message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger writes one JSON object per message:
//
//	{"level":"info","message":"..."}
//
// It is silent when constructed with silent=true. JSONLogger is safe for
// concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	silent bool
}

// NewJSONLogger creates a new structured logger. A nil writer discards output.
func NewJSONLogger(writer io.Writer, silent bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{
		writer: writer,
		silent: silent,
	}
}

// Printf formats and logs a structured message.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs a structured message built with fmt.Sprint semantics.
func (j *JSONLogger) Println(v ...any) {
	if j.silent {
		return
	}
	j.write(fmt.Sprint(v...))
}

func (j *JSONLogger) write(msg string) {
	data, _ := json.Marshal(struct {
		Level   string `json:"level"`
		Message string `json:"message"`
	}{Level: "info", Message: msg})

	j.mu.Lock()
	fmt.Fprintln(j.writer, string(data))
	j.mu.Unlock()
}

// SetOutput sets the output destination. A nil writer discards output.
func (j *JSONLogger) SetOutput(w io.Writer) {
	j.mu.Lock()
	defer j.mu.Unlock()

	if w == nil {
		j.writer = io.Discard
	} else {
		j.writer = w
	}
}
