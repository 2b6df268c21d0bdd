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
	"strings"
	"sync"

	"github.com/H0llyW00dzZ/syscall-lab/src/internal/helper/gc"
)

// Logger defines the interface for result output.
type Logger interface {
	// Printf formats and prints a message.
	Printf(format string, v ...any)
	// Println prints a message with a newline.
	Println(v ...any)
	// SetOutput sets the output destination for the logger.
	SetOutput(w io.Writer)
}

// CLILogger implements Logger using the standard log package without
// timestamps or prefixes, so command output looks like plain printf output.
type CLILogger struct{ logger *log.Logger }

// NewCLILogger creates a CLI logger writing to w, or to [os.Stdout] when w is nil.
func NewCLILogger(w io.Writer) *CLILogger {
	if w == nil {
		w = os.Stdout
	}
	return &CLILogger{logger: log.New(w, "", 0)}
}

// Printf formats and prints a message using fmt.Printf semantics.
func (c *CLILogger) Printf(format string, v ...any) { c.logger.Printf(format, v...) }

// Println prints a message with a newline.
func (c *CLILogger) Println(v ...any) { c.logger.Println(v...) }

// SetOutput sets the output destination for the CLI logger.
func (c *CLILogger) SetOutput(w io.Writer) { c.logger.SetOutput(w) }

// JSONLogger implements Logger by writing {"level":"info","message":...}
// objects, one per line. It is selected by the --json flag.
//
// JSONLogger is safe for concurrent use by multiple goroutines.
type JSONLogger struct {
	mu     sync.Mutex
	writer io.Writer
	quiet  bool
}

// entry is the JSON shape of one line.
type entry struct {
	Level   string `json:"level"`
	Message string `json:"message"`
}

// NewJSONLogger creates a JSON logger. A nil writer discards output; quiet
// suppresses output entirely.
func NewJSONLogger(writer io.Writer, quiet bool) *JSONLogger {
	if writer == nil {
		writer = io.Discard
	}
	return &JSONLogger{writer: writer, quiet: quiet}
}

// Printf formats and logs a message as a JSON line.
func (j *JSONLogger) Printf(format string, v ...any) {
	if j.quiet {
		return
	}
	j.write(fmt.Sprintf(format, v...))
}

// Println logs the operands, spaced as by fmt.Sprintln, as a JSON line.
func (j *JSONLogger) Println(v ...any) {
	if j.quiet {
		return
	}
	j.write(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}

func (j *JSONLogger) write(msg string) {
	gc.With(func(buf gc.Buffer) {
		// Encode appends the newline.
		if err := json.NewEncoder(buf).Encode(entry{Level: "info", Message: msg}); err != nil {
			return
		}

		j.mu.Lock()
		_, _ = j.writer.Write(buf.Bytes())
		j.mu.Unlock()
	})
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
