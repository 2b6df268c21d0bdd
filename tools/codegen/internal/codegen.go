// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package codegen

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime"
	"text/template"
	"unicode"
	"unicode/utf8"
)

// Config holds the generator settings from config/errno.json.
type Config struct {
	// Package is the package clause of the generated file.
	Package string `json:"package"`
	// Output is the destination, relative to the repository root.
	Output string `json:"output"`
	// BuildTag constrains the generated file to hosts sharing the numbering.
	BuildTag string `json:"buildTag"`
	// MaxErrno is the highest error number included.
	MaxErrno int `json:"maxErrno"`
}

// ErrnoEntry is one generated table row.
type ErrnoEntry struct {
	Code int
	Name string
	Desc string
}

// tableData is the template input.
type tableData struct {
	Config
	Entries []ErrnoEntry
}

// getCodegenDir returns the absolute path to the codegen directory
func getCodegenDir() string {
	_, currentFile, _, _ := runtime.Caller(0)
	return filepath.Dir(filepath.Dir(currentFile)) // Go up from internal/ to codegen/
}

// getTemplatePath returns the path to a template file
func getTemplatePath(templateName string) string {
	return filepath.Join(getCodegenDir(), "templates", templateName)
}

// getOutputPath resolves a repository-relative output path
func getOutputPath(outputName string) string {
	return filepath.Join(getCodegenDir(), "..", "..", filepath.FromSlash(outputName))
}

// loadConfig loads and validates the generator settings from path.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading errno config from %s: %w", path, err)
	}

	config := &Config{}
	if err := json.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing errno config: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}
	return config, nil
}

// validateConfig validates the loaded configuration
func validateConfig(config *Config) error {
	if config.Package == "" {
		return fmt.Errorf("package is required")
	}
	if config.Output == "" {
		return fmt.Errorf("output is required")
	}
	if config.BuildTag == "" {
		return fmt.Errorf("buildTag is required")
	}
	if config.MaxErrno <= 0 || config.MaxErrno > 4095 {
		return fmt.Errorf("maxErrno %d out of range 1..4095", config.MaxErrno)
	}
	return nil
}

// GenerateErrnoTable regenerates the error number table of the diagnostic
// reporter from the host's error numbers.
func GenerateErrnoTable() error {
	config, err := loadConfig(filepath.Join(getCodegenDir(), "config", "errno.json"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	entries, err := collectErrnos(config.MaxErrno)
	if err != nil {
		return fmt.Errorf("collecting error numbers: %w", err)
	}

	code, err := renderTable(getTemplatePath("ename.go.tmpl"), config, entries)
	if err != nil {
		return err
	}
	return writeGeneratedFile(getOutputPath(config.Output), code)
}

// renderTable executes the table template and returns formatted source.
func renderTable(templatePath string, config *Config, entries []ErrnoEntry) ([]byte, error) {
	tmpl, err := template.ParseFiles(templatePath)
	if err != nil {
		return nil, fmt.Errorf("parsing template from %s: %w", templatePath, err)
	}

	// The table is sized by its last row; trailing unnamed numbers are dropped.
	data := tableData{Config: *config, Entries: entries}
	if n := len(entries); n > 0 {
		data.MaxErrno = entries[n-1].Code
	}

	var code bytes.Buffer
	writeHeader(&code)
	if err := tmpl.Execute(&code, data); err != nil {
		return nil, fmt.Errorf("executing template: %w", err)
	}

	formatted, err := format.Source(code.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting code: %w", err)
	}
	return formatted, nil
}

// capitalize upper-cases the first letter, as strerror(3) prints messages.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || unicode.IsUpper(r) {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

func writeHeader(code *bytes.Buffer) {
	code.WriteString("// Copyright (c) 2026 H0llyW00dzZ All rights reserved.\n")
	code.WriteString("//\n")
	code.WriteString("// By accessing or using this software, you agree to be bound by the terms\n")
	code.WriteString("// of the License Agreement, which you can find at LICENSE files.\n\n")
	code.WriteString("// Code generated by go generate; DO NOT EDIT.\n")
	code.WriteString("// This file is generated from tools/codegen/internal/codegen.go\n\n")
}

func writeGeneratedFile(filename string, content []byte) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	writer := bufio.NewWriter(file)
	if _, err := writer.Write(content); err != nil {
		return fmt.Errorf("writing to file: %w", err)
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("flushing file: %w", err)
	}

	fmt.Printf("Generated %s successfully\n", filename)
	return nil
}
