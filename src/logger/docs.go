// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger provides the output side of syscall-lab commands.
// It defines the Logger interface and two implementations: CLILogger for
// human-readable results and JSONLogger for one JSON object per line.
// Failures never go through a Logger; they are reported on the error stream
// by package diag.
package logger
