// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli provides the syscall-lab command-line interface.
//
// It implements a Cobra command tree where every subcommand runs one of the
// system call examples and routes failures through the diagnostic reporter
// in package diag:
//
//   - wrong argument counts print "Usage: ..." and exit
//   - malformed numbers print the parser's message verbatim and exit
//   - operating system failures print the symbolic error name and exit
//   - logical failures print "ERROR: ..." and exit
//   - partial transfers print a diagnostic and carry on
//
// Command results are written through package logger to a buffered standard
// output, which the reporter flushes before any diagnostic so the two streams
// interleave in program order.
package cli
