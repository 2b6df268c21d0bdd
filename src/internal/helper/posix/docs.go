// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix provides [POSIX]-flavoured helper functions shared by the CLI
// and the diagnostic reporter.
//
// Key functions:
//   - GetExecutableName: Returns the executable name without extension for usage lines
//   - EnvEnabled: Interprets a boolean-ish environment variable such as EF_DUMPCORE
//   - IsTerminal: Reports whether a descriptor refers to a terminal
//
// # Usage Examples
//
//	exeName := posix.GetExecutableName()
//	diag.Usagef("%s copy src-file dst-file\n", exeName)
//
//	if posix.EnvEnabled("EF_DUMPCORE") {
//		// abort instead of exiting
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
package posix
