// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package codegen generates the error number table used by the diagnostic
// reporter.
//
// The table is built on the host from golang.org/x/sys/unix, which knows the
// symbolic name and message of every error number, and rendered through
// templates/ename.go.tmpl using the settings in config/errno.json. Running
// the generator on Linux refreshes src/diag/ename_linux.go.
package codegen
