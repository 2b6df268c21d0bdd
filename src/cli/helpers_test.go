// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/H0llyW00dzZ/syscall-lab/src/cli"
	"github.com/H0llyW00dzZ/syscall-lab/src/config"
)

const version = "1.3.3.7-testing"

// abortCode is what the fake terminator reports for an abort.
const abortCode = 134

type exitCode int

// panicTerminator unwinds instead of ending the test binary.
type panicTerminator struct{}

func (panicTerminator) Exit(code int) { panic(exitCode(code)) }
func (panicTerminator) Abort()        { panic(exitCode(abortCode)) }

type result struct {
	stdout string
	stderr string
	// code is -1 when no terminating diagnostic was issued.
	code int
	err  error
}

func clearEnv(t *testing.T) {
	t.Helper()
	t.Setenv(config.FileEnv, "")
	t.Setenv(config.ColorEnv, "")
	t.Setenv(config.DumpCoreEnv, "")
	t.Setenv("NO_COLOR", "")
}

func run(t *testing.T, stdin *os.File, args ...string) result {
	t.Helper()
	return runWith(t, stdin, nil, args...)
}

func runWith(t *testing.T, stdin *os.File, opts []cli.Option, args ...string) result {
	t.Helper()

	var out, errb bytes.Buffer
	res := result{code: -1}
	func() {
		defer func() {
			if r := recover(); r != nil {
				c, ok := r.(exitCode)
				if !ok {
					panic(r)
				}
				res.code = int(c)
			}
		}()
		opts = append([]cli.Option{
			cli.WithArgs(args...),
			cli.WithStdio(stdin, &out, &errb),
			cli.WithTerminator(panicTerminator{}),
		}, opts...)
		res.err = cli.Execute(context.Background(), version, opts...)
	}()
	res.stdout = out.String()
	res.stderr = errb.String()
	return res
}
