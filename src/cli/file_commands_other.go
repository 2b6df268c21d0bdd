// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix

package cli

import "github.com/spf13/cobra"

// fileCommands is empty where descriptor-level system calls are unavailable.
func fileCommands(*app) []*cobra.Command { return nil }
