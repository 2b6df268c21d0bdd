// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is used when os.Args carries no program name.
const fallbackName = "syscall-lab"

// GetExecutableName returns the executable name without extension.
// It extracts the base name from os.Args[0] and removes the .exe suffix so
// usage lines read the same on every platform:
//   - Linux/macOS: "syscall-lab" from "/usr/local/bin/syscall-lab"
//   - Windows: "syscall-lab" from "C:\bin\syscall-lab.exe"
//   - Fallback: "syscall-lab" if os.Args[0] is unavailable
func GetExecutableName() string {
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}

	name := filepath.Base(os.Args[0])

	// Foreign separators (e.g. a Windows path seen on Unix) survive filepath.Base.
	if strings.Contains(name, "\\") || (strings.Contains(name, "/") && !strings.Contains(name, string(filepath.Separator))) {
		parts := strings.FieldsFunc(name, func(r rune) bool {
			return r == '/' || r == '\\'
		})
		for i := len(parts) - 1; i >= 0; i-- {
			if parts[i] != "" {
				name = parts[i]
				break
			}
		}
	}

	return strings.TrimSuffix(name, ".exe")
}
