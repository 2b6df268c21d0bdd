// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package config loads syscall-lab settings.
//
// Settings come from, in increasing priority:
//
//  1. Built-in defaults
//  2. A JSON, YAML or TOML file chosen by its extension (.json, .yaml, .yml,
//     .toml), named by the --config flag or the SYSCALL_LAB_CONFIG_FILE
//     environment variable
//  3. Environment overrides: SYSCALL_LAB_COLOR and EF_DUMPCORE
//
// The merged result is validated against an embedded JSON schema, so a bad
// color mode or a negative size is rejected before any command runs.
//
// Example YAML file:
//
//	reporter:
//	  capacity: 256
//	  color: "off"
//	  dumpCore: false
//	io:
//	  readSize: 4096
//	  termSize: 64
//	output:
//	  json: true
package config
