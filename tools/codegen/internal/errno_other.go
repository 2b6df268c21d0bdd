// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

//go:build !unix

package codegen

import "errors"

func collectErrnos(int) ([]ErrnoEntry, error) {
	return nil, errors.New("the error number table can only be generated on a Unix host")
}
