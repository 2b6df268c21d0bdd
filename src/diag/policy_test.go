// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package diag_test

import (
	"testing"

	"github.com/H0llyW00dzZ/syscall-lab/src/diag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPolicyNames(t *testing.T) {
	for _, p := range []diag.Policy{diag.Resume, diag.Exit, diag.ExitNow, diag.Abort} {
		got, err := diag.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}

	got, err := diag.ParsePolicy("EXIT-NOW")
	require.NoError(t, err)
	assert.Equal(t, diag.ExitNow, got)

	_, err = diag.ParsePolicy("explode")
	assert.ErrorContains(t, err, "unknown policy")

	assert.Equal(t, "policy(9)", diag.Policy(9).String())
	assert.False(t, diag.Resume.Terminates())
	assert.True(t, diag.Abort.Terminates())
}
