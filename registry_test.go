// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throbber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	assert.Equal(t, []string{"arrows", "star"}, Names())
	for _, nm := range Names() {
		th, err := New(nm)
		require.NoError(t, err)
		assert.Equal(t, nm, th.Name())
	}
	_, err := New("spinner")
	assert.ErrorIs(t, err, ErrUnknown)
	assert.ErrorContains(t, err, `"spinner"`)
}

func TestRegistryNewInstances(t *testing.T) {
	a, err := New("arrows")
	require.NoError(t, err)
	b, err := New("arrows")
	require.NoError(t, err)
	assert.NotSame(t, a, b)
}
