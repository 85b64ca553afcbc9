// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.

package test

import (
	"github.com/stretchr/testify/require"
	"testing"
)

type failureRecorder struct {
	testing.TB
	failed bool
}

func (f *failureRecorder) Errorf(format string, args ...interface{}) {
	f.failed = true
}

func (f *failureRecorder) FailNow() {
	f.failed = true
}

func (f *failureRecorder) Helper() {}

func TestRequireCmpEqualPassesOnEqualValues(t *testing.T) {
	recorder := &failureRecorder{TB: t}
	RequireCmpEqual(recorder, map[string][]byte{"value": {0, 0, 0, 1}}, map[string][]byte{"value": {0, 0, 0, 1}})
	require.False(t, recorder.failed)
}

func TestRequireCmpEqualFailsOnDifference(t *testing.T) {
	recorder := &failureRecorder{TB: t}
	RequireCmpEqual(recorder, []int32{1, 2}, []int32{1, 3})
	require.True(t, recorder.failed)
}
