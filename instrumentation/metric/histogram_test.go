// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package metric

import (
	"github.com/stretchr/testify/require"
	"testing"
	"time"
)

func TestHistogram_ExportsMillis(t *testing.T) {
	h := newHistogram("latency", (10 * time.Second).Nanoseconds())
	h.Record(5 * time.Millisecond)
	h.Record(15 * time.Millisecond)

	e := h.export()
	require.EqualValues(t, 2, e.Samples)
	require.InDelta(t, 5, e.Min, 0.1)
	require.InDelta(t, 15, e.Max, 0.1)
	require.InDelta(t, 10, e.Avg, 0.1)
	require.Zero(t, e.Overflow)
}

func TestHistogram_CountsOverflow(t *testing.T) {
	h := newHistogram("latency", time.Millisecond.Nanoseconds())
	h.Record(time.Second)

	e := h.export()
	require.EqualValues(t, 0, e.Samples)
	require.EqualValues(t, 1, e.Overflow)
}

func TestHistogram_RotateKeepsRecentWindows(t *testing.T) {
	h := newHistogram("latency", time.Second.Nanoseconds())
	h.Record(time.Millisecond)
	h.Rotate()
	h.Record(time.Millisecond)

	require.EqualValues(t, 2, h.export().Samples)
}
