// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package memory

import (
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestWriteThenReadRecord(t *testing.T) {
	p := NewStatePersistence(metric.NewRegistry())

	err := p.Write(1, adapter.ChainState{"Incrementer": {"value": []byte{0, 0, 0, 5}}})
	require.NoError(t, err)

	value, found, err := p.Read("Incrementer", "value")
	require.NoError(t, err)
	require.True(t, found, "written key should be found")
	require.Equal(t, []byte{0, 0, 0, 5}, value)

	height, err := p.ReadMetadata()
	require.NoError(t, err)
	require.EqualValues(t, 1, height)
}

func TestReadMissingRecord(t *testing.T) {
	p := NewStatePersistence(metric.NewRegistry())

	_, found, err := p.Read("Incrementer", "value")
	require.NoError(t, err)
	require.False(t, found, "unwritten key should not be found")
}

func TestWriteEmptyValueDeletesRecord(t *testing.T) {
	registry := metric.NewRegistry()
	p := NewStatePersistence(registry)

	require.NoError(t, p.Write(1, adapter.ChainState{"Incrementer": {"a": []byte{1}, "b": []byte{2}}}))
	require.NoError(t, p.Write(2, adapter.ChainState{"Incrementer": {"a": []byte{}}}))

	_, found, err := p.Read("Incrementer", "a")
	require.NoError(t, err)
	require.False(t, found, "key written with empty value should be deleted")
	require.EqualValues(t, 1, p.metrics.numberOfKeys.Value())
	require.EqualValues(t, 1, p.metrics.numberOfContracts.Value())
}

func TestDumpIsSorted(t *testing.T) {
	p := NewStatePersistence(metric.NewRegistry())
	require.NoError(t, p.Write(3, adapter.ChainState{
		"b": {"y": []byte{0x02}, "x": []byte{0x01}},
		"a": {"z": []byte{0xff}},
	}))

	require.Equal(t, "{height: 3, data: {a:{z:ff,},b:{x:01,y:02,},}}", p.Dump())
}
