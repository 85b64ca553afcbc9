// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package leveldb

import (
	"encoding/binary"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"time"
)

// state keys always contain a separator so they never collide with the metadata key
const keySeparator = "/"
const blockHeightKey = "block-height"

type metrics struct {
	writeTime *metric.Histogram
	sizeBytes *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		writeTime: m.NewLatency("StateStoragePersistence.LevelDB.WriteTime.Millis", 10*time.Second),
		sizeBytes: m.NewGauge("StateStoragePersistence.LevelDB.WrittenBytes.Count"),
	}
}

type LevelDbStatePersistence struct {
	db      *leveldb.DB
	logger  log.Logger
	metrics *metrics
}

func NewStatePersistence(path string, parentLogger log.Logger, metricFactory metric.Factory) (*LevelDbStatePersistence, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed opening state database at %s", path)
	}

	logger := parentLogger.WithTags(log.String("adapter", "leveldb"), log.String("path", path))
	logger.Info("opened state database")

	return &LevelDbStatePersistence{
		db:      db,
		logger:  logger,
		metrics: newMetrics(metricFactory),
	}, nil
}

func stateKey(contract primitives.ContractName, key string) []byte {
	return []byte(string(contract) + keySeparator + key)
}

// Write applies the diff and the new height in one atomic batch
func (sp *LevelDbStatePersistence) Write(height primitives.BlockHeight, diff adapter.ChainState) error {
	start := time.Now()
	defer sp.metrics.writeTime.RecordSince(start)

	batch := new(leveldb.Batch)
	written := 0
	for contract, records := range diff {
		for key, value := range records {
			if adapter.IsZeroValue(value) {
				batch.Delete(stateKey(contract, key))
			} else {
				batch.Put(stateKey(contract, key), value)
				written += len(value)
			}
		}
	}

	heightBytes := make([]byte, 8)
	binary.BigEndian.PutUint64(heightBytes, uint64(height))
	batch.Put([]byte(blockHeightKey), heightBytes)

	if err := sp.db.Write(batch, nil); err != nil {
		return errors.Wrapf(err, "failed writing state diff for block height %d", height)
	}
	sp.metrics.sizeBytes.Add(int64(written))
	return nil
}

func (sp *LevelDbStatePersistence) Read(contract primitives.ContractName, key string) ([]byte, bool, error) {
	value, err := sp.db.Get(stateKey(contract, key), nil)
	if err == leveldb.ErrNotFound {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "failed reading key %s of contract %s", key, contract)
	}
	return value, true, nil
}

func (sp *LevelDbStatePersistence) ReadMetadata() (primitives.BlockHeight, error) {
	heightBytes, err := sp.db.Get([]byte(blockHeightKey), nil)
	if err == leveldb.ErrNotFound {
		return 0, nil
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed reading block height")
	}
	if len(heightBytes) != 8 {
		return 0, errors.Errorf("block height record is corrupt, holds %d bytes", len(heightBytes))
	}
	return primitives.BlockHeight(binary.BigEndian.Uint64(heightBytes)), nil
}

func (sp *LevelDbStatePersistence) Close() error {
	sp.logger.Info("closing state database")
	return sp.db.Close()
}
