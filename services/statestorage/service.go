// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package statestorage

import (
	"context"
	"github.com/hashicorp/golang-lru"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/services/statestorage/adapter"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
	"sync"
)

var LogTag = log.Service("state-storage")

type Config interface {
	StateStorageCacheSize() uint32
}

type Service interface {
	ReadKeys(ctx context.Context, contract primitives.ContractName, keys []string) ([][]byte, error)
	CommitStateDiff(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error
	GetStateStorageBlockHeight(ctx context.Context) (primitives.BlockHeight, error)
}

type metrics struct {
	blockHeight *metric.Gauge
	cacheHits   *metric.Gauge
	cacheMisses *metric.Gauge
}

func newMetrics(m metric.Factory) *metrics {
	return &metrics{
		blockHeight: m.NewGauge("StateStorage.BlockHeight"),
		cacheHits:   m.NewGauge("StateStorage.ReadKeys.CacheHits.Count"),
		cacheMisses: m.NewGauge("StateStorage.ReadKeys.CacheMisses.Count"),
	}
}

type service struct {
	logger      log.Logger
	metrics     *metrics
	persistence adapter.StatePersistence

	mutex sync.RWMutex
	cache *lru.Cache
}

func NewStateStorage(config Config, persistence adapter.StatePersistence, parentLogger log.Logger, metricFactory metric.Factory) (Service, error) {
	cache, err := lru.New(int(config.StateStorageCacheSize()))
	if err != nil {
		return nil, errors.Wrap(err, "failed creating state read cache")
	}

	s := &service{
		logger:      parentLogger.WithTags(LogTag),
		metrics:     newMetrics(metricFactory),
		persistence: persistence,
		cache:       cache,
	}

	height, err := persistence.ReadMetadata()
	if err != nil {
		return nil, errors.Wrap(err, "failed reading state metadata")
	}
	s.metrics.blockHeight.Update(int64(height))
	s.logger.Info("state storage started", log.Uint64("block-height", uint64(height)))

	return s, nil
}

func cacheKey(contract primitives.ContractName, key string) string {
	return string(contract) + "/" + key
}

// ReadKeys returns one value per key in the same order; keys with no record are returned empty
func (s *service) ReadKeys(ctx context.Context, contract primitives.ContractName, keys []string) ([][]byte, error) {
	if contract == "" {
		return nil, errors.New("missing contract name")
	}

	s.mutex.RLock()
	defer s.mutex.RUnlock()

	values := make([][]byte, len(keys))
	for i, key := range keys {
		if cached, ok := s.cache.Get(cacheKey(contract, key)); ok {
			s.metrics.cacheHits.Inc()
			values[i] = cached.([]byte)
			continue
		}

		s.metrics.cacheMisses.Inc()
		value, found, err := s.persistence.Read(contract, key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed reading key %s of contract %s", key, contract)
		}
		if !found {
			value = []byte{}
		}
		s.cache.Add(cacheKey(contract, key), value)
		values[i] = value
	}
	return values, nil
}

// CommitStateDiff persists the diff of exactly the next block height
func (s *service) CommitStateDiff(ctx context.Context, height primitives.BlockHeight, diff adapter.ChainState) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	current, err := s.persistence.ReadMetadata()
	if err != nil {
		return errors.Wrap(err, "failed reading state metadata")
	}
	if height != current+1 {
		return errors.Errorf("expected commit of block height %d but got %d", current+1, height)
	}

	if err := s.persistence.Write(height, diff); err != nil {
		s.purgeCache(diff)
		return errors.Wrapf(err, "failed committing state diff for block height %d", height)
	}

	for contract, records := range diff {
		for key, value := range records {
			s.cache.Add(cacheKey(contract, key), value)
		}
	}

	s.metrics.blockHeight.Update(int64(height))
	s.logger.Info("committed state diff", log.Uint64("block-height", uint64(height)), log.Int("contracts", len(diff)))
	return nil
}

func (s *service) purgeCache(diff adapter.ChainState) {
	for contract, records := range diff {
		for key := range records {
			s.cache.Remove(cacheKey(contract, key))
		}
	}
}

func (s *service) GetStateStorageBlockHeight(ctx context.Context) (primitives.BlockHeight, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	return s.persistence.ReadMetadata()
}
