// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package incrementer

import (
	"github.com/pkg/errors"
	"math"
)

var ErrOverflow = errors.New("int32 overflow")

// State is the contract's storage record: one global counter and one counter per caller.
// An identity that was never incremented reads as zero.
type State struct {
	value int32
	mine  map[Identity]int32
}

func New(initValue int32) *State {
	return &State{
		value: initValue,
		mine:  make(map[Identity]int32),
	}
}

func Default() *State {
	return New(0)
}

// Restore rebuilds a state record from values loaded by the host.
func Restore(value int32, mine map[Identity]int32) *State {
	s := New(value)
	for id, v := range mine {
		s.mine[id] = v
	}
	return s
}

func (s *State) Get() int32 {
	return s.value
}

// Inc is open to every caller. On overflow the call fails and the value is left as is.
func (s *State) Inc(by int32) error {
	sum, err := checkedAdd(s.value, by)
	if err != nil {
		return err
	}
	s.value = sum
	return nil
}

func (s *State) GetMine(caller Identity) int32 {
	return s.mine[caller]
}

func (s *State) IncMine(caller Identity, by int32) error {
	sum, err := checkedAdd(s.mine[caller], by)
	if err != nil {
		return errors.Wrapf(err, "caller %s", caller)
	}
	s.mine[caller] = sum
	return nil
}

func (s *State) Entries() map[Identity]int32 {
	res := make(map[Identity]int32, len(s.mine))
	for id, v := range s.mine {
		res[id] = v
	}
	return res
}

func checkedAdd(a int32, b int32) (int32, error) {
	sum := int64(a) + int64(b)
	if sum > math.MaxInt32 || sum < math.MinInt32 {
		return a, errors.Wrapf(ErrOverflow, "%d + %d", a, b)
	}
	return int32(sum), nil
}
