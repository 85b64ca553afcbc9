// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package types

import (
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
)

type ArgumentType uint16

const (
	ARGUMENT_TYPE_RESERVED      ArgumentType = 0
	ARGUMENT_TYPE_UINT_32_VALUE ArgumentType = 1
	ARGUMENT_TYPE_UINT_64_VALUE ArgumentType = 2
	ARGUMENT_TYPE_STRING_VALUE  ArgumentType = 3
	ARGUMENT_TYPE_BYTES_VALUE   ArgumentType = 4
	ARGUMENT_TYPE_INT_32_VALUE  ArgumentType = 5
)

func (t ArgumentType) String() string {
	switch t {
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return "uint32"
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return "uint64"
	case ARGUMENT_TYPE_STRING_VALUE:
		return "string"
	case ARGUMENT_TYPE_BYTES_VALUE:
		return "bytes"
	case ARGUMENT_TYPE_INT_32_VALUE:
		return "int32"
	}
	return fmt.Sprintf("unknown(%d)", uint16(t))
}

// Argument is a single typed value crossing the processor boundary, in or out of a contract method.
type Argument struct {
	Type        ArgumentType
	Int32Value  int32
	Uint32Value uint32
	Uint64Value uint64
	StringValue string
	BytesValue  []byte
}

func Int32Argument(v int32) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_INT_32_VALUE, Int32Value: v}
}

func Uint32Argument(v uint32) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_UINT_32_VALUE, Uint32Value: v}
}

func Uint64Argument(v uint64) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_UINT_64_VALUE, Uint64Value: v}
}

func StringArgument(v string) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_STRING_VALUE, StringValue: v}
}

func BytesArgument(v []byte) *Argument {
	return &Argument{Type: ARGUMENT_TYPE_BYTES_VALUE, BytesValue: v}
}

// ArgumentsFromNatives converts plain Go values into arguments; only the supported types are accepted.
func ArgumentsFromNatives(args ...interface{}) ([]*Argument, error) {
	res := make([]*Argument, 0, len(args))
	for i, arg := range args {
		switch v := arg.(type) {
		case int32:
			res = append(res, Int32Argument(v))
		case uint32:
			res = append(res, Uint32Argument(v))
		case uint64:
			res = append(res, Uint64Argument(v))
		case string:
			res = append(res, StringArgument(v))
		case []byte:
			res = append(res, BytesArgument(v))
		default:
			return nil, errors.Errorf("argument %d has unsupported type %T", i, arg)
		}
	}
	return res, nil
}

func (a *Argument) Native() interface{} {
	switch a.Type {
	case ARGUMENT_TYPE_INT_32_VALUE:
		return a.Int32Value
	case ARGUMENT_TYPE_UINT_32_VALUE:
		return a.Uint32Value
	case ARGUMENT_TYPE_UINT_64_VALUE:
		return a.Uint64Value
	case ARGUMENT_TYPE_STRING_VALUE:
		return a.StringValue
	case ARGUMENT_TYPE_BYTES_VALUE:
		return a.BytesValue
	}
	return nil
}

func (a *Argument) String() string {
	switch a.Type {
	case ARGUMENT_TYPE_BYTES_VALUE:
		return fmt.Sprintf("{%s:%s}", a.Type, hex.EncodeToString(a.BytesValue))
	case ARGUMENT_TYPE_STRING_VALUE:
		return fmt.Sprintf("{%s:%q}", a.Type, a.StringValue)
	}
	return fmt.Sprintf("{%s:%v}", a.Type, a.Native())
}

// Raw is the canonical encoding of the argument (big endian, length prefixed), used when hashing transactions.
func (a *Argument) Raw() []byte {
	buf := &bytes.Buffer{}
	writeArgument(buf, a)
	return buf.Bytes()
}

func writeArgument(buf *bytes.Buffer, a *Argument) {
	_ = binary.Write(buf, binary.BigEndian, uint16(a.Type))
	switch a.Type {
	case ARGUMENT_TYPE_INT_32_VALUE:
		_ = binary.Write(buf, binary.BigEndian, a.Int32Value)
	case ARGUMENT_TYPE_UINT_32_VALUE:
		_ = binary.Write(buf, binary.BigEndian, a.Uint32Value)
	case ARGUMENT_TYPE_UINT_64_VALUE:
		_ = binary.Write(buf, binary.BigEndian, a.Uint64Value)
	case ARGUMENT_TYPE_STRING_VALUE:
		WriteLengthPrefixed(buf, []byte(a.StringValue))
	case ARGUMENT_TYPE_BYTES_VALUE:
		WriteLengthPrefixed(buf, a.BytesValue)
	}
}

func ArgumentsRaw(args []*Argument) []byte {
	buf := &bytes.Buffer{}
	_ = binary.Write(buf, binary.BigEndian, uint32(len(args)))
	for _, arg := range args {
		writeArgument(buf, arg)
	}
	return buf.Bytes()
}

func WriteLengthPrefixed(buf *bytes.Buffer, data []byte) {
	_ = binary.Write(buf, binary.BigEndian, uint32(len(data)))
	buf.Write(data)
}
