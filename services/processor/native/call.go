// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package native

import (
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/pkg/errors"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

func (s *service) processMethodCall(methodInfo types.MethodInfo, args []*types.Argument, functionNameForErrors string) (contractOutputArgs []*types.Argument, contractOutputErr error, err error) {
	methodInstance := reflect.ValueOf(methodInfo.Implementation)
	if methodInstance.Kind() != reflect.Func {
		return nil, nil, errors.Errorf("method '%s' has no callable implementation", functionNameForErrors)
	}

	inValues, err := prepareMethodInputArgsForCall(methodInstance, args, functionNameForErrors)
	if err != nil {
		return nil, nil, err
	}

	defer func() {
		if r := recover(); r != nil {
			contractOutputArgs = nil
			contractOutputErr = errors.Errorf("%s", r)
		}
	}()

	outValues := methodInstance.Call(inValues)

	if returnsError(methodInstance.Type()) {
		last := outValues[len(outValues)-1]
		if !last.IsNil() {
			contractOutputErr = last.Interface().(error)
		}
		outValues = outValues[:len(outValues)-1]
	}

	contractOutputArgs, err = createMethodOutputArgs(outValues, functionNameForErrors)
	return contractOutputArgs, contractOutputErr, err
}

func returnsError(methodType reflect.Type) bool {
	return methodType.NumOut() > 0 && methodType.Out(methodType.NumOut()-1) == errorType
}

func prepareMethodInputArgsForCall(methodInstance reflect.Value, args []*types.Argument, functionNameForErrors string) ([]reflect.Value, error) {
	methodType := methodInstance.Type()
	if methodType.IsVariadic() {
		return nil, errors.Errorf("method '%s' is variadic", functionNameForErrors)
	}
	if methodType.NumIn() != len(args) {
		return nil, errors.Errorf("method '%s' takes %d args but received %d", functionNameForErrors, methodType.NumIn(), len(args))
	}

	res := make([]reflect.Value, 0, len(args))
	for i, arg := range args {
		value, err := argumentValue(arg, methodType.In(i))
		if err != nil {
			return nil, errors.Wrapf(err, "method '%s' arg %d", functionNameForErrors, i)
		}
		res = append(res, value)
	}
	return res, nil
}

func argumentValue(arg *types.Argument, argType reflect.Type) (reflect.Value, error) {
	if arg == nil {
		return reflect.Value{}, errors.New("argument is missing")
	}
	mismatch := func() (reflect.Value, error) {
		return reflect.Value{}, errors.Errorf("expected %s but received %s", argType, arg.Type)
	}
	switch argType.Kind() {
	case reflect.Int32:
		if arg.Type != types.ARGUMENT_TYPE_INT_32_VALUE {
			return mismatch()
		}
		return reflect.ValueOf(arg.Int32Value), nil
	case reflect.Uint32:
		if arg.Type != types.ARGUMENT_TYPE_UINT_32_VALUE {
			return mismatch()
		}
		return reflect.ValueOf(arg.Uint32Value), nil
	case reflect.Uint64:
		if arg.Type != types.ARGUMENT_TYPE_UINT_64_VALUE {
			return mismatch()
		}
		return reflect.ValueOf(arg.Uint64Value), nil
	case reflect.String:
		if arg.Type != types.ARGUMENT_TYPE_STRING_VALUE {
			return mismatch()
		}
		return reflect.ValueOf(arg.StringValue), nil
	case reflect.Slice:
		if argType.Elem().Kind() != reflect.Uint8 || arg.Type != types.ARGUMENT_TYPE_BYTES_VALUE {
			return mismatch()
		}
		return reflect.ValueOf(arg.BytesValue), nil
	default:
		return reflect.Value{}, errors.Errorf("unsupported argument type %s", argType)
	}
}

func createMethodOutputArgs(values []reflect.Value, functionNameForErrors string) ([]*types.Argument, error) {
	res := make([]*types.Argument, 0, len(values))
	for i, value := range values {
		var arg *types.Argument
		switch value.Kind() {
		case reflect.Int32:
			arg = types.Int32Argument(int32(value.Int()))
		case reflect.Uint32:
			arg = types.Uint32Argument(uint32(value.Uint()))
		case reflect.Uint64:
			arg = types.Uint64Argument(value.Uint())
		case reflect.String:
			arg = types.StringArgument(value.String())
		case reflect.Slice:
			if value.Type().Elem().Kind() != reflect.Uint8 {
				return nil, errors.Errorf("method '%s' output %d is a slice of %s", functionNameForErrors, i, value.Type().Elem())
			}
			arg = types.BytesArgument(value.Bytes())
		default:
			return nil, errors.Errorf("method '%s' output %d has unsupported type %s", functionNameForErrors, i, value.Type())
		}
		res = append(res, arg)
	}
	return res, nil
}

func createMethodOutputArgsWithString(str string) []*types.Argument {
	return []*types.Argument{types.StringArgument(str)}
}
