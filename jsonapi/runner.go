// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package jsonapi

import (
	"context"
	"encoding/json"
	"github.com/orbs-network/orbs-incrementer/crypto/digest"
	"github.com/orbs-network/orbs-incrementer/crypto/keys"
	"github.com/orbs-network/orbs-incrementer/services/processor/native/types"
	"github.com/orbs-network/orbs-incrementer/services/virtualmachine"
	"github.com/orbs-network/orbs-spec/types/go/primitives"
	"github.com/orbs-network/scribe/log"
	"github.com/pkg/errors"
)

// Runner executes scripts against a virtual machine, signing transactions with key pairs it generates per signer name.
type Runner struct {
	vm             virtualmachine.VirtualMachine
	virtualChainId primitives.VirtualChainId
	logger         log.Logger
	signers        map[string]*keys.Ed25519KeyPair
}

func NewRunner(vm virtualmachine.VirtualMachine, virtualChainId primitives.VirtualChainId, logger log.Logger) *Runner {
	return &Runner{
		vm:             vm,
		virtualChainId: virtualChainId,
		logger:         logger,
		signers:        make(map[string]*keys.Ed25519KeyPair),
	}
}

func ParseScript(source []byte) (*Script, error) {
	script := &Script{}
	if err := json.Unmarshal(source, script); err != nil {
		return nil, errors.Wrap(err, "could not unpack script json")
	}
	return script, nil
}

func (r *Runner) Run(ctx context.Context, script *Script) ([]*CallOutput, error) {
	if err := r.importSigners(script.Signers); err != nil {
		return nil, err
	}

	outputs := make([]*CallOutput, 0, len(script.Calls))
	for i := range script.Calls {
		output, err := r.RunCall(ctx, &script.Calls[i])
		if err != nil {
			return outputs, errors.Wrapf(err, "call %d failed", i)
		}
		outputs = append(outputs, output)
	}
	return outputs, nil
}

func (r *Runner) RunCall(ctx context.Context, call *Call) (*CallOutput, error) {
	args, err := ConvertArguments(call.Arguments)
	if err != nil {
		return nil, err
	}
	contractName := primitives.ContractName(call.ContractName)
	methodName := primitives.MethodName(call.MethodName)

	var output *virtualmachine.CallOutput
	switch call.Kind {
	case CALL_KIND_DEPLOY:
		output, err = r.vm.DeployContract(ctx, &virtualmachine.DeployInput{
			ContractName:         contractName,
			ConstructorName:      methodName,
			ConstructorArguments: args,
		})
	case CALL_KIND_TRANSACTION:
		var signed *virtualmachine.SignedTransaction
		signed, err = r.signTransaction(call.Signer, contractName, methodName, args)
		if err == nil {
			output, err = r.vm.RunTransaction(ctx, signed)
		}
	case CALL_KIND_QUERY:
		var caller primitives.ClientAddress
		caller, err = r.signerAddress(call.Signer)
		if err == nil {
			output, err = r.vm.RunQuery(ctx, &virtualmachine.Query{
				ContractName:   contractName,
				MethodName:     methodName,
				InputArguments: args,
				CallerAddress:  caller,
			})
		}
	default:
		return nil, errors.Errorf("unknown call kind '%s'", call.Kind)
	}
	if err != nil {
		return nil, err
	}

	r.logger.Info("script call done", log.String("kind", call.Kind), log.Stringable("contract", contractName), log.Stringable("method", methodName), log.Stringable("result", output.CallResult))

	res := &CallOutput{
		Kind:            call.Kind,
		ContractName:    call.ContractName,
		MethodName:      call.MethodName,
		CallResult:      output.CallResult.String(),
		OutputArguments: convertOutputArguments(output.OutputArguments),
		BlockHeight:     uint64(output.BlockHeight),
	}
	if len(output.TxHash) > 0 {
		res.TxHash = output.TxHash.String()
	}
	return res, nil
}

func (r *Runner) signTransaction(signerName string, contractName primitives.ContractName, methodName primitives.MethodName, args []*types.Argument) (*virtualmachine.SignedTransaction, error) {
	keyPair, err := r.signer(signerName)
	if err != nil {
		return nil, err
	}
	return virtualmachine.SignTransaction(&virtualmachine.Transaction{
		VirtualChainId:  r.virtualChainId,
		ContractName:    contractName,
		MethodName:      methodName,
		InputArguments:  args,
		SignerPublicKey: keyPair.PublicKey(),
		Timestamp:       virtualmachine.UniqueTimestamp(),
	}, keyPair.PrivateKey())
}

func (r *Runner) signerAddress(signerName string) (primitives.ClientAddress, error) {
	keyPair, err := r.signer(signerName)
	if err != nil {
		return nil, err
	}
	return digest.CalcClientAddressOfEd25519PublicKey(keyPair.PublicKey())
}

func (r *Runner) importSigners(privateKeys map[string]string) error {
	for name, privateKeyHex := range privateKeys {
		keyPair, err := keys.Ed25519KeyPairFromPrivateKeyHex(privateKeyHex)
		if err != nil {
			return errors.Wrapf(err, "invalid key for signer %s", name)
		}
		r.signers[name] = keyPair
	}
	return nil
}

func (r *Runner) signer(name string) (*keys.Ed25519KeyPair, error) {
	if name == "" {
		return nil, errors.New("call must name a signer")
	}
	if keyPair, found := r.signers[name]; found {
		return keyPair, nil
	}
	keyPair, err := keys.GenerateEd25519Key()
	if err != nil {
		return nil, errors.Wrapf(err, "failed generating key for signer %s", name)
	}
	r.logger.Info("generated signer key", log.String("signer", name), log.String("public-key", keyPair.PublicKeyHex()))
	r.signers[name] = keyPair
	return keyPair, nil
}
