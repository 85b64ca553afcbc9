// Copyright 2019 the orbs-network-go authors
// This file is part of the orbs-network-go library in the Orbs project.
//
// This source code is licensed under the MIT license found in the LICENSE file in the root directory of this source tree.
// The above notice should be included in all copies or substantial portions of the software.
package jsonapi

import (
	"context"
	"encoding/hex"
	"github.com/orbs-network/orbs-incrementer/bootstrap"
	"github.com/orbs-network/orbs-incrementer/config"
	"github.com/orbs-network/orbs-incrementer/instrumentation/metric"
	"github.com/orbs-network/orbs-incrementer/test/builders"
	"github.com/orbs-network/orbs-incrementer/test/crypto/keys"
	"github.com/orbs-network/orbs-incrementer/test/with"
	"github.com/orbs-network/orbs-spec/types/go/protocol"
	"github.com/orbs-network/scribe/log"
	"github.com/stretchr/testify/require"
	"testing"
)

const incrementerScript = `{
  "Calls": [
    {"Kind": "deploy", "ContractName": "Incrementer", "MethodName": "_initWith", "Arguments": [{"Type": "int32", "Int32Value": 5}]},
    {"Kind": "transaction", "Signer": "alice", "ContractName": "Incrementer", "MethodName": "inc", "Arguments": [{"Type": "int32", "Int32Value": 3}]},
    {"Kind": "transaction", "Signer": "bob", "ContractName": "Incrementer", "MethodName": "incMine", "Arguments": [{"Type": "int32", "Int32Value": 2}]},
    {"Kind": "query", "Signer": "alice", "ContractName": "Incrementer", "MethodName": "get"},
    {"Kind": "query", "Signer": "bob", "ContractName": "Incrementer", "MethodName": "getMine"},
    {"Kind": "query", "Signer": "alice", "ContractName": "Incrementer", "MethodName": "getMine"}
  ]
}`

func newRunner(t *testing.T, logger log.Logger) *Runner {
	cfg := config.ForTests()
	runtime, err := bootstrap.NewRuntime(cfg, logger, metric.NewRegistry())
	require.NoError(t, err)
	return NewRunner(runtime.VirtualMachine(), cfg.VirtualChainId(), logger)
}

func TestRunScript(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)

		script, err := ParseScript([]byte(incrementerScript))
		require.NoError(t, err)

		outputs, err := runner.Run(context.Background(), script)
		require.NoError(t, err)
		require.Len(t, outputs, 6)

		for _, output := range outputs {
			require.Equal(t, protocol.EXECUTION_RESULT_SUCCESS.String(), output.CallResult, "%s.%s should succeed", output.ContractName, output.MethodName)
		}
		require.EqualValues(t, 3, outputs[2].BlockHeight, "deploy and two transactions should commit three blocks")
		require.NotEmpty(t, outputs[1].TxHash)
		require.Empty(t, outputs[3].TxHash, "queries have no transaction hash")

		require.Equal(t, []MethodArgument{{Type: "int32", Int32Value: 8}}, outputs[3].OutputArguments)
		require.Equal(t, []MethodArgument{{Type: "int32", Int32Value: 2}}, outputs[4].OutputArguments)
		require.Equal(t, []MethodArgument{{Type: "int32", Int32Value: 0}}, outputs[5].OutputArguments)
	})
}

func TestRunScriptReportsContractFailure(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)

		outputs, err := runner.Run(context.Background(), &Script{Calls: []Call{
			{Kind: CALL_KIND_DEPLOY, ContractName: "Incrementer", MethodName: "_initWith", Arguments: []MethodArgument{{Type: "int32", Int32Value: 2147483647}}},
			{Kind: CALL_KIND_TRANSACTION, Signer: "alice", ContractName: "Incrementer", MethodName: "inc", Arguments: []MethodArgument{{Type: "int32", Int32Value: 1}}},
		}})
		require.NoError(t, err, "contract failures are results, not errors")
		require.Equal(t, protocol.EXECUTION_RESULT_ERROR_SMART_CONTRACT.String(), outputs[1].CallResult)
		require.EqualValues(t, 1, outputs[1].BlockHeight)
	})
}

func TestRunCallRejectsMalformedCalls(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)

		_, err := runner.RunCall(context.Background(), &Call{Kind: "mint", ContractName: "Incrementer", MethodName: "inc"})
		require.Error(t, err, "unknown kind")

		_, err = runner.RunCall(context.Background(), &Call{Kind: CALL_KIND_QUERY, ContractName: "Incrementer", MethodName: "get"})
		require.Error(t, err, "missing signer")

		_, err = runner.RunCall(context.Background(), &Call{Kind: CALL_KIND_TRANSACTION, Signer: "alice", ContractName: "Incrementer", MethodName: "inc", Arguments: []MethodArgument{{Type: "float"}}})
		require.Error(t, err, "unknown argument type")
	})
}

func TestSignerKeysAreStablePerName(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)

		first, err := runner.signerAddress("alice")
		require.NoError(t, err)
		again, err := runner.signerAddress("alice")
		require.NoError(t, err)
		other, err := runner.signerAddress("bob")
		require.NoError(t, err)

		require.Equal(t, first, again)
		require.NotEqual(t, first, other)
	})
}

func TestScriptSignersPinKeys(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)
		keyPair := keys.Ed25519KeyPairForTests(2)

		_, err := runner.Run(context.Background(), &Script{Signers: map[string]string{"carol": hex.EncodeToString(keyPair.PrivateKey())}})
		require.NoError(t, err)

		address, err := runner.signerAddress("carol")
		require.NoError(t, err)
		require.Equal(t, builders.ClientAddressForEd25519SignerForTests(2), address)
	})
}

func TestScriptSignersRejectInvalidKey(t *testing.T) {
	with.Logging(t, func(parent *with.LoggingHarness) {
		runner := newRunner(t, parent.Logger)

		_, err := runner.Run(context.Background(), &Script{Signers: map[string]string{"carol": "beef"}})
		require.Error(t, err)
	})
}

func TestParseScriptRejectsInvalidJson(t *testing.T) {
	_, err := ParseScript([]byte("{not json"))
	require.Error(t, err)
}
