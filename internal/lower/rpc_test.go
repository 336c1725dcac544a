package lower

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/yang2proto/internal/yang"
)

func rebootModule() *yang.Statement {
	return module("sonic-system",
		st("rpc", "reboot",
			st("input", "input",
				st("leaf", "method", st("type", "int32")),
				st("leaf", "delay", st("type", "uint64")),
				st("leaf", "message", st("type", "string")),
			),
			st("output", "output"),
		),
	)
}

func TestRebootExtraction(t *testing.T) {
	mod := build(t, rebootModule())

	require.Len(t, mod.Rpcs, 1)
	r := mod.Rpcs[0]
	assert.Equal(t, "SonicSystemReboot", r.Name)
	assert.Equal(t, "Reboot", r.Method)
	assert.Equal(t, "RebootRequest", r.Request)
	assert.Equal(t, "RebootResponse", r.Response)
	assert.Equal(t, "/sonic-system:reboot", r.Path)
	assert.False(t, r.InputEmpty)
	assert.True(t, r.OutputEmpty)
	assert.True(t, mod.HasEmpty)

	// Both wrappers always exist, in declaration order.
	require.Len(t, mod.Containers, 2)
	request := mod.Containers[0]
	assert.Equal(t, "RebootRequest", request.Name)
	require.Len(t, request.Containers, 1)

	input := request.Containers[0]
	assert.Equal(t, "Input", input.Name)
	require.Len(t, input.Leafs, 3)
	assert.Equal(t, "method", input.Leafs[0].Name)
	assert.Equal(t, "int32", input.Leafs[0].Type)
	assert.Equal(t, "delay", input.Leafs[1].Name)
	assert.Equal(t, "uint64", input.Leafs[1].Type)
	assert.Equal(t, "message", input.Leafs[2].Name)
	assert.Equal(t, "string", input.Leafs[2].Type)

	// The single addressing field carries the module-qualified JSON tag.
	require.Len(t, request.Leafs, 1)
	assert.Equal(t, "input", request.Leafs[0].Name)
	assert.Equal(t, "Input", request.Leafs[0].Type)
	assert.Equal(t, "sonic-system:input", request.Leafs[0].JSONName)

	// Empty output: wrapper exists but holds nothing.
	response := mod.Containers[1]
	assert.Equal(t, "RebootResponse", response.Name)
	assert.Empty(t, response.Containers)
	assert.Empty(t, response.Leafs)
}

func TestRpcWithNoSubstatementsIsDoublyEmpty(t *testing.T) {
	mod := build(t, module("sonic-system", st("rpc", "factory-reset")))

	require.Len(t, mod.Rpcs, 1)
	r := mod.Rpcs[0]
	assert.Equal(t, "FactoryReset", r.Method)
	assert.Equal(t, "FactoryResetRequest", r.Request)
	assert.Equal(t, "FactoryResetResponse", r.Response)
	assert.True(t, r.InputEmpty)
	assert.True(t, r.OutputEmpty)
	require.Len(t, mod.Containers, 2)
	assert.Empty(t, mod.Containers[0].Leafs)
}

func TestRpcOutputLowered(t *testing.T) {
	mod := build(t, module("sonic-system",
		st("rpc", "show-status",
			st("output", "output",
				st("leaf", "status", st("type", "string")),
			),
		),
	))

	r := mod.Rpcs[0]
	assert.True(t, r.InputEmpty)
	assert.False(t, r.OutputEmpty)

	response := mod.Containers[1]
	assert.Equal(t, "ShowStatusResponse", response.Name)
	require.Len(t, response.Containers, 1)
	assert.Equal(t, "Output", response.Containers[0].Name)
	require.Len(t, response.Leafs, 1)
	assert.Equal(t, "output", response.Leafs[0].Name)
	assert.Equal(t, "sonic-system:output", response.Leafs[0].JSONName)
}

func TestMultipleRpcsKeepDeclarationOrder(t *testing.T) {
	mod := build(t, module("sonic-system",
		st("rpc", "reboot"),
		st("rpc", "show-techsupport"),
	))

	require.Len(t, mod.Rpcs, 2)
	assert.Equal(t, "Reboot", mod.Rpcs[0].Method)
	assert.Equal(t, "ShowTechsupport", mod.Rpcs[1].Method)
	// Request/Response wrappers interleave per RPC.
	require.Len(t, mod.Containers, 4)
	assert.Equal(t, "RebootRequest", mod.Containers[0].Name)
	assert.Equal(t, "RebootResponse", mod.Containers[1].Name)
	assert.Equal(t, "ShowTechsupportRequest", mod.Containers[2].Name)
	assert.Equal(t, "ShowTechsupportResponse", mod.Containers[3].Name)
}
