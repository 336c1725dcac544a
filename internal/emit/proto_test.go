package emit

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-research/yang2proto/api"
	"github.com/agentic-research/yang2proto/internal/lower"
	"github.com/agentic-research/yang2proto/internal/yang"
)

func st(keyword, arg string, children ...*yang.Statement) *yang.Statement {
	return &yang.Statement{Keyword: keyword, Arg: arg, Children: children}
}

func compile(t *testing.T, root *yang.Statement) *api.Module {
	t.Helper()
	mod, err := lower.New(zerolog.Nop()).Module(root)
	require.NoError(t, err)
	return mod
}

func module(name string, children ...*yang.Statement) *yang.Statement {
	root := st("module", name, children...)
	yang.Finalize(root, &yang.Module{Name: name, Prefix: name})
	return root
}

const rebootProto = `syntax = "proto3";

package gnoi.SonicSystem;

message RebootRequest {
    message Input {
        int32 method = 1 [json_name = "method"];
        uint64 delay = 2 [json_name = "delay"];
        string message = 3 [json_name = "message"];
    }
    Input input = 1 [json_name = "sonic-system:input"];
}

message RebootResponse {
}

service SonicSystemService {
    rpc Reboot(RebootRequest) returns(RebootResponse) {}
}
`

func TestRebootProtoText(t *testing.T) {
	mod := compile(t, module("sonic-system",
		st("rpc", "reboot",
			st("input", "input",
				st("leaf", "method", st("type", "int32")),
				st("leaf", "delay", st("type", "uint64")),
				st("leaf", "message", st("type", "string")),
			),
			st("output", "output"),
		),
	))
	assert.Equal(t, rebootProto, Proto(mod))
}

func TestProtoIsDeterministic(t *testing.T) {
	mod := compile(t, module("sonic-system",
		st("container", "clock",
			st("leaf", "timezone", st("type", "string")),
		),
		st("rpc", "reboot"),
	))
	first := Proto(mod)
	second := Proto(mod)
	assert.Equal(t, first, second)
}

func TestNoServiceBlockWithoutRpcs(t *testing.T) {
	mod := compile(t, module("sys",
		st("container", "clock",
			st("leaf", "timezone", st("type", "string")),
		),
	))
	text := Proto(mod)
	assert.NotContains(t, text, "service")
	assert.Contains(t, text, "message Clock {")
}

func TestStructImportOnlyWithUnion(t *testing.T) {
	plain := compile(t, module("sys",
		st("container", "c", st("leaf", "x", st("type", "string"))),
	))
	assert.NotContains(t, Proto(plain), "struct.proto")

	union := compile(t, module("sys",
		st("container", "c", st("leaf", "x", st("type", "union"))),
	))
	text := Proto(union)
	assert.Contains(t, text, `import "google/protobuf/struct.proto";`)
	assert.Contains(t, text, "google.protobuf.Value x = 1")
}

func TestTopLevelLeafGetsWrapperMessage(t *testing.T) {
	mod := compile(t, module("sys",
		st("leaf", "hostname", st("type", "string")),
	))
	assert.Contains(t, Proto(mod), `message hostname {
    string hostname = 1 [json_name = "sys:hostname"];
}`)
}

func TestEnumEmittedBeforeLeaf(t *testing.T) {
	mod := compile(t, module("sys",
		st("container", "boot",
			st("leaf", "mode",
				st("type", "enumeration",
					st("enum", "cold"),
					st("enum", "warm"),
				),
			),
		),
	))
	text := Proto(mod)
	assert.Contains(t, text, `    enum Mode {
        cold = 0;
        warm = 1;
    }
    Mode mode = 1 [json_name = "mode"];`)
}

func TestFieldNumbersAreSequentialPerMessage(t *testing.T) {
	var leafs []*yang.Statement
	for i := 0; i < 5; i++ {
		leafs = append(leafs, st("leaf", fmt.Sprintf("f%d", i), st("type", "string")))
	}
	mod := compile(t, module("sys",
		st("container", "a", leafs[0], leafs[1], leafs[2]),
		st("container", "b", leafs[3], leafs[4]),
	))
	text := Proto(mod)

	tagRe := regexp.MustCompile(`= (\d+) \[`)
	for _, block := range strings.Split(text, "message ") {
		want := 1
		for _, m := range tagRe.FindAllStringSubmatch(block, -1) {
			got, err := strconv.Atoi(m[1])
			require.NoError(t, err)
			assert.Equal(t, want, got)
			want++
		}
	}
}

func TestNestedListsBeforeContainersBeforeFields(t *testing.T) {
	mod := compile(t, module("net",
		st("container", "state",
			st("leaf", "status", st("type", "string")),
			st("container", "inner",
				st("leaf", "x", st("type", "boolean")),
			),
			st("list", "route",
				st("leaf", "prefix", st("type", "string")),
			),
		),
	))
	text := Proto(mod)
	state := text[strings.Index(text, "message State {"):]
	routeIdx := strings.Index(state, "message Route {")
	innerIdx := strings.Index(state, "message Inner {")
	fieldIdx := strings.Index(state, `string status`)
	require.True(t, routeIdx >= 0 && innerIdx >= 0 && fieldIdx >= 0)
	assert.Less(t, routeIdx, innerIdx)
	assert.Less(t, innerIdx, fieldIdx)
	assert.Contains(t, state, "repeated Route route")
}
