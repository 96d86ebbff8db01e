//go:build unit

package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func runSafecalc(t *testing.T, args ...string) (string, error) {
	t.Helper()

	out, _, err := runSafecalcWithStderr(t, args...)

	return out, err
}

func runSafecalcWithStderr(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	t.Setenv("HOME", t.TempDir())

	var out, errOut bytes.Buffer

	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(&out)
	root.SetErr(&errOut)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func TestEval_Text(t *testing.T) {
	out, err := runSafecalc(t, "eval", "7 // 2", "-7 // 2", "5 // 0")
	require.NoError(t, err)

	assert.Equal(t,
		"7 // 2 = 3\n"+
			"-7 // 2 = -4\n"+
			"5 // 0 = Invalid (5 // 0 at position 2: division by zero)\n",
		out)
}

func TestEval_Vars(t *testing.T) {
	out, err := runSafecalc(t, "eval", "--var", "total=120", "--var", "parts = 7", "total // parts", "total % parts")
	require.NoError(t, err)

	assert.Equal(t, "total // parts = 17\ntotal % parts = 1\n", out)
}

func TestEval_OutOfRangeVarIsInvalid(t *testing.T) {
	out, err := runSafecalc(t, "eval", "--var", "big=99999999999999999999999", "big + 1")
	require.NoError(t, err)

	assert.Contains(t, out, "big + 1 = Invalid")
	assert.Contains(t, out, "invalid operand")
}

func TestEval_MalformedVar(t *testing.T) {
	for _, v := range []string{"novalue", "=3", "x=abc"} {
		_, err := runSafecalc(t, "eval", "--var", v, "1")
		assert.Error(t, err, v)
	}
}

func TestEval_SyntaxErrorFails(t *testing.T) {
	_, err := runSafecalc(t, "eval", "7 / 2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "//")
}

func TestEval_UnknownVariableFails(t *testing.T) {
	_, err := runSafecalc(t, "eval", "x + 1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown variable")
}

func TestEval_Strict(t *testing.T) {
	_, err := runSafecalc(t, "eval", "--strict", "1 + 1")
	require.NoError(t, err)

	out, err := runSafecalc(t, "eval", "--strict", "1 + 1", "2 ^ -1")
	require.ErrorIs(t, err, ErrInvalidResults)
	assert.Contains(t, out, "2 ^ -1 = Invalid")
}

func TestEval_JSON(t *testing.T) {
	out, err := runSafecalc(t, "eval", "-o", "json", "2 ^ 10", "1 % 0")
	require.NoError(t, err)

	var rows []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 2)

	assert.Equal(t, "2 ^ 10", rows[0]["expression"])
	assert.InDelta(t, 1024, rows[0]["value"], 0)
	assert.NotContains(t, rows[0], "cause")

	assert.Nil(t, rows[1]["value"])
	assert.Equal(t, "1 % 0 at position 2: division by zero", rows[1]["cause"])
}

func TestEval_YAML(t *testing.T) {
	out, err := runSafecalc(t, "eval", "--output", "yaml", "3 * 4")
	require.NoError(t, err)

	var rows []row
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 1)
	require.NotNil(t, rows[0].Value)
	assert.Equal(t, 12, *rows[0].Value)
}

func TestEval_Table(t *testing.T) {
	out, err := runSafecalc(t, "eval", "-o", "table", "6 * 7", "1 // 0")
	require.NoError(t, err)

	assert.Contains(t, strings.ToUpper(out), "EXPRESSION")
	assert.Contains(t, out, "42")
	assert.Contains(t, out, "Invalid")
	assert.Contains(t, out, "division by zero")
}

func TestEval_OutputFromEnv(t *testing.T) {
	t.Setenv("SAFECALC_OUTPUT", "json")

	out, err := runSafecalc(t, "eval", "1 + 2")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)))
}

func TestEval_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "safecalc.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: yaml\nlog_level: error\n"), 0o600))

	out, err := runSafecalc(t, "--config", path, "eval", "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "- expression: 1 + 2\n  value: 3\n", out)
}

func TestEval_FlagOverridesEnv(t *testing.T) {
	t.Setenv("SAFECALC_OUTPUT", "json")

	out, err := runSafecalc(t, "-o", "text", "eval", "1 + 2")
	require.NoError(t, err)
	assert.Equal(t, "1 + 2 = 3\n", out)
}

func TestEval_PlainLogs(t *testing.T) {
	out, stderr, err := runSafecalcWithStderr(t, "--log-format", "plain", "--log-level", "debug", "eval", "5 // 0")
	require.NoError(t, err)

	assert.Contains(t, stderr, "[debug] expression evaluated to invalid")
	assert.Contains(t, stderr, "reason=division_by_zero")
	assert.Equal(t, "5 // 0 = Invalid (5 // 0 at position 2: division by zero)\n", out)
}


func TestEval_JSONLogsGoToCommandStderr(t *testing.T) {
	_, stderr, err := runSafecalcWithStderr(t, "--log-format", "json", "--log-level", "debug", "eval", "5 // 0")
	require.NoError(t, err)

	var found map[string]any

	for _, line := range strings.Split(strings.TrimSpace(stderr), "\n") {
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)

		if entry["msg"] == "expression evaluated to invalid" {
			found = entry
		}
	}

	require.NotNil(t, found, stderr)
	assert.Equal(t, "DEBUG", found["level"])
	assert.Equal(t, "division_by_zero", found["reason"])
	assert.Equal(t, "5 // 0", found["expression"])
}

func TestEval_WarningLevelAlias(t *testing.T) {
	for _, format := range []string{"json", "plain"} {
		t.Run(format, func(t *testing.T) {
			_, stderr, err := runSafecalcWithStderr(t, "--log-format", format, "--log-level", "warning", "eval", "5 // 0")
			require.NoError(t, err)
			assert.Empty(t, stderr)
		})
	}
}

func TestConfig_Rejects(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "output format", args: []string{"-o", "xml", "eval", "1"}},
		{name: "log level", args: []string{"--log-level", "loud", "eval", "1"}},
		{name: "plain log level", args: []string{"--log-format", "plain", "--log-level", "loud", "eval", "1"}},
		{name: "log format", args: []string{"--log-format", "xml", "eval", "1"}},
		{name: "environment", args: []string{"eval", "1"}, env: map[string]string{"SAFECALC_ENVIRONMENT": "moon"}},
		{name: "environment with plain logs", args: []string{"--log-format", "plain", "eval", "1"}, env: map[string]string{"SAFECALC_ENVIRONMENT": "banana"}},
		{name: "missing config file", args: []string{"--config", "/nonexistent/safecalc.yaml", "eval", "1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := runSafecalc(t, tt.args...)
			assert.Error(t, err)
		})
	}
}

func TestEval_RequiresExpression(t *testing.T) {
	_, err := runSafecalc(t, "eval")
	assert.Error(t, err)
}
