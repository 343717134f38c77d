package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/runlog/internal/ids"
	"github.com/roach88/runlog/internal/kv/memory"
)

// harness runs commands against a shared in-memory backend so state carries
// over between invocations like it would on disk.
type harness struct {
	t       *testing.T
	backend *memory.Store
	ids     ids.Generator
	stdin   string
	stderr  *bytes.Buffer
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	return &harness{
		t:       t,
		backend: memory.New(),
		ids:     ids.NewFixedGenerator("run-a", "run-b", "run-c", "run-d"),
		stderr:  &bytes.Buffer{},
	}
}

func (h *harness) run(args ...string) (string, error) {
	h.t.Helper()
	opts := &RootOptions{
		Backend: h.backend,
		IDs:     h.ids,
		In:      strings.NewReader(h.stdin),
	}
	cmd := newRootCommand(opts)

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(h.stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

// runJSON runs args with --format json and decodes the response.
func (h *harness) runJSON(args ...string) (CLIResponse, error) {
	h.t.Helper()
	out, err := h.run(append([]string{"--format", "json"}, args...)...)

	var resp CLIResponse
	require.NoError(h.t, json.Unmarshal([]byte(out), &resp), "output: %s", out)
	return resp, err
}

// decode converts a response payload into v.
func decode(t *testing.T, data any, v any) {
	t.Helper()
	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, v))
}
