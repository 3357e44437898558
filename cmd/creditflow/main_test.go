package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/creditflow/payment"
)

const network = `
creditlines:
  - {id: ab, owner: A, partner: B, limit: 100, balance: 0}
  - {id: bc, owner: B, partner: C, limit: 50, balance: 0}
  - {id: cd, owner: C, partner: D}
  - {id: de, owner: D, partner: E}
`

func writeNetwork(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "network.yaml")
	require.NoError(t, os.WriteFile(path, []byte(network), 0o600))

	return path
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	err := execute(context.Background(), newApp(), append(args, "--network", writeNetwork(t)), &out, &out)

	return out.String(), err
}

func TestRouteCommand(t *testing.T) {
	out, err := run(t, "route", "--from", "A", "--to", "C", "--amount", "40")
	require.NoError(t, err)
	assert.Equal(t, "ab A->B 40.00\nbc B->C 40.00\n", out)
}

func TestRouteCommand_Errors(t *testing.T) {
	_, err := run(t, "route", "--from", "A", "--to", "C", "--amount", "60")
	require.ErrorIs(t, err, payment.ErrInsufficientCredit)

	_, err = run(t, "route", "--from", "C", "--to", "A", "--amount", "1")
	require.ErrorIs(t, err, payment.ErrNoRoute)

	_, err = run(t, "route", "--from", "A", "--to", "C", "--amount", "forty")
	require.Error(t, err)

	_, err = run(t, "route", "--from", "A", "--to", "C")
	require.Error(t, err, "--amount is required")
}

func TestMaxFlowCommand(t *testing.T) {
	out, err := run(t, "maxflow", "--from", "A", "--to", "C")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out)

	out, err = run(t, "maxflow", "--from", "C", "--to", "E")
	require.NoError(t, err)
	assert.Equal(t, "Infinity\n", out)

	out, err = run(t, "maxflow", "--from", "A", "--to", "C", "--ignore-balances")
	require.NoError(t, err)
	assert.Equal(t, "50\n", out)

	out, err = run(t, "maxflow", "--from", "E", "--to", "A")
	require.NoError(t, err)
	assert.Equal(t, "0\n", out)
}

func TestMissingNetworkFile(t *testing.T) {
	args := []string{"maxflow", "--from", "A", "--to", "B", "--network", filepath.Join(t.TempDir(), "none.yaml")}
	require.Error(t, execute(context.Background(), newApp(), args, &bytes.Buffer{}, &bytes.Buffer{}))
}

func TestExecute_ReleasesOnFailure(t *testing.T) {
	a := newApp()
	released := 0
	a.cleanup = func() { released++ }

	args := []string{"route", "--from", "A", "--to", "C", "--amount", "60", "--network", writeNetwork(t)}
	err := execute(context.Background(), a, args, &bytes.Buffer{}, &bytes.Buffer{})
	require.ErrorIs(t, err, payment.ErrInsufficientCredit)
	assert.Equal(t, 1, released, "store must be released when the command fails")
	require.NotNil(t, a.log, "logger was opened before the failure")
}
