package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/cmd/roslock/commands"
	"go.trai.ch/roslock/internal/app"
)

type fakeApp struct {
	opts   app.LockOptions
	called bool
	err    error
}

func (f *fakeApp) Lock(_ context.Context, opts app.LockOptions) error {
	f.called = true
	f.opts = opts
	return f.err
}

func execute(t *testing.T, a commands.Application, args ...string) (string, string, error) {
	t.Helper()

	cli := commands.New(a)
	var out, errOut bytes.Buffer
	cli.SetArgs(args)
	cli.SetOutput(&out, &errOut)

	err := cli.Execute(context.Background())
	return out.String(), errOut.String(), err
}

func TestLockCommand(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		a := &fakeApp{}
		_, _, err := execute(t, a, "lock")
		require.NoError(t, err)

		assert.True(t, a.called)
		assert.Equal(t, "humble", a.opts.Distro)
		assert.Equal(t, app.PartitionCatalog, a.opts.PartitionMode)
	})

	t.Run("Flags", func(t *testing.T) {
		a := &fakeApp{}
		_, _, err := execute(t, a, "lock", "--distro", "jazzy", "--partition", "origin")
		require.NoError(t, err)

		assert.Equal(t, "jazzy", a.opts.Distro)
		assert.Equal(t, app.PartitionOrigin, a.opts.PartitionMode)
	})

	t.Run("ErrorPropagates", func(t *testing.T) {
		wantErr := errors.New("lock failed")
		a := &fakeApp{err: wantErr}

		_, _, err := execute(t, a, "lock")
		require.Error(t, err)
		assert.True(t, errors.Is(err, wantErr))
	})

	t.Run("RejectsPositionalArgs", func(t *testing.T) {
		a := &fakeApp{}
		_, _, err := execute(t, a, "lock", "unexpected")
		require.Error(t, err)
		assert.False(t, a.called)
	})
}

func TestVersionCommand(t *testing.T) {
	a := &fakeApp{}
	out, _, err := execute(t, a, "version")
	require.NoError(t, err)

	assert.Equal(t, "dev\n", out)
	assert.False(t, a.called)
}

func TestUnknownCommand(t *testing.T) {
	a := &fakeApp{}
	_, _, err := execute(t, a, "frobnicate")
	require.Error(t, err)
	assert.False(t, a.called)
}
