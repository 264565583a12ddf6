package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pm "github.com/azargarov/parmat"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestMultiplyCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Int2x3",
			args: []string{"multiply", "--a", "2x3:1,2,3,4,5,6", "--b", "3x2:1,2,3,4,5,6"},
			want: "a * b = {{22 28}, {49 64}}\n",
		},
		{
			name: "Int2x2Workers",
			args: []string{"multiply", "--a", "2x2:1,2,3,4", "--b", "2x2:1,2,3,4", "--workers", "1"},
			want: "a * b = {{7 10}, {15 22}}\n",
		},
		{
			name: "Float",
			args: []string{"multiply", "--type", "float", "--a", "1x2:0.5,2", "--b", "2x1:4,0.25"},
			want: "a * b = {{2.5}}\n",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := execute(t, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestMultiplyCommandIncompatible(t *testing.T) {
	_, err := execute(t, "multiply", "--a", "2x3:1,2,3,4,5,6", "--b", "2x2:1,2,3,4")
	require.ErrorIs(t, err, pm.ErrIncompatibleDimensions)
}

func TestMultiplyCommandBadType(t *testing.T) {
	_, err := execute(t, "multiply", "--type", "bytes", "--a", "1x1:1", "--b", "1x1:1")
	require.Error(t, err)
}

func TestParseMatrix(t *testing.T) {
	m, err := parseMatrix("2x3:1, 2, 3, 4, 5, 6", parseInt)
	require.NoError(t, err)
	assert.Equal(t, "{{1 2 3}, {4 5 6}}", m.String())

	mf, err := parseMatrix("0X4:", parseFloat)
	require.NoError(t, err)
	assert.Equal(t, 4, mf.Cols())

	bad := []string{
		"2x2",
		"2:1,2",
		"ax2:1,2",
		"2x2:1,2,3",
		"1x2:1,z",
		"-1x0:",
	}
	for _, text := range bad {
		_, err := parseMatrix(text, parseInt)
		assert.Error(t, err, text)
	}

	_, err = parseMatrix("2x2:1,2,3", parseInt)
	assert.ErrorIs(t, err, pm.ErrBadShape)
}

func TestLoadOptions(t *testing.T) {
	opts, err := loadOptions(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, pm.Options{}, opts)

	dir := t.TempDir()
	path := filepath.Join(dir, "parmat.yaml")
	cfg := "workers: 3\nqueue_size: 9\nwait:\n  initial: 250ms\n  max: 2s\n"
	require.NoError(t, os.WriteFile(path, []byte(cfg), 0o600))

	opts, err = loadOptions(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Workers)
	assert.Equal(t, 9, opts.QueueSize)
	assert.Equal(t, 250*time.Millisecond, opts.Wait.Initial)
	assert.Equal(t, 2*time.Second, opts.Wait.Max)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, nil, 0o600))
	opts, err = loadOptions(context.Background(), empty)
	require.NoError(t, err)
	assert.Zero(t, opts.Workers)

	typo := filepath.Join(dir, "typo.yaml")
	require.NoError(t, os.WriteFile(typo, []byte("workerz: 3\n"), 0o600))
	_, err = loadOptions(context.Background(), typo)
	require.Error(t, err)

	badDur := filepath.Join(dir, "dur.yaml")
	require.NoError(t, os.WriteFile(badDur, []byte("wait:\n  max: soon\n"), 0o600))
	_, err = loadOptions(context.Background(), badDur)
	require.Error(t, err)

	_, err = loadOptions(context.Background(), filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
}

func TestFlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "parmat.yaml")
	require.NoError(t, os.WriteFile(path, []byte("workers: 0\nqueue_size: -5\n"), 0o600))

	got, err := execute(t, "multiply", "--config", path, "--workers", "2",
		"--a", "1x2:1,2", "--b", "2x1:3,4")
	require.NoError(t, err)
	assert.Equal(t, "a * b = {{11}}\n", got)
}
