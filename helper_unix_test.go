//go:build !windows

package envprobe

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakePython writes an executable shell script standing in for python.
func fakePython(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "python3")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755))
	return path
}

func TestNewPythonInterpreter_RejectsOldPython(t *testing.T) {
	path := fakePython(t, `echo "Python 2.7.18" >&2`)

	_, err := NewPythonInterpreter(context.Background(), path)
	require.ErrorContains(t, err, "is Python 2.7.18, need 3.6 or newer")
}

func TestNewPythonInterpreter_AcceptsMinimum(t *testing.T) {
	path := fakePython(t, `echo "Python 3.6.15"`)

	interp, err := NewPythonInterpreter(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, Version{Major: 3, Minor: 6, Patch: 15}, interp.Version)
}

func TestNewPythonInterpreter_NotPython(t *testing.T) {
	path := fakePython(t, `echo "GNU bash, version 5.2"`)

	_, err := NewPythonInterpreter(context.Background(), path)
	require.ErrorContains(t, err, "not a python version string")
}

func TestRunHelper_NoReplyCarriesStderr(t *testing.T) {
	interp := &PythonInterpreter{Path: fakePython(t, `echo "SyntaxError: helper exploded" >&2; exit 1`)}

	_, err := interp.Describe(context.Background())
	require.ErrorContains(t, err, "helper failed")
	require.ErrorContains(t, err, "SyntaxError: helper exploded")
}

func TestRunHelper_ImportFailureIsNotDependencyUnavailable(t *testing.T) {
	interp := &PythonInterpreter{Path: fakePython(t, `echo "Fatal Python error" >&2; exit 1`)}

	res := Probe(context.Background(), ImportTarget(interp, "networkx", "networkx"))
	require.Equal(t, Unavailable, res.Status)
	require.Contains(t, res.Reason, "Fatal Python error")
}

func TestRunHelper_TimeoutWithLingeringGrandchild(t *testing.T) {
	// the backgrounded sleep keeps stdout and stderr open after sh is killed
	interp := &PythonInterpreter{Path: fakePython(t, "sleep 5 &\nsleep 5")}

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := interp.Import(ctx, "networkx")
	require.Error(t, err)
	require.Less(t, time.Since(start), 4*time.Second)
}

func TestFrameReader_CloseUnblocksReceive(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer w.Close()

	fr := NewMsgpackFrameReader(r)
	errc := make(chan error, 1)
	go func() {
		_, err := fr.Receive()
		errc <- err
	}()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, fr.Close())

	select {
	case err := <-errc:
		require.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Receive still blocked after Close")
	}
}
