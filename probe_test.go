package envprobe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func available(name, version string) ProbeTarget {
	return ProbeTarget{
		Name:      name,
		Acquire:   func(context.Context) (Handle, error) { return version, nil },
		VersionOf: func(h Handle) string { return h.(string) },
	}
}

func missing(name string) ProbeTarget {
	return ProbeTarget{
		Name: name,
		Acquire: func(context.Context) (Handle, error) {
			return nil, &DependencyUnavailable{Module: name, Exception: "ModuleNotFoundError", Message: "No module named '" + name + "'"}
		},
		VersionOf: func(h Handle) string { return h.(string) },
	}
}

func TestProbe_Available(t *testing.T) {
	res := Probe(context.Background(), available("alpha", "1.2.3"))
	require.Equal(t, Available, res.Status)
	require.Equal(t, "✓ alpha imported successfully! Version: 1.2.3", res.Line())
}

func TestProbe_Unavailable(t *testing.T) {
	res := Probe(context.Background(), missing("beta"))
	require.Equal(t, Unavailable, res.Status)
	require.True(t, strings.HasPrefix(res.Line(), "✗ beta import failed:"), res.Line())
	require.Equal(t, "✗ beta import failed: No module named 'beta'", res.Line())
}

func TestProbe_NoVersionExtractor(t *testing.T) {
	target := available("gamma", "9.9")
	target.VersionOf = nil

	res := Probe(context.Background(), target)
	require.Equal(t, "✓ gamma imported successfully!", res.Line())
}

func TestProbe_EmptyVersionIsUnknown(t *testing.T) {
	res := Probe(context.Background(), available("delta", ""))
	require.Equal(t, "✓ delta imported successfully! Version: unknown", res.Line())
}

func TestProbe_RecoversPanics(t *testing.T) {
	acquirePanics := ProbeTarget{
		Name:    "boom",
		Acquire: func(context.Context) (Handle, error) { panic("loader exploded") },
	}
	res := Probe(context.Background(), acquirePanics)
	require.Equal(t, Unavailable, res.Status)
	require.Equal(t, "✗ boom import failed: loader exploded", res.Line())

	versionPanics := available("bang", "1.0")
	versionPanics.VersionOf = func(Handle) string { panic(errors.New("bad handle")) }
	res = Probe(context.Background(), versionPanics)
	require.Equal(t, Unavailable, res.Status)
	require.Equal(t, "bad handle", res.Reason)
}

func TestProbe_NilAcquire(t *testing.T) {
	res := Probe(context.Background(), ProbeTarget{Name: "ghost"})
	require.Equal(t, Unavailable, res.Status)
	require.Contains(t, res.Line(), "ghost import failed:")
}

func TestProber_CompleteAndOrdered(t *testing.T) {
	targets := []ProbeTarget{
		missing("first"),
		available("second", "2.0"),
		missing("third"),
		available("fourth", "4.0"),
	}
	var buf bytes.Buffer
	results, err := NewProber(targets).Run(context.Background(), &buf)
	require.NoError(t, err)
	require.Len(t, results, len(targets))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, len(targets))
	for i, target := range targets {
		require.Equal(t, target.Name, results[i].Name)
		require.Contains(t, lines[i], " "+target.Name+" ")
	}
	require.Equal(t, []ProbeStatus{Unavailable, Available, Unavailable, Available},
		[]ProbeStatus{results[0].Status, results[1].Status, results[2].Status, results[3].Status})
}

func TestProber_FailureDoesNotStopLaterProbes(t *testing.T) {
	ran := false
	later := ProbeTarget{
		Name: "later",
		Acquire: func(context.Context) (Handle, error) {
			ran = true
			return "ok", nil
		},
	}
	_, err := NewProber([]ProbeTarget{missing("early"), later}).Run(context.Background(), &bytes.Buffer{})
	require.NoError(t, err)
	require.True(t, ran)
}

func TestProber_LineFormat(t *testing.T) {
	var buf bytes.Buffer
	results, err := NewProber([]ProbeTarget{available("a", "1"), missing("b")}).Run(context.Background(), &buf)
	require.NoError(t, err)
	for _, r := range results {
		line := r.Line()
		require.Contains(t, line, r.Name)
		if r.Status == Available {
			require.Contains(t, line, "imported successfully!")
		} else {
			require.Contains(t, line, "import failed:")
		}
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestProber_WriteError(t *testing.T) {
	_, err := NewProber([]ProbeTarget{available("a", "1")}).Run(context.Background(), failingWriter{})
	require.ErrorContains(t, err, "closed pipe")
}
