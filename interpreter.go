package envprobe

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

// ErrPythonNotFound is returned by FindPython when no candidate executable is
// on PATH.
var ErrPythonNotFound = errors.New("python not found")

// MinimumPythonVersion is the oldest interpreter the embedded helper runs on.
var MinimumPythonVersion = Version{Major: 3, Minor: 6, Patch: -1}

// PythonInterpreter is a Python executable that envprobe drives through the
// embedded helper. It implements Describer.
type PythonInterpreter struct {
	// Path is the executable that is launched. It may differ from the
	// sys.executable the interpreter reports (launchers, shims, venv links).
	Path string

	// Version is parsed from "<Path> --version".
	Version Version
}

// FindPython locates a Python interpreter on PATH and validates it.
//
// On Unix "python3" is tried before "python". On Windows "python" is tried
// before the "py" launcher, and the Microsoft Store placeholder executables
// under Microsoft\WindowsApps are skipped.
func FindPython(ctx context.Context) (*PythonInterpreter, error) {
	candidates := []string{"python3", "python"}
	if runtime.GOOS == "windows" {
		candidates = []string{"python", "py"}
	}

	log := zerolog.Ctx(ctx)
	var lastErr error = ErrPythonNotFound
	for _, name := range candidates {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		if isStorePlaceholder(path) {
			log.Debug().Str("path", path).Msg("skipping store placeholder")
			continue
		}
		interp, err := NewPythonInterpreter(ctx, path)
		if err != nil {
			log.Debug().Err(err).Str("path", path).Msg("candidate rejected")
			lastErr = err
			continue
		}
		return interp, nil
	}
	return nil, fmt.Errorf("find python (tried %s): %w", strings.Join(candidates, ", "), lastErr)
}

func isStorePlaceholder(path string) bool {
	return strings.Contains(strings.ToLower(path), `microsoft\windowsapps`)
}

// NewPythonInterpreter checks that path runs and reports a Python version no
// older than MinimumPythonVersion.
func NewPythonInterpreter(ctx context.Context, path string) (*PythonInterpreter, error) {
	cmd := exec.CommandContext(ctx, path, "--version")
	configureCommand(cmd)

	// Python 2 writes its version to stderr.
	out, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("run %s --version: %w", path, err)
	}
	version, err := ParsePythonVersion(string(out))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if version.Compare(MinimumPythonVersion) < 0 {
		return nil, fmt.Errorf("%s is Python %s, need %s or newer",
			path, version.String(), MinimumPythonVersion.MinorString())
	}

	zerolog.Ctx(ctx).Debug().
		Str("path", path).
		Str("version", version.String()).
		Msg("python interpreter found")

	return &PythonInterpreter{Path: path, Version: version}, nil
}

// Describe asks the interpreter for sys.executable, sys.version and sys.path.
func (p *PythonInterpreter) Describe(ctx context.Context) (EnvironmentReport, error) {
	var reply describeReply
	if err := p.runHelper(ctx, &reply, "describe"); err != nil {
		return EnvironmentReport{}, fmt.Errorf("describe %s: %w", p.Path, err)
	}
	return EnvironmentReport{
		Runtime:        "Python",
		Executable:     reply.Executable,
		Version:        reply.Version,
		SearchPath:     reply.Path,
		SearchPathRepr: reply.PathRepr,
	}, nil
}

// Import imports module in a fresh interpreter. A failed import is returned
// as *DependencyUnavailable; any other error means the helper itself failed.
func (p *PythonInterpreter) Import(ctx context.Context, module string) (*ModuleHandle, error) {
	var reply importReply
	if err := p.runHelper(ctx, &reply, "import", module); err != nil {
		return nil, fmt.Errorf("import %s: %w", module, err)
	}
	if !reply.OK {
		return nil, &DependencyUnavailable{
			Module:    module,
			Exception: reply.Exception,
			Message:   reply.Message,
		}
	}
	return &ModuleHandle{
		Module:  module,
		Version: reply.Version,
		File:    reply.File,
	}, nil
}
