// Package envprobe checks what a Python environment can import.
//
// It reports the interpreter's executable, version and module search path,
// then tries a fixed list of optional imports and prints one line per import:
//
//	Python executable: /usr/bin/python3
//	Python version: 3.12.3 (main, ...) [GCC 13.2.0]
//	Python path: ['', '/usr/lib/python312.zip', '/usr/lib/python3.12', ...]
//
//	✓ networkx imported successfully! Version: 3.3
//	✗ matplotlib import failed: No module named 'matplotlib'
//
// # Interpreters
//
// FindPython searches PATH for "python3" then "python" ("python" then "py" on
// Windows). NewPythonInterpreter wraps a known executable. Either way the
// candidate must answer "--version" with a Python version string.
//
// Every question put to the interpreter runs an embedded helper script in a
// fresh process:
//
//	python -c <helper> describe
//	python -c <helper> import networkx
//
// The helper moves stdout aside before doing any work, so output printed by
// imported modules lands on stderr, and replies with a single frame: a 4-byte
// big-endian length followed by a MessagePack map. MsgpackFrameReader and
// MsgpackDecoder decode it.
//
// # Probes
//
// A ProbeTarget pairs a name with an Acquire function and an optional
// VersionOf. Probe turns every failure, panics included, into an Unavailable
// result, so one missing library never hides the next one:
//
//	interp, err := envprobe.FindPython(ctx)
//	if err != nil {
//	    return err
//	}
//	targets := []envprobe.ProbeTarget{
//	    envprobe.ImportTarget(interp, "numpy", "numpy"),
//	    envprobe.ImportTarget(interp, "PIL", "PIL.Image", envprobe.WithoutVersion()),
//	}
//	_, err = envprobe.Run(ctx, os.Stdout, interp, targets)
//
// Failed imports surface as *DependencyUnavailable carrying the interpreter's
// own message, for example "No module named 'numpy'".
//
// # Logging
//
// Debug events are written to the zerolog logger on the context
// (zerolog.Ctx). Without one, nothing is logged.
package envprobe
