package envprobe

import (
	"context"
	"time"
)

// Importer imports a Python module by dotted path.
type Importer interface {
	Import(ctx context.Context, module string) (*ModuleHandle, error)
}

// TargetOption adjusts a target built by ImportTarget.
type TargetOption func(*importTarget)

// WithoutVersion drops the version from the success line.
func WithoutVersion() TargetOption {
	return func(t *importTarget) { t.withVersion = false }
}

// WithTimeout bounds each import attempt. Zero means no limit.
func WithTimeout(d time.Duration) TargetOption {
	return func(t *importTarget) { t.timeout = d }
}

type importTarget struct {
	importer    Importer
	module      string
	withVersion bool
	timeout     time.Duration
}

// ImportTarget builds a ProbeTarget that imports module through importer and
// reports it under name.
func ImportTarget(importer Importer, name, module string, opts ...TargetOption) ProbeTarget {
	it := &importTarget{importer: importer, module: module, withVersion: true}
	for _, opt := range opts {
		opt(it)
	}

	t := ProbeTarget{
		Name: name,
		Acquire: func(ctx context.Context) (Handle, error) {
			if it.timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, it.timeout)
				defer cancel()
			}
			h, err := it.importer.Import(ctx, it.module)
			if err != nil {
				return nil, err
			}
			return h, nil
		},
	}
	if it.withVersion {
		t.VersionOf = func(h Handle) string {
			if mh, ok := h.(*ModuleHandle); ok {
				return mh.Version
			}
			return ""
		}
	}
	return t
}

// DefaultTargets is the fixed probe list: networkx with its version, then
// matplotlib via matplotlib.pyplot without one.
func DefaultTargets(importer Importer, opts ...TargetOption) []ProbeTarget {
	return []ProbeTarget{
		ImportTarget(importer, "networkx", "networkx", opts...),
		ImportTarget(importer, "matplotlib", "matplotlib.pyplot", append(opts[:len(opts):len(opts)], WithoutVersion())...),
	}
}
