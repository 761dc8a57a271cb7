package envprobe

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// Markers that open every outcome line.
const (
	SuccessMarker = "✓"
	FailureMarker = "✗"
)

// Handle is whatever a ProbeTarget's Acquire returns on success.
type Handle any

// ProbeTarget is one optional dependency to load.
type ProbeTarget struct {
	Name string

	Acquire func(ctx context.Context) (Handle, error)

	// VersionOf extracts a display version from the handle. When nil the
	// success line carries no version.
	VersionOf func(Handle) string
}

// ProbeStatus tells whether a target could be acquired.
type ProbeStatus int

const (
	Available ProbeStatus = iota
	Unavailable
)

func (s ProbeStatus) String() string {
	if s == Available {
		return "available"
	}
	return "unavailable"
}

// ProbeResult is the outcome of a single probe.
type ProbeResult struct {
	Name   string
	Status ProbeStatus

	// Version is set for Available results of targets with a VersionOf.
	Version     string
	ShowVersion bool

	// Reason is set for Unavailable results.
	Reason string
}

// Line renders the result as printed.
func (r ProbeResult) Line() string {
	if r.Status == Unavailable {
		return fmt.Sprintf("%s %s import failed: %s", FailureMarker, r.Name, r.Reason)
	}
	if r.ShowVersion {
		return fmt.Sprintf("%s %s imported successfully! Version: %s", SuccessMarker, r.Name, r.Version)
	}
	return fmt.Sprintf("%s %s imported successfully!", SuccessMarker, r.Name)
}

// Probe runs a single target. Failures, including panics in Acquire or
// VersionOf, become Unavailable results and never escape.
func Probe(ctx context.Context, t ProbeTarget) (res ProbeResult) {
	res = ProbeResult{Name: t.Name}
	defer func() {
		if r := recover(); r != nil {
			res = ProbeResult{Name: t.Name, Status: Unavailable, Reason: fmt.Sprint(r)}
		}
	}()

	if t.Acquire == nil {
		return ProbeResult{Name: t.Name, Status: Unavailable, Reason: "no acquire function"}
	}
	h, err := t.Acquire(ctx)
	if err != nil {
		return ProbeResult{Name: t.Name, Status: Unavailable, Reason: err.Error()}
	}

	res.Status = Available
	if t.VersionOf != nil {
		res.ShowVersion = true
		res.Version = t.VersionOf(h)
		if res.Version == "" {
			res.Version = "unknown"
		}
	}
	return res
}

// Prober runs an ordered list of targets.
type Prober struct {
	Targets []ProbeTarget
}

// NewProber returns a Prober for targets, run in the given order.
func NewProber(targets []ProbeTarget) *Prober {
	return &Prober{Targets: targets}
}

// Run probes every target in order and writes one line per target to w.
// The only error returned is a failed write.
func (p *Prober) Run(ctx context.Context, w io.Writer) ([]ProbeResult, error) {
	log := zerolog.Ctx(ctx)
	results := make([]ProbeResult, 0, len(p.Targets))
	for _, t := range p.Targets {
		res := Probe(ctx, t)
		log.Debug().
			Str("target", res.Name).
			Stringer("status", res.Status).
			Str("version", res.Version).
			Str("reason", res.Reason).
			Msg("probe finished")

		results = append(results, res)
		if _, err := fmt.Fprintln(w, res.Line()); err != nil {
			return results, fmt.Errorf("write %s result: %w", res.Name, err)
		}
	}
	return results, nil
}
