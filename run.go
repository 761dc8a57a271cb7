package envprobe

import (
	"context"
	"fmt"
	"io"
)

// Run writes the environment report for d, then probes targets in order.
// Probe failures are part of the output, not errors: Run only fails when d
// cannot describe its runtime or when writing to w fails.
func Run(ctx context.Context, w io.Writer, d Describer, targets []ProbeTarget) ([]ProbeResult, error) {
	report, err := d.Describe(ctx)
	if err != nil {
		return nil, err
	}
	if err := WriteEnvironmentReport(w, report); err != nil {
		return nil, fmt.Errorf("write environment report: %w", err)
	}
	if len(targets) == 0 {
		return []ProbeResult{}, nil
	}
	if _, err := fmt.Fprintln(w); err != nil {
		return nil, fmt.Errorf("write environment report: %w", err)
	}
	return NewProber(targets).Run(ctx, w)
}
