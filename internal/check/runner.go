package check

import (
	"context"
	"time"

	"github.com/buildcheck/cmakecheck/internal/output"
)

// Configurer runs the configuration step for one config name and returns
// the combined tool output. Implemented by cmake.Session.
type Configurer interface {
	Configure(ctx context.Context, name string) (string, error)
}

// Runner drives the configuration tool once per config, strictly
// sequentially: each invocation is awaited fully before the next config is
// processed. Per-config failures are recorded in the summary, never
// returned as errors.
type Runner struct {
	configurer Configurer
	out        *output.Writer
}

// NewRunner creates a Runner.
func NewRunner(configurer Configurer, out *output.Writer) *Runner {
	return &Runner{
		configurer: configurer,
		out:        out,
	}
}

// Run processes the configs in order, streaming progress as it goes. The
// returned summary holds exactly one result per config, in input order.
// Context cancellation between configs stops the loop; the partial summary
// is returned together with the context error.
func (r *Runner) Run(ctx context.Context, configs []string) (*Summary, error) {
	summary := &Summary{Results: make([]Result, 0, len(configs))}
	start := time.Now()

	for _, name := range configs {
		if err := ctx.Err(); err != nil {
			summary.TotalDuration = time.Since(start)
			return summary, err
		}

		r.out.ConfigStart(name)
		configStart := time.Now()

		toolOutput, err := r.configurer.Configure(ctx, name)

		result := Result{
			Name:     name,
			Output:   toolOutput,
			Duration: time.Since(configStart),
		}

		if err != nil {
			r.out.ConfigFailed(name, err)
			r.out.FailureOutput(toolOutput)
		} else {
			result.Passed = true
			r.out.ConfigPassed(name, formatDuration(result.Duration))
		}

		summary.Results = append(summary.Results, result)
	}

	summary.TotalDuration = time.Since(start)
	return summary, nil
}

// formatDuration renders a duration with millisecond precision for display.
func formatDuration(d time.Duration) string {
	return d.Round(time.Millisecond).String()
}
