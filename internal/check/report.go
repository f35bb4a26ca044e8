package check

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// reportFile is the YAML document written by --report. Per-config output is
// deliberately omitted: the report is a CI artifact for trend tracking, the
// full logs already went to the console and the build caches.
type reportFile struct {
	Total    int            `yaml:"total"`
	Passed   int            `yaml:"passed"`
	Failed   int            `yaml:"failed"`
	Duration string         `yaml:"duration"`
	Configs  []reportConfig `yaml:"configs"`
}

type reportConfig struct {
	Name     string `yaml:"name"`
	Status   string `yaml:"status"`
	Duration string `yaml:"duration"`
}

// WriteReport writes the run summary as YAML to path, creating parent
// directories as needed.
func WriteReport(path string, summary *Summary) error {
	report := reportFile{
		Total:    summary.Total(),
		Passed:   summary.Passed(),
		Failed:   summary.Failed(),
		Duration: formatDuration(summary.TotalDuration),
		Configs:  make([]reportConfig, 0, len(summary.Results)),
	}

	for _, r := range summary.Results {
		status := "failed"
		if r.Passed {
			status = "passed"
		}
		report.Configs = append(report.Configs, reportConfig{
			Name:     r.Name,
			Status:   status,
			Duration: formatDuration(r.Duration),
		})
	}

	data, err := yaml.Marshal(&report)
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}

	return nil
}
