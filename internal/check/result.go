package check

import "time"

// Result records the outcome of a single configuration attempt. It is
// created once per attempt and never modified afterwards.
type Result struct {
	Name     string
	Passed   bool
	Output   string // Combined stdout+stderr of the configuration tool
	Duration time.Duration
}

// Summary is the ordered collection of results for one run. Results appear
// in the order the configs were enumerated, exactly one per requested
// config.
type Summary struct {
	Results       []Result
	TotalDuration time.Duration
}

// Total returns the number of configs attempted.
func (s *Summary) Total() int {
	return len(s.Results)
}

// Passed returns the number of configs that configured successfully.
func (s *Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Failed returns the number of configs that failed to configure.
func (s *Summary) Failed() int {
	return s.Total() - s.Passed()
}

// Succeeded returns the names of passing configs in processed order.
func (s *Summary) Succeeded() []string {
	var names []string
	for _, r := range s.Results {
		if r.Passed {
			names = append(names, r.Name)
		}
	}
	return names
}

// FailedNames returns the names of failing configs in processed order.
func (s *Summary) FailedNames() []string {
	var names []string
	for _, r := range s.Results {
		if !r.Passed {
			names = append(names, r.Name)
		}
	}
	return names
}

// AllPassed reports whether every attempted config configured successfully.
// An empty summary counts as passed; the caller is responsible for treating
// zero enumerated configs as an error before running.
func (s *Summary) AllPassed() bool {
	return s.Failed() == 0
}
