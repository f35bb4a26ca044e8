// Package cmakecheck provides public constants for external tools and CI
// scripts integrating with cmakecheck.
package cmakecheck

// Exit codes returned by the cmakecheck CLI.
// These constants allow wrapper scripts to check exit codes symbolically
// rather than using magic numbers.
const (
	// ExitSuccess indicates every requested configuration configured successfully.
	ExitSuccess = 0

	// ExitFailure indicates any failure: a configuration that did not
	// configure, zero configurations found, a missing config directory,
	// an unusable build root, or an unsatisfied generator precondition.
	ExitFailure = 1
)
