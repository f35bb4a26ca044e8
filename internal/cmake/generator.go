package cmake

import (
	"os/exec"
	"slices"
	"strings"

	"github.com/buildcheck/cmakecheck/internal/errors"
)

// lookPath is swapped in tests to avoid depending on the host PATH.
var lookPath = exec.LookPath

// CheckGenerator validates a forced generator choice before any per-config
// run. An empty capability set (probe failed or cmake missing) skips the
// availability check; the per-config runs will surface the real error.
func CheckGenerator(generator string, available []string, hints map[string]string) error {
	if generator == "" {
		return nil
	}

	if len(available) > 0 && !slices.Contains(available, generator) {
		return errors.Environmentf(
			"requested CMake generator %q is not available; install the matching build tool or omit --generator to let CMake choose a default (available generators: %s)",
			generator, strings.Join(available, ", "))
	}

	if tool, ok := hints[generator]; ok {
		if _, err := lookPath(tool); err != nil {
			return errors.Environmentf(
				"requested CMake generator %q requires the %q executable, which was not found in PATH; install it or omit --generator to use the default",
				generator, tool)
		}
	}

	return nil
}
