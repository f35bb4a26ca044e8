package check

import (
	"os"

	"github.com/buildcheck/cmakecheck/internal/errors"
)

// PrepareBuildRoot optionally wipes and then creates the build root. The
// wipe happens before any config is processed, so every per-config
// directory a cleaned run produces is freshly created. A clean request for
// a build root that does not exist is a no-op.
func PrepareBuildRoot(buildRoot string, clean bool) error {
	if clean {
		if err := os.RemoveAll(buildRoot); err != nil {
			return errors.Configf("cannot clean build root %q: %v", buildRoot, err)
		}
	}
	if err := os.MkdirAll(buildRoot, 0o755); err != nil {
		return errors.Configf("build root %q is not usable: %v", buildRoot, err)
	}
	return nil
}
