// Package check enumerates legacy configurations and drives the
// configuration tool once per config, collecting pass/fail results.
package check

import (
	"os"
	"slices"

	"github.com/buildcheck/cmakecheck/internal/errors"
)

// ListConfigs returns the ordered list of configuration identifiers to
// process. An explicit selection is used verbatim, preserving caller order,
// and bypasses the config root entirely. Otherwise the regular files of the
// config root are returned sorted lexicographically.
func ListConfigs(configRoot string, selection []string) ([]string, error) {
	if len(selection) > 0 {
		return slices.Clone(selection), nil
	}

	entries, err := os.ReadDir(configRoot)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Configf("config directory %q does not exist", configRoot)
		}
		return nil, errors.Configf("cannot read config directory %q: %v", configRoot, err)
	}

	var configs []string
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode().IsRegular() {
			configs = append(configs, entry.Name())
		}
	}

	// os.ReadDir returns entries sorted by filename, so the default order
	// is already deterministic.
	return configs, nil
}
