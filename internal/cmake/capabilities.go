package cmake

import (
	"context"
	"encoding/json"
	"os/exec"
	"sort"
)

// Capabilities returns the sorted set of generators the local cmake
// installation supports. The probe is advisory: a missing cmake binary, a
// failing capabilities command, or malformed JSON all yield nil so the
// caller can decide how to proceed without crashing.
func (t *Tool) Capabilities(ctx context.Context) []string {
	cmd := exec.CommandContext(ctx, t.execName, "-E", "capabilities")
	out, err := cmd.Output()
	if err != nil {
		return nil
	}
	return generatorNamesFromJSON(out)
}

// generatorNamesFromJSON extracts generator names from a `cmake -E
// capabilities` payload. Separated for testability without calling cmake.
func generatorNamesFromJSON(data []byte) []string {
	var payload struct {
		Generators []struct {
			Name string `json:"name"`
		} `json:"generators"`
	}
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil
	}

	var names []string
	for _, g := range payload.Generators {
		if g.Name != "" {
			names = append(names, g.Name)
		}
	}
	sort.Strings(names)
	return names
}
