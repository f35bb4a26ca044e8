package schema

import (
	"encoding/json"
	"io/fs"
	"strings"
	"testing"
)

// TestEmbeddedSchemasAreValidJSON verifies that all embedded schema files are valid JSON.
// This catches corrupted or malformed schema files at test time rather than runtime.
func TestEmbeddedSchemasAreValidJSON(t *testing.T) {
	t.Parallel()

	entries, err := fs.ReadDir(FS, ".")
	if err != nil {
		t.Fatalf("failed to read embedded FS: %v", err)
	}

	schemaCount := 0
	for _, entry := range entries {
		entry := entry
		if !strings.HasSuffix(entry.Name(), ".schema.json") {
			continue
		}
		schemaCount++

		t.Run(entry.Name(), func(t *testing.T) {
			t.Parallel()

			data, err := FS.ReadFile(entry.Name())
			if err != nil {
				t.Fatalf("failed to read %s: %v", entry.Name(), err)
			}

			var v interface{}
			if err := json.Unmarshal(data, &v); err != nil {
				t.Errorf("%s is not valid JSON: %v", entry.Name(), err)
			}

			// Verify it's an object (all JSON schemas should be objects)
			if _, ok := v.(map[string]interface{}); !ok {
				t.Errorf("%s root is not an object", entry.Name())
			}
		})
	}

	// Ensure we actually tested some schemas
	if schemaCount == 0 {
		t.Error("no schema files found in embedded FS")
	}
}

// TestSettingsSchemaPresent verifies the settings schema ships with the binary.
func TestSettingsSchemaPresent(t *testing.T) {
	t.Parallel()

	data, err := FS.ReadFile("settings.schema.json")
	if err != nil {
		t.Fatalf("settings.schema.json missing from embedded FS: %v", err)
	}

	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("settings.schema.json is not valid JSON: %v", err)
	}

	props, ok := doc["properties"].(map[string]interface{})
	if !ok {
		t.Fatal("settings.schema.json has no properties object")
	}
	for _, field := range []string{"configRoot", "buildRoot", "generator", "defineVar", "cmakeArgs", "toolHints"} {
		if _, ok := props[field]; !ok {
			t.Errorf("settings.schema.json missing property %q", field)
		}
	}
}
