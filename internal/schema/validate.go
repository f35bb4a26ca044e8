// Package schema provides JSON schema validation for cmakecheck settings files.
package schema

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"

	schemafs "github.com/buildcheck/cmakecheck/schema"
)

var (
	settingsSchema *jsonschema.Schema
	compileOnce    sync.Once
	compileErr     error
)

// compileSchemas compiles all embedded schemas once.
func compileSchemas() error {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()

		settingsData, err := schemafs.FS.ReadFile("settings.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read settings schema: %w", err)
			return
		}

		settingsDoc, err := jsonschema.UnmarshalJSON(bytes.NewReader(settingsData))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal settings schema: %w", err)
			return
		}

		if err := compiler.AddResource("settings.schema.json", settingsDoc); err != nil {
			compileErr = fmt.Errorf("add settings schema resource: %w", err)
			return
		}

		settingsSchema, err = compiler.Compile("settings.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("compile settings schema: %w", err)
			return
		}
	})

	return compileErr
}

// ValidateSettings validates JSON data against the settings schema.
func ValidateSettings(data []byte) error {
	if err := compileSchemas(); err != nil {
		return err
	}

	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := settingsSchema.Validate(v); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}

	return nil
}
