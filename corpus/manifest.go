package corpus

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// manifestSchema describes the optional corpus manifest sidecar file:
// metadata about the corpus a run was trained against, kept separate
// from the word-pair data itself.
const manifestSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["name", "files"],
	"properties": {
		"name": {"type": "string", "minLength": 1},
		"language": {"type": "string"},
		"description": {"type": "string"},
		"files": {
			"type": "array",
			"minItems": 1,
			"items": {"type": "string", "minLength": 1}
		}
	},
	"additionalProperties": true
}`

// Manifest describes a corpus: its name, source language, and the
// relative file list it expects Discover to find.
type Manifest struct {
	Name        string   `json:"name"`
	Language    string   `json:"language,omitempty"`
	Description string   `json:"description,omitempty"`
	Files       []string `json:"files"`
}

// ValidateManifest compiles the embedded manifest schema and validates
// raw JSON bytes against it, returning the decoded Manifest on success.
func ValidateManifest(raw []byte) (Manifest, error) {
	compiler := jsonschema.NewCompiler()
	const virtualURL = "memory://corpus-manifest.json"
	if err := compiler.AddResource(virtualURL, strings.NewReader(manifestSchema)); err != nil {
		return Manifest{}, fmt.Errorf("corpus: compiling manifest schema: %w", err)
	}
	schema, err := compiler.Compile(virtualURL)
	if err != nil {
		return Manifest{}, fmt.Errorf("corpus: compiling manifest schema: %w", err)
	}

	var payload interface{}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return Manifest{}, fmt.Errorf("corpus: manifest is not valid JSON: %w", err)
	}
	if err := schema.Validate(payload); err != nil {
		return Manifest{}, fmt.Errorf("corpus: manifest failed validation: %w", err)
	}

	var manifest Manifest
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return Manifest{}, err
	}
	return manifest, nil
}

// LoadManifest reads and validates the manifest file at path.
func LoadManifest(path string) (Manifest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, err
	}
	return ValidateManifest(raw)
}
