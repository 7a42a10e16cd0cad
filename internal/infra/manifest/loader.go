package manifest

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/Bastard-Software/depsync/internal/domain"
)

var ErrManifestInvalid = errors.New("dependency manifest is invalid")

// File is the YAML shape of a dependency manifest. It carries the same
// information as the built-in registry: one flat list of revision-pinned
// sources, optionally with a workspace directory override.
type File struct {
	Workspace    string  `yaml:"workspace"`
	Dependencies []Entry `yaml:"dependencies"`
}

type Entry struct {
	Name     string `yaml:"name"`
	URL      string `yaml:"url"`
	Revision string `yaml:"revision"`
}

const rawSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["dependencies"],
  "additionalProperties": false,
  "properties": {
    "workspace": {"type": "string", "minLength": 1},
    "dependencies": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["name", "url", "revision"],
        "additionalProperties": false,
        "properties": {
          "name": {"type": "string", "minLength": 1},
          "url": {"type": "string", "minLength": 1},
          "revision": {"type": "string", "pattern": "^([0-9a-f]{40}|[0-9a-f]{64})$"}
        }
      }
    }
  }
}`

var compileSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("deps.schema.json", strings.NewReader(rawSchema)); err != nil {
		return nil, fmt.Errorf("load manifest schema: %w", err)
	}
	schema, err := compiler.Compile("deps.schema.json")
	if err != nil {
		return nil, fmt.Errorf("compile manifest schema: %w", err)
	}
	return schema, nil
})

// Load reads, schema-validates, and converts a manifest into a registry plus
// an optional workspace override ("" when the manifest does not set one).
func Load(path string) (domain.Registry, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("read manifest: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (domain.Registry, string, error) {
	schema, err := compileSchema()
	if err != nil {
		return nil, "", err
	}

	var document any
	if err := yaml.Unmarshal(data, &document); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	if err := schema.Validate(document); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}

	registry := make(domain.Registry, 0, len(file.Dependencies))
	for _, entry := range file.Dependencies {
		registry = append(registry, domain.DependencySpec{
			Name:     entry.Name,
			URL:      entry.URL,
			Revision: entry.Revision,
		})
	}
	if err := registry.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrManifestInvalid, err)
	}
	return registry, file.Workspace, nil
}
