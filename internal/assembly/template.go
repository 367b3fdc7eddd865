package assembly

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"sigs.k8s.io/yaml"
)

// Template is the subset of a CloudFormation template that is summarized.
type Template struct {
	Description string              `json:"Description,omitempty"`
	Resources   map[string]Resource `json:"Resources"`

	raw []byte
}

// Resource is one template resource.
type Resource struct {
	Type       string                 `json:"Type"`
	Properties map[string]interface{} `json:"Properties,omitempty"`
}

// LoadTemplate reads the template of stack from the assembly.
func (a *Assembly) LoadTemplate(stack *Stack) (*Template, error) {
	// #nosec G304
	data, err := os.ReadFile(filepath.Join(a.Dir, stack.TemplateFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read template for stack %s: %w", stack.Name, err)
	}
	return ParseTemplate(data)
}

// ParseTemplate parses a JSON template.
func ParseTemplate(data []byte) (*Template, error) {
	t := &Template{raw: data}
	if err := json.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse template: %w", err)
	}
	return t, nil
}

// YAML converts the full template to YAML.
func (t *Template) YAML() ([]byte, error) {
	out, err := yaml.JSONToYAML(t.raw)
	if err != nil {
		return nil, fmt.Errorf("failed to convert template to YAML: %w", err)
	}
	return out, nil
}

// LogicalIDs returns the logical IDs of resources of the given type, sorted.
func (t *Template) LogicalIDs(resourceType string) []string {
	var ids []string
	for id, r := range t.Resources {
		if r.Type == resourceType {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}
