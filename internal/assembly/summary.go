package assembly

import (
	"encoding/json"
	"fmt"
	"sort"

	"sigs.k8s.io/yaml"
)

// Summary counts the resources of one stack by type.
type Summary struct {
	Stack                 string          `json:"stack"`
	Description           string          `json:"description,omitempty"`
	TerminationProtection bool            `json:"terminationProtection"`
	Total                 int             `json:"total"`
	Resources             []ResourceCount `json:"resources"`
}

// ResourceCount is the number of resources of one type.
type ResourceCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// Summarize counts the resources of t. Types are ordered by name.
func Summarize(stack *Stack, t *Template) Summary {
	counts := make(map[string]int)
	for _, r := range t.Resources {
		counts[r.Type]++
	}

	s := Summary{
		Stack:                 stack.Name,
		Description:           t.Description,
		TerminationProtection: stack.TerminationProtection,
		Total:                 len(t.Resources),
		Resources:             make([]ResourceCount, 0, len(counts)),
	}
	for typ, n := range counts {
		s.Resources = append(s.Resources, ResourceCount{Type: typ, Count: n})
	}
	sort.Slice(s.Resources, func(i, j int) bool { return s.Resources[i].Type < s.Resources[j].Type })
	return s
}

// Count returns the number of resources of the given type.
func (s Summary) Count(resourceType string) int {
	for _, rc := range s.Resources {
		if rc.Type == resourceType {
			return rc.Count
		}
	}
	return 0
}

// JSON renders the summary as indented JSON.
func (s Summary) JSON() ([]byte, error) {
	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return append(out, '\n'), nil
}

// YAML renders the summary as YAML.
func (s Summary) YAML() ([]byte, error) {
	out, err := yaml.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal summary: %w", err)
	}
	return out, nil
}

// Inspect reads the assembly in dir and summarizes the named stack.
func Inspect(dir, stackName string) (Summary, *Template, error) {
	a, err := Read(dir)
	if err != nil {
		return Summary{}, nil, err
	}

	stack, err := a.Stack(stackName)
	if err != nil {
		return Summary{}, nil, err
	}

	t, err := a.LoadTemplate(stack)
	if err != nil {
		return Summary{}, nil, err
	}

	return Summarize(stack, t), t, nil
}
