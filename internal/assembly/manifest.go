package assembly

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// ManifestFile is the manifest written at the root of every cloud assembly.
const ManifestFile = "manifest.json"

// Manifest artifact types.
const (
	StackArtifactType         = "aws:cloudformation:stack"
	AssetManifestArtifactType = "cdk:asset-manifest"
	TreeArtifactType          = "cdk:tree"
	NestedAssemblyType        = "cdk:cloud-assembly"
)

// ErrStackNotFound is returned when the manifest has no stack with the requested name.
var ErrStackNotFound = errors.New("stack not found in cloud assembly")

// Assembly is a parsed cloud assembly directory.
type Assembly struct {
	Dir     string
	Version string
	Stacks  []Stack

	// artifactPaths are the files and directories named by the manifest,
	// relative to Dir.
	artifactPaths  []string
	assetManifests []string
}

// Stack is one stack artifact of an assembly.
type Stack struct {
	Name                  string
	TemplateFile          string
	TerminationProtection bool
	Environment           string
}

type manifest struct {
	Version   string              `json:"version"`
	Artifacts map[string]artifact `json:"artifacts"`
}

type artifact struct {
	Type        string             `json:"type"`
	Environment string             `json:"environment"`
	Properties  artifactProperties `json:"properties"`
}

type artifactProperties struct {
	TemplateFile          string `json:"templateFile"`
	TerminationProtection bool   `json:"terminationProtection"`
	File                  string `json:"file"`
	DirectoryName         string `json:"directoryName"`
}

// Read parses the manifest of the assembly in dir.
func Read(dir string) (*Assembly, error) {
	// #nosec G304
	data, err := os.ReadFile(filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read assembly manifest: %w", err)
	}

	var m manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse assembly manifest: %w", err)
	}

	a := &Assembly{Dir: dir, Version: m.Version}
	for name, art := range m.Artifacts {
		switch art.Type {
		case StackArtifactType:
			a.Stacks = append(a.Stacks, Stack{
				Name:                  name,
				TemplateFile:          art.Properties.TemplateFile,
				TerminationProtection: art.Properties.TerminationProtection,
				Environment:           art.Environment,
			})
			a.artifactPaths = append(a.artifactPaths, art.Properties.TemplateFile)
		case AssetManifestArtifactType:
			a.artifactPaths = append(a.artifactPaths, art.Properties.File)
			a.assetManifests = append(a.assetManifests, art.Properties.File)
		case TreeArtifactType:
			a.artifactPaths = append(a.artifactPaths, art.Properties.File)
		case NestedAssemblyType:
			a.artifactPaths = append(a.artifactPaths, art.Properties.DirectoryName)
		}
	}
	sort.Slice(a.Stacks, func(i, j int) bool { return a.Stacks[i].Name < a.Stacks[j].Name })
	sort.Strings(a.artifactPaths)
	sort.Strings(a.assetManifests)

	return a, nil
}

// Stack returns the stack artifact with the given name.
func (a *Assembly) Stack(name string) (*Stack, error) {
	for i := range a.Stacks {
		if a.Stacks[i].Name == name {
			return &a.Stacks[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrStackNotFound, name)
}
