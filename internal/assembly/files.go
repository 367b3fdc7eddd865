package assembly

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

type assetManifest struct {
	Files map[string]struct {
		Source struct {
			Path string `json:"path"`
		} `json:"source"`
	} `json:"files"`
	DockerImages map[string]struct {
		Source struct {
			Directory string `json:"directory"`
		} `json:"source"`
	} `json:"dockerImages"`
}

// Files lists the files of the assembly relative to its directory: the
// manifest, the files of every artifact and the assets referenced by the
// asset manifests. Anything else in the directory is ignored, so a reused
// output directory does not leak stale templates.
func (a *Assembly) Files() ([]string, error) {
	seen := make(map[string]bool)
	var files []string

	add := func(rel string) error {
		if rel == "" {
			return nil
		}
		if !filepath.IsLocal(filepath.FromSlash(rel)) {
			return fmt.Errorf("assembly path %q escapes %s", rel, a.Dir)
		}
		root := filepath.Join(a.Dir, filepath.FromSlash(rel))
		return filepath.WalkDir(root, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}
			r, err := filepath.Rel(a.Dir, path)
			if err != nil {
				return err
			}
			r = filepath.ToSlash(r)
			if !seen[r] {
				seen[r] = true
				files = append(files, r)
			}
			return nil
		})
	}

	paths := append([]string{ManifestFile}, a.artifactPaths...)
	for _, m := range a.assetManifests {
		assets, err := a.assetPaths(m)
		if err != nil {
			return nil, err
		}
		paths = append(paths, assets...)
	}

	for _, p := range paths {
		if err := add(p); err != nil {
			return nil, fmt.Errorf("failed to list assembly files: %w", err)
		}
	}

	sort.Strings(files)
	return files, nil
}

// assetPaths returns the file and image sources named by an asset manifest.
func (a *Assembly) assetPaths(manifestFile string) ([]string, error) {
	// #nosec G304
	data, err := os.ReadFile(filepath.Join(a.Dir, filepath.FromSlash(manifestFile)))
	if err != nil {
		return nil, fmt.Errorf("failed to read asset manifest: %w", err)
	}

	var m assetManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse asset manifest %s: %w", manifestFile, err)
	}

	var paths []string
	for _, f := range m.Files {
		paths = append(paths, f.Source.Path)
	}
	for _, img := range m.DockerImages {
		paths = append(paths, img.Source.Directory)
	}
	return paths, nil
}
