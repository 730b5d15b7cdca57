package template

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLStore keeps one <name>.yaml file per template in a directory,
// mirroring how hand-maintained template libraries are usually laid out.
type YAMLStore struct {
	dir string
}

// NewYAMLStore creates a directory-backed store, creating the directory
// if needed
func NewYAMLStore(dir string) (*YAMLStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating template directory: %w", err)
	}
	return &YAMLStore{dir: dir}, nil
}

// Get returns the template stored under name
func (s *YAMLStore) Get(name string) (*Template, error) {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	var t Template
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return &t, nil
}

// Put stores a template under name, overwriting the whole file
func (s *YAMLStore) Put(name string, t *Template) error {
	data, err := yaml.Marshal(t)
	if err != nil {
		return fmt.Errorf("encoding template %s: %w", name, err)
	}
	if err := os.WriteFile(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("writing template %s: %w", name, err)
	}
	return nil
}

// List returns the stored template names in sorted order
func (s *YAMLStore) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), ".yaml"))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes the template stored under name
func (s *YAMLStore) Delete(name string) error {
	err := os.Remove(s.path(name))
	if os.IsNotExist(err) {
		return ErrNotFound
	}
	return err
}

func (s *YAMLStore) path(name string) string {
	return filepath.Join(s.dir, name+".yaml")
}
