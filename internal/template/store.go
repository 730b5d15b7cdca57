package template

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by Store.Get and Store.Delete for unknown
// template names
var ErrNotFound = errors.New("template not found")

// Store persists templates under unique names. Backends are synchronous
// and treat each call as atomic; the engine layers duplicate-name policy
// on top.
type Store interface {
	// Get returns the template stored under name, or ErrNotFound
	Get(name string) (*Template, error)
	// Put stores a template under name, overwriting any previous entry
	Put(name string, t *Template) error
	// List returns the stored names in sorted order
	List() ([]string, error)
	// Delete removes the template stored under name, or returns
	// ErrNotFound
	Delete(name string) error
}

// DuplicateTemplateNameError reports a capture attempt under a name that
// is already taken in the store
type DuplicateTemplateNameError struct {
	Name string
}

// Error implements the error interface
func (e *DuplicateTemplateNameError) Error() string {
	return fmt.Sprintf("template %q already exists", e.Name)
}
