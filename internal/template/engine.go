package template

import (
	"github.com/dictforge/dictforge/internal/dict"
)

// Engine captures and instantiates templates against a dictionary,
// talking to a Store for persistence.
type Engine struct {
	store Store
}

// NewEngine creates a template engine backed by the given store
func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// Store returns the backing store
func (e *Engine) Store() Store {
	return e.store
}

// Capture snapshots a field record as a reusable template and persists
// it. The field name is not part of the template. Fails if the template
// name is already taken.
func (e *Engine) Capture(name string, f *dict.FieldRecord) (*Template, error) {
	if _, err := e.store.Get(name); err == nil {
		return nil, &DuplicateTemplateNameError{Name: name}
	} else if err != ErrNotFound {
		return nil, err
	}

	t := FromField(name, f)
	if err := e.store.Put(name, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Instantiate builds a new field record named targetName from the
// template and inserts it into the dictionary. The template's type,
// constraints, and governance are copied by value: later edits to the
// field never reach the template or sibling instantiations.
func (e *Engine) Instantiate(t *Template, d *dict.Dictionary, targetName string) (*dict.FieldRecord, error) {
	record := &dict.FieldRecord{
		Name:       targetName,
		Type:       t.Type,
		Governance: t.Governance,
	}
	for _, c := range t.Constraints {
		record.Constraints = append(record.Constraints, c.Clone())
	}
	return d.Insert(record)
}

// InstantiateResult is the per-name outcome of a batch instantiation
type InstantiateResult struct {
	Name  string
	Field *dict.FieldRecord
	Err   error
}

// BatchInstantiate applies Instantiate to each target name in order.
// One name's failure does not abort the batch; the dictionary ends up
// containing exactly the names that succeeded.
func (e *Engine) BatchInstantiate(t *Template, d *dict.Dictionary, targetNames []string) []InstantiateResult {
	results := make([]InstantiateResult, 0, len(targetNames))
	for _, name := range targetNames {
		field, err := e.Instantiate(t, d, name)
		results = append(results, InstantiateResult{Name: name, Field: field, Err: err})
	}
	return results
}
