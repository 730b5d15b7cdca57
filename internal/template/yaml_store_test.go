package template

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dictforge/dictforge/internal/dict"
)

func TestYAMLStore_RoundTrip(t *testing.T) {
	store, err := NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	c, err := dict.NewRangeConstraint(dict.Continuous, nil, f64ptr(100))
	require.NoError(t, err)
	tpl := &Template{
		Name:        "Percentage",
		Type:        dict.Continuous,
		Constraints: []dict.Constraint{c},
		Governance:  dict.GovernanceTag{Sensitivity: dict.SensitivityPublic},
	}

	require.NoError(t, store.Put("Percentage", tpl))

	got, err := store.Get("Percentage")
	require.NoError(t, err)
	assert.Equal(t, tpl.Name, got.Name)
	assert.Equal(t, tpl.Type, got.Type)
	require.Len(t, got.Constraints, 1)
	assert.Nil(t, got.Constraints[0].Min)
	require.NotNil(t, got.Constraints[0].Max)
	assert.Equal(t, 100.0, *got.Constraints[0].Max)
}

func TestYAMLStore_GetMissing(t *testing.T) {
	store, err := NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get("nope")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestYAMLStore_ListSorted(t *testing.T) {
	store, err := NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	for _, name := range []string{"zeta", "alpha", "mid"} {
		require.NoError(t, store.Put(name, &Template{Name: name, Type: dict.Nominal}))
	}

	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"alpha", "mid", "zeta"}, names)
}

func TestYAMLStore_Delete(t *testing.T) {
	store, err := NewYAMLStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Put("gone", &Template{Name: "gone", Type: dict.Nominal}))
	require.NoError(t, store.Delete("gone"))

	_, err = store.Get("gone")
	assert.True(t, errors.Is(err, ErrNotFound))
	assert.True(t, errors.Is(store.Delete("gone"), ErrNotFound))
}

func f64ptr(v float64) *float64 { return &v }
