package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagerdb/geodex/fts"
	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/token"
)

func buildSubdivisionRegistry(t *testing.T) *SubdivisionRegistry {
	t.Helper()
	loader := func() (*store.Store[*model.Subdivision], *fts.Index, error) {
		sb := store.NewBuilder[*model.Subdivision]()
		fb := fts.NewBuilder()

		add := func(s *model.Subdivision) {
			id := sb.Add(s)
			s.ID = id
			fields := []string{s.Name, s.AltName, s.LocalCode, s.CountryAlpha2, s.CountryName}
			s.SetTokenString(token.String(fields...))
			fb.AddTokens(token.Fields(fields...), id)
			sb.Key("iso_code", s.ISOCode, id)
			sb.Name(s.Name, id)
			fb.AddFilter("country_alpha2", s.CountryAlpha2, id)
		}

		add(&model.Subdivision{ISOCode: "US-WI", LocalCode: "WI", Name: "Wisconsin", Category: "state", CountryAlpha2: "US", CountryName: "United States"})
		add(&model.Subdivision{ISOCode: "US-CA", LocalCode: "CA", Name: "California", Category: "state", CountryAlpha2: "US", CountryName: "United States"})
		add(&model.Subdivision{ISOCode: "FR-75", LocalCode: "75", Name: "Paris", Category: "department", CountryAlpha2: "FR", CountryName: "France"})

		return sb.Build(), fb.Build(), nil
	}
	return NewSubdivisionRegistry(loader, true)
}

func TestSubdivisionGetByISOCode(t *testing.T) {
	r := buildSubdivisionRegistry(t)
	row, ok, err := r.Get(ISOCode("US-WI"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Wisconsin", row.Name)
}

func TestSubdivisionByCountry(t *testing.T) {
	r := buildSubdivisionRegistry(t)
	rows, err := r.ByCountry("US")
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestSubdivisionCategoriesForCountry(t *testing.T) {
	r := buildSubdivisionRegistry(t)
	cats, err := r.CategoriesForCountry("US")
	require.NoError(t, err)
	assert.Equal(t, []string{"state"}, cats)

	// second call should hit the cache and return the same result
	cats2, err := r.CategoriesForCountry("US")
	require.NoError(t, err)
	assert.Equal(t, []string{"state"}, cats2)
}

func TestSubdivisionLookupScopedByCountry(t *testing.T) {
	r := buildSubdivisionRegistry(t)
	rows, err := r.Engine.Lookup("paris", "FR")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "FR-75", rows[0].ISOCode)

	rows, err = r.Engine.Lookup("paris", "US")
	require.NoError(t, err)
	assert.Empty(t, rows, "scoped out")
}
