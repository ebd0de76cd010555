package geodex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagerdb/geodex/config"
	"github.com/villagerdb/geodex/registry"
)

func TestOpenLazilyLoadsCountriesAndSubdivisions(t *testing.T) {
	g, err := Open(&config.Dataset{
		CountryPath:     "testdata/countries.csv",
		SubdivisionPath: "testdata/subdivisions.csv",
	})
	require.NoError(t, err)
	defer g.Close()

	assert.False(t, g.Countries.Loaded(), "expected Countries to not be loaded yet")

	us, ok, err := g.Countries.Get(registry.Alpha2("US"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "United States", us.Name)
	assert.True(t, g.Countries.Loaded(), "expected Countries to be loaded after first Get")

	wi, ok, err := g.Subdivisions.Get(registry.ISOCode("US-WI"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "US", wi.CountryAlpha2)
}

func TestOpenLocalitiesRequireExplicitLoad(t *testing.T) {
	g, err := Open(&config.Dataset{
		CountryPath:     "testdata/countries.csv",
		SubdivisionPath: "testdata/subdivisions.csv",
		LocalityPath:    "testdata/localities.jsonl",
	})
	require.NoError(t, err)
	defer g.Close()

	_, err = g.Localities.Count()
	require.Error(t, err, "expected NotLoaded error before Load")

	require.NoError(t, g.Localities.Load())
	count, err := g.Localities.Count()
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestOpenSkipsConfiguredKinds(t *testing.T) {
	g, err := Open(&config.Dataset{
		CountryPath:     "testdata/countries.csv",
		SubdivisionPath: "testdata/subdivisions.csv",
		SkipKinds:       []string{"subdivision", "locality"},
	})
	require.NoError(t, err)
	defer g.Close()

	us, ok, err := g.Countries.Get(registry.Alpha2("US"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "United States", us.Name)

	count, err := g.Subdivisions.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, count, "expected subdivisions skipped")

	require.NoError(t, g.Localities.Load())
	lCount, err := g.Localities.Count()
	require.NoError(t, err)
	assert.Equal(t, 0, lCount, "expected localities skipped")
}
