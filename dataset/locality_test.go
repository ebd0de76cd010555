package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/villagerdb/geodex/model"
	"github.com/villagerdb/geodex/store"
	"github.com/villagerdb/geodex/testutil"
)

func buildTestSubdivisions(t *testing.T, countries *store.Store[*model.Country]) *store.Store[*model.Subdivision] {
	t.Helper()
	path := testutil.WriteFixture(t, "subdivisions.csv", ""+
		"subdivision_code_iso3166-2,subdivision_name,category,localVariant,parent_subdivision,country_code_alpha2\n"+
		"US-WI,Wisconsin,state,,,US\n")
	s, _, _, err := LoadSubdivisions(path, countries, nil)
	require.NoError(t, err)
	return s
}

func TestLoadLocalitiesParsesLines(t *testing.T) {
	countries := buildTestCountries(t)
	subdivisions := buildTestSubdivisions(t, countries)

	path := testutil.WriteFixture(t, "localities.jsonl", ""+
		`{"osm_id":123,"osm_type":"n","name":"Madison","classification":"city","population":269840,"location":[-89.4012,43.0731],"address":{"country_code":"US","subdivision_code":"US-WI"}}`+"\n"+
		`{"osm_id":456,"osm_type":"r","name":"Paris","other_names":{"fr":"Paris"},"location":[2.3522,48.8566],"address":{"country_code":"FR","subdivision_code":""}}`+"\n")

	s, idx, report, err := LoadLocalities(path, countries, subdivisions, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Len())
	assert.Equal(t, 2, report.RowsRead)
	assert.Equal(t, 0, report.RowsDropped)

	madison, ok := s.ByKey("osm_key", model.OSMKey(model.OSMNode, 123))
	require.True(t, ok)
	assert.Equal(t, "US", madison.CountryAlpha2)
	assert.Equal(t, "Wisconsin", madison.SubdivisionName)
	assert.Equal(t, 269840, madison.Population)
	assert.Len(t, idx.MatchFilter("country_alpha2", "US"), 1)
}

func TestLoadLocalitiesDropsUnknownCountry(t *testing.T) {
	countries := buildTestCountries(t)
	subdivisions := buildTestSubdivisions(t, countries)

	path := testutil.WriteFixture(t, "localities.jsonl", ""+
		`{"osm_id":1,"osm_type":"n","name":"Nowhere","location":[0,0],"address":{"country_code":"ZZ","subdivision_code":""}}`+"\n")

	s, _, report, err := LoadLocalities(path, countries, subdivisions, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, report.RowsDropped)
}

func TestLoadLocalitiesMergesDuplicateOSMKey(t *testing.T) {
	countries := buildTestCountries(t)
	subdivisions := buildTestSubdivisions(t, countries)

	path := testutil.WriteFixture(t, "localities.jsonl", ""+
		`{"osm_id":123,"osm_type":"n","name":"Madison","location":[-89.4,43.1],"address":{"country_code":"US","subdivision_code":"US-WI"}}`+"\n"+
		`{"osm_id":123,"osm_type":"n","name":"Madison Duplicate","location":[-89.4,43.1],"address":{"country_code":"US","subdivision_code":"US-WI"}}`+"\n")

	s, _, report, err := LoadLocalities(path, countries, subdivisions, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, s.Len())
	assert.Equal(t, 1, report.DuplicatesMerged)
}

func TestLoadLocalitiesDropsMalformedLatLng(t *testing.T) {
	countries := buildTestCountries(t)
	subdivisions := buildTestSubdivisions(t, countries)

	path := testutil.WriteFixture(t, "localities.jsonl", ""+
		`{"osm_id":1,"osm_type":"n","name":"Bad","location":[0,200],"address":{"country_code":"US","subdivision_code":"US-WI"}}`+"\n")

	s, _, report, err := LoadLocalities(path, countries, subdivisions, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 1, report.RowsDropped)
}
