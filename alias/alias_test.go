package alias

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCodeKnownAlias(t *testing.T) {
	tbl := DefaultCountryAliases()
	assert.Equal(t, "GB", tbl.ResolveCode("uk"))
}

func TestResolveCodeUnknownPassesThrough(t *testing.T) {
	tbl := DefaultCountryAliases()
	assert.Equal(t, "zz", tbl.ResolveCode("zz"))
}

func TestResolveNameKnownAliases(t *testing.T) {
	tbl := DefaultCountryAliases()
	cases := map[string]string{
		"america":        "United States",
		"burma":          "Myanmar",
		"czech republic": "Czechia",
	}
	for key, want := range cases {
		assert.Equal(t, want, tbl.ResolveName(key), "ResolveName(%q)", key)
	}
}

func TestResolveNameUnknownPassesThrough(t *testing.T) {
	tbl := DefaultCountryAliases()
	assert.Equal(t, "nonexistent country", tbl.ResolveName("nonexistent country"))
}
