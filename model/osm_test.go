package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSMKey(t *testing.T) {
	assert.Equal(t, "w:123", OSMKey(OSMWay, 123))
}

func TestParseOSMKeyLongForm(t *testing.T) {
	typ, id, err := ParseOSMKey("way:123")
	require.NoError(t, err)
	assert.Equal(t, OSMWay, typ)
	assert.Equal(t, int64(123), id)
}

func TestParseOSMKeyCaseAndSpace(t *testing.T) {
	typ, id, err := ParseOSMKey("  W:123  ")
	require.NoError(t, err)
	assert.Equal(t, OSMWay, typ)
	assert.Equal(t, int64(123), id)
}

func TestParseOSMKeyEquivalence(t *testing.T) {
	a, aID, err := ParseOSMKey("w:123")
	require.NoError(t, err)
	b, bID, err := ParseOSMKey("way:123")
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, aID, bID)
}

func TestParseOSMKeyInvalid(t *testing.T) {
	_, _, err := ParseOSMKey("not-a-key")
	assert.Error(t, err, "malformed key")
	_, _, err = ParseOSMKey("w:abc")
	assert.Error(t, err, "non-numeric id")
	_, _, err = ParseOSMKey("x:123")
	assert.Error(t, err, "unknown osm type")
}
