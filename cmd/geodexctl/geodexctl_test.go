package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKeySplitsFieldAndValue(t *testing.T) {
	k, err := parseKey("alpha2=US")
	require.NoError(t, err)
	assert.Equal(t, "alpha2", k.Name)
	assert.Equal(t, "US", k.Value)
}

func TestParseKeyRejectsMissingEquals(t *testing.T) {
	_, err := parseKey("US")
	require.Error(t, err)
}
