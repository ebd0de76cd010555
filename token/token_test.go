package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFields(t *testing.T) {
	got := Fields("Palo Alto", "", "California", "US")
	want := []string{"palo", "alto", "california", "us"}
	assert.Equal(t, want, got)
}

func TestFieldsPreservesDuplicates(t *testing.T) {
	got := Fields("US", "United States", "US")
	want := []string{"us", "united", "states", "us"}
	assert.Equal(t, want, got)
}

func TestStringJoinsWithSingleSpaces(t *testing.T) {
	assert.Equal(t, "san francisco ca", String("San  Francisco", "CA"))
}

func TestFieldsAllEmpty(t *testing.T) {
	assert.Nil(t, Fields("", "", ""))
}
