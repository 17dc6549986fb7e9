package timezone

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValid(t *testing.T) {
	assert.True(t, IsValid("America/New_York"))
	assert.True(t, IsValid("UTC"))
	assert.False(t, IsValid(""))
	assert.False(t, IsValid("Mars/Olympus_Mons"))
}

func TestLocationPicksFirstValid(t *testing.T) {
	assert.Equal(t, "Europe/Lisbon", Location("", "Nowhere/Town", "Europe/Lisbon", "UTC").String())
	assert.Equal(t, "America/Manaus", Location("America/Manaus").String())
}

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location().String())
	assert.Equal(t, DefaultTimezone, Location("bogus").String())
}
