package weathercode_test

import (
	"testing"

	"canac/weather-api/internal/weathercode"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	d, ok := weathercode.Lookup(2)
	assert.True(t, ok)
	assert.Equal(t, "Parcialmente nublado", d.Description)
	assert.Equal(t, 2, d.Code)

	_, ok = weathercode.Lookup(4)
	assert.False(t, ok)

	_, ok = weathercode.Lookup(-1)
	assert.False(t, ok)
}

func TestAll(t *testing.T) {
	all := weathercode.All()

	assert.Len(t, all, 24)
	assert.Equal(t, 0, all[0].Code)
	assert.Equal(t, 99, all[len(all)-1].Code)
	for i := 1; i < len(all); i++ {
		assert.Less(t, all[i-1].Code, all[i].Code)
	}
	for _, d := range all {
		assert.NotEmpty(t, d.Description, "code %d", d.Code)
		assert.NotEmpty(t, d.Icon, "code %d", d.Code)
	}
}
