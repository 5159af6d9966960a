package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateName(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	c := NewCity(ids, CityData{})
	a := NewArea(ids, AreaData{})

	for i := 1; i <= MaxNameLength; i++ {
		c.SetName(strings.Repeat("a", i))
		a.SetName(strings.Repeat("é", i))

		assert.NoError(t, ValidateCity(c))
		assert.NoError(t, ValidateArea(a))
	}

	c.SetName("")
	a.SetName("")
	assert.EqualError(t, ValidateCity(c), CityNameRequired)
	assert.EqualError(t, ValidateArea(a), AreaNameRequired)

	c.SetName(strings.Repeat("a", MaxNameLength+1))
	a.SetName(strings.Repeat("é", MaxNameLength+1))
	assert.EqualError(t, ValidateCity(c), NameTooLong)
	assert.EqualError(t, ValidateArea(a), NameTooLong)
}
