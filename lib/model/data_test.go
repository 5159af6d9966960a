package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestCitizensDecodesNumbersAndStrings(t *testing.T) {
	t.Parallel()

	var areas []AreaData
	err := json.Unmarshal([]byte(`[
		{"citizens": 10},
		{"citizens": "25"},
		{"citizens": 7.9},
		{"citizens": "many"},
		{"citizens": null},
		{}
	]`), &areas)
	require.NoError(t, err)

	assert.Equal(t, []Citizens{10, 25, 7, 0, 0, 0}, []Citizens{
		areas[0].Citizens, areas[1].Citizens, areas[2].Citizens,
		areas[3].Citizens, areas[4].Citizens, areas[5].Citizens,
	})
}

func TestCityDataDistinguishesMissingIndustrial(t *testing.T) {
	t.Parallel()

	var data []CityData
	err := json.Unmarshal([]byte(`[{"name":"a"},{"name":"b","isIndustrial":false}]`), &data)
	require.NoError(t, err)

	ids := newTestIDs(t)
	assert.True(t, NewCity(ids, data[0]).IsIndustrial())
	assert.False(t, NewCity(ids, data[1]).IsIndustrial())
}

func TestCityDataFromYaml(t *testing.T) {
	t.Parallel()

	var data []CityData
	err := yaml.Unmarshal([]byte(`
- name: Cheese
  isPolluted: true
  cityAreas:
    - name: Cheese1
      description: fdfdf
      citizens: 10
`), &data)
	require.NoError(t, err)

	require.Len(t, data, 1)
	assert.Equal(t, "Cheese", data[0].Name)
	assert.True(t, data[0].IsPolluted)
	assert.Nil(t, data[0].IsIndustrial)
	assert.Equal(t, Citizens(10), data[0].CityAreas[0].Citizens)
}
