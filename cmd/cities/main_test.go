package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/cities/lib/model"
)

func run(t *testing.T, file string, input string, cmdline ...string) (string, error) {
	var args cliArgs
	parser, err := kong.New(&args)
	require.NoError(t, err)

	ctx, err := parser.Parse(append([]string{"-w", file}, cmdline...))
	require.NoError(t, err)

	var out bytes.Buffer
	c, err := newContext(&args, strings.NewReader(input), &out)
	require.NoError(t, err)

	err = ctx.Run(c)
	require.NoError(t, c.close())

	return out.String(), err
}

func exportCities(t *testing.T, file string) []model.CityData {
	out, err := run(t, file, "", "export")
	require.NoError(t, err)

	var result []model.CityData
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	return result
}

func TestListSeed(t *testing.T) {
	t.Parallel()

	out, err := run(t, "mem://", "", "list")
	require.NoError(t, err)

	assert.Contains(t, out, "city0")
	assert.Contains(t, out, "Cheese")
	assert.Contains(t, out, "2 areas")
	assert.Contains(t, out, "20 citizens")
	assert.Contains(t, out, "[polluted, industrial]")
}

func TestShowTruncatesDescriptions(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "cities.sqlite")

	_, err := run(t, file, "", "area", "add", "Cheese", "Brie", "-d", strings.Repeat("x", 100), "-c", "12345")
	require.NoError(t, err)

	out, err := run(t, file, "", "show", "cheese")
	require.NoError(t, err)

	assert.Contains(t, out, "Areas: Cheese1, Cheese3, Brie")
	assert.Contains(t, out, "Citizens: 12,365")
	assert.NotContains(t, out, strings.Repeat("x", 41))
}

func TestCityLifecyclePersists(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "cities.sqlite")

	_, err := run(t, file, "", "city", "add", "Gouda", "--criminal", "--not-industrial")
	require.NoError(t, err)

	_, err = run(t, file, "", "city", "toggle", "Gouda", "isPolluted")
	require.NoError(t, err)

	_, err = run(t, file, "", "city", "edit", "Gouda", "--name", "Edam")
	require.NoError(t, err)

	cities := exportCities(t, file)
	require.Len(t, cities, 2)
	assert.Equal(t, "Cheese", cities[0].Name)
	assert.Equal(t, "Edam", cities[1].Name)
	assert.True(t, cities[1].IsPolluted)
	assert.True(t, cities[1].IsCriminal)
	assert.Equal(t, model.Bool(false), cities[1].IsIndustrial)
	assert.Equal(t, "No areas", cities[1].CityAreasNames)
}

func TestAcceptInvalidNameChangesNothing(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "cities.sqlite")

	_, err := run(t, file, "", "city", "edit", "Cheese", "--name", strings.Repeat("a", 21))
	assert.EqualError(t, err, model.NameTooLong)

	_, err = run(t, file, "", "area", "edit", "Cheese", "area0", "--citizens", "many")
	assert.Error(t, err)

	cities := exportCities(t, file)
	require.Len(t, cities, 1)
	assert.Equal(t, "Cheese", cities[0].Name)
	assert.Equal(t, model.Citizens(10), cities[0].CityAreas[0].Citizens)
}

func TestDeleteAsksForConfirmation(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "cities.sqlite")

	out, err := run(t, file, "n\n", "area", "delete", "Cheese", "Cheese1")
	require.NoError(t, err)
	assert.Contains(t, out, "Do you want to delete this area?")
	assert.Len(t, exportCities(t, file)[0].CityAreas, 2)

	_, err = run(t, file, "y\n", "area", "delete", "Cheese", "Cheese1")
	require.NoError(t, err)
	assert.Equal(t, "Cheese3", exportCities(t, file)[0].CityAreasNames)

	_, err = run(t, file, "", "city", "delete", "Cheese")
	require.NoError(t, err)
	assert.Len(t, exportCities(t, file), 1)

	out, err = run(t, file, "", "city", "delete", "Cheese", "--yes")
	require.NoError(t, err)
	assert.Contains(t, out, "Deleted Cheese (city0)")
	assert.NotContains(t, out, "Do you want")
}

func TestUnknownCity(t *testing.T) {
	t.Parallel()

	_, err := run(t, "mem://", "", "show", "Brie")
	assert.Error(t, err)

	_, err = run(t, "mem://", "", "area", "edit", "Cheese", "nope")
	assert.Error(t, err)
}

func TestExportToFile(t *testing.T) {
	t.Parallel()

	output := filepath.Join(t.TempDir(), "out.json")

	_, err := run(t, "mem://", "", "export", "-o", output)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"cityAreasNames": "Cheese1, Cheese3"`)
}
