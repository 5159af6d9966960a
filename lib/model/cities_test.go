package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(cs *Cities) *[]Change {
	var result []Change
	cs.Subscribe(func(c Change) {
		result = append(result, c)
	})
	return &result
}

func TestCitiesStructuralChanges(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCities(ids)
	changes := collect(cs)

	c := NewCity(ids, CityData{Name: "a"})
	cs.Add(c)
	a := NewArea(ids, AreaData{Name: "x"})
	c.AddArea(a)
	c.RemoveArea(a)
	cs.Remove(c)

	assert.Equal(t, []Change{
		{Kind: CityAdded, CityID: "city0"},
		{Kind: AreaAdded, CityID: "city0", AreaID: "area0"},
		{Kind: AreaRemoved, CityID: "city0", AreaID: "area0"},
		{Kind: CityRemoved, CityID: "city0"},
	}, *changes)
}

func TestCitiesDeepFieldChanges(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCitiesFromData(ids, []CityData{
		{Name: "a", CityAreas: []AreaData{{Name: "x"}}},
	})
	changes := collect(cs)

	c := cs.List()[0]
	c.SetName("b")
	c.SetName("b")
	c.SetPolluted(true)
	c.Areas()[0].SetCitizens(3)
	c.Areas()[0].SetCitizens(3)
	c.Update(CityData{Name: "c", CityAreas: []AreaData{{Name: "y"}}})
	c.Areas()[0].SetDescription("new")

	assert.Equal(t, []Change{
		{Kind: FieldChanged, CityID: "city0", Field: "name"},
		{Kind: FieldChanged, CityID: "city0", Field: "polluted"},
		{Kind: FieldChanged, CityID: "city0", AreaID: "area0", Field: "citizens"},
		{Kind: EntityUpdated, CityID: "city0"},
		{Kind: FieldChanged, CityID: "city0", AreaID: "area1", Field: "description"},
	}, *changes)
}

func TestCitiesRemovedEntitiesStopNotifying(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCitiesFromData(ids, []CityData{
		{Name: "a", CityAreas: []AreaData{{Name: "x"}}},
	})
	c := cs.List()[0]
	a := c.Areas()[0]

	require.True(t, c.RemoveArea(a))
	require.True(t, cs.Remove(c))

	changes := collect(cs)
	a.SetName("z")
	c.SetName("z")

	assert.Empty(t, *changes)
}

func TestCitiesClonesDoNotNotify(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCitiesFromData(ids, []CityData{{Name: "a", CityAreas: []AreaData{{Name: "x"}}}})
	changes := collect(cs)

	clone := cs.List()[0].Clone()
	clone.SetName("b")
	clone.Areas()[0].SetName("y")

	assert.Empty(t, *changes)
}

func TestCitiesUnsubscribe(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCities(ids)

	count := 0
	unsubscribe := cs.Subscribe(func(Change) { count++ })

	cs.Add(NewCity(ids, CityData{}))
	unsubscribe()
	cs.Add(NewCity(ids, CityData{}))

	assert.Equal(t, 1, count)
	assert.Equal(t, 2, cs.Len())
}

func TestCitiesGet(t *testing.T) {
	t.Parallel()

	cs := NewCitiesFromData(newTestIDs(t), []CityData{{ID: "a"}, {ID: "b"}})

	assert.Equal(t, "b", cs.Get("b").ID())
	assert.Nil(t, cs.Get("c"))
}

func TestCitiesListenersRunInSubscriptionOrder(t *testing.T) {
	t.Parallel()

	ids := newTestIDs(t)
	cs := NewCities(ids)

	var calls []int
	for i := 0; i < 10; i++ {
		i := i
		unsubscribe := cs.Subscribe(func(Change) { calls = append(calls, i) })
		if i == 4 {
			unsubscribe()
		}
	}

	cs.Add(NewCity(ids, CityData{}))

	assert.Equal(t, []int{0, 1, 2, 3, 5, 6, 7, 8, 9}, calls)
}
