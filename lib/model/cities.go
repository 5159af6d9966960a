package model

import (
	"github.com/samber/lo"
)

// Cities is the tracked top level collection. Every city in it, and every area
// of those cities, reports changes to the collection listeners.
type Cities struct {
	ids       *IDs
	list      []*City
	listeners []subscription
	nextID    int
}

type subscription struct {
	id       int
	listener Listener
}

func NewCities(ids *IDs) *Cities {
	return &Cities{
		ids: ids,
	}
}

func NewCitiesFromData(ids *IDs, data []CityData) *Cities {
	result := NewCities(ids)
	result.list = lo.Map(data, func(d CityData, _ int) *City {
		c := NewCity(ids, d)
		c.attach(result.emit)
		return c
	})
	return result
}

func (cs *Cities) IDs() *IDs {
	return cs.ids
}

func (cs *Cities) Len() int {
	return len(cs.list)
}

func (cs *Cities) List() []*City {
	return append([]*City(nil), cs.list...)
}

func (cs *Cities) Get(id string) *City {
	c, _ := lo.Find(cs.list, func(c *City) bool { return c.id == id })
	return c
}

func (cs *Cities) Add(c *City) {
	c.attach(cs.emit)
	cs.list = append(cs.list, c)
	cs.emit(Change{Kind: CityAdded, CityID: c.id})
}

// Remove removes c, matched by identity.
func (cs *Cities) Remove(c *City) bool {
	i := lo.IndexOf(cs.list, c)
	if i < 0 {
		return false
	}

	cs.list = append(cs.list[:i:i], cs.list[i+1:]...)
	c.detach()
	cs.emit(Change{Kind: CityRemoved, CityID: c.id})
	return true
}

func (cs *Cities) Data() []CityData {
	return lo.Map(cs.list, func(c *City, _ int) CityData { return c.Data() })
}

// Subscribe registers l for structural and field changes. Listeners are
// called in subscription order. The returned func removes it.
func (cs *Cities) Subscribe(l Listener) func() {
	id := cs.nextID
	cs.nextID++
	cs.listeners = append(cs.listeners, subscription{id: id, listener: l})

	return func() {
		cs.listeners = lo.Reject(cs.listeners, func(s subscription, _ int) bool { return s.id == id })
	}
}

func (cs *Cities) emit(c Change) {
	for _, s := range cs.listeners {
		s.listener(c)
	}
}
