package model

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

const (
	DefaultCityName = "New City"
	NoAreasText     = "No areas"
)

type Flag string

const (
	Polluted   Flag = "polluted"
	Criminal   Flag = "criminal"
	Industrial Flag = "industrial"
)

func ParseFlag(s string) (Flag, error) {
	switch f := Flag(strings.TrimPrefix(strings.ToLower(s), "is")); f {
	case Polluted, Criminal, Industrial:
		return f, nil
	default:
		return "", errors.Errorf("unknown flag: %v", s)
	}
}

type City struct {
	ids *IDs

	id           string
	name         string
	isPolluted   bool
	isCriminal   bool
	isIndustrial bool
	areas        []*Area

	notify notifier
}

func NewCity(ids *IDs, data CityData) *City {
	result := &City{ids: ids}
	result.apply(data)
	return result
}

func (c *City) String() string {
	return fmt.Sprintf("%v[%v]", c.name, c.id)
}

func (c *City) ID() string         { return c.id }
func (c *City) Name() string       { return c.name }
func (c *City) IsPolluted() bool   { return c.isPolluted }
func (c *City) IsCriminal() bool   { return c.isCriminal }
func (c *City) IsIndustrial() bool { return c.isIndustrial }

func (c *City) Flag(f Flag) bool {
	switch f {
	case Polluted:
		return c.isPolluted
	case Criminal:
		return c.isCriminal
	case Industrial:
		return c.isIndustrial
	default:
		panic(fmt.Sprintf("unknown flag: %v", f))
	}
}

// Areas returns a copy of the area list, in order.
func (c *City) Areas() []*Area {
	return append([]*Area(nil), c.areas...)
}

func (c *City) CityAreasNames() string {
	if len(c.areas) == 0 {
		return NoAreasText
	}

	return strings.Join(lo.Map(c.areas, func(a *Area, _ int) string { return a.name }), ", ")
}

func (c *City) HrefAttr() string {
	return "#" + c.id
}

// Update overwrites every field from data, falling back to defaults for
// missing values. Areas are rebuilt from data.CityAreas. It never fails.
func (c *City) Update(data CityData) {
	c.apply(data)
	c.notify.emit(Change{Kind: EntityUpdated, CityID: c.id})
}

func (c *City) apply(data CityData) {
	switch {
	case data.ID != "":
		c.id = data.ID
	case c.id == "":
		c.id = c.ids.Cities.Next()
	}

	c.name = defaultString(data.Name, DefaultCityName)
	c.isPolluted = data.IsPolluted
	c.isCriminal = data.IsCriminal
	c.isIndustrial = data.IsIndustrial == nil || *data.IsIndustrial

	for _, a := range c.areas {
		a.detach()
	}

	c.areas = lo.Map(data.CityAreas, func(ad AreaData, _ int) *Area {
		a := NewArea(c.ids, ad)
		a.attach(c)
		return a
	})
}

func (c *City) SetName(name string) {
	if c.name == name {
		return
	}

	c.name = name
	c.notify.emit(Change{Kind: FieldChanged, CityID: c.id, Field: "name"})
}

func (c *City) SetFlag(f Flag, value bool) {
	var field *bool
	switch f {
	case Polluted:
		field = &c.isPolluted
	case Criminal:
		field = &c.isCriminal
	case Industrial:
		field = &c.isIndustrial
	default:
		panic(fmt.Sprintf("unknown flag: %v", f))
	}

	if *field == value {
		return
	}

	*field = value
	c.notify.emit(Change{Kind: FieldChanged, CityID: c.id, Field: string(f)})
}

func (c *City) SetPolluted(v bool)   { c.SetFlag(Polluted, v) }
func (c *City) SetCriminal(v bool)   { c.SetFlag(Criminal, v) }
func (c *City) SetIndustrial(v bool) { c.SetFlag(Industrial, v) }

func (c *City) Toggle(f Flag) {
	c.SetFlag(f, !c.Flag(f))
}

func (c *City) FindArea(id string) *Area {
	a, _ := lo.Find(c.areas, func(a *Area) bool { return a.id == id })
	return a
}

// AddArea appends a to the area list. An area can belong to only one city.
func (c *City) AddArea(a *Area) {
	if a.owner != nil {
		panic(fmt.Sprintf("area %v already belongs to city %v", a.id, a.owner.id))
	}

	a.attach(c)
	c.areas = append(c.areas, a)
	c.notify.emit(Change{Kind: AreaAdded, CityID: c.id, AreaID: a.id})
}

// RemoveArea removes a, matched by identity. Sibling areas keep their order.
func (c *City) RemoveArea(a *Area) bool {
	i := lo.IndexOf(c.areas, a)
	if i < 0 {
		return false
	}

	c.areas = append(c.areas[:i:i], c.areas[i+1:]...)
	a.detach()
	c.notify.emit(Change{Kind: AreaRemoved, CityID: c.id, AreaID: a.id})
	return true
}

func (c *City) Data() CityData {
	return CityData{
		ID:             c.id,
		Name:           c.name,
		IsPolluted:     c.isPolluted,
		IsCriminal:     c.isCriminal,
		IsIndustrial:   Bool(c.isIndustrial),
		CityAreas:      lo.Map(c.areas, func(a *Area, _ int) AreaData { return a.Data() }),
		HrefAttr:       c.HrefAttr(),
		CityAreasNames: c.CityAreasNames(),
	}
}

// Clone returns a detached deep copy, areas included, keeping all ids.
func (c *City) Clone() *City {
	return NewCity(c.ids, c.Data())
}

func (c *City) attach(n notifier) {
	c.notify = n
	for _, a := range c.areas {
		a.notify = n
	}
}

func (c *City) detach() {
	c.attach(nil)
}

func (a *Area) attach(c *City) {
	a.owner = c
	a.notify = c.notify
}

func (a *Area) detach() {
	a.owner = nil
	a.notify = nil
}
