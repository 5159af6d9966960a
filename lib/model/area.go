package model

import "fmt"

const (
	DefaultAreaName        = "New area"
	DefaultAreaDescription = "Area description"
)

type Area struct {
	ids *IDs

	id          string
	name        string
	description string
	citizens    int

	owner  *City
	notify notifier
}

func NewArea(ids *IDs, data AreaData) *Area {
	result := &Area{ids: ids}
	result.apply(data)
	return result
}

func (a *Area) String() string {
	return fmt.Sprintf("%v[%v]", a.name, a.id)
}

func (a *Area) ID() string          { return a.id }
func (a *Area) Name() string        { return a.name }
func (a *Area) Description() string { return a.description }
func (a *Area) Citizens() int       { return a.citizens }

// Owner returns the city whose area list holds this area, or nil.
func (a *Area) Owner() *City {
	return a.owner
}

// Update overwrites every field from data, falling back to defaults for
// missing values. It never fails.
func (a *Area) Update(data AreaData) {
	a.apply(data)
	a.notify.emit(a.change(EntityUpdated, ""))
}

func (a *Area) apply(data AreaData) {
	switch {
	case data.ID != "":
		a.id = data.ID
	case a.id == "":
		a.id = a.ids.Areas.Next()
	}

	a.name = defaultString(data.Name, DefaultAreaName)
	a.description = defaultString(data.Description, DefaultAreaDescription)
	a.citizens = int(data.Citizens)
}

func (a *Area) SetName(name string) {
	if a.name == name {
		return
	}

	a.name = name
	a.notify.emit(a.change(FieldChanged, "name"))
}

func (a *Area) SetDescription(description string) {
	if a.description == description {
		return
	}

	a.description = description
	a.notify.emit(a.change(FieldChanged, "description"))
}

func (a *Area) SetCitizens(citizens int) {
	if a.citizens == citizens {
		return
	}

	a.citizens = citizens
	a.notify.emit(a.change(FieldChanged, "citizens"))
}

func (a *Area) Data() AreaData {
	return AreaData{
		ID:          a.id,
		Name:        a.name,
		Description: a.description,
		Citizens:    Citizens(a.citizens),
	}
}

// Clone returns a detached copy with the same id. Changes to the copy are not
// tracked.
func (a *Area) Clone() *Area {
	return NewArea(a.ids, a.Data())
}

func (a *Area) change(kind ChangeKind, field string) Change {
	result := Change{
		Kind:   kind,
		AreaID: a.id,
		Field:  field,
	}
	if a.owner != nil {
		result.CityID = a.owner.id
	}
	return result
}

func defaultString(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
