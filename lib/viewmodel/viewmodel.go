package viewmodel

import (
	"github.com/pkg/errors"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/model"
)

var ErrNotEditing = errors.New("nothing is being edited")

type Saver interface {
	Save(cities *model.Cities) error
}

// ViewModel owns the city collection and the edit workflow. It is not safe
// for concurrent use.
type ViewModel struct {
	cities    *model.Cities
	presenter Presenter
	console   consoles.Console

	target    EditTarget
	cityDraft *model.City
	areaDraft *model.Area

	unsubscribe func()
}

// New creates the view-model and subscribes saver to every change of cities.
func New(cities *model.Cities, saver Saver, presenter Presenter, console consoles.Console) *ViewModel {
	result := &ViewModel{
		cities:    cities,
		presenter: presenter,
		console:   console,
	}

	result.unsubscribe = cities.Subscribe(func(change model.Change) {
		err := saver.Save(cities)
		if err != nil {
			console.Debugf("Ignoring save error after %v: %v\n", change.Kind, err)
		}
	})

	return result
}

func (vm *ViewModel) Close() {
	vm.unsubscribe()
}

func (vm *ViewModel) Cities() []*model.City {
	return vm.cities.List()
}

func (vm *ViewModel) Collection() *model.Cities {
	return vm.cities
}

func (vm *ViewModel) FindCity(id string) *model.City {
	return vm.cities.Get(id)
}

func (vm *ViewModel) FindArea(cityID, areaID string) (*model.City, *model.Area) {
	city := vm.cities.Get(cityID)
	if city == nil {
		return nil, nil
	}

	return city, city.FindArea(areaID)
}

func (vm *ViewModel) State() State {
	switch {
	case vm.cityDraft != nil:
		return EditingCity
	case vm.areaDraft != nil:
		return EditingArea
	default:
		return Idle
	}
}

func (vm *ViewModel) Target() EditTarget {
	return vm.target
}

func (vm *ViewModel) CityDraft() *model.City {
	return vm.cityDraft
}

func (vm *ViewModel) AreaDraft() *model.Area {
	return vm.areaDraft
}

func (vm *ViewModel) SelectCity(city *model.City) {
	vm.editCity(EditTarget{Kind: TargetExistingCity, City: city}, city.Clone(), EditCityTitle)
}

func (vm *ViewModel) SelectArea(area *model.Area) {
	vm.editArea(EditTarget{Kind: TargetExistingArea, City: area.Owner(), Area: area}, area.Clone(), EditAreaTitle)
}

func (vm *ViewModel) AddCity() {
	draft := model.NewCity(vm.cities.IDs(), model.CityData{})
	vm.editCity(EditTarget{Kind: TargetNewCity}, draft, AddCityTitle)
}

func (vm *ViewModel) AddArea(city *model.City) {
	draft := model.NewArea(vm.cities.IDs(), model.AreaData{})
	vm.editArea(EditTarget{Kind: TargetNewArea, City: city}, draft, AddAreaTitle)
}

func (vm *ViewModel) editCity(target EditTarget, draft *model.City, title string) {
	if vm.areaDraft != nil {
		vm.areaDraft = nil
		vm.presenter.HideEditor(AreaEditor)
	}

	vm.target = target
	vm.cityDraft = draft
	vm.presenter.ShowEditor(CityEditor, title)
}

func (vm *ViewModel) editArea(target EditTarget, draft *model.Area, title string) {
	if vm.cityDraft != nil {
		vm.cityDraft = nil
		vm.presenter.HideEditor(CityEditor)
	}

	vm.target = target
	vm.areaDraft = draft
	vm.presenter.ShowEditor(AreaEditor, title)
}

// ToggleDraftFlag flips one of the boolean fields of the city draft.
func (vm *ViewModel) ToggleDraftFlag(flag model.Flag) error {
	if vm.cityDraft == nil {
		return ErrNotEditing
	}

	vm.cityDraft.Toggle(flag)
	return nil
}

// AcceptCity commits the city draft. On a validation failure the user is
// alerted, nothing changes and a *model.ValidationError is returned.
func (vm *ViewModel) AcceptCity() error {
	draft := vm.cityDraft
	if draft == nil {
		return ErrNotEditing
	}

	err := model.ValidateCity(draft)
	if err != nil {
		vm.presenter.Alert(err.Error())
		return err
	}

	switch vm.target.Kind {
	case TargetExistingCity:
		vm.target.City.Update(draft.Data())
	case TargetNewCity:
		vm.cities.Add(draft)
	}

	vm.clear()
	vm.presenter.HideEditor(CityEditor)
	return nil
}

// AcceptArea commits the area draft, with the same validation rules as
// AcceptCity.
func (vm *ViewModel) AcceptArea() error {
	draft := vm.areaDraft
	if draft == nil {
		return ErrNotEditing
	}

	err := model.ValidateArea(draft)
	if err != nil {
		vm.presenter.Alert(err.Error())
		return err
	}

	switch vm.target.Kind {
	case TargetExistingArea:
		vm.target.Area.Update(draft.Data())
	case TargetNewArea:
		vm.target.City.AddArea(draft)
	}

	vm.clear()
	vm.presenter.HideEditor(AreaEditor)
	return nil
}

// RevertItem drops any draft without committing it.
func (vm *ViewModel) RevertItem() {
	vm.clear()
	vm.presenter.HideEditor(CityEditor)
	vm.presenter.HideEditor(AreaEditor)
}

func (vm *ViewModel) clear() {
	vm.target = EditTarget{}
	vm.cityDraft = nil
	vm.areaDraft = nil
}

// DeleteCity removes city after the user confirms. It does not touch the edit
// state.
func (vm *ViewModel) DeleteCity(city *model.City) bool {
	if !vm.presenter.Confirm(DeleteCityQuery) {
		return false
	}

	return vm.cities.Remove(city)
}

func (vm *ViewModel) DeleteArea(city *model.City, area *model.Area) bool {
	if !vm.presenter.Confirm(DeleteAreaQuery) {
		return false
	}

	return city.RemoveArea(area)
}
