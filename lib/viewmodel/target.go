package viewmodel

import "github.com/pescuma/cities/lib/model"

type State int

const (
	Idle State = iota
	EditingCity
	EditingArea
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case EditingCity:
		return "editing city"
	case EditingArea:
		return "editing area"
	default:
		return "unknown"
	}
}

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetNewCity
	TargetExistingCity
	TargetNewArea
	TargetExistingArea
)

func (k TargetKind) String() string {
	switch k {
	case TargetNone:
		return "none"
	case TargetNewCity:
		return "new city"
	case TargetExistingCity:
		return "existing city"
	case TargetNewArea:
		return "new area"
	case TargetExistingArea:
		return "existing area"
	default:
		return "unknown"
	}
}

// EditTarget says what an accept will do with the current draft:
//   - TargetNewCity: append the city draft to the collection
//   - TargetExistingCity: copy the city draft onto City
//   - TargetNewArea: append the area draft to City
//   - TargetExistingArea: copy the area draft onto Area (City is its owner)
type EditTarget struct {
	Kind TargetKind
	City *model.City
	Area *model.Area
}
