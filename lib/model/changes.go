package model

type ChangeKind int

const (
	FieldChanged ChangeKind = iota
	EntityUpdated
	CityAdded
	CityRemoved
	AreaAdded
	AreaRemoved
)

func (k ChangeKind) String() string {
	switch k {
	case FieldChanged:
		return "field changed"
	case EntityUpdated:
		return "entity updated"
	case CityAdded:
		return "city added"
	case CityRemoved:
		return "city removed"
	case AreaAdded:
		return "area added"
	case AreaRemoved:
		return "area removed"
	default:
		return "unknown"
	}
}

type Change struct {
	Kind   ChangeKind
	CityID string
	AreaID string
	Field  string
}

type Listener func(Change)

type notifier func(Change)

func (n notifier) emit(c Change) {
	if n != nil {
		n(c)
	}
}
