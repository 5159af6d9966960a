package viewmodel

type Editor int

const (
	CityEditor Editor = iota
	AreaEditor
)

func (e Editor) String() string {
	switch e {
	case CityEditor:
		return "city"
	case AreaEditor:
		return "area"
	default:
		return "unknown"
	}
}

const (
	EditCityTitle   = "Edit City"
	EditAreaTitle   = "Edit Area"
	AddCityTitle    = "Add New City"
	AddAreaTitle    = "Add New Area"
	DeleteCityQuery = "Do you want to delete this city?"
	DeleteAreaQuery = "Do you want to delete this area?"
)

// Presenter is implemented by whatever shows the view-model to a user.
type Presenter interface {
	ShowEditor(editor Editor, title string)
	HideEditor(editor Editor)

	// Alert reports a blocking message, such as a validation failure.
	Alert(message string)

	// Confirm asks a yes/no question and blocks until it is answered.
	Confirm(message string) bool
}
