package server

type GridParams struct {
	Sort   string `form:"sort"`
	Asc    *bool  `form:"asc"`
	Offset *int   `form:"offset"`
	Limit  *int   `form:"limit"`
}

type ListParams struct {
	GridParams
	Filter string `form:"filter"`
}

type CityParams struct {
	City string `uri:"city"`
}

type AreaParams struct {
	City string `uri:"city"`
	Area string `uri:"area"`
}

type DeleteCityParams struct {
	CityParams
	Confirm *bool `form:"confirm"`
}

type DeleteAreaParams struct {
	AreaParams
	Confirm *bool `form:"confirm"`
}

type FlagParams struct {
	Flag string `uri:"flag"`
}

type CityDraftParams struct {
	Name         *string `json:"name"`
	IsPolluted   *bool   `json:"isPolluted"`
	IsCriminal   *bool   `json:"isCriminal"`
	IsIndustrial *bool   `json:"isIndustrial"`
}

type AreaDraftParams struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Citizens    *int    `json:"citizens"`
}
