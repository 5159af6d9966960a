package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/cities/lib/filters"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

func (s *server) initCities(r *gin.Engine) {
	r.GET("/api/cities", handleP(s, s.citiesList))
	r.POST("/api/cities", s.get(s.cityAdd))
	r.GET("/api/cities/:city", handleP(s, s.cityGet))
	r.DELETE("/api/cities/:city", handleP(s, s.cityDelete))
	r.POST("/api/cities/:city/select", handleP(s, s.citySelect))
	r.POST("/api/cities/:city/areas", handleP(s, s.areaAdd))
	r.DELETE("/api/cities/:city/areas/:area", handleP(s, s.areaDelete))
	r.POST("/api/cities/:city/areas/:area/select", handleP(s, s.areaSelect))
}

func (s *server) citiesList(params *ListParams) (any, error) {
	err := validateGrid(&params.GridParams)
	if err != nil {
		return nil, err
	}

	filter, err := filters.ParseCityFilter(params.Filter)
	if err != nil {
		return nil, badRequestError{err}
	}

	cities := filter.Apply(s.vm.Cities())

	asc := true
	if params.Asc != nil {
		asc = *params.Asc
	}

	err = filters.SortCities(cities, params.Sort, asc)
	if err != nil {
		return nil, badRequestError{err}
	}

	total := len(cities)
	cities = paginate(cities, params.Offset, params.Limit)

	return gin.H{
		"data":  lo.Map(cities, func(c *model.City, _ int) gin.H { return toCity(c) }),
		"total": total,
	}, nil
}

func (s *server) findCity(id string) (*model.City, error) {
	city := s.vm.FindCity(id)
	if city == nil {
		return nil, errorNotFound
	}
	return city, nil
}

func (s *server) findArea(cityID, areaID string) (*model.City, *model.Area, error) {
	city, area := s.vm.FindArea(cityID, areaID)
	if city == nil || area == nil {
		return nil, nil, errorNotFound
	}
	return city, area, nil
}

func (s *server) cityGet(params *CityParams) (any, error) {
	city, err := s.findCity(params.City)
	if err != nil {
		return nil, err
	}

	return toCity(city), nil
}

func (s *server) cityAdd() (any, error) {
	s.vm.AddCity()

	return s.stateFor(viewmodel.CityEditor), nil
}

func (s *server) citySelect(params *CityParams) (any, error) {
	city, err := s.findCity(params.City)
	if err != nil {
		return nil, err
	}

	s.vm.SelectCity(city)

	return s.stateFor(viewmodel.CityEditor), nil
}

func (s *server) areaAdd(params *CityParams) (any, error) {
	city, err := s.findCity(params.City)
	if err != nil {
		return nil, err
	}

	s.vm.AddArea(city)

	return s.stateFor(viewmodel.AreaEditor), nil
}

func (s *server) areaSelect(params *AreaParams) (any, error) {
	_, area, err := s.findArea(params.City, params.Area)
	if err != nil {
		return nil, err
	}

	s.vm.SelectArea(area)

	return s.stateFor(viewmodel.AreaEditor), nil
}

func (s *server) cityDelete(params *DeleteCityParams) (any, error) {
	city, err := s.findCity(params.City)
	if err != nil {
		return nil, err
	}

	s.presenter.confirm = params.Confirm == nil || *params.Confirm
	deleted := s.vm.DeleteCity(city)
	s.presenter.confirm = true

	return gin.H{"deleted": deleted}, nil
}

func (s *server) areaDelete(params *DeleteAreaParams) (any, error) {
	city, area, err := s.findArea(params.City, params.Area)
	if err != nil {
		return nil, err
	}

	s.presenter.confirm = params.Confirm == nil || *params.Confirm
	deleted := s.vm.DeleteArea(city, area)
	s.presenter.confirm = true

	return gin.H{"deleted": deleted}, nil
}
