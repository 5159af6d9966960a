package server

import (
	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/pescuma/cities/lib/filters"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

func toCity(c *model.City) gin.H {
	if c == nil {
		return nil
	}

	return gin.H{
		"id":             c.ID(),
		"name":           c.Name(),
		"isPolluted":     c.IsPolluted(),
		"isCriminal":     c.IsCriminal(),
		"isIndustrial":   c.IsIndustrial(),
		"cityAreas":      lo.Map(c.Areas(), func(a *model.Area, _ int) gin.H { return toArea(a) }),
		"hrefAttr":       c.HrefAttr(),
		"cityAreasNames": c.CityAreasNames(),
		"citizens":       filters.TotalCitizens(c),
	}
}

func toArea(a *model.Area) gin.H {
	if a == nil {
		return nil
	}

	return gin.H{
		"id":          a.ID(),
		"name":        a.Name(),
		"description": a.Description(),
		"citizens":    a.Citizens(),
	}
}

func toReference(id string) any {
	if id == "" {
		return nil
	}
	return id
}

func (s *server) toState() gin.H {
	target := s.vm.Target()

	var cityID, areaID string
	if target.City != nil {
		cityID = target.City.ID()
	}
	if target.Area != nil {
		areaID = target.Area.ID()
	}

	editors := gin.H{}
	for editor, title := range s.presenter.editors {
		editors[editor.String()] = title
	}

	var alert any
	if s.presenter.lastAlert != "" {
		alert = s.presenter.lastAlert
	}

	return gin.H{
		"state": s.vm.State().String(),
		"target": gin.H{
			"kind":   target.Kind.String(),
			"cityID": toReference(cityID),
			"areaID": toReference(areaID),
		},
		"cityDraft": toCity(s.vm.CityDraft()),
		"areaDraft": toArea(s.vm.AreaDraft()),
		"editors":   editors,
		"alert":     alert,
	}
}

func (s *server) stateFor(editor viewmodel.Editor) gin.H {
	result := s.toState()
	result["editor"] = editor.String()
	return result
}
