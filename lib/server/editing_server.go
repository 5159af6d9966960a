package server

import (
	"github.com/gin-gonic/gin"

	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

func (s *server) initEditing(r *gin.Engine) {
	r.GET("/api/state", s.get(s.stateGet))
	r.PATCH("/api/draft/city", handleP(s, s.cityDraftPatch))
	r.PATCH("/api/draft/area", handleP(s, s.areaDraftPatch))
	r.POST("/api/draft/city/toggle/:flag", handleP(s, s.cityDraftToggle))
	r.POST("/api/accept/city", s.get(s.cityAccept))
	r.POST("/api/accept/area", s.get(s.areaAccept))
	r.POST("/api/revert", s.get(s.revert))
}

func (s *server) stateGet() (any, error) {
	return s.toState(), nil
}

func (s *server) cityDraftPatch(params *CityDraftParams) (any, error) {
	draft := s.vm.CityDraft()
	if draft == nil {
		return nil, viewmodel.ErrNotEditing
	}

	if params.Name != nil {
		draft.SetName(*params.Name)
	}
	if params.IsPolluted != nil {
		draft.SetPolluted(*params.IsPolluted)
	}
	if params.IsCriminal != nil {
		draft.SetCriminal(*params.IsCriminal)
	}
	if params.IsIndustrial != nil {
		draft.SetIndustrial(*params.IsIndustrial)
	}

	return s.toState(), nil
}

func (s *server) areaDraftPatch(params *AreaDraftParams) (any, error) {
	draft := s.vm.AreaDraft()
	if draft == nil {
		return nil, viewmodel.ErrNotEditing
	}

	if params.Name != nil {
		draft.SetName(*params.Name)
	}
	if params.Description != nil {
		draft.SetDescription(*params.Description)
	}
	if params.Citizens != nil {
		draft.SetCitizens(*params.Citizens)
	}

	return s.toState(), nil
}

func (s *server) cityDraftToggle(params *FlagParams) (any, error) {
	flag, err := model.ParseFlag(params.Flag)
	if err != nil {
		return nil, badRequestError{err}
	}

	err = s.vm.ToggleDraftFlag(flag)
	if err != nil {
		return nil, err
	}

	return s.toState(), nil
}

func (s *server) cityAccept() (any, error) {
	err := s.vm.AcceptCity()
	if err != nil {
		return nil, err
	}

	return s.toState(), nil
}

func (s *server) areaAccept() (any, error) {
	err := s.vm.AcceptArea()
	if err != nil {
		return nil, err
	}

	return s.toState(), nil
}

func (s *server) revert() (any, error) {
	s.vm.RevertItem()

	return s.toState(), nil
}
