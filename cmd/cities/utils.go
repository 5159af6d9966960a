package main

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/viewmodel"
)

// findCity accepts an id or a name, ignoring case for names.
func findCity(vm *viewmodel.ViewModel, key string) (*model.City, error) {
	if city := vm.FindCity(key); city != nil {
		return city, nil
	}

	candidates := lo.Filter(vm.Cities(), func(c *model.City, _ int) bool {
		return strings.EqualFold(c.Name(), key)
	})

	switch len(candidates) {
	case 0:
		return nil, errors.Errorf("city not found: %v", key)
	case 1:
		return candidates[0], nil
	default:
		return nil, errors.Errorf("more than one city named %v, use the id instead", key)
	}
}

func findArea(city *model.City, key string) (*model.Area, error) {
	if area := city.FindArea(key); area != nil {
		return area, nil
	}

	candidates := lo.Filter(city.Areas(), func(a *model.Area, _ int) bool {
		return strings.EqualFold(a.Name(), key)
	})

	switch len(candidates) {
	case 0:
		return nil, errors.Errorf("area not found in %v: %v", city.Name(), key)
	case 1:
		return candidates[0], nil
	default:
		return nil, errors.Errorf("more than one area named %v, use the id instead", key)
	}
}

// parseOptionalBool returns nil for an empty flag.
func parseOptionalBool(name, value string) (*bool, error) {
	if value == "" {
		return nil, nil
	}

	v, err := strconv.ParseBool(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value for --%v", name)
	}

	return &v, nil
}

func parseOptionalInt(name, value string) (*int, error) {
	if value == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(value)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid value for --%v", name)
	}

	return &v, nil
}
