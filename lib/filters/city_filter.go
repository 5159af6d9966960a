package filters

import (
	"strings"

	"github.com/gobwas/glob"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cities/lib/model"
)

type CityFilter func(city *model.City) bool

// ParseCityFilter parses a rule over city names. Clauses are globs, case
// insensitive, and can be combined with | (or) and & (and). A clause starting
// with ! is negated. An empty rule matches everything.
func ParseCityFilter(rule string) (CityFilter, error) {
	rule = strings.TrimSpace(rule)

	switch {
	case rule == "":
		return func(*model.City) bool { return true }, nil

	case strings.Contains(rule, "|"):
		clauses, err := parseCityFilterList(strings.Split(rule, "|"))
		if err != nil {
			return nil, err
		}

		return func(city *model.City) bool {
			return lo.SomeBy(clauses, func(f CityFilter) bool { return f(city) })
		}, nil

	case strings.Contains(rule, "&"):
		clauses, err := parseCityFilterList(strings.Split(rule, "&"))
		if err != nil {
			return nil, err
		}

		return func(city *model.City) bool {
			return lo.EveryBy(clauses, func(f CityFilter) bool { return f(city) })
		}, nil

	case strings.HasPrefix(rule, "!"):
		filter, err := ParseCityFilter(rule[1:])
		if err != nil {
			return nil, err
		}

		return func(city *model.City) bool {
			return !filter(city)
		}, nil

	default:
		g, err := glob.Compile(strings.ToLower(rule))
		if err != nil {
			return nil, errors.Wrapf(err, "invalid filter: %v", rule)
		}

		return func(city *model.City) bool {
			return g.Match(strings.ToLower(city.Name()))
		}, nil
	}
}

func parseCityFilterList(rules []string) ([]CityFilter, error) {
	result := make([]CityFilter, 0, len(rules))

	for _, rule := range rules {
		rule = strings.TrimSpace(rule)
		if rule == "" {
			continue
		}

		filter, err := ParseCityFilter(rule)
		if err != nil {
			return nil, err
		}

		result = append(result, filter)
	}

	return result, nil
}

func (f CityFilter) Apply(cities []*model.City) []*model.City {
	return lo.Filter(cities, func(c *model.City, _ int) bool { return f(c) })
}
