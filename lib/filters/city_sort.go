package filters

import (
	"sort"

	"github.com/pkg/errors"
	"github.com/samber/lo"
	"golang.org/x/exp/constraints"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/pescuma/cities/lib/model"
)

// SortCities sorts in place. Valid fields are "", "name", "id", "areas" and
// "citizens". Names compare with English collation, ignoring case.
func SortCities(cities []*model.City, field string, asc bool) error {
	switch field {
	case "":
		return nil

	case "name":
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(cities, func(i, j int) bool {
			r := c.CompareString(cities[i].Name(), cities[j].Name())
			if asc {
				return r < 0
			} else {
				return r > 0
			}
		})
		return nil

	case "id":
		sortBy(cities, (*model.City).ID, asc)
		return nil

	case "areas":
		sortBy(cities, func(c *model.City) int { return len(c.Areas()) }, asc)
		return nil

	case "citizens":
		sortBy(cities, TotalCitizens, asc)
		return nil

	default:
		return errors.Errorf("unknown sort field: %v", field)
	}
}

func TotalCitizens(city *model.City) int {
	return lo.SumBy(city.Areas(), (*model.Area).Citizens)
}

func sortBy[T any, R constraints.Ordered](col []T, get func(T) R, asc bool) {
	if asc {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[i]) < get(col[j])
		})
	} else {
		sort.SliceStable(col, func(i, j int) bool {
			return get(col[i]) > get(col[j])
		})
	}
}
