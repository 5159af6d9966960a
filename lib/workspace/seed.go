package workspace

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/pescuma/cities/lib/model"
)

// DefaultSeed is used when storage holds no cities and no seed file is given.
func DefaultSeed() []model.CityData {
	return []model.CityData{
		{
			Name: "Cheese", IsPolluted: true, IsCriminal: false, IsIndustrial: model.Bool(true),
			CityAreas: []model.AreaData{
				{Name: "Cheese1", Description: "fdfdf", Citizens: 10},
				{Name: "Cheese3", Description: "fdfdfdfd", Citizens: 10},
			},
		},
	}
}

// LoadSeed reads a list of cities from a .json, .yaml or .yml file.
func LoadSeed(path string) ([]model.CityData, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading seed file %v", path)
	}

	var result []model.CityData

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		err = json.Unmarshal(content, &result)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &result)
	default:
		return nil, errors.Errorf("unknown seed file type: %v", path)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "error parsing seed file %v", path)
	}

	return result, nil
}
