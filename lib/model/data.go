package model

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// CityData is the plain snapshot of a City, as stored and as exchanged with
// presentation layers. HrefAttr and CityAreasNames are output only.
type CityData struct {
	ID             string     `json:"id,omitempty" yaml:"id,omitempty"`
	Name           string     `json:"name" yaml:"name"`
	IsPolluted     bool       `json:"isPolluted" yaml:"isPolluted"`
	IsCriminal     bool       `json:"isCriminal" yaml:"isCriminal"`
	IsIndustrial   *bool      `json:"isIndustrial,omitempty" yaml:"isIndustrial,omitempty"`
	CityAreas      []AreaData `json:"cityAreas" yaml:"cityAreas"`
	HrefAttr       string     `json:"hrefAttr,omitempty" yaml:"-"`
	CityAreasNames string     `json:"cityAreasNames,omitempty" yaml:"-"`
}

type AreaData struct {
	ID          string   `json:"id,omitempty" yaml:"id,omitempty"`
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Citizens    Citizens `json:"citizens" yaml:"citizens"`
}

// Citizens accepts both numbers and numeric strings when decoding. Anything
// else decodes as 0.
type Citizens int

func (c *Citizens) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)

	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}

		*c = parseCitizens(s)
		return nil
	}

	*c = parseCitizens(string(data))
	return nil
}

func (c *Citizens) UnmarshalYAML(unmarshal func(any) error) error {
	var s string
	err := unmarshal(&s)
	if err != nil {
		return err
	}

	*c = parseCitizens(s)
	return nil
}

func parseCitizens(s string) Citizens {
	s = strings.TrimSpace(s)

	i, err := strconv.Atoi(s)
	if err == nil {
		return Citizens(i)
	}

	f, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return Citizens(int(f))
	}

	return 0
}

func Bool(v bool) *bool {
	return &v
}
