package persistence

import (
	"encoding/json"

	"github.com/hashicorp/go-set/v2"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"github.com/pescuma/cities/lib/consoles"
	"github.com/pescuma/cities/lib/model"
	"github.com/pescuma/cities/lib/storages"
)

const StorageKey = "cityArray"

type Bridge struct {
	storage storages.Storage
	console consoles.Console
}

func NewBridge(storage storages.Storage, console consoles.Console) *Bridge {
	return &Bridge{
		storage: storage,
		console: console,
	}
}

// Read returns the stored snapshots, or nil when nothing is stored.
func (b *Bridge) Read() ([]model.CityData, error) {
	content, ok, err := b.storage.Get(StorageKey)
	if err != nil {
		return nil, &Error{Op: "read", Err: err}
	}
	if !ok || content == "" {
		return nil, nil
	}

	var stored []*model.CityData
	err = json.Unmarshal([]byte(content), &stored)
	if err != nil {
		return nil, &Error{Op: "decode", Err: errors.Wrapf(err, "invalid content in %v", StorageKey)}
	}

	if lo.Contains(stored, nil) {
		return nil, &Error{Op: "decode", Err: errors.Errorf("null city in %v", StorageKey)}
	}

	return lo.Map(stored, func(c *model.CityData, _ int) model.CityData { return *c }), nil
}

// Load builds the collection from storage. When nothing usable is stored it
// is built from defaults instead. Errors are logged and swallowed.
func (b *Bridge) Load(ids *model.IDs, defaults []model.CityData) *model.Cities {
	data, err := b.Read()
	if err != nil {
		b.console.Debugf("Ignoring stored cities: %v\n", err)
	}

	if len(data) == 0 {
		b.console.Debugf("Using default cities\n")
		data = defaults
	}

	b.reportDuplicatedIDs(data)

	return model.NewCitiesFromData(ids, data)
}

func (b *Bridge) reportDuplicatedIDs(data []model.CityData) {
	cities := set.New[string](len(data))
	areas := set.New[string](len(data) * 2)

	for _, c := range data {
		if c.ID != "" && !cities.Insert(c.ID) {
			b.console.Debugf("Duplicated city id %v in stored data\n", c.ID)
		}

		for _, a := range c.CityAreas {
			if a.ID != "" && !areas.Insert(a.ID) {
				b.console.Debugf("Duplicated area id %v in stored data\n", a.ID)
			}
		}
	}
}

// Save writes the whole collection.
func (b *Bridge) Save(cities *model.Cities) error {
	content, err := Encode(cities)
	if err != nil {
		return &Error{Op: "encode", Err: err}
	}

	err = b.storage.Set(StorageKey, string(content))
	if err != nil {
		return &Error{Op: "write", Err: err}
	}

	return nil
}

func Encode(cities *model.Cities) ([]byte, error) {
	return json.Marshal(cities.Data())
}

func Export(cities *model.Cities) ([]byte, error) {
	return json.MarshalIndent(cities.Data(), "", "  ")
}
