package repository

import (
	"errors"
	"fmt"
	"os"

	"tjbuilding/internal/models"

	"gopkg.in/yaml.v3"
)

var ErrFloorNotFound = errors.New("floor not found")

// InventoryYAML serves the building description parsed from a YAML file.
// It is read once and never modified.
type InventoryYAML struct {
	building models.Building
	byID     map[string]int
}

// LoadInventoryYAML reads and validates the inventory file at path.
func LoadInventoryYAML(path string) (*InventoryYAML, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read inventory %q: %w", path, err)
	}
	return ParseInventoryYAML(raw)
}

// ParseInventoryYAML builds an inventory from YAML bytes.
func ParseInventoryYAML(raw []byte) (*InventoryYAML, error) {
	var b models.Building
	if err := yaml.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("parse inventory: %w", err)
	}

	inv := &InventoryYAML{building: b, byID: make(map[string]int, len(b.Floors))}
	devices := make(map[string]struct{})
	for i, f := range b.Floors {
		if f.ID == "" {
			return nil, fmt.Errorf("inventory floor %d: missing id", i)
		}
		if _, dup := inv.byID[f.ID]; dup {
			return nil, fmt.Errorf("inventory floor %q: duplicate id", f.ID)
		}
		inv.byID[f.ID] = i
		for _, r := range f.Rooms {
			for _, d := range r.Devices {
				if d.ID == "" {
					return nil, fmt.Errorf("inventory room %q: device without id", r.Name)
				}
				if _, dup := devices[d.ID]; dup {
					return nil, fmt.Errorf("inventory device %q: duplicate id", d.ID)
				}
				if d.PowerW < 0 {
					return nil, fmt.Errorf("inventory device %q: negative power", d.ID)
				}
				devices[d.ID] = struct{}{}
			}
		}
	}
	return inv, nil
}

var _ Inventory = (*InventoryYAML)(nil)

func (i *InventoryYAML) Building() models.Building { return i.building }

// Floor returns the floor with the given id.
func (i *InventoryYAML) Floor(id string) (models.Floor, error) {
	idx, ok := i.byID[id]
	if !ok {
		return models.Floor{}, fmt.Errorf("floor %q: %w", id, ErrFloorNotFound)
	}
	return i.building.Floors[idx], nil
}
