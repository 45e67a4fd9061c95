package models

// Device types known to the floor-plan views.
const (
	DeviceAirConditioner = "airConditioner"
	DeviceLight          = "light"
	DeviceSocket         = "socket"
)

// Building is the static device inventory loaded from configs/building.yml.
type Building struct {
	Name   string  `yaml:"name" json:"name"`
	Floors []Floor `yaml:"floors" json:"floors"`
}

// Floor groups the rooms of one storey.
type Floor struct {
	ID    string      `yaml:"id" json:"id"`
	Name  string      `yaml:"name" json:"name"`
	Rooms []FloorRoom `yaml:"rooms" json:"rooms"`
}

// FloorRoom is a room as described in the inventory file.
type FloorRoom struct {
	Name    string   `yaml:"name" json:"name"`
	Devices []Device `yaml:"devices" json:"devices"`
}

// Device is a single controllable unit. PowerW is its rated power.
type Device struct {
	ID     string  `yaml:"id" json:"id"`
	Name   string  `yaml:"name" json:"name"`
	Type   string  `yaml:"type" json:"type"`
	PowerW float64 `yaml:"power_w" json:"power_w"`
	On     bool    `yaml:"on" json:"on"`
}
