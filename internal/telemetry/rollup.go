package telemetry

import "fmt"

// DeviceInput is one entry of the device enumeration supplied by the
// inventory. On is the inventory state; a session may override it.
type DeviceInput struct {
	ID     string
	Name   string
	Room   string
	PowerW float64
	On     bool
}

// DeviceReport is the derived view of one device.
type DeviceReport struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	PowerW   float64           `json:"power_w"`
	On       bool              `json:"on"`
	Fault    FaultRecord       `json:"fault"`
	Runtime  RuntimeRecord     `json:"runtime"`
	Energy   Energy            `json:"energy"`
	Advisory Advisory          `json:"advisory"`
	Plan     *OptimisationPlan `json:"plan,omitempty"`
}

// RoomAggregate rolls up the devices of one room.
type RoomAggregate struct {
	Room            string         `json:"room"`
	TotalDevices    int            `json:"total_devices"`
	OnDevices       int            `json:"on_devices"`
	OnRate          float64        `json:"on_rate"`
	AvgRuntimeHours float64        `json:"avg_runtime_hours"`
	Area            float64        `json:"area_m2"`
	EnergyKWh       float64        `json:"energy_kwh"`
	CostCNY         float64        `json:"cost_cny"`
	Efficiency      float64        `json:"kwh_per_m2"`
	FaultyDevices   int            `json:"faulty_devices"`
	AvgSeverity     float64        `json:"avg_severity"`
	Devices         []DeviceReport `json:"devices"`
}

// FloorAggregate rolls up every room of a floor.
type FloorAggregate struct {
	Floor           string          `json:"floor"`
	Rooms           []RoomAggregate `json:"rooms"`
	TotalDevices    int             `json:"total_devices"`
	OnDevices       int             `json:"on_devices"`
	FaultyDevices   int             `json:"faulty_devices"`
	Area            float64         `json:"area_m2"`
	EnergyKWh       float64         `json:"energy_kwh"`
	CostCNY         float64         `json:"cost_cny"`
	Efficiency      float64         `json:"kwh_per_m2"`
	AvgOnRate       float64         `json:"avg_on_rate"`
	AvgCostCNY      float64         `json:"avg_cost_cny"`
	AvgEfficiency   float64         `json:"avg_kwh_per_m2"`
	AvgRuntimeHours float64         `json:"avg_runtime_hours"`
	AvgSeverity     float64         `json:"avg_severity"`
}

// BuildRoom derives the aggregate of one room. devices are in enumeration
// order; the first two positions drive the fault pairing rule.
func BuildRoom(s *Session, room string, devices []DeviceInput) (RoomAggregate, error) {
	if len(devices) == 0 {
		return RoomAggregate{}, fmt.Errorf("room %q: %w", room, ErrEmptyEnumeration)
	}
	ids := make([]string, len(devices))
	for i, d := range devices {
		ids[i] = d.ID
	}
	faults, err := s.Faults(ids)
	if err != nil {
		return RoomAggregate{}, fmt.Errorf("room %q: %w", room, err)
	}

	agg := RoomAggregate{
		Room:         room,
		TotalDevices: len(devices),
		Area:         s.Area(room, len(devices)),
		Devices:      make([]DeviceReport, len(devices)),
	}
	var energy, runtime float64
	severity := 0
	for i, d := range devices {
		on := s.State(d.ID, d.On)
		rt := s.Runtime(d.ID, on)
		f := faults[i]
		e, err := ComputeEnergy(d.PowerW, rt.DurationHours, f.Category, f.Severity)
		if err != nil {
			return RoomAggregate{}, fmt.Errorf("device %q: %w", d.ID, err)
		}
		agg.Devices[i] = DeviceReport{
			ID:       d.ID,
			Name:     d.Name,
			PowerW:   d.PowerW,
			On:       on,
			Fault:    f,
			Runtime:  rt,
			Energy:   e,
			Advisory: Advise(f.Category, f.Severity),
		}
		if on {
			agg.OnDevices++
			runtime += rt.DurationHours
		}
		if f.Category.Faulty() {
			agg.FaultyDevices++
		}
		energy += e.KWh
		severity += f.Severity
	}
	agg.OnRate = Round2(ratio(float64(agg.OnDevices), float64(agg.TotalDevices)) * 100)
	agg.AvgRuntimeHours = Round2(ratio(runtime, float64(agg.OnDevices)))
	agg.EnergyKWh = Round2(energy)
	agg.CostCNY = Round2(energy * TariffCNYPerKWh)
	agg.Efficiency = Round2(Efficiency(energy, agg.Area))
	agg.AvgSeverity = Round1(ratio(float64(severity), float64(agg.TotalDevices)))
	return agg, nil
}

// BuildFloor groups devices by room, keeping first-appearance order, and
// rolls the rooms up into a floor aggregate.
func BuildFloor(s *Session, floor string, devices []DeviceInput) (FloorAggregate, error) {
	if len(devices) == 0 {
		return FloorAggregate{}, fmt.Errorf("floor %q: %w", floor, ErrEmptyEnumeration)
	}
	var order []string
	byRoom := make(map[string][]DeviceInput)
	for _, d := range devices {
		if _, ok := byRoom[d.Room]; !ok {
			order = append(order, d.Room)
		}
		byRoom[d.Room] = append(byRoom[d.Room], d)
	}

	fa := FloorAggregate{Floor: floor, Rooms: make([]RoomAggregate, 0, len(order))}
	var energy, cost, onRate, roomCost, eff, runtime, severity float64
	for _, room := range order {
		ra, err := BuildRoom(s, room, byRoom[room])
		if err != nil {
			return FloorAggregate{}, err
		}
		fa.Rooms = append(fa.Rooms, ra)
		fa.TotalDevices += ra.TotalDevices
		fa.OnDevices += ra.OnDevices
		fa.FaultyDevices += ra.FaultyDevices
		fa.Area += ra.Area
		for _, d := range ra.Devices {
			energy += d.Energy.KWh
			if d.On {
				runtime += d.Runtime.DurationHours
			}
			severity += float64(d.Fault.Severity)
		}
		cost += ra.CostCNY
		onRate += ra.OnRate
		roomCost += ra.CostCNY
		eff += ra.Efficiency
	}
	n := float64(len(fa.Rooms))
	fa.EnergyKWh = Round2(energy)
	fa.CostCNY = Round2(cost)
	fa.Efficiency = Round2(Efficiency(energy, fa.Area))
	fa.AvgOnRate = Round2(ratio(onRate, n))
	fa.AvgCostCNY = Round2(ratio(roomCost, n))
	fa.AvgEfficiency = Round2(ratio(eff, n))
	fa.AvgRuntimeHours = Round2(ratio(runtime, float64(fa.OnDevices)))
	fa.AvgSeverity = Round1(ratio(severity, float64(fa.TotalDevices)))
	return fa, nil
}
