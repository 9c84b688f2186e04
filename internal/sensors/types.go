package sensors

// Category identifies one of the fixed channel groupings.
type Category int

const (
	// CPUTemperature covers per-core and per-package temperatures.
	CPUTemperature Category = iota
	// FanSpeed covers fan tachometer readings in RPM.
	FanSpeed
	// StorageTemperature covers NVMe composite temperatures.
	StorageTemperature
	// OtherTemperature covers adapter-qualified generic temp channels.
	OtherTemperature
)

// Categories returns all categories in display order.
func Categories() []Category {
	return []Category{CPUTemperature, FanSpeed, StorageTemperature, OtherTemperature}
}

// String returns a human-readable label for the category.
func (c Category) String() string {
	switch c {
	case CPUTemperature:
		return "CPU Temperature"
	case FanSpeed:
		return "Fan Speeds"
	case StorageTemperature:
		return "Storage Temperature"
	case OtherTemperature:
		return "Other Temperatures"
	default:
		return "Unknown"
	}
}

// Unit returns the measurement unit for values in this category.
func (c Category) Unit() string {
	if c == FanSpeed {
		return "RPM"
	}
	return "°C"
}

// Snapshot holds all samples extracted from one raw text capture.
// Within a snapshot each channel key maps to at most one value per category.
type Snapshot struct {
	CPUTemps     map[string]float64 `json:"cpu_temps"`
	FanSpeeds    map[string]float64 `json:"fan_speeds"`
	StorageTemps map[string]float64 `json:"storage_temps"`
	OtherTemps   map[string]float64 `json:"other_temps"`

	// FanMaxRPM holds per-fan rated maximum speeds observed in this capture.
	// Only fans whose line carried a max-RPM clause appear here.
	FanMaxRPM map[string]int `json:"fan_max_rpm,omitempty"`
}

// NewSnapshot returns an empty snapshot with all channel maps initialized.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		CPUTemps:     make(map[string]float64),
		FanSpeeds:    make(map[string]float64),
		StorageTemps: make(map[string]float64),
		OtherTemps:   make(map[string]float64),
		FanMaxRPM:    make(map[string]int),
	}
}

// Channels returns the channel map for the given category.
func (s *Snapshot) Channels(c Category) map[string]float64 {
	switch c {
	case CPUTemperature:
		return s.CPUTemps
	case FanSpeed:
		return s.FanSpeeds
	case StorageTemperature:
		return s.StorageTemps
	case OtherTemperature:
		return s.OtherTemps
	default:
		return nil
	}
}

// Empty reports whether the snapshot contains no samples at all.
func (s *Snapshot) Empty() bool {
	return len(s.CPUTemps) == 0 && len(s.FanSpeeds) == 0 &&
		len(s.StorageTemps) == 0 && len(s.OtherTemps) == 0
}
