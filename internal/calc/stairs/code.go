package stairs

// Code limits for stair geometry, in millimeters. These are the only place
// the limits live; a lookup of jurisdiction tables would replace this block
// without touching the geometry.
const (
	MinRiser     = 4.0
	MaxRiser     = 8.0
	DefaultRiser = 6.0

	MinWidth     = 36.0
	MaxWidth     = 400.0
	DefaultWidth = 40.0

	MinTread     = 11.0
	MaxTread     = 60.0
	DefaultTread = 12.0

	MinRailHeight     = 32.0
	MaxRailHeight     = 56.0
	DefaultRailHeight = 44.0
)

// Derived limits, not standards in their own right.
const (
	MaxSlope = MaxRiser / MinTread
	MinSlope = MinRiser / MaxTread
)

// Options is the per-flight configuration bundle chosen by the user.
type Options struct {
	Width      float64 `json:"width_mm" yaml:"width_mm"`
	RailHeight float64 `json:"rail_height_mm" yaml:"rail_height_mm"`
	LeftRail   bool    `json:"left_rail" yaml:"left_rail"`
	RightRail  bool    `json:"right_rail" yaml:"right_rail"`
	Landing    bool    `json:"landing" yaml:"landing"`
}

func DefaultOptions() Options {
	return Options{
		Width:      DefaultWidth,
		RailHeight: DefaultRailHeight,
		LeftRail:   true,
		RightRail:  true,
		Landing:    true,
	}
}

// Clamp bounds width and rail height to the code range. Zero values take the
// defaults.
func (o Options) Clamp() Options {
	o.Width = clampOr(o.Width, MinWidth, MaxWidth, DefaultWidth)
	o.RailHeight = clampOr(o.RailHeight, MinRailHeight, MaxRailHeight, DefaultRailHeight)
	return o
}

func clampOr(v, lo, hi, def float64) float64 {
	switch {
	case v <= 0:
		return def
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
