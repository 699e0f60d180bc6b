package models

// ChartPoint is a coordinate in normalised chart space (0-100 on both axes, y grows downward).
type ChartPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ChartLine is one projected series with its smoothed outline and filled area.
type ChartLine struct {
	Key      string       `json:"key"`
	Points   []ChartPoint `json:"points"`
	Path     string       `json:"path"`
	AreaPath string       `json:"area_path"`
}

// AxisTick is one axis label. Pos is the normalised coordinate along the axis.
type AxisTick struct {
	Value float64 `json:"value"`
	Index int     `json:"index"`
	Label string  `json:"label"`
	Pos   float64 `json:"pos"`
}

// RenderModel is everything a host needs to draw one chart.
type RenderModel struct {
	Range    RangeToken      `json:"range"`
	Periods  []string        `json:"periods"`
	Domain   ChartDomain     `json:"domain"`
	Lines    []ChartLine     `json:"lines"`
	YTicks   []AxisTick      `json:"y_ticks"`
	XTicks   []AxisTick      `json:"x_ticks"`
	Drawdown *DrawdownResult `json:"drawdown,omitempty"`
}

// HoverResult is the tooltip payload for one pointer position.
type HoverResult struct {
	Index  int                `json:"index"`
	Period string             `json:"period"`
	X      float64            `json:"x"`
	Values map[string]float64 `json:"values"`
}

// DrawdownResult describes the largest decline found in a series.
// RecoveryIndex is -1 when the series never regains the peak.
type DrawdownResult struct {
	MaxDrawdown   float64 `json:"max_drawdown"`
	PeakIndex     int     `json:"peak_index"`
	TroughIndex   int     `json:"trough_index"`
	RecoveryIndex int     `json:"recovery_index"`
}
