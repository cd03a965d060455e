package thread

import "math"

// Metric standards lookup.
//
// The table follows ISO 724 coarse pitches with hex and nut dimensions in
// the ISO 4032 / DIN 912 neighborhood. It is immutable, initialized at
// definition, and indexed by nominal diameter [mm]. Queries between rows
// interpolate linearly; queries beyond the last row fall back to the
// proportional rules noted on each accessor.

type metricSpec struct {
	D     float64 // nominal major diameter
	Pitch float64 // coarse pitch
	F2F   float64 // hex across flats
	Drive float64 // hex socket drive across flats
	NutH  float64 // nut thickness
}

var metricTable = []metricSpec{
	{D: 2, Pitch: 0.4, F2F: 4, Drive: 1.5, NutH: 1.6},
	{D: 2.5, Pitch: 0.45, F2F: 5, Drive: 2, NutH: 2},
	{D: 3, Pitch: 0.5, F2F: 5.5, Drive: 2.5, NutH: 2.4},
	{D: 4, Pitch: 0.7, F2F: 7, Drive: 3, NutH: 3.2},
	{D: 5, Pitch: 0.8, F2F: 8, Drive: 4, NutH: 4},
	{D: 6, Pitch: 1, F2F: 10, Drive: 5, NutH: 5},
	{D: 8, Pitch: 1.25, F2F: 13, Drive: 6, NutH: 6.5},
	{D: 10, Pitch: 1.5, F2F: 16, Drive: 8, NutH: 8},
	{D: 12, Pitch: 1.75, F2F: 18, Drive: 10, NutH: 10},
	{D: 14, Pitch: 2, F2F: 21, Drive: 12, NutH: 11},
	{D: 16, Pitch: 2, F2F: 24, Drive: 14, NutH: 13},
	{D: 18, Pitch: 2.5, F2F: 27, Drive: 14, NutH: 15},
	{D: 20, Pitch: 2.5, F2F: 30, Drive: 17, NutH: 16},
	{D: 22, Pitch: 2.5, F2F: 34, Drive: 17, NutH: 18},
	{D: 24, Pitch: 3, F2F: 36, Drive: 19, NutH: 19},
	{D: 27, Pitch: 3, F2F: 41, Drive: 19, NutH: 22},
	{D: 30, Pitch: 3.5, F2F: 46, Drive: 22, NutH: 24},
	{D: 33, Pitch: 3.5, F2F: 50, Drive: 24, NutH: 26},
	{D: 36, Pitch: 4, F2F: 55, Drive: 27, NutH: 29},
	{D: 39, Pitch: 4, F2F: 60, Drive: 27, NutH: 31},
	{D: 42, Pitch: 4.5, F2F: 65, Drive: 32, NutH: 34},
	{D: 48, Pitch: 5, F2F: 75, Drive: 36, NutH: 38},
	{D: 52, Pitch: 5, F2F: 80, Drive: 36, NutH: 42},
	{D: 56, Pitch: 5.5, F2F: 85, Drive: 41, NutH: 45},
	{D: 60, Pitch: 5.5, F2F: 90, Drive: 41, NutH: 48},
	{D: 64, Pitch: 6, F2F: 95, Drive: 46, NutH: 51},
}

// Pitch returns the standard coarse pitch for a nominal metric diameter.
// Beyond the table the pitch grows proportionally, 6mm per 64mm of
// diameter.
func Pitch(diameter float64) float64 {
	return lookup(diameter,
		func(s metricSpec) float64 { return s.Pitch },
		func(d float64) float64 { return d * 6.0 / 64.0 })
}

// HexAcrossFlats returns the hex head/nut width across flats.
func HexAcrossFlats(diameter float64) float64 {
	return lookup(diameter,
		func(s metricSpec) float64 { return s.F2F },
		func(d float64) float64 { return d * 1.6 })
}

// HexAcrossCorners returns the hex head/nut width across corners.
func HexAcrossCorners(diameter float64) float64 {
	return HexAcrossFlats(diameter) / math.Cos(30*math.Pi/180)
}

// HexDriveSize returns the socket drive width across flats.
func HexDriveSize(diameter float64) float64 {
	return lookup(diameter,
		func(s metricSpec) float64 { return s.Drive },
		func(d float64) float64 { return d * 0.75 })
}

// NutThickness returns the standard nut thickness.
func NutThickness(diameter float64) float64 {
	return lookup(diameter,
		func(s metricSpec) float64 { return s.NutH },
		func(d float64) float64 { return d * 0.8 })
}

// lookup interpolates col linearly between the bracketing table rows.
// Diameters below the table clamp to the first row; diameters beyond it
// use the proportional fallback rule.
func lookup(d float64, col func(metricSpec) float64, beyond func(float64) float64) float64 {
	t := metricTable
	if d <= t[0].D {
		return col(t[0])
	}
	if d > t[len(t)-1].D {
		return beyond(d)
	}
	for i := 1; i < len(t); i++ {
		if d <= t[i].D {
			lo, hi := t[i-1], t[i]
			f := (d - lo.D) / (hi.D - lo.D)
			return col(lo) + f*(col(hi)-col(lo))
		}
	}
	return col(t[len(t)-1])
}
