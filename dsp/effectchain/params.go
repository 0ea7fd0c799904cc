package effectchain

import "math"

// Params holds the parsed parameters for a single chain node.
type Params struct {
	ID       string
	Type     string
	Bypassed bool
	Num      map[string]float64
	Str      map[string]string
	Bool     map[string]bool
}

// GetNum safely extracts a numeric parameter, returning def if missing or invalid.
func (p Params) GetNum(key string, def float64) float64 {
	v, ok := p.Num[key]
	if !ok || math.IsNaN(v) || math.IsInf(v, 0) {
		return def
	}

	return v
}

// GetStr returns a string parameter and whether it was present.
func (p Params) GetStr(key string) (string, bool) {
	v, ok := p.Str[key]
	return v, ok
}

// GetBool returns a boolean parameter, or def if missing.
func (p Params) GetBool(key string, def bool) bool {
	v, ok := p.Bool[key]
	if !ok {
		return def
	}

	return v
}
