package config

import "sort"

// Presets are named polynomials and transfer functions for quick
// experiments from the command line.
var Presets = map[string]*Config{
	"wilkinson": {
		Roots:   []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20},
		Method:  "iterative",
		MaxIter: 100,
	},
	"chebyshev5": {
		Coeffs: []float64{0, 5, 0, -20, 0, 16},
		Method: "eigen",
	},
	"legendre4": {
		Coeffs: []float64{3, 0, -30, 0, 35},
		Method: "eigen",
	},
	"lowpass": {
		Num:  []float64{1},
		Den:  []float64{1, 1},
		WMin: 0.01, WMax: 100, WStep: 0.05,
	},
	"resonant": {
		Num:  []float64{1},
		Den:  []float64{1, 0.2, 1},
		WMin: 0.01, WMax: 100, WStep: 0.05,
	},
	"dcmotor": {
		Num:  []float64{5},
		Den:  []float64{0, 1, 0.5},
		WMin: 0.1, WMax: 1000, WStep: 0.05,
	},
}

// GetPreset returns the named preset merged over the defaults, or nil
// when the name is unknown.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Coeffs = p.Coeffs
	cfg.Roots = p.Roots
	cfg.Num = p.Num
	cfg.Den = p.Den
	if p.Method != "" {
		cfg.Method = p.Method
	}
	if p.MaxIter > 0 {
		cfg.MaxIter = p.MaxIter
	}
	if p.WMin > 0 {
		cfg.WMin = p.WMin
	}
	if p.WMax > 0 {
		cfg.WMax = p.WMax
	}
	if p.WStep > 0 {
		cfg.WStep = p.WStep
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
