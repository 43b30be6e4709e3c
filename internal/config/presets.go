package config

import "sort"

// Presets reproduce the trajectories drawn on the project site: the logo run
// and the three animated particles of each attractor.
var Presets = map[string]map[string]*Config{
	"lorenz": {
		"logo": {
			Model: "lorenz", Integrator: "euler", Dt: 0.01, Steps: 10000,
			InitState: []float64{1, 0, 0.1},
		},
		"green": {
			Model: "lorenz", Integrator: "euler", Dt: 0.01, Steps: 10000,
			InitState: []float64{2, 3, 13},
			Style:     StyleConfig{Line: "#006600"},
		},
		"orange": {
			Model: "lorenz", Integrator: "euler", Dt: 0.01, Steps: 10000,
			InitState: []float64{4, -3, -1},
			Style:     StyleConfig{Line: "#ff9900"},
		},
		"purple": {
			Model: "lorenz", Integrator: "euler", Dt: 0.01, Steps: 10000,
			InitState: []float64{12, -1, 0},
			Style:     StyleConfig{Line: "#6600ff"},
		},
	},
	"rossler": {
		"green": {
			Model: "rossler", Integrator: "euler", Dt: 0.02, Steps: 10000,
			InitState: []float64{1, -11, 14}, Output: "rossler_attractor.png",
			Style: StyleConfig{Line: "#006600"},
		},
		"orange": {
			Model: "rossler", Integrator: "euler", Dt: 0.02, Steps: 10000,
			InitState: []float64{-0.2, 12, -0.01}, Output: "rossler_attractor.png",
			Style: StyleConfig{Line: "#ff9900"},
		},
		"purple": {
			Model: "rossler", Integrator: "euler", Dt: 0.02, Steps: 10000,
			InitState: []float64{13, 6, 24}, Output: "rossler_attractor.png",
			Style: StyleConfig{Line: "#6600ff"},
		},
	},
}

func GetPreset(model, preset string) *Config {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	cfg, ok := modelPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(model string) []string {
	modelPresets, ok := Presets[model]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(modelPresets))
	for name := range modelPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultOutputFor names the image file for a model when none is configured.
func DefaultOutputFor(model string) string {
	if model == "" || model == DefaultModel {
		return DefaultOutput
	}
	return model + "_attractor.png"
}
