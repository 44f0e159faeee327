package config

import "sort"

var Presets = map[string]map[string]*Config{
	"hopf": {
		"quick": {
			System: "hopf", Method: "shooting", Solver: "dense",
			Slices: 1, K: 2, Dt: 1e-3, Tol: 1e-10,
		},
		"multi": {
			System: "hopf", Method: "shooting", Solver: "dense",
			Slices: 4, K: 2, Dt: 1e-3, Tol: 1e-10,
		},
		"mesh": {
			System: "hopf", Method: "trapezoid", Solver: "dense",
			Slices: 201, K: 2, Tol: 1e-10,
		},
	},
	"vanderpol": {
		"cycle": {
			System: "vanderpol", Method: "shooting", Solver: "dense",
			Slices: 1, K: 2, Dt: 5e-4, Tol: 1e-10,
			Params: map[string]float64{"mu": 1.0},
		},
		"stiff": {
			System: "vanderpol", Method: "shooting", Solver: "arnoldi",
			Slices: 8, K: 2, Dt: 1e-4, Tol: 1e-8,
			Params: map[string]float64{"mu": 5.0},
		},
	},
	"duffing": {
		"forced": {
			System: "duffing", Method: "shooting", Solver: "dense",
			Slices: 1, K: 3, Dt: 5e-4, Tol: 1e-10,
		},
	},
}

func GetPreset(system, name string) *Config {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	return group[name]
}

func ListPresets(system string) []string {
	group, ok := Presets[system]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
