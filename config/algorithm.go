package config

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/labyrinth/maze"
)

// Names lists the canonical algorithm names in matching precedence order:
// a prefix matching several names selects the first one, so "r" means
// RecursiveBacktracking while "recursived" reaches RecursiveDivision.
var Names = []string{
	"PrimsAlgorithm",
	"GrowingTree",
	"BinaryTree",
	"SidewinderAlgorithm",
	"RecursiveBacktracking",
	"EllersAlgorithm",
	"KruskalsAlgorithm",
	"RecursiveDivision",
	"HuntKillAlgorithm",
}

// ParseAlgorithm decodes "Name[,Param[,Percent]]" into a maze.Algorithm.
//
// Name and Param are matched case-insensitively as prefixes of the canonical
// names, so "kr", "gro,newestr,30" and "bin,sw" are all valid. A missing
// Param selects the first option of the algorithm (Newest, Northeast,
// Horizontal). Growing Tree takes a Percent exactly when the policy is
// weighted (NewestOldest, NewestRandom, OldestRandom).
//
// Errors: ErrFormat, ErrUnknownAlgorithm, ErrUnknownParam, ErrPercent, each
// wrapped with the offending input.
func ParseAlgorithm(s string) (maze.Algorithm, error) {
	parts := strings.Split(s, ",")
	if len(parts) > 3 {
		return nil, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrFormat)
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
		if parts[i] == "" {
			return nil, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrFormat)
		}
	}
	name := match(parts[0], Names)
	if name == "" {
		return nil, fmt.Errorf("ParseAlgorithm(%q): %w", s, ErrUnknownAlgorithm)
	}
	var param, percent string
	if len(parts) > 1 {
		param = parts[1]
	}
	if len(parts) > 2 {
		percent = parts[2]
	}

	alg, err := build(name, param, percent)
	if err != nil {
		return nil, fmt.Errorf("ParseAlgorithm(%q): %w", s, err)
	}
	return alg, nil
}

// MustParseAlgorithm is ParseAlgorithm for trusted literals; it panics on error.
func MustParseAlgorithm(s string) maze.Algorithm {
	alg, err := ParseAlgorithm(s)
	if err != nil {
		panic(err)
	}
	return alg
}

func build(name, param, percent string) (maze.Algorithm, error) {
	if percent != "" && name != "GrowingTree" {
		return nil, ErrFormat
	}
	if alg, ok := plain[name]; ok {
		if param != "" {
			return nil, fmt.Errorf("%s,%s: %w", name, param, ErrUnknownParam)
		}
		return alg, nil
	}
	switch name {
	case "BinaryTree":
		for _, b := range maze.Biases {
			if param == "" || hasPrefixFold(b.String(), param) {
				return maze.BinaryTree{Bias: b}, nil
			}
		}
	case "SidewinderAlgorithm", "EllersAlgorithm":
		for _, sc := range maze.Scans {
			if param == "" || hasPrefixFold(sc.String(), param) {
				if name == "EllersAlgorithm" {
					return maze.Eller{Scan: sc}, nil
				}
				return maze.Sidewinder{Scan: sc}, nil
			}
		}
	case "GrowingTree":
		return growingTree(param, percent)
	}
	return nil, fmt.Errorf("%s,%s: %w", name, param, ErrUnknownParam)
}

// growingTree resolves the selection policy. With a percent only the
// weighted policies are candidates, without one only the plain ones.
func growingTree(param, percent string) (maze.Algorithm, error) {
	if percent == "" {
		if param == "" {
			return maze.GrowingTree{Selection: maze.Newest()}, nil
		}
		for _, sel := range []maze.CellSelection{maze.Newest(), maze.Oldest(), maze.Random()} {
			if hasPrefixFold(sel.Policy().String(), param) {
				return maze.GrowingTree{Selection: sel}, nil
			}
		}
		if match(param, weightedNames) != "" {
			return nil, fmt.Errorf("GrowingTree,%s: %w", param, ErrPercent)
		}
		return nil, fmt.Errorf("GrowingTree,%s: %w", param, ErrUnknownParam)
	}

	p, err := strconv.Atoi(percent)
	if err != nil || p < 0 || p > 100 {
		return nil, fmt.Errorf("GrowingTree,%s,%s: %w", param, percent, ErrPercent)
	}
	switch match(param, weightedNames) {
	case "NewestOldest":
		return maze.GrowingTree{Selection: maze.NewestOldest(p)}, nil
	case "NewestRandom":
		return maze.GrowingTree{Selection: maze.NewestRandom(p)}, nil
	case "OldestRandom":
		return maze.GrowingTree{Selection: maze.OldestRandom(p)}, nil
	}
	return nil, fmt.Errorf("GrowingTree,%s: %w", param, ErrUnknownParam)
}

var weightedNames = []string{"NewestOldest", "NewestRandom", "OldestRandom"}

// plain holds the algorithms that take no parameter.
var plain = map[string]maze.Algorithm{
	"PrimsAlgorithm":        maze.Prim{},
	"RecursiveBacktracking": maze.RecursiveBacktracking{},
	"KruskalsAlgorithm":     maze.Kruskal{},
	"RecursiveDivision":     maze.RecursiveDivision{},
	"HuntKillAlgorithm":     maze.HuntAndKill{},
}

// match returns the first candidate that starts with prefix, ignoring case.
func match(prefix string, candidates []string) string {
	for _, c := range candidates {
		if hasPrefixFold(c, prefix) {
			return c
		}
	}
	return ""
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}
