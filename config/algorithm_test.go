package config_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/maze"
)

func TestParseAlgorithm(t *testing.T) {
	cases := []struct {
		in   string
		want maze.Algorithm
	}{
		{"kr", maze.Kruskal{}},
		{"KRUSKALSALGORITHM", maze.Kruskal{}},
		{"  kruskal ", maze.Kruskal{}},
		{"p", maze.Prim{}},
		{"r", maze.RecursiveBacktracking{}},
		{"recursived", maze.RecursiveDivision{}},
		{"h", maze.HuntAndKill{}},
		{"gro", maze.GrowingTree{Selection: maze.Newest()}},
		{"growingtree,o", maze.GrowingTree{Selection: maze.Oldest()}},
		{"g,r", maze.GrowingTree{Selection: maze.Random()}},
		{"g,newestr,30", maze.GrowingTree{Selection: maze.NewestRandom(30)}},
		{"g,newest,30", maze.GrowingTree{Selection: maze.NewestOldest(30)}},
		{"g,OldestRandom,100", maze.GrowingTree{Selection: maze.OldestRandom(100)}},
		{"g, newesto , 0", maze.GrowingTree{Selection: maze.NewestOldest(0)}},
		{"bin", maze.BinaryTree{Bias: maze.Northeast}},
		{"bin,sw", maze.BinaryTree{Bias: maze.Southwest}},
		{"b,northw", maze.BinaryTree{Bias: maze.Northwest}},
		{"b,s", maze.BinaryTree{Bias: maze.Southeast}},
		{"s", maze.Sidewinder{Scan: maze.Horizontal}},
		{"side,v", maze.Sidewinder{Scan: maze.Vertical}},
		{"e", maze.Eller{Scan: maze.Horizontal}},
		{"ellers,VERT", maze.Eller{Scan: maze.Vertical}},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := config.ParseAlgorithm(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseAlgorithm_Errors(t *testing.T) {
	cases := []struct {
		in   string
		want error
	}{
		{"", config.ErrFormat},
		{"kr,", config.ErrFormat},
		{"g,,5", config.ErrFormat},
		{"a,b,c,d", config.ErrFormat},
		{"kr,x,5", config.ErrFormat},
		{"zzz", config.ErrUnknownAlgorithm},
		{"kruskalsalgorithmx", config.ErrUnknownAlgorithm},
		{"kr,x", config.ErrUnknownParam},
		{"bin,up", config.ErrUnknownParam},
		{"side,diagonal", config.ErrUnknownParam},
		{"g,zzz", config.ErrUnknownParam},
		{"g,zzz,30", config.ErrUnknownParam},
		{"g,newestoldest", config.ErrPercent},
		{"g,newestoldest,101", config.ErrPercent},
		{"g,newestoldest,-1", config.ErrPercent},
		{"g,no,abc", config.ErrPercent},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := config.ParseAlgorithm(tc.in)
			assert.Nil(t, got)
			assert.True(t, errors.Is(err, tc.want), "got %v, want %v", err, tc.want)
		})
	}
}

// TestParseAlgorithm_RoundTrip checks that every canonical String parses
// back to the same value.
func TestParseAlgorithm_RoundTrip(t *testing.T) {
	algs := []maze.Algorithm{
		maze.Prim{},
		maze.Kruskal{},
		maze.RecursiveBacktracking{},
		maze.RecursiveDivision{},
		maze.HuntAndKill{},
		maze.GrowingTree{Selection: maze.Newest()},
		maze.GrowingTree{Selection: maze.Oldest()},
		maze.GrowingTree{Selection: maze.Random()},
		maze.GrowingTree{Selection: maze.NewestOldest(10)},
		maze.GrowingTree{Selection: maze.NewestRandom(55)},
		maze.GrowingTree{Selection: maze.OldestRandom(90)},
	}
	for _, b := range maze.Biases {
		algs = append(algs, maze.BinaryTree{Bias: b})
	}
	for _, s := range maze.Scans {
		algs = append(algs, maze.Eller{Scan: s}, maze.Sidewinder{Scan: s})
	}
	for _, alg := range algs {
		got, err := config.ParseAlgorithm(alg.String())
		require.NoError(t, err, alg.String())
		assert.Equal(t, alg, got, alg.String())
	}
}

func TestMustParseAlgorithm(t *testing.T) {
	assert.Equal(t, maze.Prim{}, config.MustParseAlgorithm("prim"))
	assert.Panics(t, func() { config.MustParseAlgorithm("nope") })
}
