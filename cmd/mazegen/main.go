// Command mazegen generates one maze and writes it as a PNG file or ASCII art.
//
//	mazegen -width 40 -height 20 -algorithm "GrowingTree,NewestRandom,75" -seed 42 -out maze
//	mazegen -algorithm kr -text -verify
//
// Flags take precedence over MAZE_* variables, a .env file and the YAML file
// given by -config (see package config).
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"math"
	"math/rand"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/inspect"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// errImperfect is returned by -verify when the maze is not a spanning tree.
var errImperfect = errors.New("mazegen: maze is not perfect")

func main() {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	if err := run(os.Args[1:], os.Stdout, log); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.WithError(err).Fatal("mazegen failed")
	}
}

func run(args []string, stdout io.Writer, log *logrus.Logger) error {
	fs := flag.NewFlagSet("mazegen", flag.ContinueOnError)
	var (
		configPath = fs.String("config", "", "YAML configuration file")
		width      = fs.Int("width", 0, "maze width in cells")
		height     = fs.Int("height", 0, "maze height in cells")
		algorithm  = fs.String("algorithm", "", `algorithm as Name[,Param[,Percent]], e.g. "kruskal" or "gro,newestrandom,75"`)
		seed       = fs.Int64("seed", 0, "random seed; 0 picks one and prints it")
		scale      = fs.Float64("scale", 0, "PNG scale factor in (0,8]")
		out        = fs.String("out", "", `PNG output path (".png" is appended); default "maze" unless -text`)
		text       = fs.Bool("text", false, "print ASCII art to stdout")
		verify     = fs.Bool("verify", false, "fail unless the maze is a spanning tree")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		return err
	}
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "width":
			cfg.Maze.Width = *width
		case "height":
			cfg.Maze.Height = *height
		case "seed":
			cfg.Maze.Seed = *seed
		case "scale":
			cfg.Maze.Scale = *scale
		case "algorithm":
			flagErr = cfg.Maze.Algorithm.UnmarshalText([]byte(*algorithm))
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if lvl, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	if cfg.Maze.Seed == 0 {
		cfg.Maze.Seed = rand.Int63n(math.MaxInt64-1) + 1
	}
	m, err := maze.Generate(cfg.Maze.Width, cfg.Maze.Height, cfg.Maze.Algorithm.Value,
		maze.WithSeed(cfg.Maze.Seed), maze.WithLogger(log))
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "seed %d\n", m.Seed)

	if *verify {
		r := inspect.Analyze(m.Grid)
		log.WithField("report", r.String()).Info("verified")
		if !r.Perfect() {
			return fmt.Errorf("%w: %s", errImperfect, r)
		}
	}
	if *text {
		fmt.Fprint(stdout, render.Text(m.Grid))
	}
	if *out == "" && !*text {
		*out = "maze"
	}
	if *out != "" {
		path, err := render.SaveFile(*out, m.Grid, render.WithScale(cfg.Maze.Scale))
		if err != nil {
			return err
		}
		log.WithFields(logrus.Fields{
			"path":      path,
			"algorithm": m.Algorithm.String(),
			"width":     cfg.Maze.Width,
			"height":    cfg.Maze.Height,
		}).Info("maze written")
	}
	return nil
}
