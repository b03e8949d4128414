// Package config turns text into generation settings.
//
// ParseAlgorithm reads the compact "Name[,Param[,Percent]]" form used on the
// command line, in YAML files, in MAZE_* variables and in HTTP queries.
// Load assembles the full Config of the binaries from defaults, a YAML file,
// an optional .env file and the environment.
package config
