package config

import "errors"

var (
	// ErrFormat indicates an algorithm string that is not Name[,Param[,Percent]].
	ErrFormat = errors.New("config: algorithm must be Name[,Param[,Percent]]")
	// ErrUnknownAlgorithm indicates a name that prefixes no algorithm.
	ErrUnknownAlgorithm = errors.New("config: unknown algorithm")
	// ErrUnknownParam indicates a parameter the algorithm does not accept.
	ErrUnknownParam = errors.New("config: unknown algorithm parameter")
	// ErrPercent indicates a missing, malformed or out-of-range percentage.
	ErrPercent = errors.New("config: percent must be an integer within [0,100]")
	// ErrInvalidConfig indicates a configuration value outside its range.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)
