// Package server exposes maze generation over HTTP.
//
// Routes (gin):
//
//   - GET /healthz
//   - GET /api/v1/algorithms
//   - GET /api/v1/mazes?algorithm=&width=&height=&seed=&format=png|text|json&scale=
//
// Generation is deterministic in (algorithm, size, seed), so rendered bodies
// are cached under that key. MemoryCache keeps an in-process LRU; RedisCache
// shares entries between replicas and serializes concurrent misses for the
// same key with a redsync mutex. Cache failures are logged and bypassed.
//
// Every response carries X-Request-ID; generated mazes also carry
// X-Maze-Seed (the seed to reproduce them) and X-Cache (HIT or MISS).
package server
