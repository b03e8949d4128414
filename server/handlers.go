package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/inspect"
	"github.com/katalvlaran/labyrinth/maze"
	"github.com/katalvlaran/labyrinth/render"
)

// ErrInvalidQuery indicates a malformed or out-of-range query parameter.
var ErrInvalidQuery = errors.New("server: invalid query")

// Response headers.
const (
	HeaderSeed  = "X-Maze-Seed"
	HeaderCache = "X-Cache"
)

const (
	formatPNG  = "png"
	formatText = "text"
	formatJSON = "json"

	maxScale = 8
)

var contentTypes = map[string]string{
	formatPNG:  "image/png",
	formatText: "text/plain; charset=utf-8",
	formatJSON: "application/json; charset=utf-8",
}

// mazeRequest is a validated /mazes query.
type mazeRequest struct {
	alg           maze.Algorithm
	width, height int
	seed          int64
	format        string
	scale         float64
}

// key identifies the rendered body; equal keys always render equal bytes.
func (r mazeRequest) key() string {
	return fmt.Sprintf("maze:%s:%dx%d:%d:%s:%g", r.alg, r.width, r.height, r.seed, r.format, r.scale)
}

// mazeResponse is the JSON body of format=json.
type mazeResponse struct {
	Algorithm string         `json:"algorithm"`
	Width     int            `json:"width"`
	Height    int            `json:"height"`
	Seed      int64          `json:"seed"`
	Entrances []maze.Opening `json:"entrances"`
	Report    inspect.Report `json:"report"`
	Rows      []string       `json:"rows"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// algorithms lists the canonical form of every strategy with its default
// parameter, plus the accepted names.
func (s *Server) algorithms(c *gin.Context) {
	algs := []maze.Algorithm{
		maze.BinaryTree{},
		maze.Sidewinder{},
		maze.Eller{},
		maze.RecursiveBacktracking{},
		maze.HuntAndKill{},
		maze.Prim{},
		maze.Kruskal{},
		maze.GrowingTree{},
		maze.RecursiveDivision{},
	}
	out := make([]string, len(algs))
	for i, a := range algs {
		out[i] = a.String()
	}
	c.JSON(http.StatusOK, gin.H{"algorithms": out, "names": config.Names})
}

func (s *Server) getMaze(c *gin.Context) {
	log := requestLogger(c, s.log)
	req, err := s.parse(c)
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Header(HeaderSeed, strconv.FormatInt(req.seed, 10))

	ctx := c.Request.Context()
	key := req.key()
	body, hit, err := s.lookup(ctx, key, log)
	if !hit {
		body, hit, err = s.fill(ctx, key, req, err == nil, log)
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "maze generation failed"})
			return
		}
	}
	if hit {
		c.Header(HeaderCache, "HIT")
	} else {
		c.Header(HeaderCache, "MISS")
	}
	c.Data(http.StatusOK, contentTypes[req.format], body)
}

// parse validates the query against the server limits.
func (s *Server) parse(c *gin.Context) (mazeRequest, error) {
	req := mazeRequest{
		alg:    s.opts.DefaultAlgorithm,
		width:  s.opts.DefaultWidth,
		height: s.opts.DefaultHeight,
		format: c.DefaultQuery("format", formatPNG),
		scale:  1,
	}
	if v := c.Query("algorithm"); v != "" {
		alg, err := config.ParseAlgorithm(v)
		if err != nil {
			return req, err
		}
		req.alg = alg
	}

	var err error
	if req.width, err = dimension(c, "width", req.width, s.opts.MaxDimension); err != nil {
		return req, err
	}
	if req.height, err = dimension(c, "height", req.height, s.opts.MaxDimension); err != nil {
		return req, err
	}

	if v := c.Query("seed"); v != "" {
		if req.seed, err = strconv.ParseInt(v, 10, 64); err != nil || req.seed == 0 {
			return req, fmt.Errorf("%w: seed %q must be a non-zero integer", ErrInvalidQuery, v)
		}
	} else {
		req.seed = rand.Int63n(math.MaxInt64-1) + 1
	}

	if _, ok := contentTypes[req.format]; !ok {
		return req, fmt.Errorf("%w: format %q must be png, text or json", ErrInvalidQuery, req.format)
	}
	if v := c.Query("scale"); v != "" {
		if req.scale, err = strconv.ParseFloat(v, 64); err != nil || !(req.scale > 0 && req.scale <= maxScale) {
			return req, fmt.Errorf("%w: scale %q must be within (0,%d]", ErrInvalidQuery, v, maxScale)
		}
	}
	if req.format != formatPNG {
		req.scale = 1
	}
	return req, nil
}

func dimension(c *gin.Context, name string, def, limit int) (int, error) {
	v := c.Query(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > limit {
		return 0, fmt.Errorf("%w: %s %q must be within [1,%d]", ErrInvalidQuery, name, v, limit)
	}
	return n, nil
}

// lookup reads the cache. A failure is logged, returned and treated as a
// miss by the caller.
func (s *Server) lookup(ctx context.Context, key string, log logrus.FieldLogger) ([]byte, bool, error) {
	if s.cache == nil {
		return nil, false, nil
	}
	body, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		log.WithError(err).Warn("cache get failed")
		return nil, false, err
	}
	return body, ok, nil
}

// fill renders the body for a miss and stores it. With a healthy Locker
// cache the render happens under the key's lock and the cache is checked
// again first, so concurrent misses render once. hit reports that another
// holder filled the entry meanwhile.
func (s *Server) fill(ctx context.Context, key string, req mazeRequest, healthy bool, log logrus.FieldLogger) (body []byte, hit bool, err error) {
	if l, ok := s.cache.(Locker); ok && healthy {
		unlock, err := l.Lock(ctx, key)
		if err != nil {
			log.WithError(err).Warn("cache lock failed")
		} else {
			defer unlock()
			if body, ok, _ := s.lookup(ctx, key, log); ok {
				return body, true, nil
			}
		}
	}

	body, err = s.renderBody(req, log)
	if err != nil {
		return nil, false, err
	}
	if s.cache != nil {
		if err := s.cache.Set(ctx, key, body); err != nil {
			log.WithError(err).Warn("cache set failed")
		}
	}
	return body, false, nil
}

func (s *Server) renderBody(req mazeRequest, log logrus.FieldLogger) ([]byte, error) {
	m, err := maze.Generate(req.width, req.height, req.alg, maze.WithSeed(req.seed), maze.WithLogger(log))
	if err != nil {
		return nil, err
	}

	switch req.format {
	case formatText:
		return []byte(render.Text(m.Grid)), nil
	case formatJSON:
		text := render.Text(m.Grid)
		return json.Marshal(mazeResponse{
			Algorithm: m.Algorithm.String(),
			Width:     req.width,
			Height:    req.height,
			Seed:      m.Seed,
			Entrances: m.Entrances,
			Report:    inspect.Analyze(m.Grid),
			Rows:      strings.Split(strings.TrimSuffix(text, "\n"), "\n"),
		})
	default:
		var buf bytes.Buffer
		if err := render.PNG(&buf, m.Grid, render.WithScale(req.scale)); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
}
