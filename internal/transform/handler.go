// Package transform exposes the pipeline engine as an HTTP service: one
// route per stored preset, accepting the input body and returning the
// rendered result.
package transform

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/structedit/structedit/internal/cache"
	"github.com/structedit/structedit/internal/ratelimit"
	"github.com/structedit/structedit/internal/transform/middleware"
	"github.com/structedit/structedit/pipeline"
)

// cacheTTL bounds how long a rendered transform result is reused for the
// same preset+input pair before the pipeline is re-run.
const cacheTTL = 5 * time.Minute

// TransformRequest is the JSON body accepted by POST /transform/{preset}.
type TransformRequest struct {
	Input string `json:"input"`
}

// TransformResponse is the JSON body returned by POST /transform/{preset}.
type TransformResponse struct {
	Output string `json:"output"`
}

// RouterOptions configures the optional ambient infrastructure a transform
// router is built with. A nil Cache or Limiter disables that concern.
type RouterOptions struct {
	Cache   cache.Cache
	Limiter ratelimit.RateLimiter
}

// NewRouter builds the transform HTTP service routing to the given named
// pipelines. Requests may send either a raw text/plain body or a JSON
// {"input": "..."} body; the Content-Type header selects which.
func NewRouter(presets map[string]*pipeline.Pipeline) http.Handler {
	return NewRouterWithOptions(presets, RouterOptions{})
}

// NewRouterWithOptions is NewRouter with ambient cache and rate-limit
// backends wired in. Passing a cache memoizes rendered output per
// preset+input pair; passing a limiter rejects requests once a client
// exceeds it, keyed by remote IP.
func NewRouterWithOptions(presets map[string]*pipeline.Pipeline, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID())
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS())
	if opts.Limiter != nil {
		r.Use(middleware.RateLimit(opts.Limiter))
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Get("/presets", func(w http.ResponseWriter, r *http.Request) {
		names := make([]string, 0, len(presets))
		for name := range presets {
			names = append(names, name)
		}
		json.NewEncoder(w).Encode(names)
	})

	r.Post("/transform/{preset}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "preset")
		pipe, ok := presets[name]
		if !ok {
			http.Error(w, "preset not found: "+name, http.StatusNotFound)
			return
		}

		input, err := readTransformInput(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		output, err := runCached(r.Context(), opts.Cache, name, input, pipe)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		if r.Header.Get("Accept") == "application/json" {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(TransformResponse{Output: output})
			return
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.Write([]byte(output))
	})

	return r
}

// runCached runs pipe over input, consulting c first when it is non-nil.
// The cache key is the preset name plus a hash of the input, so identical
// requests against the same preset skip re-running the pipeline.
func runCached(ctx context.Context, c cache.Cache, preset, input string, pipe *pipeline.Pipeline) (string, error) {
	if c == nil {
		return pipe.Run(input), nil
	}

	sum := sha256.Sum256([]byte(input))
	key := "transform:" + preset + ":" + hex.EncodeToString(sum[:])

	if cached, err := c.Get(ctx, key); err == nil {
		return string(cached), nil
	}

	output := pipe.Run(input)
	if err := c.Set(ctx, key, []byte(output), cacheTTL); err != nil {
		return "", err
	}
	return output, nil
}

func readTransformInput(r *http.Request) (string, error) {
	if r.Header.Get("Content-Type") == "application/json" {
		var req TransformRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return "", err
		}
		return req.Input, nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	return string(body), nil
}
