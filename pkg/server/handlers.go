package server

import (
	"context"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/chartkit/pkg/buildinfo"
	"github.com/matzehuels/chartkit/pkg/chartfile"
	"github.com/matzehuels/chartkit/pkg/errors"
	"github.com/matzehuels/chartkit/pkg/pipeline"
)

// Response headers set by render endpoints.
const (
	ChartHashHeader = "X-Chart-Hash"
	CacheHeader     = "X-Cache"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	c, err := s.readChart(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, c)
}

func (s *Server) handleListCharts(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeError(w, r, errors.New(errors.ErrCodeInvalidInput, "invalid limit: %q", v))
			return
		}
		limit = n
	}
	records, err := s.store.List(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"charts": records})
}

func (s *Server) handleCreateChart(w http.ResponseWriter, r *http.Request) {
	c, err := s.readChart(w, r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	rec, err := s.store.Put(r.Context(), c)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", "/v1/charts/"+rec.ID)
	writeJSON(w, http.StatusCreated, rec)
}

func (s *Server) handleGetChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

func (s *Server) handleDeleteChart(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleRenderChart(w http.ResponseWriter, r *http.Request) {
	rec, err := s.store.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	s.render(w, r, rec.Chart)
}

// render runs the pipeline for one format and writes the artifact.
func (s *Server) render(w http.ResponseWriter, r *http.Request, c *chartfile.Chart) {
	opts, format, err := renderOptions(r)
	if err != nil {
		writeError(w, r, err)
		return
	}
	opts.Logger = s.logger.With("request_id", RequestID(r.Context()))

	ctx := r.Context()
	if s.renderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.renderTimeout)
		defer cancel()
	}

	res, err := s.runner.Execute(ctx, c, opts)
	if err != nil {
		writeError(w, r, err)
		return
	}

	cache := "miss"
	if res.CacheInfo.RenderHit {
		cache = "hit"
	}
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set(ChartHashHeader, res.ChartHash)
	w.Header().Set(CacheHeader, cache)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(res.Artifacts[format])
}

// readChart decodes the request body. The format follows Content-Type and
// is sniffed when none is given.
func (s *Server) readChart(w http.ResponseWriter, r *http.Request) (*chartfile.Chart, error) {
	data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.maxBody))
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "empty request body")
	}
	var f chartfile.Format
	if ct := r.Header.Get("Content-Type"); ct != "" {
		f = chartfile.FormatFromContentType(ct)
	}
	return chartfile.Decode(data, f)
}

// renderOptions reads format, width, height and scale from the query.
func renderOptions(r *http.Request) (pipeline.Options, string, error) {
	q := r.URL.Query()
	format := q.Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		return pipeline.Options{}, "", err
	}

	opts := pipeline.Options{Formats: []string{format}, Refresh: q.Get("refresh") == "true"}
	for _, p := range []struct {
		name string
		dst  *float64
	}{
		{"width", &opts.Width},
		{"height", &opts.Height},
		{"scale", &opts.Scale},
	} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pipeline.Options{}, "", errors.New(errors.ErrCodeInvalidInput, "invalid %s: %q", p.name, v)
		}
		*p.dst = f
	}
	return opts, format, nil
}
