package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/njchilds90/goseries/internal/batch"
	"github.com/njchilds90/goseries/series"
	"github.com/njchilds90/goseries/symbolic"
)

var errBadRequest = errors.New("bad request")

// expandRequest is the body of POST /series and one entry of a batch. Var
// and Prec fall back to the [series] defaults.
type expandRequest struct {
	Expr map[string]interface{} `json:"expr"`
	Var  string                 `json:"var,omitempty"`
	Prec *int                   `json:"prec,omitempty"`
}

type batchRequest struct {
	Jobs []expandRequest `json:"jobs"`
}

type termResponse struct {
	Exp    int                    `json:"exp"`
	Coeff  map[string]interface{} `json:"coeff"`
	String string                 `json:"string"`
}

type seriesResponse struct {
	Var          string         `json:"var"`
	Prec         int            `json:"prec"`
	Degree       int            `json:"degree"`
	String       string         `json:"string"`
	LaTeX        string         `json:"latex"`
	Hash         string         `json:"hash"`
	Terms        []termResponse `json:"terms"`
	Coefficients []string       `json:"coefficients"`
}

type batchItem struct {
	Status int             `json:"status"`
	Series *seriesResponse `json:"series,omitempty"`
	Error  string          `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItem `json:"results"`
}

func newSeriesResponse(s *series.Series) *seriesResponse {
	resp := &seriesResponse{
		Var:          s.Var(),
		Prec:         s.Precision(),
		Degree:       s.Degree(),
		String:       s.String(),
		LaTeX:        s.LaTeX(),
		Hash:         fmt.Sprintf("%016x", s.Hash()),
		Terms:        []termResponse{},
		Coefficients: []string{},
	}
	for e, c := range s.Polynomial().All() {
		resp.Terms = append(resp.Terms, termResponse{Exp: e, Coeff: symbolic.ToMap(c), String: c.String()})
	}
	for _, c := range s.Coefficients() {
		resp.Coefficients = append(resp.Coefficients, c.String())
	}
	return resp
}

// classify maps an expansion error to an HTTP status and a metrics outcome.
func classify(err error) (int, string) {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, symbolic.ErrInvalidExpression),
		errors.Is(err, series.ErrInvalidPrecision):
		return http.StatusBadRequest, "invalid"
	case errors.Is(err, series.ErrUnsupported):
		return http.StatusUnprocessableEntity, "unsupported"
	case errors.Is(err, series.ErrUndefined):
		return http.StatusUnprocessableEntity, "undefined"
	}
	return http.StatusInternalServerError, "error"
}

func (s *Server) job(req expandRequest) (batch.Job, error) {
	if req.Expr == nil {
		return batch.Job{}, fmt.Errorf("expr is required: %w", errBadRequest)
	}
	e, err := symbolic.FromJSON(req.Expr)
	if err != nil {
		return batch.Job{}, err
	}
	job := batch.Job{Expr: e, Var: req.Var, Prec: s.cfg.Series.Precision}
	if job.Var == "" {
		job.Var = s.cfg.Series.Var
	}
	if req.Prec != nil {
		job.Prec = *req.Prec
	}
	if job.Prec > s.cfg.Series.MaxPrecision {
		return batch.Job{}, fmt.Errorf("precision %d exceeds limit %d: %w", job.Prec, s.cfg.Series.MaxPrecision, errBadRequest)
	}
	return job, nil
}

// POST /series
func (s *Server) handleExpand(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req expandRequest
	if err := s.decode(w, r, &req); err != nil {
		s.logger.WarnContext(ctx, "invalid expand request", "request_id", RequestID(ctx), "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	start := time.Now()
	job, err := s.job(req)
	var out *series.Series
	if err == nil {
		out, err = series.Expand(job.Expr, job.Var, job.Prec)
	}
	if err != nil {
		status, outcome := classify(err)
		s.metrics.ObserveExpand(start, outcome)
		s.logger.WarnContext(ctx, "expansion failed",
			"request_id", RequestID(ctx),
			"var", job.Var,
			"prec", job.Prec,
			"error", err,
		)
		writeError(w, status, err.Error())
		return
	}
	s.metrics.ObserveExpand(start, "ok")
	writeJSON(w, http.StatusOK, newSeriesResponse(out))
}

// POST /series/batch. Jobs succeed or fail independently.
func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req batchRequest
	if err := s.decode(w, r, &req); err != nil {
		s.logger.WarnContext(ctx, "invalid batch request", "request_id", RequestID(ctx), "error", err)
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Jobs) > s.cfg.Batch.MaxJobs {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch of %d jobs exceeds limit %d", len(req.Jobs), s.cfg.Batch.MaxJobs))
		return
	}
	s.metrics.BatchSize.Observe(float64(len(req.Jobs)))

	items := make([]batchItem, len(req.Jobs))
	jobs := make([]batch.Job, 0, len(req.Jobs))
	slots := make([]int, 0, len(req.Jobs))
	for i, jr := range req.Jobs {
		job, err := s.job(jr)
		if err != nil {
			status, outcome := classify(err)
			s.metrics.Expansions.WithLabelValues(outcome).Inc()
			items[i] = batchItem{Status: status, Error: err.Error()}
			continue
		}
		jobs = append(jobs, job)
		slots = append(slots, i)
	}

	start := time.Now()
	for k, res := range s.runner.Collect(ctx, jobs) {
		i := slots[k]
		if res.Err != nil {
			status, outcome := classify(res.Err)
			s.metrics.Expansions.WithLabelValues(outcome).Inc()
			items[i] = batchItem{Status: status, Error: res.Err.Error()}
			continue
		}
		s.metrics.Expansions.WithLabelValues("ok").Inc()
		items[i] = batchItem{Status: http.StatusOK, Series: newSeriesResponse(res.Series)}
	}
	s.logger.InfoContext(ctx, "batch done",
		"request_id", RequestID(ctx),
		"jobs", len(req.Jobs),
		"elapsed", time.Since(start),
	)
	writeJSON(w, http.StatusOK, batchResponse{Results: items})
}

// GET /health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// GET /schema
func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Schema())
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.Server.MaxBodyBytes)
	defer r.Body.Close()

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON: trailing data")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
