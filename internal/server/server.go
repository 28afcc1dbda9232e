// Package server serves rendered calendars over HTTP.
//
// # Routes
//
//	GET /healthz                    build information as JSON
//	GET /month/{year}/{month}       one month
//	GET /year/{year}                twelve months in three columns
//	GET /grid?from=YYYY-MM&months=N consecutive months
//
// Calendar routes accept the query parameters start, width, marker, locale,
// mark (repeatable YYYY-MM-DD), today, holidays and year_in_title; /grid also
// takes cols and title. Calendars are returned as text/plain.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/textcal/pkg/buildinfo"
	"github.com/matzehuels/textcal/pkg/errors"
	"github.com/matzehuels/textcal/pkg/pipeline"
)

const (
	// DefaultAddr is the listen address used when none is configured.
	DefaultAddr = ":8080"

	shutdownTimeout = 10 * time.Second
)

// Server renders calendars for HTTP clients.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	now    func() time.Time
	router chi.Router
}

// New creates a server backed by runner.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	s := &Server{
		runner: runner,
		logger: logger,
		now:    time.Now,
	}
	s.router = s.routes()
	return s
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/month/{year}/{month}", s.handleMonth)
	r.Get("/year/{year}", s.handleYear)
	r.Get("/grid", s.handleGrid)
	return r
}

// ListenAndServe serves on addr until ctx is canceled, then shuts down
// gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return errors.Wrap(errors.ErrCodeInternal, err, "listen on %s", addr)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// =============================================================================
// Handlers
// =============================================================================

type healthResponse struct {
	Status string `json:"status"`
	buildinfo.Info
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(healthResponse{Status: "ok", Info: buildinfo.Current()})
}

func (s *Server) handleMonth(w http.ResponseWriter, r *http.Request) {
	opts := pipeline.Options{Kind: pipeline.KindMonth}
	y, err := pipeline.ParseYear(chi.URLParam(r, "year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	m, err := pipeline.ParseMonth(chi.URLParam(r, "month"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Year, opts.Month = y, int(m)
	s.render(w, r, opts)
}

func (s *Server) handleYear(w http.ResponseWriter, r *http.Request) {
	y, err := pipeline.ParseYear(chi.URLParam(r, "year"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, pipeline.Options{Kind: pipeline.KindYear, Year: y})
}

func (s *Server) handleGrid(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	now := s.now()
	opts := pipeline.Options{
		Kind:  pipeline.KindGrid,
		Year:  now.Year(),
		Month: int(now.Month()),
		Title: q.Get("title"),
	}
	if from := q.Get("from"); from != "" {
		y, m, err := pipeline.ParseYearMonth(from)
		if err != nil {
			s.writeError(w, r, err)
			return
		}
		opts.Year, opts.Month = y, int(m)
	}

	var err error
	if opts.Months, err = intParam(q.Get("months"), "months"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if q.Has("months") {
		if err := pipeline.ValidateMonths(opts.Months); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	if opts.Columns, err = intParam(q.Get("cols"), "cols"); err != nil {
		s.writeError(w, r, err)
		return
	}
	if q.Has("cols") {
		if err := errors.ValidateColumns(opts.Columns); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	s.render(w, r, opts)
}

// render applies the shared query parameters and writes the calendar.
func (s *Server) render(w http.ResponseWriter, r *http.Request, opts pipeline.Options) {
	if err := s.applyQuery(r, &opts); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Logger = s.logger.With("request_id", requestIDFrom(r.Context()))

	res, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	h := w.Header()
	h.Set("Content-Type", "text/plain; charset=utf-8")
	h.Set("X-Calendar-Rows", strconv.Itoa(res.Stats.Rows))
	h.Set("X-Calendar-Width", strconv.Itoa(res.Stats.Width))
	if res.Cached {
		h.Set("X-Cache", "hit")
	} else {
		h.Set("X-Cache", "miss")
	}
	_, _ = w.Write([]byte(res.Text + "\n"))
}

func (s *Server) applyQuery(r *http.Request, opts *pipeline.Options) error {
	q := r.URL.Query()
	opts.Start = q.Get("start")
	opts.Marker = q.Get("marker")
	opts.Locale = q.Get("locale")
	opts.Holidays = q.Get("holidays")

	var err error
	if opts.CellWidth, err = intParam(q.Get("width"), "width"); err != nil {
		return err
	}
	if q.Has("width") {
		if err := errors.ValidateCellWidth(opts.CellWidth); err != nil {
			return err
		}
	}
	if opts.YearInTitle, err = boolParam(q.Get("year_in_title"), "year_in_title"); err != nil {
		return err
	}

	for _, v := range q["mark"] {
		d, err := pipeline.ParseDate(v)
		if err != nil {
			return err
		}
		opts.Marks = append(opts.Marks, d)
	}
	today, err := boolParam(q.Get("today"), "today")
	if err != nil {
		return err
	}
	if today {
		opts.Marks = append(opts.Marks, s.now())
	}
	return nil
}

// intParam parses an optional integer query parameter; empty means zero.
func intParam(v, name string) (int, error) {
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
	}
	return n, nil
}

// boolParam parses an optional boolean query parameter; empty means false.
func boolParam(v, name string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, errors.New(errors.ErrCodeInvalidInput, "invalid %s %q", name, v)
	}
	return b, nil
}

// =============================================================================
// Errors
// =============================================================================

// statusCode maps an error code to an HTTP status.
func statusCode(err error) int {
	switch {
	case errors.IsInvalid(err):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrCodeNotFound), errors.Is(err, errors.ErrCodeFileNotFound):
		return http.StatusNotFound
	case errors.Is(err, errors.ErrCodeUnsupported):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusCode(err)
	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "path", r.URL.Path, "request_id", requestIDFrom(r.Context()), "error", err)
		msg = "internal error"
	}
	http.Error(w, msg, status)
}
