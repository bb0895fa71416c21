package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/ibtiwahab/urbangen/pkg/geo"
	"github.com/ibtiwahab/urbangen/pkg/plan"
)

// Server exposes the generation kernel over HTTP.
type Server struct {
	port int
}

// New creates a server for the given port.
func New(port int) *Server {
	return &Server{port: port}
}

// Handler builds the route table. Separate from Start so tests can
// drive the routes without a listener.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/plan/generate", s.handleGenerate)
	mux.HandleFunc("POST /api/geometry/analyze", s.handleAnalyze)
	mux.HandleFunc("POST /api/geometry/validate", s.handleValidate)
	mux.HandleFunc("POST /api/geometry/offset", s.handleOffset)
	mux.HandleFunc("POST /api/geometry/intersect", s.handleIntersect)
	mux.HandleFunc("GET /api/geometry/info", s.handleInfo)
	mux.HandleFunc("GET /", s.handleIndex)

	return mux
}

// Start launches the HTTP server.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("urbangen server starting on http://localhost%s", addr)

	return http.ListenAndServe(addr, s.Handler())
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html")
	fmt.Fprint(w, `<!DOCTYPE html>
<html><head><title>urbangen</title></head>
<body style="margin:0;background:#111;color:#fff;font-family:system-ui;display:flex;align-items:center;justify-content:center;height:100vh">
<div style="text-align:center">
<h1>urbangen</h1>
<p>Parametric layout engine. POST a request to <code>/api/plan/generate</code>.</p>
</div>
</body></html>`)
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req plan.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, report, err := plan.Generate(&req)
	if err != nil {
		writeJSON(w, statusFor(err), map[string]any{
			"error":      err.Error(),
			"validation": report,
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"result":     result,
		"validation": report,
	})
}

type analyzeRequest struct {
	Vertices  []float64 `json:"vertices"`
	Tolerance float64   `json:"tolerance"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	analysis, err := plan.Analyze(req.Vertices, toleranceOr(req.Tolerance))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, analysis)
}

type validateRequest struct {
	Vertices []float64 `json:"vertices"`
	plan.CheckOptions
	Tolerance float64 `json:"tolerance"`
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var req validateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	check, report, err := plan.CheckGeometry(req.Vertices, req.CheckOptions, toleranceOr(req.Tolerance))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"check":      check,
		"validation": report,
	})
}

type offsetRequest struct {
	Vertices  []float64 `json:"vertices"`
	Distance  float64   `json:"distance"`
	Direction string    `json:"direction"`
	Tolerance float64   `json:"tolerance"`
}

func (s *Server) handleOffset(w http.ResponseWriter, r *http.Request) {
	var req offsetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outward := req.Direction == "outward"
	out, report, err := plan.OffsetBoundary(req.Vertices, req.Distance, outward, toleranceOr(req.Tolerance))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"offset":     out,
		"validation": report,
	})
}

type intersectRequest struct {
	AVertices []float64 `json:"a_vertices"`
	BVertices []float64 `json:"b_vertices"`
	Tolerance float64   `json:"tolerance"`
}

func (s *Server) handleIntersect(w http.ResponseWriter, r *http.Request) {
	var req intersectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rep, err := plan.ClassifyIntersection(req.AVertices, req.BVertices, toleranceOr(req.Tolerance))
	if err != nil {
		writeError(w, statusFor(err), err.Error())
		return
	}

	writeJSON(w, http.StatusOK, rep)
}

func (s *Server) handleInfo(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, plan.EngineInfo())
}

// statusFor maps pipeline errors to HTTP statuses: input-shape
// sentinels are client errors, everything else is a server fault.
func statusFor(err error) int {
	if errors.Is(err, plan.ErrVertexStride) || errors.Is(err, plan.ErrTooFewVertices) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func toleranceOr(tol float64) float64 {
	if tol <= 0 {
		return geo.DefaultTolerance
	}
	return tol
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
