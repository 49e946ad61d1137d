package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	invoicepdf "github.com/alnah/go-invoicepdf"
)

// documentGenerator abstracts the generation pipeline for handler tests.
type documentGenerator interface {
	Generate(ctx context.Context, input invoicepdf.Input) (*invoicepdf.Document, error)
}

// Compile-time interface implementation check.
var _ documentGenerator = (*invoicepdf.Generator)(nil)

// renderRequest is the POST /v1/invoices/render payload. Issuer and client
// are optional; a missing issuer falls back to the service's configured
// profile, then to the renderer's placeholder identity.
type renderRequest struct {
	Invoice  *invoicepdf.Invoice `json:"invoice"`
	Issuer   *invoicepdf.Issuer  `json:"issuer,omitempty"`
	Client   *invoicepdf.Client  `json:"client,omitempty"`
	Filename string              `json:"filename,omitempty"`
}

// maxRenderBody bounds the render payload (4MB).
const maxRenderBody = 4 << 20

type server struct {
	logger *zap.Logger
	gen    documentGenerator
	issuer *invoicepdf.Issuer
	router *mux.Router
}

func newServer(logger *zap.Logger, gen documentGenerator, issuer *invoicepdf.Issuer) *server {
	s := &server{
		logger: logger,
		gen:    gen,
		issuer: issuer,
		router: mux.NewRouter(),
	}

	s.router.Use(s.logging)
	s.router.HandleFunc("/healthz", s.handleHealth).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/statuses", s.handleStatuses).Methods(http.MethodGet)
	s.router.HandleFunc("/v1/invoices/render", s.handleRender).Methods(http.MethodPost)

	return s
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// logging records method, path, status and duration for every request.
func (s *server) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)
		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleStatuses dumps the shared status presentation registry, so UI
// clients render badges from the same table as the documents.
func (s *server) handleStatuses(w http.ResponseWriter, _ *http.Request) {
	out := make(map[string]invoicepdf.StatusInfo, len(invoicepdf.KnownStatuses()))
	for _, status := range invoicepdf.KnownStatuses() {
		out[status] = invoicepdf.StatusPresentation(status)
	}
	s.writeJSON(w, http.StatusOK, out)
}

// handleRender generates a PDF from the posted invoice record and returns it
// as an attachment named after the invoice number.
func (s *server) handleRender(w http.ResponseWriter, r *http.Request) {
	var req renderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRenderBody))
	if err := dec.Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, fmt.Errorf("decoding request: %w", err))
		return
	}
	if req.Invoice == nil {
		s.writeError(w, http.StatusBadRequest, invoicepdf.ErrNilInvoice)
		return
	}

	issuer := req.Issuer
	if issuer == nil {
		issuer = s.issuer
	}

	doc, err := s.gen.Generate(r.Context(), invoicepdf.Input{
		Invoice:  req.Invoice,
		Issuer:   issuer,
		Client:   req.Client,
		Filename: req.Filename,
	})
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return // client went away
		}
		s.logger.Error("render failed",
			zap.String("invoice", req.Invoice.Number),
			zap.Error(err),
		)
		s.writeError(w, http.StatusInternalServerError, errors.New("document generation failed"))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(doc.PDF)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.PDF)
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("encoding response", zap.Error(err))
	}
}

func (s *server) writeError(w http.ResponseWriter, status int, err error) {
	s.writeJSON(w, status, map[string]string{"error": err.Error()})
}
