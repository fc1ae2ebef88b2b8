package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/daniacca/genchem/internal/genchem"
	"github.com/daniacca/genchem/internal/genchem/render"
)

// maxBodyBytes bounds request bodies.
const maxBodyBytes = 1 << 20

// chemistrySummary is the JSON view of a stored chemistry.
type chemistrySummary struct {
	ID          genchem.ChemistryID `json:"id"`
	Name        string              `json:"name"`
	Seed        *uint64             `json:"seed,omitempty"`
	Species     int                 `json:"species"`
	Reactions   int                 `json:"reactions"`
	MaxOrder    int                 `json:"max_order"`
	TrackCharge bool                `json:"track_charge"`
}

func summarize(id genchem.ChemistryID, chem *genchem.Chemistry) chemistrySummary {
	return chemistrySummary{
		ID:          id,
		Name:        chem.Name,
		Seed:        chem.Seed,
		Species:     chem.System.Len(),
		Reactions:   len(chem.Reactions),
		MaxOrder:    chem.MaxOrder,
		TrackCharge: chem.TrackCharge,
	}
}

// writeError maps engine errors onto HTTP status codes.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var verr *genchem.ValidationError
	switch {
	case errors.Is(err, genchem.ErrChemistryNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.As(err, &verr),
		errors.Is(err, genchem.ErrInvalidArgument),
		errors.Is(err, genchem.ErrDimensionMismatch):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		s.logger.Errorf("Request failed: error=%v", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// throttle rejects requests beyond the configured generation rate.
func (s *Server) throttle(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			s.metrics.throttled.Inc()
			w.Header().Set("Retry-After", "1")
			http.Error(w, "too many generation requests", http.StatusTooManyRequests)
			return
		}
		next(w, r)
	}
}

// checkLimits rejects systems too large to build on request.
func (s *Server) checkLimits(species, maxOrder int) error {
	if species > s.cfg.MaxSpecies {
		return fmt.Errorf("%w: %d species exceeds the server limit of %d", genchem.ErrInvalidArgument, species, s.cfg.MaxSpecies)
	}
	if maxOrder > s.cfg.MaxOrder {
		return fmt.Errorf("%w: max order %d exceeds the server limit of %d", genchem.ErrInvalidArgument, maxOrder, s.cfg.MaxOrder)
	}
	return nil
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// POST /chemistries/generate
// Body: { "name": "...", "seed": 42, "max_order": 2, "config": { GeneratorConfig } }
// Every field is optional; a missing seed is drawn from the clock.
type generateRequest struct {
	Name     string                   `json:"name"`
	Seed     *uint64                  `json:"seed,omitempty"`
	MaxOrder int                      `json:"max_order,omitempty"`
	Config   *genchem.GeneratorConfig `json:"config,omitempty"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var req generateRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "invalid json: "+err.Error(), http.StatusBadRequest)
		return
	}

	cfg := genchem.DefaultGeneratorConfig()
	if req.Config != nil {
		cfg = *req.Config
	}
	largest := cfg.Species
	if largest == 0 {
		largest = cfg.MaxSpecies
	}
	if cfg.Solvent {
		largest++
	}
	maxOrder := req.MaxOrder
	if maxOrder == 0 {
		maxOrder = genchem.DefaultMaxOrder
	}
	if err := s.checkLimits(largest, maxOrder); err != nil {
		s.writeError(w, err)
		return
	}

	seed := uint64(time.Now().UnixNano())
	if req.Seed != nil {
		seed = *req.Seed
	}
	name := req.Name
	if name == "" {
		name = "generated-" + strconv.FormatUint(seed, 10)
	}

	start := time.Now()
	chem, err := genchem.GenerateChemistry(name, seed, cfg, maxOrder, s.logger)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.metrics.buildTiming.Observe(time.Since(start).Seconds())

	id, err := s.store(chem)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Infof("Chemistry generated: id=%s seed=%d species=%d reactions=%d", id, seed, chem.System.Len(), len(chem.Reactions))
	writeJSON(w, http.StatusCreated, summarize(id, chem))
}

// POST /chemistries
// Body: SystemConfig JSON
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()

	var cfg genchem.SystemConfig
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&cfg); err != nil {
		http.Error(w, "invalid system json: "+err.Error(), http.StatusBadRequest)
		return
	}

	chem, err := s.buildFromConfig(cfg)
	if err != nil {
		s.writeError(w, err)
		return
	}
	id, err := s.store(chem)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.logger.Infof("Chemistry created: id=%s name=%s reactions=%d", id, chem.Name, len(chem.Reactions))
	writeJSON(w, http.StatusCreated, summarize(id, chem))
}

func (s *Server) buildFromConfig(cfg genchem.SystemConfig) (*genchem.Chemistry, error) {
	maxOrder := cfg.MaxOrder
	if maxOrder == 0 {
		maxOrder = genchem.DefaultMaxOrder
	}
	if err := s.checkLimits(len(cfg.Species), maxOrder); err != nil {
		return nil, err
	}
	start := time.Now()
	chem, err := genchem.BuildChemistryFromConfig(cfg, s.logger)
	if err != nil {
		return nil, err
	}
	s.metrics.buildTiming.Observe(time.Since(start).Seconds())
	return chem, nil
}

// GET /chemistries
func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	ids := s.manager.List()
	out := make([]chemistrySummary, 0, len(ids))
	for _, id := range ids {
		if chem, ok := s.manager.Get(id); ok {
			out = append(out, summarize(id, chem))
		}
	}
	writeJSON(w, http.StatusOK, map[string][]chemistrySummary{"chemistries": out})
}

// GET /chemistries/{id}?format=json|text|yaml|chemsim&temperature=298.15
func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	id := genchem.ChemistryID(r.PathValue("id"))
	chem, ok := s.manager.Get(id)
	if !ok {
		s.writeError(w, fmt.Errorf("%w: id %s", genchem.ErrChemistryNotFound, id))
		return
	}

	query := r.URL.Query()
	format := render.FormatJSON
	if f := query.Get("format"); f != "" {
		parsed, err := render.ParseFormat(f)
		if err != nil {
			s.writeError(w, err)
			return
		}
		format = parsed
	}

	est := genchem.DefaultEstimator()
	if t := query.Get("temperature"); t != "" {
		temp, err := strconv.ParseFloat(t, 64)
		if err != nil || temp <= 0 {
			http.Error(w, "invalid temperature: must be a positive number (kelvin)", http.StatusBadRequest)
			return
		}
		est.Temperature = temp
	}

	w.Header().Set("Content-Type", format.ContentType())
	opts := render.Options{Format: format, ShowSeed: true, Estimator: est}
	if err := render.Write(w, chem, opts); err != nil {
		s.logger.Errorf("Render failed: id=%s format=%s error=%v", id, format, err)
	}
}

// DELETE /chemistries/{id}
func (s *Server) handleDelete(w http.ResponseWriter, r *http.Request) {
	id := genchem.ChemistryID(r.PathValue("id"))
	chem, err := s.manager.Delete(id)
	if err != nil {
		s.logger.Warnf("Failed to delete chemistry: id=%s error=%v", id, err)
		s.writeError(w, err)
		return
	}
	s.metrics.stored.Set(float64(s.manager.Len()))
	s.notifierMgr.Enqueue(genchem.NewChemistryEvent(genchem.EventDeleted, id, chem))
	s.logger.Infof("Chemistry deleted: id=%s", id)

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("chemistry deleted"))
}
