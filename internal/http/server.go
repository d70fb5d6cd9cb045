// Package httpapi exposes the recommendation core over HTTP. It is a thin
// presentation layer: all scoring semantics live in internal/scoring.
package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/scentlab/fragrance-match/internal/domain"
	"github.com/scentlab/fragrance-match/internal/scoring"
)

// defaultK is how many picks a quiz returns when the request leaves k unset.
const defaultK = 3

// LeadSaver persists quiz leads. May be nil when lead capture is disabled.
type LeadSaver interface {
	SaveLead(l domain.Lead) (domain.Lead, error)
}

type Server struct {
	engine   *scoring.Engine
	leads    LeadSaver
	logger   zerolog.Logger
	validate *validator.Validate
}

func NewServer(engine *scoring.Engine, leads LeadSaver, logger zerolog.Logger) *Server {
	return &Server{
		engine:   engine,
		leads:    leads,
		logger:   logger.With().Str("component", "httpapi").Logger(),
		validate: validator.New(),
	}
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.requestLogger)

	r.Get("/health", s.handleHealth)
	r.Post("/recommend", s.handleRecommend)
	r.Get("/fragrances", s.handleFragrancesList)
	r.Get("/fragrances/{id}", s.handleFragranceByID)
	r.Post("/leads", s.handleLeadCreate)
	r.Get("/demo", s.handleDemo)
	r.Handle("/metrics", promhttp.Handler())
	return r
}

func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		s.logger.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("request")
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ---- Recommend ----

type RecommendProfile struct {
	Climate        string   `json:"climate" validate:"required"`
	Occasion       string   `json:"occasion" validate:"required"`
	Intensity      string   `json:"intensity" validate:"required"`
	LongevityGoal  string   `json:"longevity_goal" validate:"required"`
	WeightPref     float64  `json:"weight_pref" validate:"gte=0,lte=1"`
	BrightnessPref float64  `json:"brightness_pref" validate:"gte=0,lte=1"`
	Aspiration     []string `json:"aspiration"`
}

type RecommendRequest struct {
	Profile RecommendProfile `json:"profile" validate:"required"`
	// K is how many picks to return; nil means the default of 3.
	K *int `json:"k"`
}

// RecommendationView pairs a result entry with its explanation so the
// presentation layer can consume either independently.
type RecommendationView struct {
	domain.Recommendation
	Explanation string `json:"explanation"`
}

type RecommendResponse struct {
	Results []RecommendationView `json:"results"`
}

func (s *Server) handleRecommend(w http.ResponseWriter, r *http.Request) {
	var req RecommendRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	k := defaultK
	if req.K != nil {
		k = *req.K
	}

	user := domain.UserProfile{
		Climate:        req.Profile.Climate,
		Occasion:       req.Profile.Occasion,
		Intensity:      req.Profile.Intensity,
		LongevityGoal:  req.Profile.LongevityGoal,
		WeightPref:     req.Profile.WeightPref,
		BrightnessPref: req.Profile.BrightnessPref,
		Aspiration:     req.Profile.Aspiration,
	}

	results, err := s.engine.Recommend(user, k)
	if err != nil {
		if errors.Is(err, scoring.ErrInvalidK) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		s.logger.Error().Err(err).Msg("recommend failed")
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	views := make([]RecommendationView, 0, len(results))
	for _, res := range results {
		views = append(views, RecommendationView{
			Recommendation: res,
			Explanation:    scoring.Explain(user, res),
		})
	}

	quizCompletedTotal.Inc()
	writeJSON(w, http.StatusOK, RecommendResponse{Results: views})
}

// ---- Fragrances (read-only) ----

type FragranceSummary struct {
	ID         string   `json:"id"`
	Brand      string   `json:"brand"`
	Name       string   `json:"name"`
	Price      float64  `json:"price"`
	Archetypes []string `json:"archetypes,omitempty"`
}

type FragrancesListResponse struct {
	Limit  int                `json:"limit"`
	Offset int                `json:"offset"`
	Total  int                `json:"total"`
	Items  []FragranceSummary `json:"items"`
}

func (s *Server) handleFragrancesList(w http.ResponseWriter, r *http.Request) {
	limit, offset := parseLimitOffset(r, 20, 0)
	all := s.engine.Catalog()

	total := len(all)
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	items := make([]FragranceSummary, 0, end-offset)
	for _, f := range all[offset:end] {
		items = append(items, FragranceSummary{
			ID:         f.ID,
			Brand:      f.Brand,
			Name:       f.Name,
			Price:      f.Price,
			Archetypes: f.Archetypes,
		})
	}

	writeJSON(w, http.StatusOK, FragrancesListResponse{
		Limit:  limit,
		Offset: offset,
		Total:  total,
		Items:  items,
	})
}

func (s *Server) handleFragranceByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	for _, f := range s.engine.Catalog() {
		if f.ID == id {
			writeJSON(w, http.StatusOK, f)
			return
		}
	}
	writeError(w, http.StatusNotFound, "not_found")
}

// ---- Leads ----

type LeadRequest struct {
	Email       string `json:"email" validate:"required,email"`
	UTMSource   string `json:"utm_source"`
	UTMCampaign string `json:"utm_campaign"`
}

func (s *Server) handleLeadCreate(w http.ResponseWriter, r *http.Request) {
	if s.leads == nil {
		writeError(w, http.StatusServiceUnavailable, "lead capture disabled")
		return
	}

	var req LeadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if err := s.validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	lead, err := s.leads.SaveLead(domain.Lead{
		Email:       req.Email,
		UTMSource:   req.UTMSource,
		UTMCampaign: req.UTMCampaign,
	})
	if err != nil {
		s.logger.Error().Err(err).Msg("save lead failed")
		writeError(w, http.StatusInternalServerError, "could not save lead")
		return
	}

	leadsCapturedTotal.Inc()
	writeJSON(w, http.StatusCreated, lead)
}

// ---- helpers ----

func parseLimitOffset(r *http.Request, defLimit, defOffset int) (int, int) {
	q := r.URL.Query()

	limit := defLimit
	if v := q.Get("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			limit = parsed
		}
	}
	if limit <= 0 {
		limit = defLimit
	}
	if limit > 200 {
		limit = 200
	}

	offset := defOffset
	if v := q.Get("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			offset = parsed
		}
	}
	if offset < 0 {
		offset = defOffset
	}

	return limit, offset
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
