package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/moviemood-backend/internal/domain"
	"github.com/heartmarshall/moviemood-backend/internal/service/movie"
)

// movieService defines the minimal interface needed by MovieHandler.
type movieService interface {
	ListMovies(ctx context.Context, input movie.ListInput) ([]domain.Movie, error)
	GetMovie(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	CreateMovie(ctx context.Context, input movie.CreateMovieInput) (*domain.Movie, error)
	UpdateMovie(ctx context.Context, id uuid.UUID, input movie.UpdateMovieInput) (*domain.Movie, error)
	DeleteMovie(ctx context.Context, id uuid.UUID) error
	ToggleFavorite(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	ToggleCompleted(ctx context.Context, id uuid.UUID) (*domain.Movie, error)
	UpdateProgress(ctx context.Context, id uuid.UUID, progress float64) (*domain.Movie, error)
	AvailableYears(ctx context.Context) ([]int, error)
	Stats(ctx context.Context) (*domain.MovieStats, error)
	RatingRanges() []domain.RatingRange
	History(ctx context.Context, id uuid.UUID) ([]domain.AuditRecord, error)
}

// MovieHandler serves watchlist endpoints.
type MovieHandler struct {
	svc movieService
	log *slog.Logger
}

// NewMovieHandler creates a MovieHandler.
func NewMovieHandler(svc movieService, logger *slog.Logger) *MovieHandler {
	return &MovieHandler{svc: svc, log: logger.With("handler", "movie")}
}

type movieResponse struct {
	ID            string    `json:"id"`
	OwnerID       string    `json:"ownerId"`
	Title         string    `json:"title"`
	Genre         string    `json:"genre"`
	Year          int       `json:"year"`
	Duration      *int      `json:"duration"`
	Rating        float64   `json:"rating"`
	Comment       *string   `json:"comment"`
	Poster        *string   `json:"poster"`
	IsFavorite    bool      `json:"isFavorite"`
	IsCompleted   bool      `json:"isCompleted"`
	WatchProgress float64   `json:"watchProgress"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type createMovieRequest struct {
	Title         string   `json:"title"`
	Genre         string   `json:"genre"`
	Year          int      `json:"year"`
	Duration      *int     `json:"duration"`
	Rating        *float64 `json:"rating"`
	Comment       *string  `json:"comment"`
	Poster        *string  `json:"poster"`
	IsFavorite    bool     `json:"isFavorite"`
	IsCompleted   bool     `json:"isCompleted"`
	WatchProgress *float64 `json:"watchProgress"`
}

type updateMovieRequest struct {
	Title         *string  `json:"title"`
	Genre         *string  `json:"genre"`
	Year          *int     `json:"year"`
	Duration      *int     `json:"duration"`
	Rating        *float64 `json:"rating"`
	Comment       *string  `json:"comment"`
	Poster        *string  `json:"poster"`
	IsFavorite    *bool    `json:"isFavorite"`
	IsCompleted   *bool    `json:"isCompleted"`
	WatchProgress *float64 `json:"watchProgress"`
}

type progressRequest struct {
	WatchProgress *float64 `json:"watchProgress"`
}

type ratingRangeResponse struct {
	Label string  `json:"label"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

type statsResponse struct {
	TotalMovies        int            `json:"totalMovies"`
	CompletedMovies    int            `json:"completedMovies"`
	FavoriteMovies     int            `json:"favoriteMovies"`
	AverageRating      float64        `json:"averageRating"`
	GenreDistribution  []genreCount   `json:"genreDistribution"`
	YearDistribution   []yearCount    `json:"yearDistribution"`
	RatingDistribution map[string]int `json:"ratingDistribution"`
	RatingBuckets      []bucketCount  `json:"ratingBuckets"`
}

type genreCount struct {
	Genre string `json:"genre"`
	Count int    `json:"count"`
}

type yearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

type bucketCount struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

type historyEntryResponse struct {
	ID        string         `json:"id"`
	Action    string         `json:"action"`
	Changes   map[string]any `json:"changes,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
}

// List handles GET /api/movies.
//
// Query: search, genre (repeatable), year (repeatable), rating (repeatable
// bucket label), sort, isFavorite, isCompleted.
func (h *MovieHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	isFavorite, ok := queryBool(w, q.Get("isFavorite"), "isFavorite")
	if !ok {
		return
	}
	isCompleted, ok := queryBool(w, q.Get("isCompleted"), "isCompleted")
	if !ok {
		return
	}

	movies, err := h.svc.ListMovies(r.Context(), movie.ListInput{
		Search:       q.Get("search"),
		Genres:       q["genre"],
		Years:        q["year"],
		RatingLabels: q["rating"],
		Sort:         q.Get("sort"),
		IsFavorite:   isFavorite,
		IsCompleted:  isCompleted,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeData(w, http.StatusOK, toMovieResponses(movies))
}

// Get handles GET /api/movies/{id}.
func (h *MovieHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := h.svc.GetMovie(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toMovieResponse(m))
}

// Create handles POST /api/movies.
func (h *MovieHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createMovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	in := movie.CreateMovieInput{
		Title:       req.Title,
		Genre:       req.Genre,
		Year:        req.Year,
		Duration:    req.Duration,
		Comment:     req.Comment,
		Poster:      req.Poster,
		IsFavorite:  req.IsFavorite,
		IsCompleted: req.IsCompleted,
	}
	if req.Rating != nil {
		in.Rating = *req.Rating
	}
	if req.WatchProgress != nil {
		in.WatchProgress = *req.WatchProgress
	}

	m, err := h.svc.CreateMovie(r.Context(), in)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeDataMessage(w, http.StatusCreated, "Movie created successfully", toMovieResponse(m))
}

// Update handles PUT /api/movies/{id}.
func (h *MovieHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateMovieRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	m, err := h.svc.UpdateMovie(r.Context(), id, movie.UpdateMovieInput{
		Title:         req.Title,
		Genre:         req.Genre,
		Year:          req.Year,
		Duration:      req.Duration,
		Rating:        req.Rating,
		Comment:       req.Comment,
		Poster:        req.Poster,
		IsFavorite:    req.IsFavorite,
		IsCompleted:   req.IsCompleted,
		WatchProgress: req.WatchProgress,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeDataMessage(w, http.StatusOK, "Movie updated successfully", toMovieResponse(m))
}

// Delete handles DELETE /api/movies/{id}.
func (h *MovieHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteMovie(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}
	writeDataMessage(w, http.StatusOK, "Movie deleted successfully", nil)
}

// ToggleFavorite handles POST /api/movies/{id}/favorite.
func (h *MovieHandler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.ToggleFavorite)
}

// ToggleCompleted handles POST /api/movies/{id}/completed.
func (h *MovieHandler) ToggleCompleted(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.ToggleCompleted)
}

// UpdateProgress handles PUT /api/movies/{id}/progress.
func (h *MovieHandler) UpdateProgress(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req progressRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if req.WatchProgress == nil {
		writeValidationError(w, domain.NewValidationError("watchProgress", "required"))
		return
	}

	m, err := h.svc.UpdateProgress(r.Context(), id, *req.WatchProgress)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toMovieResponse(m))
}

// Years handles GET /api/movies/years.
func (h *MovieHandler) Years(w http.ResponseWriter, r *http.Request) {
	years, err := h.svc.AvailableYears(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, years)
}

// RatingRanges handles GET /api/movies/rating-ranges.
func (h *MovieHandler) RatingRanges(w http.ResponseWriter, r *http.Request) {
	ranges := h.svc.RatingRanges()
	out := make([]ratingRangeResponse, 0, len(ranges))
	for _, rr := range ranges {
		out = append(out, ratingRangeResponse{Label: rr.Label, Min: rr.Min, Max: rr.Max})
	}
	writeData(w, http.StatusOK, out)
}

// Stats handles GET /api/movies/stats.
func (h *MovieHandler) Stats(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.Stats(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := statsResponse{
		TotalMovies:        st.TotalMovies,
		CompletedMovies:    st.CompletedMovies,
		FavoriteMovies:     st.FavoriteMovies,
		AverageRating:      st.AverageRating,
		GenreDistribution:  make([]genreCount, 0, len(st.GenreDistribution)),
		YearDistribution:   make([]yearCount, 0, len(st.YearDistribution)),
		RatingDistribution: make(map[string]int, len(st.RatingDistribution)),
		RatingBuckets:      make([]bucketCount, 0, len(st.RatingDistribution)),
	}
	for _, g := range st.GenreDistribution {
		resp.GenreDistribution = append(resp.GenreDistribution, genreCount{Genre: g.Genre, Count: g.Count})
	}
	for _, y := range st.YearDistribution {
		resp.YearDistribution = append(resp.YearDistribution, yearCount{Year: y.Year, Count: y.Count})
	}
	for _, b := range st.RatingDistribution {
		resp.RatingDistribution[b.Label] = b.Count
		resp.RatingBuckets = append(resp.RatingBuckets, bucketCount{Label: b.Label, Count: b.Count})
	}

	writeData(w, http.StatusOK, resp)
}

// History handles GET /api/movies/{id}/history.
func (h *MovieHandler) History(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	records, err := h.svc.History(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	out := make([]historyEntryResponse, 0, len(records))
	for _, rec := range records {
		out = append(out, toHistoryEntry(rec))
	}
	writeData(w, http.StatusOK, out)
}

func toHistoryEntry(rec domain.AuditRecord) historyEntryResponse {
	return historyEntryResponse{
		ID:        rec.ID.String(),
		Action:    rec.Action.String(),
		Changes:   rec.Changes,
		CreatedAt: rec.CreatedAt,
	}
}

func (h *MovieHandler) mutate(w http.ResponseWriter, r *http.Request, op func(context.Context, uuid.UUID) (*domain.Movie, error)) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	m, err := op(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}
	writeData(w, http.StatusOK, toMovieResponse(m))
}

func (h *MovieHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Movie not found")
	default:
		handleError(h.log, w, r, err)
	}
}

// queryBool parses an optional boolean query parameter; missing means nil.
func queryBool(w http.ResponseWriter, v, name string) (*bool, bool) {
	if v == "" {
		return nil, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		writeValidationError(w, domain.NewValidationError(name, "must be true or false"))
		return nil, false
	}
	return &b, true
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:            m.ID.String(),
		OwnerID:       m.OwnerID.String(),
		Title:         m.Title,
		Genre:         m.Genre,
		Year:          m.Year,
		Duration:      m.Duration,
		Rating:        m.Rating,
		Comment:       m.Comment,
		Poster:        m.Poster,
		IsFavorite:    m.IsFavorite,
		IsCompleted:   m.IsCompleted,
		WatchProgress: m.WatchProgress,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func toMovieResponses(movies []domain.Movie) []movieResponse {
	out := make([]movieResponse, 0, len(movies))
	for i := range movies {
		out = append(out, toMovieResponse(&movies[i]))
	}
	return out
}
