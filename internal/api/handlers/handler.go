package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"ytworth/internal/models"
)

const maxBodyBytes = 8 << 10

type Service interface {
	Estimate(ctx context.Context, req models.EstimateRequest) (models.EstimateResponse, error)
	Tiers() models.TiersResponse
}
type Logger interface {
	Errorf(format string, args ...any)
	Warnf(format string, args ...any)
	Infof(format string, args ...any)
	Info(args ...any)
}
type Handler struct {
	service Service
	logger  Logger
}

func NewHandler(service Service, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// CreateEstimate handles POST
// @Summary      Estimate a YouTube video's worth
// @Description  Extracts the video id from the URL, looks up its view count and prices it at a fixed $60 CPM.
// @Tags         estimates
// @Accept       json
// @Produce      json
// @Param        request body     models.EstimateRequest true "YouTube URL or video id"
// @Success      200     {object} models.EstimateResponse
// @Failure      400     {object} ErrorResponse "Empty input or invalid body"
// @Failure      422     {object} ErrorResponse "No view count for the video"
// @Failure      429     {object} ErrorResponse "Rate limit exceeded"
// @Failure      502     {object} ErrorResponse "Statistics service failure"
// @Failure      500     {object} ErrorResponse "Internal server error"
// @Router       /api/v1/estimates [post]
func (h *Handler) CreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req models.EstimateRequest

	if err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(&req); err != nil {
		h.sendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	h.estimate(w, r, req)
}

// GetEstimate handles GET
// @Summary      Estimate a YouTube video's worth
// @Description  Query-string form of POST /api/v1/estimates.
// @Tags         estimates
// @Produce      json
// @Param        url query    string true "YouTube URL or video id"
// @Success      200 {object} models.EstimateResponse
// @Failure      400 {object} ErrorResponse "Empty input"
// @Failure      422 {object} ErrorResponse "No view count for the video"
// @Failure      429 {object} ErrorResponse "Rate limit exceeded"
// @Failure      502 {object} ErrorResponse "Statistics service failure"
// @Failure      500 {object} ErrorResponse "Internal server error"
// @Router       /api/v1/estimates [get]
func (h *Handler) GetEstimate(w http.ResponseWriter, r *http.Request) {
	h.estimate(w, r, models.EstimateRequest{URL: r.URL.Query().Get("url")})
}

// ListTiers handles GET
// @Summary      List payout tiers
// @Description  Ordered, non-overlapping payout bands used to pick the display asset.
// @Tags         estimates
// @Produce      json
// @Success      200 {object} models.TiersResponse
// @Router       /api/v1/tiers [get]
func (h *Handler) ListTiers(w http.ResponseWriter, _ *http.Request) {
	h.sendJSON(w, http.StatusOK, h.service.Tiers())
}

func (h *Handler) estimate(w http.ResponseWriter, r *http.Request, req models.EstimateRequest) {
	if err := req.Validate(); err != nil {
		h.sendError(w, http.StatusBadRequest, models.MessageInvalidURL, err)
		return
	}

	resp, err := h.service.Estimate(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err)
		return
	}

	h.sendJSON(w, http.StatusOK, resp)
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) sendJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Errorf("Failed to encode JSON response: %v", err)
	}
}

func (h *Handler) sendError(w http.ResponseWriter, status int, message string, err error) {
	resp := ErrorResponse{Error: message}
	if err != nil {
		h.logger.Warnf("%s: %v", message, err)
		resp.Message = err.Error()
	}
	if status >= http.StatusInternalServerError {
		// upstream details stay in the log
		resp.Message = ""
	}

	h.sendJSON(w, status, resp)
}

func (h *Handler) handleServiceError(w http.ResponseWriter, err error) {
	var status int

	switch {
	case errors.Is(err, models.ErrEmptyInput),
		errors.Is(err, models.ErrInvalidRequest):
		status = http.StatusBadRequest

	case errors.Is(err, models.ErrVideoNotFound):
		status = http.StatusUnprocessableEntity

	case errors.Is(err, models.ErrUpstream),
		errors.Is(err, models.ErrMalformedStatistics):
		status = http.StatusBadGateway

	default:
		status = http.StatusInternalServerError
		h.logger.Errorf("unexpected service error: %v", err)
	}

	h.sendError(w, status, models.UserMessage(err), err)
}
