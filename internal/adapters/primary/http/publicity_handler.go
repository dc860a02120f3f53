package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/ticketera/queue-admin-backend/internal/core/domain"
	"github.com/ticketera/queue-admin-backend/internal/core/ports"
)

type PublicityHandler struct {
	publicityService ports.PublicityService
	errorHandler     *ErrorHandler
	logger           *slog.Logger
}

func NewPublicityHandler(publicityService ports.PublicityService, errorHandler *ErrorHandler, logger *slog.Logger) *PublicityHandler {
	return &PublicityHandler{
		publicityService: publicityService,
		errorHandler:     errorHandler,
		logger:           logger.With("handler", "publicity"),
	}
}

func (h *PublicityHandler) RegisterRoutes(r chi.Router) {
	r.Get("/active", h.HandleListActive)
}

type publicityDTO struct {
	IDPublicity int64  `json:"id_publicity"`
	Title       string `json:"title"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
	IsActive    bool   `json:"is_active"`
}

// HandleListActive handles GET /publicity/active
func (h *PublicityHandler) HandleListActive(w http.ResponseWriter, r *http.Request) {
	banners, err := h.publicityService.ListActive(r.Context(), time.Now().UTC())
	if err != nil {
		h.errorHandler.Handle(w, r, err)
		return
	}

	response := make([]publicityDTO, 0, len(banners))
	for _, b := range banners {
		response = append(response, toPublicityDTO(b))
	}

	WriteList(w, response)
}

func toPublicityDTO(p *domain.Publicity) publicityDTO {
	return publicityDTO{
		IDPublicity: p.IDPublicity,
		Title:       p.Title,
		Content:     p.Content,
		ImageURL:    p.ImageURL,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
		IsActive:    p.IsActive,
	}
}
