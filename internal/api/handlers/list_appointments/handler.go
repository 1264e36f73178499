package list_appointments

import (
	"net/http"
	"unicode/utf8"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
)

const (
	msgInvalidDate   = "formato de fecha inválido, usa AAAA-MM-DD"
	msgSearchTooLong = "el término de búsqueda es demasiado largo"
	searchQueryParam = "search"
	dateQueryParam   = "date"
)

type Handler struct {
	service  AppointmentService
	sessions SessionRegistry
	logger   Logger
}

func NewHandler(service AppointmentService, sessions SessionRegistry, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
	}
}

// Handle GET /api/v1/appointments?search=...&date=YYYY-MM-DD
// Без параметра search используется поиск текущей сессии.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter appointments.ListFilter
	if query.Has(searchQueryParam) {
		filter.Search = query.Get(searchQueryParam)
	} else {
		sessionID, _ := middleware.GetSessionID(r.Context())
		filter.Search = h.sessions.Session(sessionID).SearchTerm()
	}

	if utf8.RuneCountInString(filter.Search) > domain.MaxSearchTermLength {
		h.logger.Warn("GET /appointments - Search term too long: length=%d", utf8.RuneCountInString(filter.Search))
		handlers.RespondBadRequest(w, msgSearchTooLong)
		return
	}

	if dateStr := query.Get(dateQueryParam); dateStr != "" {
		date, err := models.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /appointments - Invalid date: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		filter.Date = &date
	}

	resp, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error("GET /appointments - Failed to list appointments: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /appointments - Appointments retrieved successfully: total=%d", resp.Total)
	handlers.RespondJSON(w, http.StatusOK, resp)
}
