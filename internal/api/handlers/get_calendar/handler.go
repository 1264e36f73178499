package get_calendar

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/api/middleware"
	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/appointments/models"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/calendar"
)

const (
	msgUnknownView = "vista desconocida, usa day, week o month"
	msgInvalidDate = "formato de fecha inválido, usa AAAA-MM-DD"
)

type Handler struct {
	service  CalendarService
	sessions SessionRegistry
	logger   Logger
	now      func() time.Time
}

func NewHandler(service CalendarService, sessions SessionRegistry, logger Logger) *Handler {
	return &Handler{
		service:  service,
		sessions: sessions,
		logger:   logger,
		now:      time.Now,
	}
}

// Handle GET /api/v1/calendar/{view}?date=YYYY-MM-DD
// Без date строится период, содержащий сегодняшний день.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	viewStr := mux.Vars(r)["view"]
	view, err := calendar.ParseView(viewStr)
	if err != nil {
		h.logger.Warn("GET /calendar/{view} - Unknown view: view=%s", viewStr)
		handlers.RespondBadRequest(w, msgUnknownView)
		return
	}

	date := domain.NormalizeDate(h.now())
	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err = models.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /calendar/{view} - Invalid date: date=%s, error=%v", dateStr, err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
	}

	sessionID, _ := middleware.GetSessionID(r.Context())
	state := h.sessions.Session(sessionID)

	resp, err := h.service.Render(r.Context(), view, calendar.Request{
		Date:        date,
		SearchTerm:  state.SearchTerm(),
		SelectedIDs: state.SelectedIDs(),
	})
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrUnknownView):
			handlers.RespondBadRequest(w, msgUnknownView)

		default:
			h.logger.Error("GET /calendar/{view} - Failed to render calendar: view=%s, error=%v", view, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/{view} - Calendar rendered: view=%s, date=%s", view, date.Format(domain.DateFormat))
	handlers.RespondJSON(w, http.StatusOK, resp)
}
