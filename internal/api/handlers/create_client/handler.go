package create_client

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonCalendar/internal/api/handlers"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/clients/models"
)

const (
	msgInvalidRequestBody = "cuerpo de la solicitud inválido"
	msgInvalidData        = "datos del cliente inválidos"
	msgEmailTaken         = "ya existe un cliente con este correo electrónico"
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/clients
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.CreateClientRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /clients - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	client, err := h.service.Create(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidInput):
			h.logger.Warn("POST /clients - Invalid data: error=%v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, clients.ErrEmailTaken):
			h.logger.Warn("POST /clients - Email already taken")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /clients - Failed to create client: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /clients - Client created successfully: client_id=%s", client.ID)
	handlers.RespondJSON(w, http.StatusCreated, client)
}
