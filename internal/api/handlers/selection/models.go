package selection

import selectionService "github.com/m04kA/SMC-SalonCalendar/internal/service/selection"

// SetSearchRequest тело PUT /selection/search
type SetSearchRequest struct {
	SearchTerm string `json:"searchTerm"`
}

// ToggleAppointmentResponse результат переключения выбора записи
type ToggleAppointmentResponse struct {
	AppointmentID string `json:"appointmentId"`
	Selected      bool   `json:"selected"`
	selectionService.Snapshot
}

// DeleteSelectedResponse результат пакетного удаления
type DeleteSelectedResponse struct {
	Requested int `json:"requested"`
	Deleted   int `json:"deleted"`
	selectionService.Snapshot
}
