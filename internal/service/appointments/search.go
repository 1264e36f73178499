package appointments

import (
	"strings"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Filter возвращает записи, у которых хотя бы одно поле поиска содержит term
// (без учета регистра). Пустой term возвращает вход без изменений.
func Filter(appointments []*domain.Appointment, term string, dir Directory) []*domain.Appointment {
	if term == "" {
		return appointments
	}

	needle := strings.ToLower(term)
	result := make([]*domain.Appointment, 0, len(appointments))
	for _, a := range appointments {
		for _, field := range SearchFields(a, dir) {
			if strings.Contains(strings.ToLower(field), needle) {
				result = append(result, a)
				break
			}
		}
	}
	return result
}

// SearchFields поля записи, по которым идет поиск: имя основного клиента,
// имя специалиста, названия услуг через пробел, заметки и время начала.
// Неразрешенные ссылки дают пустую строку.
func SearchFields(a *domain.Appointment, dir Directory) []string {
	var clientName string
	if ref, ok := a.PrimaryClient(); ok {
		if client, found := dir.LookupClient(ref.ClientID); found {
			clientName = client.DisplayName()
		}
	}

	var professionalName string
	if pro, found := dir.LookupProfessional(a.ProfessionalID); found {
		professionalName = pro.Name
	}

	serviceNames := make([]string, 0, len(a.Services))
	for _, line := range a.Services {
		name := ""
		if svc, found := dir.LookupService(line.ServiceID); found {
			name = svc.Name
		}
		serviceNames = append(serviceNames, name)
	}

	var notes string
	if a.Notes != nil {
		notes = *a.Notes
	}

	return []string{
		clientName,
		professionalName,
		strings.Join(serviceNames, " "),
		notes,
		a.StartTime.String(),
	}
}
