package calendar

import (
	"slices"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
)

// Positioned запись с горизонтальной позицией внутри своего кластера (в процентах)
type Positioned struct {
	Appointment  *domain.Appointment
	WidthPercent float64
	LeftPercent  float64
}

// Layout раскладывает записи по горизонтали: сортирует по времени начала,
// делит на кластеры HourBucketClusters и делит ширину кластера поровну.
// Вход не изменяется.
func Layout(appointments []*domain.Appointment) []Positioned {
	if len(appointments) == 0 {
		return []Positioned{}
	}

	sorted := slices.Clone(appointments)
	slices.SortStableFunc(sorted, func(a, b *domain.Appointment) int {
		switch {
		case a.StartTime.IsBefore(b.StartTime):
			return -1
		case a.StartTime.IsAfter(b.StartTime):
			return 1
		default:
			return 0
		}
	})

	result := make([]Positioned, 0, len(sorted))
	for _, cluster := range HourBucketClusters(sorted) {
		width := 100 / float64(len(cluster))
		for i, a := range cluster {
			result = append(result, Positioned{
				Appointment:  a,
				WidthPercent: width,
				LeftPercent:  width * float64(i),
			})
		}
	}
	return result
}

// HourBucketClusters группирует подряд идущие (уже отсортированные) записи
// с одинаковым часом начала.
//
// Это грубая эвристика, а не пересечение интервалов: 10:05 и 10:55 попадают
// в один кластер даже без пересечения, а 10:59 и 11:00 не попадают никогда.
// Календарь рисует именно так, замена на честное пересечение меняет картинку.
func HourBucketClusters(sorted []*domain.Appointment) [][]*domain.Appointment {
	if len(sorted) == 0 {
		return nil
	}

	clusters := make([][]*domain.Appointment, 0)
	current := []*domain.Appointment{sorted[0]}

	for i := 1; i < len(sorted); i++ {
		if sorted[i].StartTime.Hour() == sorted[i-1].StartTime.Hour() {
			current = append(current, sorted[i])
			continue
		}
		clusters = append(clusters, current)
		current = []*domain.Appointment{sorted[i]}
	}

	return append(clusters, current)
}
