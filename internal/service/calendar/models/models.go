package models

// Entry запись в сетке календаря
type Entry struct {
	ID               string  `json:"id"`
	StartTime        string  `json:"startTime"`      // "14:30"
	StartTimeLabel   string  `json:"startTimeLabel"` // "2:30 PM"
	EndTime          *string `json:"endTime,omitempty"`
	EndTimeLabel     *string `json:"endTimeLabel,omitempty"`
	EndsNextDay      bool    `json:"endsNextDay"`
	TopPercent       float64 `json:"topPercent"` // смещение внутри часа
	HeightMinutes    int     `json:"heightMinutes"`
	WidthPercent     float64 `json:"widthPercent"`
	LeftPercent      float64 `json:"leftPercent"`
	ClientName       string  `json:"clientName"`
	ProfessionalID   string  `json:"professionalId"`
	ProfessionalName string  `json:"professionalName,omitempty"`
	CalendarColor    string  `json:"calendarColor,omitempty"`
	Status           string  `json:"status"`
	Selected         bool    `json:"selected"`
}

// HourRow строка часа в дневной колонке
type HourRow struct {
	Hour         int      `json:"hour"`
	Label        string   `json:"label"` // "9:00 AM"
	Appointments []*Entry `json:"appointments"`
}

// DayView дневная колонка
type DayView struct {
	Date  string     `json:"date"` // "2025-10-15"
	Total int        `json:"total"`
	Hours []*HourRow `json:"hours"`
}

// WeekView неделя, начиная с воскресенья
type WeekView struct {
	Start string     `json:"start"`
	End   string     `json:"end"`
	Days  []*DayView `json:"days"`
}

// MonthDay клетка месячной сетки
type MonthDay struct {
	Date         string   `json:"date"`
	InMonth      bool     `json:"inMonth"`
	Count        int      `json:"count"`
	Appointments []*Entry `json:"appointments"`
}

// MonthView месячная сетка 6x7, начиная с воскресенья
type MonthView struct {
	Month string        `json:"month"` // "2025-10"
	Weeks [][]*MonthDay `json:"weeks"`
}
