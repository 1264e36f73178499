package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxNotesLength            = 500
	MaxExtraChargeDescription = 200
	MaxSearchTermLength       = 100
	MaxPercentageDeposit      = 100
)

// Calendar constants
const (
	HoursPerDay          = 24
	DaysPerWeek          = 7
	DefaultTaxRate       = 0.16
	UnknownClientName    = "Cliente no encontrado"
	DefaultCalendarColor = ""

	// высота записи, если основная услуга не найдена в каталоге
	DefaultAppointmentMinutes = 60

	// сетка месяца: 6 недель по 7 дней
	MonthGridWeeks = 6
)

// Client directory defaults
const (
	ClientStatusActive       = "active"
	DefaultMembershipType    = "regular"
	ProfessionalStatusActive = "active"
)
