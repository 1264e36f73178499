package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SalonCalendar/internal/domain"
	"github.com/m04kA/SMC-SalonCalendar/internal/service/calendar/models"
	"github.com/m04kA/SMC-SalonCalendar/pkg/ptr"
	"github.com/m04kA/SMC-SalonCalendar/pkg/types"
)

// View вид календаря
type View string

const (
	ViewDay   View = "day"
	ViewWeek  View = "week"
	ViewMonth View = "month"
)

// ParseView разбирает вид календаря из строки
func ParseView(value string) (View, error) {
	switch v := View(value); v {
	case ViewDay, ViewWeek, ViewMonth:
		return v, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownView, value)
	}
}

// Request параметры построения календаря
type Request struct {
	Date        time.Time              // любой день внутри периода
	SearchTerm  string                 // поиск текущей сессии
	SelectedIDs []domain.AppointmentID // выбранные записи текущей сессии
}

// Service строит сетки календаря поверх хранилища записей
type Service struct {
	appointments AppointmentSearcher
	directory    Directory
	logger       Logger
}

// NewService создает новый экземпляр сервиса календаря
func NewService(appointments AppointmentSearcher, directory Directory, logger Logger) *Service {
	return &Service{
		appointments: appointments,
		directory:    directory,
		logger:       logger,
	}
}

// Render строит календарь нужного вида
func (s *Service) Render(ctx context.Context, view View, req Request) (interface{}, error) {
	switch view {
	case ViewDay:
		return s.Day(ctx, req)
	case ViewWeek:
		return s.Week(ctx, req)
	case ViewMonth:
		return s.Month(ctx, req)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownView, view)
	}
}

// Day строит дневную колонку: 24 часовые строки, записи каждой строки разложены Layout
func (s *Service) Day(ctx context.Context, req Request) (*models.DayView, error) {
	appointments, err := s.search(ctx, req.SearchTerm)
	if err != nil {
		return nil, err
	}

	day := s.buildDay(domain.NormalizeDate(req.Date), appointments, selectedSet(req.SelectedIDs))
	s.logger.Info("Day: date=%s, appointments=%d", day.Date, day.Total)
	return day, nil
}

// Week строит семь дневных колонок, неделя начинается с воскресенья
func (s *Service) Week(ctx context.Context, req Request) (*models.WeekView, error) {
	appointments, err := s.search(ctx, req.SearchTerm)
	if err != nil {
		return nil, err
	}

	start := StartOfWeek(req.Date)
	selected := selectedSet(req.SelectedIDs)

	week := &models.WeekView{
		Start: start.Format(domain.DateFormat),
		End:   start.AddDate(0, 0, domain.DaysPerWeek-1).Format(domain.DateFormat),
		Days:  make([]*models.DayView, 0, domain.DaysPerWeek),
	}
	for i := 0; i < domain.DaysPerWeek; i++ {
		week.Days = append(week.Days, s.buildDay(start.AddDate(0, 0, i), appointments, selected))
	}

	s.logger.Info("Week: start=%s", week.Start)
	return week, nil
}

// Month строит сетку 6x7 от воскресенья перед первым числом месяца
func (s *Service) Month(ctx context.Context, req Request) (*models.MonthView, error) {
	appointments, err := s.search(ctx, req.SearchTerm)
	if err != nil {
		return nil, err
	}

	date := domain.NormalizeDate(req.Date)
	firstOfMonth := time.Date(date.Year(), date.Month(), 1, 0, 0, 0, 0, time.UTC)
	gridStart := StartOfWeek(firstOfMonth)
	selected := selectedSet(req.SelectedIDs)

	month := &models.MonthView{
		Month: firstOfMonth.Format("2006-01"),
		Weeks: make([][]*models.MonthDay, domain.MonthGridWeeks),
	}

	for w := 0; w < domain.MonthGridWeeks; w++ {
		month.Weeks[w] = make([]*models.MonthDay, domain.DaysPerWeek)
		for d := 0; d < domain.DaysPerWeek; d++ {
			day := gridStart.AddDate(0, 0, w*domain.DaysPerWeek+d)
			cell := &models.MonthDay{
				Date:         day.Format(domain.DateFormat),
				InMonth:      day.Month() == firstOfMonth.Month(),
				Appointments: make([]*models.Entry, 0),
			}
			for _, a := range appointments {
				if !a.OccursOn(day) {
					continue
				}
				cell.Appointments = append(cell.Appointments, s.entry(Positioned{Appointment: a, WidthPercent: 100}, selected))
			}
			cell.Count = len(cell.Appointments)
			month.Weeks[w][d] = cell
		}
	}

	s.logger.Info("Month: month=%s", month.Month)
	return month, nil
}

// StartOfWeek возвращает воскресенье недели, в которую попадает date
func StartOfWeek(date time.Time) time.Time {
	day := domain.NormalizeDate(date)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

func (s *Service) search(ctx context.Context, term string) ([]*domain.Appointment, error) {
	appointments, err := s.appointments.Search(ctx, term)
	if err != nil {
		s.logger.Error("search: failed to load appointments: %v", err)
		return nil, fmt.Errorf("%w: search - %v", ErrInternal, err)
	}
	return appointments, nil
}

func (s *Service) buildDay(date time.Time, appointments []*domain.Appointment, selected map[domain.AppointmentID]struct{}) *models.DayView {
	byHour := make([][]*domain.Appointment, domain.HoursPerDay)
	total := 0
	for _, a := range appointments {
		if !a.OccursOn(date) {
			continue
		}
		hour := a.StartTime.Hour()
		if hour < 0 || hour >= domain.HoursPerDay {
			s.logger.Warn("buildDay: appointment id=%s has invalid start time %q", a.ID, a.StartTime)
			continue
		}
		byHour[hour] = append(byHour[hour], a)
		total++
	}

	day := &models.DayView{
		Date:  date.Format(domain.DateFormat),
		Total: total,
		Hours: make([]*models.HourRow, domain.HoursPerDay),
	}
	for hour := 0; hour < domain.HoursPerDay; hour++ {
		row := &models.HourRow{
			Hour:         hour,
			Label:        types.TimeString(fmt.Sprintf("%02d:00", hour)).Format12h(),
			Appointments: make([]*models.Entry, 0, len(byHour[hour])),
		}
		for _, p := range Layout(byHour[hour]) {
			row.Appointments = append(row.Appointments, s.entry(p, selected))
		}
		day.Hours[hour] = row
	}
	return day
}

func (s *Service) entry(p Positioned, selected map[domain.AppointmentID]struct{}) *models.Entry {
	a := p.Appointment
	_, isSelected := selected[a.ID]

	e := &models.Entry{
		ID:             string(a.ID),
		StartTime:      a.StartTime.String(),
		StartTimeLabel: a.StartTime.Format12h(),
		HeightMinutes:  domain.DefaultAppointmentMinutes,
		WidthPercent:   p.WidthPercent,
		LeftPercent:    p.LeftPercent,
		ClientName:     domain.UnknownClientName,
		ProfessionalID: string(a.ProfessionalID),
		CalendarColor:  domain.DefaultCalendarColor,
		Status:         string(a.Status),
		Selected:       isSelected,
	}

	if minute := a.StartTime.Minute(); minute > 0 {
		e.TopPercent = float64(minute) / 60 * 100
	}

	if ref, ok := a.PrimaryClient(); ok {
		if client, found := s.directory.LookupClient(ref.ClientID); found {
			e.ClientName = client.DisplayName()
		}
	}

	if pro, found := s.directory.LookupProfessional(a.ProfessionalID); found {
		e.ProfessionalName = pro.Name
		e.CalendarColor = pro.CalendarColor
	}

	if line, ok := a.PrimaryService(); ok {
		if svc, found := s.directory.LookupService(line.ServiceID); found {
			minutes, err := types.ParseDuration(svc.Duration)
			if err != nil {
				s.logger.Warn("entry: service id=%s has malformed duration %q: %v", svc.ID, svc.Duration, err)
			}
			e.HeightMinutes = minutes

			end, days, err := a.StartTime.AddMinutesWithOverflow(minutes)
			if err == nil {
				e.EndTime = ptr.Ptr(end.String())
				e.EndTimeLabel = ptr.Ptr(end.Format12h())
				e.EndsNextDay = days > 0
			}
		}
	}

	return e
}

func selectedSet(ids []domain.AppointmentID) map[domain.AppointmentID]struct{} {
	set := make(map[domain.AppointmentID]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}
