package get_payment_summary

import "github.com/m04kA/SMC-SalonCalendar/internal/domain"

// Request запрос итога к оплате
type Request struct {
	AppointmentID domain.AppointmentID
	Tip           float64
}

// Line строка счета по одной услуге
type Line struct {
	ServiceID string  `json:"serviceId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Deposit   float64 `json:"deposit"`
}

// Response итог к оплате
type Response struct {
	AppointmentID string  `json:"appointmentId"`
	Lines         []Line  `json:"lines"`
	Subtotal      float64 `json:"subtotal"`
	ExtraCharge   float64 `json:"extraCharge"`
	Deposit       float64 `json:"deposit"`
	Discount      float64 `json:"discount"`
	TaxRate       float64 `json:"taxRate"`
	Tax           float64 `json:"tax"`
	Tip           float64 `json:"tip"`
	Total         float64 `json:"total"`
}
