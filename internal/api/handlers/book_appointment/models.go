package book_appointment

// BookAppointmentRequest тело запроса на запись в слот.
// Имя и телефон клиента берутся из заголовков идентификации, а не из тела.
type BookAppointmentRequest struct {
	ServiceName string `json:"serviceName"`
}
