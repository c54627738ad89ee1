package book_appointment

// Request модель запроса на запись в свободный слот
type Request struct {
	AppointmentID int64  // ID свободного слота
	ClientName    string // Имя клиента
	ClientPhone   string // Телефон клиента
	ServiceName   string // Выбранная услуга
}

// Response модель ответа с созданной записью
type Response struct {
	AppointmentID int64  `json:"appointmentId"`
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	ServiceName   string `json:"serviceName"`
}
