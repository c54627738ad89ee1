package pushservice

// PushRequest запрос на отправку push-уведомления группе клиентов
type PushRequest struct {
	Phones  []string `json:"phones"`
	Title   string   `json:"title"`
	Message string   `json:"message"`
}

// ErrorResponse модель ошибки от PushService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
