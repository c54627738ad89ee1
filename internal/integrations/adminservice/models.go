package adminservice

// NotificationRequest запрос на создание административного уведомления
type NotificationRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	Category string `json:"category"`
}

// ErrorResponse модель ошибки от AdminService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
