package contact_manager

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модель запроса на связь с менеджером
type Request struct {
	AppointmentID int64           // ID записи, по которой клиент хочет связаться
	Identity      domain.Identity // Идентификация клиента
}

// Response модель ответа с каналом связи
type Response struct {
	ManagerName string `json:"managerName"`
	Message     string `json:"message"`  // Предзаполненный текст сообщения
	ChatLink    string `json:"chatLink"` // Универсальная wa.me ссылка
	Delivered   bool   `json:"delivered"` // true, если текст также отправлен через Cloud API
}
