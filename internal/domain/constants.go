package domain

// Cancellation policy
const (
	// CancellationNoticeHours минимальный срок до визита, при котором клиент
	// может отменить запись самостоятельно. Строгое "меньше": ровно 48 часов
	// до визита отмена ещё разрешена.
	CancellationNoticeHours = 48
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MaxClientNameLength  = 120
	MaxClientPhoneLength = 32
	MaxServiceNameLength = 200
)

// Admin notification categories
const (
	NotificationCategoryCancellation = "cancellation"
	NotificationCategoryBooking      = "booking"
)
