package whatsapp

// TextMessage текстовое сообщение WhatsApp Cloud API
type TextMessage struct {
	MessagingProduct string `json:"messaging_product"`
	RecipientType    string `json:"recipient_type"`
	To               string `json:"to"`
	Type             string `json:"type"`
	Text             struct {
		PreviewURL bool   `json:"preview_url"`
		Body       string `json:"body"`
	} `json:"text"`
}

// SendResponse ответ Cloud API на отправку сообщения
type SendResponse struct {
	Messages []struct {
		ID string `json:"id"`
	} `json:"messages"`
}
