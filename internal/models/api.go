package models

type MessageRequest struct {
	Question string `json:"question" binding:"required"`
}

type MessageResponse struct {
	Answer     string  `json:"answer"`
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
	Source     *string `json:"source"`
}

type FeedbackRequest struct {
	MessageID      string `json:"message_id"`
	MessageContent string `json:"message_content" binding:"required"`
	Category       string `json:"category"`
	Rating         string `json:"rating" binding:"required,oneof=up down"`
	Comment        string `json:"comment"`
}

type FeedbackResponse struct {
	Status string `json:"status"`
	ID     string `json:"id"`
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp string            `json:"timestamp"`
	Services  map[string]string `json:"services"`
}
