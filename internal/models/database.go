package models

// GORM models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        string    `json:"id" gorm:"primaryKey;type:uuid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message represents one answered question, persisted for history
type Message struct {
	BaseModel
	Question       string  `json:"question" gorm:"not null"`
	Answer         string  `json:"answer" gorm:"not null"`
	Category       string  `json:"category" gorm:"not null"`
	Confidence     float64 `json:"confidence" gorm:"type:decimal(4,3)"`
	Source         *string `json:"source"`
	UserSession    string  `json:"user_session"`
	ResponseTimeMs int     `json:"response_time_ms"`

	// Associations
	Feedback []Feedback `json:"feedback" gorm:"foreignKey:MessageID"`
}

// Feedback represents a user's rating of an assistant answer
type Feedback struct {
	BaseModel
	MessageID      *string `json:"message_id" gorm:"type:uuid"`
	MessageContent string  `json:"message_content" gorm:"not null"`
	Category       string  `json:"category"`
	Rating         string  `json:"rating" gorm:"not null;check:rating IN ('up','down')"`
	Comment        string  `json:"comment"`
	UserSession    string  `json:"user_session"`
}

// SystemHealth represents service health monitoring
type SystemHealth struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	ServiceName    string    `json:"service_name" gorm:"not null;uniqueIndex"`
	Status         string    `json:"status" gorm:"not null;check:status IN ('healthy','degraded','unhealthy')"`
	ResponseTimeMs int       `json:"response_time_ms"`
	ErrorMessage   string    `json:"error_message"`
	CheckedAt      time.Time `json:"checked_at" gorm:"default:NOW()"`
}

// Database interfaces for repository pattern
type MessageRepository interface {
	Create(message *Message) error
	GetByID(id string) (*Message, error)
	GetBySession(session string) ([]Message, error)
	GetRecent(limit int) ([]Message, error)
	CountByCategory(category string) (int64, error)
}

type FeedbackRepository interface {
	Create(feedback *Feedback) error
	GetByMessageID(messageID string) ([]Feedback, error)
	GetByRating(rating string) ([]Feedback, error)
	GetRecent(limit int) ([]Feedback, error)
}

type SystemHealthRepository interface {
	UpdateServiceHealth(serviceName, status string, responseTime int, errorMsg string) error
	GetServiceHealth(serviceName string) (*SystemHealth, error)
	GetAllServicesHealth() ([]SystemHealth, error)
}

// TableName methods for custom table names
func (Message) TableName() string      { return "messages" }
func (Feedback) TableName() string     { return "feedback" }
func (SystemHealth) TableName() string { return "system_health" }

// Model validation methods
func (m *Message) Validate() error {
	if m.Question == "" {
		return fmt.Errorf("question is required")
	}
	if m.Answer == "" {
		return fmt.Errorf("answer is required")
	}
	if m.Confidence < 0.0 || m.Confidence > 1.0 {
		return fmt.Errorf("confidence must be between 0.0 and 1.0")
	}
	return nil
}

func (f *Feedback) Validate() error {
	if f.MessageContent == "" {
		return fmt.Errorf("message content is required")
	}
	if f.Rating != "up" && f.Rating != "down" {
		return fmt.Errorf("invalid rating: %s", f.Rating)
	}
	return nil
}

// GORM hooks
func (m *Message) BeforeCreate(tx *gorm.DB) error {
	return m.Validate()
}

func (f *Feedback) BeforeCreate(tx *gorm.DB) error {
	return f.Validate()
}
