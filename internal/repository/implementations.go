package repository

import (
	"time"

	"github.com/OsherKoren/trip-assistant/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageRepositoryImpl implements MessageRepository
type MessageRepositoryImpl struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) models.MessageRepository {
	return &MessageRepositoryImpl{db: db}
}

func (r *MessageRepositoryImpl) Create(message *models.Message) error {
	if message.ID == "" {
		message.ID = uuid.NewString()
	}
	return r.db.Create(message).Error
}

func (r *MessageRepositoryImpl) GetByID(id string) (*models.Message, error) {
	var message models.Message
	err := r.db.Preload("Feedback").First(&message, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &message, nil
}

func (r *MessageRepositoryImpl) GetBySession(session string) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Where("user_session = ?", session).
		Order("created_at DESC").
		Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) GetRecent(limit int) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.Order("created_at DESC").Limit(limit).Find(&messages).Error
	return messages, err
}

func (r *MessageRepositoryImpl) CountByCategory(category string) (int64, error) {
	var count int64
	err := r.db.Model(&models.Message{}).Where("category = ?", category).Count(&count).Error
	return count, err
}

// FeedbackRepositoryImpl implements FeedbackRepository
type FeedbackRepositoryImpl struct {
	db *gorm.DB
}

func NewFeedbackRepository(db *gorm.DB) models.FeedbackRepository {
	return &FeedbackRepositoryImpl{db: db}
}

func (r *FeedbackRepositoryImpl) Create(feedback *models.Feedback) error {
	if feedback.ID == "" {
		feedback.ID = uuid.NewString()
	}
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepositoryImpl) GetByMessageID(messageID string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("message_id = ?", messageID).Find(&feedback).Error
	return feedback, err
}

func (r *FeedbackRepositoryImpl) GetByRating(rating string) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Where("rating = ?", rating).Order("created_at DESC").Find(&feedback).Error
	return feedback, err
}

func (r *FeedbackRepositoryImpl) GetRecent(limit int) ([]models.Feedback, error) {
	var feedback []models.Feedback
	err := r.db.Order("created_at DESC").Limit(limit).Find(&feedback).Error
	return feedback, err
}

// SystemHealthRepositoryImpl implements SystemHealthRepository
type SystemHealthRepositoryImpl struct {
	db *gorm.DB
}

func NewSystemHealthRepository(db *gorm.DB) models.SystemHealthRepository {
	return &SystemHealthRepositoryImpl{db: db}
}

func (r *SystemHealthRepositoryImpl) UpdateServiceHealth(serviceName, status string, responseTime int, errorMsg string) error {
	health := models.SystemHealth{
		ServiceName:    serviceName,
		Status:         status,
		ResponseTimeMs: responseTime,
		ErrorMessage:   errorMsg,
		CheckedAt:      time.Now(),
	}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "service_name"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "response_time_ms", "error_message", "checked_at"}),
	}).Create(&health).Error
}

func (r *SystemHealthRepositoryImpl) GetServiceHealth(serviceName string) (*models.SystemHealth, error) {
	var health models.SystemHealth
	err := r.db.Where("service_name = ?", serviceName).
		Order("checked_at DESC").
		First(&health).Error
	if err != nil {
		return nil, err
	}
	return &health, nil
}

func (r *SystemHealthRepositoryImpl) GetAllServicesHealth() ([]models.SystemHealth, error) {
	var health []models.SystemHealth
	err := r.db.Order("service_name").Find(&health).Error
	return health, err
}

// RepositoryManager aggregates all repositories
type RepositoryManager struct {
	Message      models.MessageRepository
	Feedback     models.FeedbackRepository
	SystemHealth models.SystemHealthRepository
}

func NewRepositoryManager(db *gorm.DB) *RepositoryManager {
	return &RepositoryManager{
		Message:      NewMessageRepository(db),
		Feedback:     NewFeedbackRepository(db),
		SystemHealth: NewSystemHealthRepository(db),
	}
}
