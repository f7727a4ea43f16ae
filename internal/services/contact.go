package services

import (
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ContactService struct {
	db         *gorm.DB
	mailer     Mailer
	adminEmail string
}

func NewContactService(db *gorm.DB, mailer Mailer, adminEmail string) *ContactService {
	return &ContactService{db: db, mailer: mailer, adminEmail: adminEmail}
}

// Submit stores the message, then notifies the admin and sends the sender a
// confirmation. Mail failures are logged, never surfaced: the message is
// already persisted.
func (s *ContactService) Submit(name, email, message string) (*models.ContactMessage, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	message = strings.TrimSpace(message)

	if name == "" {
		return nil, errors.New("name is required")
	}
	if email == "" {
		return nil, errors.New("email is required")
	}
	if !emailPattern.MatchString(email) {
		return nil, errors.New("invalid email format")
	}
	if message == "" {
		return nil, errors.New("message is required")
	}

	contact := models.ContactMessage{Name: name, Email: email, Message: message}
	if err := s.db.Create(&contact).Error; err != nil {
		return nil, err
	}

	if s.mailer != nil && s.adminEmail != "" {
		notify := fmt.Sprintf(
			"<h2>New Contact Message</h2><p><strong>From:</strong> %s (%s)</p><p>%s</p>",
			name, email, message,
		)
		if err := s.mailer.Send(s.adminEmail, "New contact message from "+name, notify); err != nil {
			log.Printf("contact: admin notification failed: %v", err)
		}

		confirm := fmt.Sprintf(
			"<h2>Thank you for contacting us!</h2><p>Hi %s,</p><p>We have received your message and will get back to you as soon as possible.</p><p>Best regards,<br>Kwezia App Team</p>",
			name,
		)
		if err := s.mailer.Send(email, "Thank you for contacting us!", confirm); err != nil {
			log.Printf("contact: confirmation mail failed: %v", err)
		}
	}

	return &contact, nil
}

func (s *ContactService) GetAll() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (s *ContactService) GetUnread() ([]models.ContactMessage, error) {
	var messages []models.ContactMessage
	err := s.db.Where("is_read = ?", false).Order("created_at DESC").Find(&messages).Error
	return messages, err
}

func (s *ContactService) UnreadCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.ContactMessage{}).Where("is_read = ?", false).Count(&count).Error
	return count, err
}

func (s *ContactService) GetByID(id uint) (*models.ContactMessage, error) {
	var message models.ContactMessage
	if err := s.db.First(&message, id).Error; err != nil {
		return nil, ErrContactNotFound
	}
	return &message, nil
}

func (s *ContactService) SetRead(id uint, read bool) (*models.ContactMessage, error) {
	message, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	message.IsRead = read
	if err := s.db.Save(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}

func (s *ContactService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.ContactMessage{}, id).Error
}
