package services

import (
	"errors"
	"strings"

	"github.com/Muhammad-Khairul-Kholqi/Be-Quiz-Kwezia/internal/models"

	"gorm.io/gorm"
)

type FAQService struct {
	db *gorm.DB
}

func NewFAQService(db *gorm.DB) *FAQService {
	return &FAQService{db: db}
}

func (s *FAQService) GetAll() ([]models.FAQ, error) {
	var faqs []models.FAQ
	err := s.db.Order("id ASC").Find(&faqs).Error
	return faqs, err
}

func (s *FAQService) GetByID(id uint) (*models.FAQ, error) {
	var faq models.FAQ
	if err := s.db.First(&faq, id).Error; err != nil {
		return nil, ErrFAQNotFound
	}
	return &faq, nil
}

func (s *FAQService) Create(question, answer string) (*models.FAQ, error) {
	question = strings.TrimSpace(question)
	answer = strings.TrimSpace(answer)
	if question == "" {
		return nil, errors.New("question is required")
	}
	if answer == "" {
		return nil, errors.New("answer is required")
	}

	faq := models.FAQ{Question: question, Answer: answer}
	if err := s.db.Create(&faq).Error; err != nil {
		return nil, err
	}
	return &faq, nil
}

func (s *FAQService) Update(id uint, question, answer *string) (*models.FAQ, error) {
	faq, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if question != nil {
		faq.Question = strings.TrimSpace(*question)
	}
	if answer != nil {
		faq.Answer = strings.TrimSpace(*answer)
	}

	if err := s.db.Save(faq).Error; err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *FAQService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}
	return s.db.Delete(&models.FAQ{}, id).Error
}
