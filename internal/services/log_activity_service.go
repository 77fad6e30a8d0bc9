package services

import (
	"encoding/json"
	"log"

	"haolaplus/internal/models"
	"haolaplus/internal/repositories"
)

// RequestMeta — le contexte de requête nécessaire à une ligne de journal,
// extrait par le handler.
type RequestMeta struct {
	URL    string
	Method string
	IP     string
	Agent  string
	User   *models.User // nil si non authentifié
}

type LogActivityService interface {
	// AddToLog journalise au mieux : toute erreur est avalée, la réponse
	// principale ne dépend jamais du journal.
	AddToLog(meta RequestMeta, subject string, payload any)
	ListAll() ([]*models.LogActivity, error)
	ListByUser(userID int64) ([]*models.LogActivity, error)
}

type logActivityService struct {
	repo repositories.LogActivityRepository
}

func NewLogActivityService(repo repositories.LogActivityRepository) LogActivityService {
	return &logActivityService{repo: repo}
}

func (s *logActivityService) AddToLog(meta RequestMeta, subject string, payload any) {
	entry := &models.LogActivity{
		Subject: subject,
		URL:     meta.URL,
		Method:  meta.Method,
		IP:      meta.IP,
	}
	if meta.Agent != "" {
		entry.Agent = &meta.Agent
	}
	if payload != nil {
		if raw, err := json.Marshal(payload); err == nil {
			body := string(raw)
			entry.Response = &body
		}
	}
	if meta.User != nil {
		entry.UserID = &meta.User.ID
		name := meta.User.DisplayName()
		entry.UserName = &name
	}
	if err := s.repo.Create(entry); err != nil {
		log.Printf("[log][add][err] %v", err)
	}
}

func (s *logActivityService) ListAll() ([]*models.LogActivity, error) {
	return s.repo.ListAll()
}

func (s *logActivityService) ListByUser(userID int64) ([]*models.LogActivity, error) {
	return s.repo.ListByUser(userID)
}
