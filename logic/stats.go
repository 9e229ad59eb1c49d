package logic

import (
	"github.com/google/uuid"

	"polyglot-backend/dao"
	"polyglot-backend/models"
)

// UserStats summarizes a user's completed practice across all languages
type UserStats struct {
	TotalConversations int `json:"totalConversations"`
	TotalMinutes       int `json:"totalMinutes"`
	LanguagesPracticed int `json:"languagesPracticed"`
}

// StatsLogic is the read model over the aggregates SessionLogic maintains
type StatsLogic struct {
	convoDAO    *dao.ConversationDAO
	progressDAO *dao.UserProgressDAO
}

func NewStatsLogic(convoDAO *dao.ConversationDAO, progressDAO *dao.UserProgressDAO) *StatsLogic {
	return &StatsLogic{convoDAO: convoDAO, progressDAO: progressDAO}
}

// GetStats returns the user's completion counts and minutes. A user with
// no completed sessions gets zeroes, never nulls.
func (l *StatsLogic) GetStats(userID uuid.UUID) (*UserStats, error) {
	completed, err := l.convoDAO.CountCompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	totalMinutes, languages, err := l.progressDAO.SumByUser(userID)
	if err != nil {
		return nil, err
	}
	return &UserStats{
		TotalConversations: int(completed),
		TotalMinutes:       totalMinutes,
		LanguagesPracticed: languages,
	}, nil
}

// GetProgress returns the user's per-language aggregate rows
func (l *StatsLogic) GetProgress(userID uuid.UUID) ([]models.UserProgress, error) {
	progress, err := l.progressDAO.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = []models.UserProgress{}
	}
	return progress, nil
}
