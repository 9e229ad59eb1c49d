package logic

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"polyglot-backend/dao"
	"polyglot-backend/models"
)

// SessionLogic owns the conversation lifecycle: creation, completion and
// the fold of each completed session into the user's progress aggregates.
type SessionLogic struct {
	db          *gorm.DB
	langDAO     *dao.LanguageDAO
	typeDAO     *dao.ConversationTypeDAO
	convoDAO    *dao.ConversationDAO
	progressDAO *dao.UserProgressDAO
}

func NewSessionLogic(
	db *gorm.DB,
	langDAO *dao.LanguageDAO,
	typeDAO *dao.ConversationTypeDAO,
	convoDAO *dao.ConversationDAO,
	progressDAO *dao.UserProgressDAO,
) *SessionLogic {
	return &SessionLogic{
		db:          db,
		langDAO:     langDAO,
		typeDAO:     typeDAO,
		convoDAO:    convoDAO,
		progressDAO: progressDAO,
	}
}

// CreateSession starts a new ACTIVE conversation for the user. The
// language and type must exist; every call creates a distinct session.
func (l *SessionLogic) CreateSession(userID, languageID, typeID uuid.UUID) (*models.Conversation, error) {
	if _, err := l.langDAO.GetLanguageByID(languageID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if _, err := l.typeDAO.GetTypeByID(typeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	convo, err := l.convoDAO.CreateConversation(userID, languageID, typeID)
	if err != nil {
		return nil, err
	}
	return l.convoDAO.GetUserConversation(userID, convo.ID)
}

// EndSession completes an ACTIVE conversation owned by the user and folds
// its duration into the (user, language) progress aggregate. The status
// transition and the fold commit together or not at all.
func (l *SessionLogic) EndSession(userID, conversationID uuid.UUID) (*models.Conversation, error) {
	err := l.db.Transaction(func(tx *gorm.DB) error {
		convo, err := l.convoDAO.WithTx(tx).GetActiveConversation(userID, conversationID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		endedAt := time.Now().UTC()
		durationSeconds := int(endedAt.Sub(convo.StartedAt) / time.Second)
		if durationSeconds < 0 {
			// clock skew; never persist a negative duration
			durationSeconds = 0
		}

		if err := l.convoDAO.WithTx(tx).CompleteConversation(userID, conversationID, endedAt, durationSeconds); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// a concurrent completion won the conditional update
				return ErrNotFound
			}
			return err
		}

		minutes := (durationSeconds + 59) / 60
		progress, err := l.progressDAO.WithTx(tx).UpsertIncrement(userID, convo.LanguageID, 1, minutes, endedAt)
		if err != nil {
			return err
		}
		if progress.SessionsCount < 1 || progress.TotalDurationMinutes < minutes {
			return fmt.Errorf("%w: got sessions=%d minutes=%d after folding %d minutes",
				ErrInvariant, progress.SessionsCount, progress.TotalDurationMinutes, minutes)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return l.convoDAO.GetUserConversation(userID, conversationID)
}

// GetSession retrieves one of the user's conversations
func (l *SessionLogic) GetSession(userID, conversationID uuid.UUID) (*models.Conversation, error) {
	convo, err := l.convoDAO.GetUserConversation(userID, conversationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return convo, nil
}

// ListSessions retrieves the user's conversations, most recent first
func (l *SessionLogic) ListSessions(userID uuid.UUID) ([]models.Conversation, error) {
	convos, err := l.convoDAO.GetConversationsByUser(userID)
	if err != nil {
		return nil, err
	}
	if convos == nil {
		convos = []models.Conversation{}
	}
	return convos, nil
}
