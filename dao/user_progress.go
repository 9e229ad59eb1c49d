package dao

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"polyglot-backend/models"
)

// UserProgressDAO handles the per-(user, language) session aggregates
type UserProgressDAO struct {
	db *gorm.DB
}

func NewUserProgressDAO(db *gorm.DB) *UserProgressDAO {
	return &UserProgressDAO{db: db}
}

// WithTx returns a UserProgressDAO bound to the given transaction
func (d *UserProgressDAO) WithTx(tx *gorm.DB) *UserProgressDAO {
	return &UserProgressDAO{db: tx}
}

// UpsertIncrement folds one completed session into the aggregate for
// (userID, languageID): insert the row if absent, otherwise additively
// merge the counters in a single statement so concurrent completions
// never lose an update. lastSessionAt is overwritten, not merged.
// Returns the row as stored after the merge.
func (d *UserProgressDAO) UpsertIncrement(userID, languageID uuid.UUID, sessions, minutes int, lastSessionAt time.Time) (*models.UserProgress, error) {
	row := models.UserProgress{
		UserID:               userID,
		LanguageID:           languageID,
		SessionsCount:        sessions,
		TotalDurationMinutes: minutes,
		LastSessionAt:        lastSessionAt,
	}
	err := d.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "language_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"sessions_count":         gorm.Expr("user_progresses.sessions_count + ?", sessions),
			"total_duration_minutes": gorm.Expr("user_progresses.total_duration_minutes + ?", minutes),
			"last_session_at":        lastSessionAt,
			"updated_at":             time.Now().UTC(),
		}),
	}).Create(&row).Error
	if err != nil {
		return nil, err
	}

	var stored models.UserProgress
	err = d.db.Where("user_id = ? AND language_id = ?", userID, languageID).First(&stored).Error
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// GetByUserAndLanguage retrieves one aggregate row
func (d *UserProgressDAO) GetByUserAndLanguage(userID, languageID uuid.UUID) (*models.UserProgress, error) {
	var progress models.UserProgress
	err := d.db.Where("user_id = ? AND language_id = ?", userID, languageID).First(&progress).Error
	if err != nil {
		return nil, err
	}
	return &progress, nil
}

// ListByUser retrieves all aggregate rows for a user with their languages
func (d *UserProgressDAO) ListByUser(userID uuid.UUID) ([]models.UserProgress, error) {
	var progress []models.UserProgress
	err := d.db.Preload("Language").Where("user_id = ?", userID).Find(&progress).Error
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// SumByUser returns the total practice minutes and the number of
// languages practiced across all of a user's aggregate rows
func (d *UserProgressDAO) SumByUser(userID uuid.UUID) (totalMinutes int, languages int, err error) {
	row := d.db.Model(&models.UserProgress{}).
		Select("COALESCE(SUM(total_duration_minutes), 0), COUNT(*)").
		Where("user_id = ?", userID).
		Row()
	if err = row.Scan(&totalMinutes, &languages); err != nil {
		return 0, 0, err
	}
	return totalMinutes, languages, nil
}
