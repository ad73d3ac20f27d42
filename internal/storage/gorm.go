package storage

import (
	"context"
	"errors"

	"art-portfolio/internal/domain/prefs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormProvider persists values in the preference_entries table.
//
// IMPORTANT: pass db in, do NOT import art-portfolio/database here (avoids import cycle).
type GormProvider struct {
	db *gorm.DB
}

func NewGormProvider(db *gorm.DB) *GormProvider {
	return &GormProvider{db: db}
}

func (g *GormProvider) Get(ctx context.Context, key string) (string, bool, error) {
	if g == nil || g.db == nil {
		return "", false, ErrUnavailable
	}

	var entry prefs.Entry
	err := g.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return entry.Value, true, nil
}

func (g *GormProvider) Set(ctx context.Context, key, value string) error {
	if g == nil || g.db == nil {
		return ErrUnavailable
	}

	entry := prefs.Entry{Key: key, Value: value}
	return g.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}
