package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// GormStore persists sessions in the local sqlite file so an operator stays
// logged in across panel restarts when no redis is available.
type GormStore struct {
	db *gorm.DB
}

type sessionRow struct {
	ID        string `gorm:"primaryKey"`
	Token     string
	User      datatypes.JSON
	CreatedAt time.Time
	ExpiresAt time.Time `gorm:"index"`
}

func (sessionRow) TableName() string { return "panel_sessions" }

// NewGormStore migrates the session table and returns the store.
func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&sessionRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Put(ctx context.Context, rec Record, ttl time.Duration) error {
	userJSON, err := json.Marshal(rec.User)
	if err != nil {
		return err
	}
	row := sessionRow{
		ID:        rec.ID,
		Token:     rec.Token,
		User:      datatypes.JSON(userJSON),
		CreatedAt: rec.CreatedAt,
	}
	if ttl > 0 {
		row.ExpiresAt = time.Now().Add(ttl)
	}
	return s.db.WithContext(ctx).Save(&row).Error
}

func (s *GormStore) Get(ctx context.Context, id string) (Record, bool, error) {
	var row sessionRow
	err := s.db.WithContext(ctx).First(&row, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return Record{}, false, nil
	}
	if err != nil {
		return Record{}, false, err
	}
	if !row.ExpiresAt.IsZero() && time.Now().After(row.ExpiresAt) {
		_ = s.db.WithContext(ctx).Delete(&sessionRow{}, "id = ?", id).Error
		return Record{}, false, nil
	}
	rec := Record{ID: row.ID, Token: row.Token, CreatedAt: row.CreatedAt}
	if len(row.User) > 0 {
		if err := json.Unmarshal(row.User, &rec.User); err != nil {
			return Record{}, false, err
		}
	}
	return rec, true, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Delete(&sessionRow{}, "id = ?", id).Error
}
