package services

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/makmour/WasteBinTracker/internal/models"
)

// GormStore is the durable EntryStore. Ids come from the backing engine's
// autoincrement primary key; everything else follows the same contract as
// the in-memory store.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore injects the *gorm.DB dependency and returns a store ready
// for use.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, ins models.InsertEntry) (*models.BinSurveyEntry, error) {
	ins = normalizeInsert(ins)
	entry := models.BinSurveyEntry{
		Datetime:     time.Now().UTC(),
		Municipality: ins.Municipality,
		Street:       ins.Street,
		Latitude:     coordValue(ins.Latitude),
		Longitude:    coordValue(ins.Longitude),
		BinTypes:     ins.BinTypes,
		Quantity:     ins.Quantity,
		PhotoURI:     ins.PhotoURI,
		Comments:     ins.Comments,
		Synced:       false,
	}
	if err := s.db.WithContext(ctx).Create(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *GormStore) GetAll(ctx context.Context) ([]models.BinSurveyEntry, error) {
	var entries []models.BinSurveyEntry
	err := s.db.WithContext(ctx).
		Order("datetime DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) GetByID(ctx context.Context, id uint) (*models.BinSurveyEntry, error) {
	var entry models.BinSurveyEntry
	err := s.db.WithContext(ctx).First(&entry, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// Update issues one UPDATE over only the patched columns. Writing the
// whole row back after a read would let a concurrent markSynced disappear
// under it; a column-level statement structurally cannot touch synced or
// datetime.
func (s *GormStore) Update(ctx context.Context, id uint, patch models.UpdateEntry) (*models.BinSurveyEntry, error) {
	updates := patchColumns(patch)
	if len(updates) > 0 {
		res := s.db.WithContext(ctx).
			Model(&models.BinSurveyEntry{}).
			Where("id = ?", id).
			Updates(updates)
		if res.Error != nil {
			return nil, res.Error
		}
	}
	return s.GetByID(ctx, id)
}

// patchColumns maps the non-nil patch fields to their columns.
func patchColumns(patch models.UpdateEntry) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.Municipality != nil {
		updates["municipality"] = *patch.Municipality
	}
	if patch.Street != nil {
		updates["street"] = *patch.Street
	}
	if patch.Latitude != nil {
		updates["latitude"] = *patch.Latitude
	}
	if patch.Longitude != nil {
		updates["longitude"] = *patch.Longitude
	}
	if patch.BinTypes != nil {
		updates["bin_types"] = patch.BinTypes
	}
	if patch.Quantity != nil {
		updates["quantity"] = *patch.Quantity
	}
	if patch.PhotoURI != nil {
		updates["photo_uri"] = normalizeOptional(patch.PhotoURI)
	}
	if patch.Comments != nil {
		updates["comments"] = normalizeOptional(patch.Comments)
	}
	return updates
}

func (s *GormStore) Delete(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).Delete(&models.BinSurveyEntry{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormStore) DeleteByStreet(ctx context.Context, street string) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("street = ?", street).
		Delete(&models.BinSurveyEntry{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (s *GormStore) GetUnsynced(ctx context.Context) ([]models.BinSurveyEntry, error) {
	var entries []models.BinSurveyEntry
	err := s.db.WithContext(ctx).
		Where("synced = ?", false).
		Order("datetime DESC, id DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *GormStore) MarkSynced(ctx context.Context, id uint) (bool, error) {
	res := s.db.WithContext(ctx).
		Model(&models.BinSurveyEntry{}).
		Where("id = ?", id).
		Update("synced", true)
	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected > 0 {
		return true, nil
	}
	// The update touched no rows; distinguish "absent" from "already
	// synced" so the call stays idempotent.
	_, err := s.GetByID(ctx, id)
	if errors.Is(err, ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *GormStore) CreateUser(ctx context.Context, ins models.InsertUser) (*models.User, error) {
	user := models.User{Username: ins.Username, Password: ins.Password}
	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *GormStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).
		Where("username = ?", username).
		First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
