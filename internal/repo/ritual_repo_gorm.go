package repo

import (
	"errors"

	"gorm.io/gorm"

	"pooja-setu/internal/domain"
)

type RitualRepo struct{ db *gorm.DB }

func NewRitualRepo(db *gorm.DB) *RitualRepo { return &RitualRepo{db: db} }

func (r *RitualRepo) Create(req *domain.RitualRequest) error { return r.db.Create(req).Error }

func (r *RitualRepo) FindByID(id string) (*domain.RitualRequest, error) {
	var req domain.RitualRequest
	err := r.db.First(&req, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &req, err
}

func (r *RitualRepo) List(f domain.RitualFilter) ([]domain.RitualRequest, error) {
	q := r.db.Model(&domain.RitualRequest{})
	if f.SeekerID != "" {
		q = q.Where("seeker_id = ?", f.SeekerID)
	}
	if f.PriestID != "" {
		q = q.Where("priest_id = ?", f.PriestID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	var out []domain.RitualRequest
	err := q.Order("created_at DESC").Find(&out).Error
	return out, err
}

// Transition is the compare-and-set behind every status change: the UPDATE is
// guarded by the expected current status, so two racing writers serialize at
// the row and the loser affects zero rows.
func (r *RitualRepo) Transition(id string, from []domain.RequestStatus, set map[string]any) (bool, error) {
	res := r.db.Model(&domain.RitualRequest{}).
		Where("id = ? AND status IN ?", id, from).
		Updates(set)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
