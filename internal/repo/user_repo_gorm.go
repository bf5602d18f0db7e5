package repo

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"pooja-setu/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(u *domain.User) error { return r.db.Create(u).Error }

func (r *UserRepo) FindByID(id string) (*domain.User, error) {
	return r.findOne("id = ?", id)
}

func (r *UserRepo) FindByIdentityID(identityID string) (*domain.User, error) {
	return r.findOne("identity_id = ?", identityID)
}

func (r *UserRepo) FindByEmail(email string) (*domain.User, error) {
	return r.findOne("email = ?", email)
}

func (r *UserRepo) findOne(cond string, arg any) (*domain.User, error) {
	var u domain.User
	err := r.db.First(&u, cond, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &u, err
}

// List filters by role/community/query/language in SQL so the count and the
// pagination see the same row set. Languages is a JSON array of strings, so
// element membership is an exact quoted-string match inside the column.
func (r *UserRepo) List(f domain.UserFilter) ([]domain.User, int64, error) {
	q := r.db.Model(&domain.User{})
	if f.Role != "" {
		q = q.Where("role = ?", f.Role)
	}
	if f.Community != "" {
		q = q.Where("community = ?", f.Community)
	}
	if f.Language != "" {
		q = q.Where("languages LIKE ?", `%"`+f.Language+`"%`)
	}
	if s := strings.TrimSpace(f.Query); s != "" {
		like := "%" + s + "%"
		q = q.Where("email LIKE ? OR full_name LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	var users []domain.User
	if err := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&users).Error; err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepo) Updates(id string, set map[string]any) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", id).Updates(set)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
