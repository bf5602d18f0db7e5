package repo

import (
	"errors"

	"gorm.io/gorm"

	"pooja-setu/internal/domain"
)

type CatalogRepo struct{ db *gorm.DB }

func NewCatalogRepo(db *gorm.DB) *CatalogRepo { return &CatalogRepo{db: db} }

func (r *CatalogRepo) ListCategories() ([]domain.ServiceCategory, error) {
	var out []domain.ServiceCategory
	err := r.db.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepo) CreateCategory(c *domain.ServiceCategory) error {
	return r.db.Create(c).Error
}

func (r *CatalogRepo) UpdateCategory(c *domain.ServiceCategory) error {
	res := r.db.Model(&domain.ServiceCategory{}).Where("id = ?", c.ID).Updates(c)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) DeleteCategory(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.ServiceCategory{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) CategoryExists(id string) (bool, error) {
	var n int64
	err := r.db.Model(&domain.ServiceCategory{}).Where("id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *CatalogRepo) ListServices() ([]domain.Service, error) {
	var out []domain.Service
	err := r.db.Order("created_at ASC").Find(&out).Error
	return out, err
}

func (r *CatalogRepo) FindService(id string) (*domain.Service, error) {
	var s domain.Service
	err := r.db.First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &s, err
}

func (r *CatalogRepo) CreateService(s *domain.Service) error { return r.db.Create(s).Error }

func (r *CatalogRepo) UpdateService(s *domain.Service) error {
	res := r.db.Model(&domain.Service{}).Where("id = ?", s.ID).Updates(s)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *CatalogRepo) DeleteService(id string) error {
	res := r.db.Where("id = ?", id).Delete(&domain.Service{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
