package domain

import (
	"time"

	"gorm.io/gorm"
)

type ServiceCategory struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"size:64;not null" json:"name"`
	Description string `gorm:"size:512" json:"description"`
	Icon        string `gorm:"size:32" json:"icon"`
	Color       string `gorm:"size:32" json:"color"`
	BgColor     string `gorm:"size:32" json:"bgColor"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ServiceCategory) TableName() string { return "service_categories" }

type Service struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"size:128;not null" json:"name"`
	Description string  `gorm:"size:1024" json:"description"`
	Duration    string  `gorm:"size:64" json:"duration"` // free text, e.g. "2-3 hours"
	Price       float64 `json:"price"`
	CategoryID  string  `gorm:"size:36;index;not null" json:"categoryId"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Service) TableName() string { return "services" }

type CatalogRepository interface {
	ListCategories() ([]ServiceCategory, error)
	CreateCategory(c *ServiceCategory) error
	UpdateCategory(c *ServiceCategory) error
	DeleteCategory(id string) error
	CategoryExists(id string) (bool, error)

	ListServices() ([]Service, error)
	FindService(id string) (*Service, error)
	CreateService(s *Service) error
	UpdateService(s *Service) error
	DeleteService(id string) error
}
