package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Role string

const (
	RoleUnassigned Role = "unassigned"
	RoleSeeker     Role = "seeker"
	RolePriest     Role = "priest"
	RoleAdmin      Role = "admin"
)

// Rating labels an admin can stamp on a priest. Direct overwrite, no averaging.
const (
	RatingAverage   = "Average"
	RatingGood      = "Good"
	RatingExcellent = "Excellent"
)

func ValidRating(r string) bool {
	return r == RatingAverage || r == RatingGood || r == RatingExcellent
}

// User is keyed by the Identity Gateway id. The role column is the only
// authorization source of truth; the token never carries one.
type User struct {
	ID         string `gorm:"primaryKey;size:36" json:"id"`
	IdentityID string `gorm:"uniqueIndex;size:64;not null" json:"identityId"`
	Email      string `gorm:"uniqueIndex;size:191;not null" json:"email"`
	FullName   string `gorm:"size:64" json:"fullName"`
	Phone      string `gorm:"size:32" json:"phone"`
	Role       Role   `gorm:"size:16;not null;default:unassigned" json:"role"`

	// seeker variant
	Community string     `gorm:"size:64" json:"community,omitempty"`
	SubSect   string     `gorm:"size:64" json:"subSect,omitempty"`
	Gotra     string     `gorm:"size:64" json:"gotra,omitempty"`
	Nakshatra string     `gorm:"size:64" json:"nakshatra,omitempty"`
	Rashi     string     `gorm:"size:64" json:"rashi,omitempty"`
	Languages StringList `gorm:"type:text" json:"languages,omitempty"`

	// priest variant
	Specialization       StringList `gorm:"type:text" json:"specialization,omitempty"`
	Experience           int        `json:"experience,omitempty"`
	QualificationRegular string     `gorm:"size:128" json:"qualificationRegular,omitempty"`
	QualificationDharmic string     `gorm:"size:128" json:"qualificationDharmic,omitempty"`
	PreferredTiming      string     `gorm:"size:64" json:"preferredTiming,omitempty"`
	Occupation           string     `gorm:"size:64" json:"occupation,omitempty"`
	Bio                  string     `gorm:"size:1024" json:"bio,omitempty"`
	Status               string     `gorm:"size:16" json:"status,omitempty"` // online/offline
	Rating               string     `gorm:"size:16" json:"rating,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (User) TableName() string { return "users" }

// RoleFieldClears is the full field-clearing contract for a reset to
// unassigned: both variants blanked, not just the role flag.
func RoleFieldClears() map[string]any {
	return map[string]any{
		"role": RoleUnassigned,
		// seeker
		"community": "", "sub_sect": "", "gotra": "",
		"nakshatra": "", "rashi": "", "languages": StringList(nil),
		// priest
		"specialization": StringList(nil), "experience": 0,
		"qualification_regular": "", "qualification_dharmic": "",
		"preferred_timing": "", "occupation": "", "bio": "",
		"status": "", "rating": "",
	}
}

type UserFilter struct {
	Role      Role
	Community string // exact match
	Language  string // membership in Languages
	Query     string // email/name substring
	Offset    int
	Limit     int
}

type UserRepository interface {
	Create(u *User) error
	FindByID(id string) (*User, error)
	FindByIdentityID(identityID string) (*User, error)
	FindByEmail(email string) (*User, error)
	List(f UserFilter) ([]User, int64, error)
	// Updates applies the given column set to one row in a single write.
	Updates(id string, set map[string]any) error
}

func NewID() string { return uuid.NewString() }
