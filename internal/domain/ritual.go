package domain

import (
	"time"

	"gorm.io/gorm"
)

type RequestStatus string

const (
	StatusPending   RequestStatus = "pending"
	StatusAssigned  RequestStatus = "assigned"
	StatusCompleted RequestStatus = "completed"
	StatusCancelled RequestStatus = "cancelled"
)

// Readiness answers for the remote-setup checklist. Tri-state on purpose:
// seekers are often unsure about their venue.
const (
	ReadinessYes       = "Yes"
	ReadinessNo        = "No"
	ReadinessUncertain = "Uncertain"
)

func ValidReadiness(v string) bool {
	return v == "" || v == ReadinessYes || v == ReadinessNo || v == ReadinessUncertain
}

const (
	BudgetLow    = "Low"    // ₹1,000 - ₹5,000
	BudgetMedium = "Medium" // ₹5,000 - ₹15,000
	BudgetHigh   = "High"   // ₹15,000+
)

func ValidBudget(v string) bool {
	return v == BudgetLow || v == BudgetMedium || v == BudgetHigh
}

type RitualRequest struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	SeekerID string `gorm:"size:36;index;not null" json:"seekerId"`

	ServiceID  string `gorm:"size:36;index" json:"serviceId,omitempty"`
	RitualType string `gorm:"size:128;not null" json:"ritualType"`
	Details    string `gorm:"size:2048" json:"details"`

	DateRequired string `gorm:"size:32" json:"dateRequired"`
	TimeRequired string `gorm:"size:32" json:"timeRequired"`
	PlaceAddress string `gorm:"size:512" json:"placeAddress"`

	PowerAvailable     string `gorm:"size:16" json:"powerAvailable"`
	BroadbandAvailable string `gorm:"size:16" json:"broadbandAvailable"`
	SignalStrength     string `gorm:"size:16" json:"signalStrength"`
	OtherInfo          string `gorm:"size:1024" json:"otherInfo"`

	BudgetRange        string `gorm:"size:16;not null" json:"budgetRange"`
	PreferredCommunity string `gorm:"size:64" json:"preferredCommunity"` // hint only, never enforced
	GuidelineConfirmed bool   `gorm:"not null" json:"guidelineConfirmed"`

	Status         RequestStatus `gorm:"size:16;index;not null;default:pending" json:"status"`
	PriestID       string        `gorm:"size:36;index" json:"priestId,omitempty"`
	GoogleMeetLink string        `gorm:"size:512" json:"googleMeetLink,omitempty"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (RitualRequest) TableName() string { return "ritual_requests" }

// Terminal reports whether no further transitions are allowed.
func (r *RitualRequest) Terminal() bool {
	return r.Status == StatusCompleted || r.Status == StatusCancelled
}

type RitualFilter struct {
	SeekerID string
	PriestID string
	Statuses []RequestStatus
}

type RitualRepository interface {
	Create(r *RitualRequest) error
	FindByID(id string) (*RitualRequest, error)
	List(f RitualFilter) ([]RitualRequest, error)
	// Transition applies set to the row only while its status is still one of
	// from, as a single conditional UPDATE. This is the compare-and-set that
	// makes concurrent assignment first-write-wins. Returns false when no row
	// matched (missing id or status already moved on).
	Transition(id string, from []RequestStatus, set map[string]any) (bool, error)
}
