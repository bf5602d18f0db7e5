package service

import (
	"strings"

	"go.uber.org/zap"

	"pooja-setu/internal/domain"
)

type ProfileService struct {
	users domain.UserRepository
	log   *zap.Logger
}

func NewProfileService(users domain.UserRepository, log *zap.Logger) *ProfileService {
	return &ProfileService{users: users, log: log}
}

// Sync returns the profile for an identity id, creating an unassigned row on
// first contact. Reports whether the row was created.
func (s *ProfileService) Sync(identityID, email, fullName string) (*domain.User, bool, error) {
	u, err := s.users.FindByIdentityID(identityID)
	if err != nil {
		return nil, false, err
	}
	if u != nil {
		return u, false, nil
	}

	email = strings.TrimSpace(email)
	if fullName = strings.TrimSpace(fullName); fullName == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			fullName = email[:at]
		}
	}
	u = &domain.User{
		ID:         domain.NewID(),
		IdentityID: identityID,
		Email:      email,
		FullName:   fullName,
		Role:       domain.RoleUnassigned,
	}
	if err := s.users.Create(u); err != nil {
		// two first requests racing on the unique index: loser re-reads
		if isDupKey(err) {
			u, err2 := s.users.FindByIdentityID(identityID)
			if err2 == nil && u != nil {
				return u, false, nil
			}
		}
		return nil, false, err
	}
	s.log.Info("profile created", zap.String("user_id", u.ID), zap.String("email", u.Email))
	return u, true, nil
}

// ProfileUpdate is the partial self-update body shared by onboarding and
// later edits. Pointer fields distinguish "absent" from "clear".
type ProfileUpdate struct {
	FullName *string      `json:"fullName"`
	Phone    *string      `json:"phone"`
	Role     *domain.Role `json:"role"`

	Community *string   `json:"community"`
	SubSect   *string   `json:"subSect"`
	Gotra     *string   `json:"gotra"`
	Nakshatra *string   `json:"nakshatra"`
	Rashi     *string   `json:"rashi"`
	Languages *[]string `json:"languages"`

	Specialization       *[]string `json:"specialization"`
	Experience           *int      `json:"experience"`
	QualificationRegular *string   `json:"qualificationRegular"`
	QualificationDharmic *string   `json:"qualificationDharmic"`
	PreferredTiming      *string   `json:"preferredTiming"`
	Occupation           *string   `json:"occupation"`
	Bio                  *string   `json:"bio"`
	Status               *string   `json:"status"`
}

// Update applies a partial profile update as one write, so a role selection
// lands together with its variant fields or not at all.
func (s *ProfileService) Update(u *domain.User, in ProfileUpdate) (*domain.User, error) {
	set := map[string]any{}

	if in.Role != nil && *in.Role != u.Role {
		if u.Role != domain.RoleUnassigned {
			return nil, domain.ErrForbidden
		}
		if *in.Role != domain.RoleSeeker && *in.Role != domain.RolePriest {
			return nil, domain.ErrForbidden
		}
		set["role"] = *in.Role
	}
	if in.Status != nil {
		if *in.Status != "online" && *in.Status != "offline" {
			return nil, domain.Invalid("status must be online or offline")
		}
		set["status"] = *in.Status
	}

	putStr := func(col string, v *string) {
		if v != nil {
			set[col] = strings.TrimSpace(*v)
		}
	}
	putStr("full_name", in.FullName)
	putStr("phone", in.Phone)
	putStr("community", in.Community)
	putStr("sub_sect", in.SubSect)
	putStr("gotra", in.Gotra)
	putStr("nakshatra", in.Nakshatra)
	putStr("rashi", in.Rashi)
	putStr("qualification_regular", in.QualificationRegular)
	putStr("qualification_dharmic", in.QualificationDharmic)
	putStr("preferred_timing", in.PreferredTiming)
	putStr("occupation", in.Occupation)
	putStr("bio", in.Bio)
	if in.Languages != nil {
		set["languages"] = domain.StringList(*in.Languages)
	}
	if in.Specialization != nil {
		set["specialization"] = domain.StringList(*in.Specialization)
	}
	if in.Experience != nil {
		if *in.Experience < 0 {
			return nil, domain.Invalid("experience cannot be negative")
		}
		set["experience"] = *in.Experience
	}

	if len(set) == 0 {
		return u, nil
	}
	if err := s.users.Updates(u.ID, set); err != nil {
		return nil, err
	}
	return s.users.FindByID(u.ID)
}

// Reset puts a user back to unassigned and blanks every role-specific field
// of both variants. Used by the maintenance CLI.
func (s *ProfileService) Reset(email string) (*domain.User, error) {
	u, err := s.users.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, domain.ErrNotFound
	}
	if err := s.users.Updates(u.ID, domain.RoleFieldClears()); err != nil {
		return nil, err
	}
	s.log.Info("user reset to unassigned",
		zap.String("user_id", u.ID), zap.String("prev_role", string(u.Role)))
	return s.users.FindByID(u.ID)
}

func (s *ProfileService) List(f domain.UserFilter) ([]domain.User, int64, error) {
	return s.users.List(f)
}

// SetRating overwrites a priest's rating label. Last write wins; there is no
// aggregation.
func (s *ProfileService) SetRating(priestID, rating string) (*domain.User, error) {
	if !domain.ValidRating(rating) {
		return nil, domain.Invalid("rating must be Average, Good or Excellent")
	}
	u, err := s.users.FindByID(priestID)
	if err != nil {
		return nil, err
	}
	if u == nil || u.Role != domain.RolePriest {
		return nil, domain.ErrNotFound
	}
	if err := s.users.Updates(u.ID, map[string]any{"rating": rating}); err != nil {
		return nil, err
	}
	return s.users.FindByID(u.ID)
}

func isDupKey(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique violation") ||
		strings.Contains(msg, "duplicate key")
}
