package service

import (
	"errors"
	"strings"
	"sync"

	"pooja-setu/internal/domain"
)

// In-memory repositories for service tests. Transition mirrors the
// conditional-update contract of the gorm implementation.

type fakeUsers struct {
	mu          sync.Mutex
	byID        map[string]*domain.User
	order       []string // insertion order, stands in for created_at
	failUpdates bool
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byID: map[string]*domain.User{}}
}

func (f *fakeUsers) Create(u *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, v := range f.byID {
		if v.Email == u.Email || v.IdentityID == u.IdentityID {
			return errors.New("duplicate key")
		}
	}
	cp := *u
	f.byID[u.ID] = &cp
	f.order = append(f.order, u.ID)
	return nil
}

func (f *fakeUsers) FindByID(id string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeUsers) FindByIdentityID(identityID string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.IdentityID == identityID {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUsers) FindByEmail(email string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byID {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

// List mirrors the gorm repository: every filter narrows the row set before
// the count and before pagination, so total reflects all matches, not the
// returned page.
func (f *fakeUsers) List(flt domain.UserFilter) ([]domain.User, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var matched []domain.User
	for _, id := range f.order {
		u := f.byID[id]
		if flt.Role != "" && u.Role != flt.Role {
			continue
		}
		if flt.Community != "" && u.Community != flt.Community {
			continue
		}
		if flt.Language != "" && !u.Languages.Contains(flt.Language) {
			continue
		}
		if flt.Query != "" && !strings.Contains(u.Email, flt.Query) && !strings.Contains(u.FullName, flt.Query) {
			continue
		}
		matched = append(matched, *u)
	}
	total := int64(len(matched))

	limit := flt.Limit
	if limit <= 0 || limit > 100 {
		limit = 100
	}
	if off := flt.Offset; off > 0 {
		if off >= len(matched) {
			return nil, total, nil
		}
		matched = matched[off:]
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, total, nil
}

func (f *fakeUsers) Updates(id string, set map[string]any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failUpdates {
		return errors.New("write failed")
	}
	u, ok := f.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	for col, v := range set {
		switch col {
		case "role":
			u.Role = v.(domain.Role)
		case "full_name":
			u.FullName = v.(string)
		case "phone":
			u.Phone = v.(string)
		case "community":
			u.Community = v.(string)
		case "sub_sect":
			u.SubSect = v.(string)
		case "gotra":
			u.Gotra = v.(string)
		case "nakshatra":
			u.Nakshatra = v.(string)
		case "rashi":
			u.Rashi = v.(string)
		case "languages":
			u.Languages = v.(domain.StringList)
		case "specialization":
			u.Specialization = v.(domain.StringList)
		case "experience":
			u.Experience = v.(int)
		case "qualification_regular":
			u.QualificationRegular = v.(string)
		case "qualification_dharmic":
			u.QualificationDharmic = v.(string)
		case "preferred_timing":
			u.PreferredTiming = v.(string)
		case "occupation":
			u.Occupation = v.(string)
		case "bio":
			u.Bio = v.(string)
		case "status":
			u.Status = v.(string)
		case "rating":
			u.Rating = v.(string)
		}
	}
	return nil
}

type fakeRituals struct {
	mu   sync.Mutex
	byID map[string]*domain.RitualRequest
}

func newFakeRituals() *fakeRituals {
	return &fakeRituals{byID: map[string]*domain.RitualRequest{}}
}

func (f *fakeRituals) Create(r *domain.RitualRequest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *r
	f.byID[r.ID] = &cp
	return nil
}

func (f *fakeRituals) FindByID(id string) (*domain.RitualRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if r, ok := f.byID[id]; ok {
		cp := *r
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeRituals) List(flt domain.RitualFilter) ([]domain.RitualRequest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.RitualRequest
	for _, r := range f.byID {
		if flt.SeekerID != "" && r.SeekerID != flt.SeekerID {
			continue
		}
		if flt.PriestID != "" && r.PriestID != flt.PriestID {
			continue
		}
		if len(flt.Statuses) > 0 {
			match := false
			for _, s := range flt.Statuses {
				if r.Status == s {
					match = true
					break
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *r)
	}
	return out, nil
}

func (f *fakeRituals) Transition(id string, from []domain.RequestStatus, set map[string]any) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r, ok := f.byID[id]
	if !ok {
		return false, nil
	}
	matched := false
	for _, s := range from {
		if r.Status == s {
			matched = true
			break
		}
	}
	if !matched {
		return false, nil
	}
	for col, v := range set {
		switch col {
		case "status":
			r.Status = v.(domain.RequestStatus)
		case "priest_id":
			r.PriestID = v.(string)
		case "google_meet_link":
			r.GoogleMeetLink = v.(string)
		}
	}
	return true, nil
}

type fakeCatalog struct {
	mu         sync.Mutex
	categories map[string]*domain.ServiceCategory
	services   map[string]*domain.Service
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{
		categories: map[string]*domain.ServiceCategory{},
		services:   map[string]*domain.Service{},
	}
}

func (f *fakeCatalog) ListCategories() ([]domain.ServiceCategory, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.ServiceCategory
	for _, c := range f.categories {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCatalog) CreateCategory(c *domain.ServiceCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCatalog) UpdateCategory(c *domain.ServiceCategory) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[c.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *c
	f.categories[c.ID] = &cp
	return nil
}

func (f *fakeCatalog) DeleteCategory(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.categories[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.categories, id)
	return nil
}

func (f *fakeCatalog) CategoryExists(id string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.categories[id]
	return ok, nil
}

func (f *fakeCatalog) ListServices() ([]domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.Service
	for _, s := range f.services {
		out = append(out, *s)
	}
	return out, nil
}

func (f *fakeCatalog) FindService(id string) (*domain.Service, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.services[id]; ok {
		cp := *s
		return &cp, nil
	}
	return nil, nil
}

func (f *fakeCatalog) CreateService(s *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeCatalog) UpdateService(s *domain.Service) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[s.ID]; !ok {
		return domain.ErrNotFound
	}
	cp := *s
	f.services[s.ID] = &cp
	return nil
}

func (f *fakeCatalog) DeleteService(id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.services[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.services, id)
	return nil
}
