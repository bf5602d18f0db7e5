package service

import (
	"strings"

	"go.uber.org/zap"

	"pooja-setu/internal/domain"
)

// RitualService owns the request lifecycle:
//
//	pending → assigned → completed
//	pending|assigned → cancelled
//
// Every transition goes through the repository's conditional update, so the
// graph cannot be skipped and concurrent writers serialize at the row.
type RitualService struct {
	rituals domain.RitualRepository
	users   domain.UserRepository
	catalog domain.CatalogRepository
	log     *zap.Logger
}

func NewRitualService(rituals domain.RitualRepository, users domain.UserRepository, catalog domain.CatalogRepository, log *zap.Logger) *RitualService {
	return &RitualService{rituals: rituals, users: users, catalog: catalog, log: log}
}

type CreateRitualInput struct {
	ServiceID  string `json:"serviceId"`
	RitualType string `json:"ritualType"`
	Details    string `json:"details"`

	DateRequired string `json:"dateRequired"`
	TimeRequired string `json:"timeRequired"`
	PlaceAddress string `json:"placeAddress"`

	PowerAvailable     string `json:"powerAvailable"`
	BroadbandAvailable string `json:"broadbandAvailable"`
	SignalStrength     string `json:"signalStrength"`
	OtherInfo          string `json:"otherInfo"`

	BudgetRange        string `json:"budgetRange"`
	PreferredCommunity string `json:"preferredCommunity"`
	GuidelineConfirmed bool   `json:"guidelineConfirmed"`
}

// Create validates the submission and persists it in pending. Nothing is
// written when validation fails.
func (s *RitualService) Create(seeker *domain.User, in CreateRitualInput) (*domain.RitualRequest, error) {
	if !in.GuidelineConfirmed {
		return nil, domain.Invalid("guideline confirmation is required")
	}

	ritualType := strings.TrimSpace(in.RitualType)
	if in.ServiceID != "" {
		svc, err := s.catalog.FindService(in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc == nil {
			return nil, domain.ErrNotFound
		}
		ritualType = svc.Name
	}
	switch {
	case ritualType == "":
		return nil, domain.Invalid("ritual type is required")
	case strings.TrimSpace(in.Details) == "":
		return nil, domain.Invalid("details are required")
	case strings.TrimSpace(in.DateRequired) == "":
		return nil, domain.Invalid("required date is missing")
	case strings.TrimSpace(in.TimeRequired) == "":
		return nil, domain.Invalid("required time is missing")
	case strings.TrimSpace(in.PlaceAddress) == "":
		return nil, domain.Invalid("place address is required")
	case !domain.ValidBudget(in.BudgetRange):
		return nil, domain.Invalid("budget range must be Low, Medium or High")
	case !domain.ValidReadiness(in.PowerAvailable),
		!domain.ValidReadiness(in.BroadbandAvailable),
		!domain.ValidReadiness(in.SignalStrength):
		return nil, domain.Invalid("readiness answers must be Yes, No or Uncertain")
	}

	req := &domain.RitualRequest{
		ID:                 domain.NewID(),
		SeekerID:           seeker.ID,
		ServiceID:          in.ServiceID,
		RitualType:         ritualType,
		Details:            in.Details,
		DateRequired:       in.DateRequired,
		TimeRequired:       in.TimeRequired,
		PlaceAddress:       in.PlaceAddress,
		PowerAvailable:     in.PowerAvailable,
		BroadbandAvailable: in.BroadbandAvailable,
		SignalStrength:     in.SignalStrength,
		OtherInfo:          in.OtherInfo,
		BudgetRange:        in.BudgetRange,
		PreferredCommunity: in.PreferredCommunity,
		GuidelineConfirmed: true,
		Status:             domain.StatusPending,
	}
	if err := s.rituals.Create(req); err != nil {
		return nil, err
	}
	s.log.Info("ritual request created",
		zap.String("request_id", req.ID), zap.String("seeker_id", seeker.ID),
		zap.String("ritual_type", req.RitualType))
	return req, nil
}

// Assign binds a priest to a pending request. Admins pass the priest id; a
// priest calling with an empty id assigns themselves ("express interest").
// Both paths share one compare-and-set, so of two racing assigners exactly
// one wins and the other observes the conflict.
func (s *RitualService) Assign(actor *domain.User, requestID, priestID, meetLink string) (*domain.RitualRequest, error) {
	switch actor.Role {
	case domain.RolePriest:
		priestID = actor.ID
	case domain.RoleAdmin:
		if priestID == "" {
			return nil, domain.Invalid("priestId is required")
		}
	default:
		return nil, domain.ErrForbidden
	}

	priest, err := s.users.FindByID(priestID)
	if err != nil {
		return nil, err
	}
	if priest == nil || priest.Role != domain.RolePriest {
		return nil, domain.ErrNotFound
	}

	set := map[string]any{
		"status":    domain.StatusAssigned,
		"priest_id": priestID,
	}
	if meetLink != "" {
		set["google_meet_link"] = meetLink
	}
	ok, err := s.rituals.Transition(requestID, []domain.RequestStatus{domain.StatusPending}, set)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, s.missingOrConflict(requestID)
	}
	transitions.WithLabelValues(string(domain.StatusAssigned)).Inc()
	s.log.Info("ritual request assigned",
		zap.String("request_id", requestID), zap.String("priest_id", priestID),
		zap.String("by", string(actor.Role)))
	return s.rituals.FindByID(requestID)
}

// Complete moves an assigned request to completed. Only the assigned priest
// or an admin may do so.
func (s *RitualService) Complete(actor *domain.User, requestID string) (*domain.RitualRequest, error) {
	req, err := s.rituals.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RolePriest:
		if req.PriestID != actor.ID {
			return nil, domain.ErrForbidden
		}
	default:
		return nil, domain.ErrForbidden
	}

	ok, err := s.rituals.Transition(requestID,
		[]domain.RequestStatus{domain.StatusAssigned},
		map[string]any{"status": domain.StatusCompleted})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}
	transitions.WithLabelValues(string(domain.StatusCompleted)).Inc()
	s.log.Info("ritual request completed", zap.String("request_id", requestID))
	return s.rituals.FindByID(requestID)
}

// Cancel is available to the owning seeker and to admins; priests may not
// cancel. Valid from pending and assigned.
func (s *RitualService) Cancel(actor *domain.User, requestID string) (*domain.RitualRequest, error) {
	req, err := s.rituals.FindByID(requestID)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, domain.ErrNotFound
	}
	switch actor.Role {
	case domain.RoleAdmin:
	case domain.RoleSeeker:
		if req.SeekerID != actor.ID {
			return nil, domain.ErrNotFound
		}
	default:
		return nil, domain.ErrForbidden
	}

	ok, err := s.rituals.Transition(requestID,
		[]domain.RequestStatus{domain.StatusPending, domain.StatusAssigned},
		map[string]any{"status": domain.StatusCancelled})
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrConflict
	}
	transitions.WithLabelValues(string(domain.StatusCancelled)).Inc()
	s.log.Info("ritual request cancelled", zap.String("request_id", requestID))
	return s.rituals.FindByID(requestID)
}

func (s *RitualService) ListAll() ([]domain.RitualRequest, error) {
	return s.rituals.List(domain.RitualFilter{})
}

func (s *RitualService) ListMine(seekerID string) ([]domain.RitualRequest, error) {
	return s.rituals.List(domain.RitualFilter{SeekerID: seekerID})
}

// ListAvailable is the priest work queue: pending, unassigned requests.
func (s *RitualService) ListAvailable() ([]domain.RitualRequest, error) {
	return s.rituals.List(domain.RitualFilter{Statuses: []domain.RequestStatus{domain.StatusPending}})
}

// ListAssignments returns a priest's own assigned and completed requests.
func (s *RitualService) ListAssignments(priestID string) ([]domain.RitualRequest, error) {
	return s.rituals.List(domain.RitualFilter{
		PriestID: priestID,
		Statuses: []domain.RequestStatus{domain.StatusAssigned, domain.StatusCompleted},
	})
}

// missingOrConflict re-reads after a failed conditional update to tell the
// two apart: no row → not found, row moved on → conflict.
func (s *RitualService) missingOrConflict(requestID string) error {
	req, err := s.rituals.FindByID(requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return domain.ErrNotFound
	}
	return domain.ErrConflict
}
