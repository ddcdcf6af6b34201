package voting

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
	"argus-backend/internal/store"
)

// Session is the caller-facing projection of a voting session.
type Session struct {
	ID              int64      `json:"id"`
	Proposal        string     `json:"proposal"`
	Description     string     `json:"description"`
	OpensAt         model.Date `json:"opensAt"`
	ClosesAt        model.Date `json:"closesAt"`
	CondominiumName string     `json:"condominiumName"`
}

// SessionService manages the lifecycle of voting sessions.
type SessionService struct {
	store store.Store
}

// NewSessionService creates a session service backed by the given store.
func NewSessionService(s store.Store) *SessionService {
	return &SessionService{store: s}
}

// CreateSession validates and persists a new voting session. The named
// condominium is created on the fly when it does not exist yet.
func (s *SessionService) CreateSession(ctx context.Context, proposal, description string, opensAt, closesAt model.Date, condominiumName string) (*Session, error) {
	if proposal == "" {
		return nil, fault.Validation("proposal is required")
	}
	if condominiumName == "" {
		return nil, fault.Validation("condominium name is required")
	}
	if opensAt.IsZero() || closesAt.IsZero() {
		return nil, fault.Validation("opening and closing dates are required")
	}
	if opensAt.Time().After(closesAt.Time()) {
		return nil, fault.Validation("opening date %s is after closing date %s", opensAt, closesAt)
	}

	var out *Session
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		condo, err := tx.FindCondominiumByName(ctx, condominiumName)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			condo = &model.Condominium{Name: condominiumName}
			if err := tx.CreateCondominium(ctx, condo); err != nil {
				return fault.StoreUnavailable(err)
			}
		} else if err != nil {
			return fault.StoreUnavailable(err)
		}

		vs := &model.VotingSession{
			Proposal:      proposal,
			Description:   description,
			OpensAt:       opensAt,
			ClosesAt:      closesAt,
			CondominiumID: condo.ID,
		}
		if err := tx.CreateVotingSession(ctx, vs); err != nil {
			return fault.StoreUnavailable(err)
		}

		out = &Session{
			ID:              vs.ID,
			Proposal:        vs.Proposal,
			Description:     vs.Description,
			OpensAt:         vs.OpensAt,
			ClosesAt:        vs.ClosesAt,
			CondominiumName: condo.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetSession returns a single session projection.
func (s *SessionService) GetSession(ctx context.Context, id int64) (*Session, error) {
	vs, err := s.store.GetVotingSession(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fault.NotFound("voting session %d not found", id)
	}
	if err != nil {
		return nil, fault.StoreUnavailable(err)
	}
	return sessionProjection(vs), nil
}

// ListSessions returns all voting sessions.
func (s *SessionService) ListSessions(ctx context.Context) ([]Session, error) {
	sessions, err := s.store.ListVotingSessions(ctx)
	if err != nil {
		return nil, fault.StoreUnavailable(err)
	}
	out := make([]Session, 0, len(sessions))
	for i := range sessions {
		out = append(out, *sessionProjection(&sessions[i]))
	}
	return out, nil
}

// DeleteSession removes a session. Sessions with recorded votes are kept:
// deletion is rejected with Conflict rather than cascading.
func (s *SessionService) DeleteSession(ctx context.Context, id int64) error {
	return s.store.Transaction(ctx, func(tx store.Store) error {
		n, err := tx.CountVotesBySession(ctx, id)
		if err != nil {
			return fault.StoreUnavailable(err)
		}
		if n > 0 {
			return fault.Conflict("voting session %d has %d recorded votes and cannot be deleted", id, n)
		}

		if err := tx.DeleteVotingSession(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fault.NotFound("voting session %d not found", id)
			}
			return fault.StoreUnavailable(err)
		}
		return nil
	})
}

func sessionProjection(vs *model.VotingSession) *Session {
	return &Session{
		ID:              vs.ID,
		Proposal:        vs.Proposal,
		Description:     vs.Description,
		OpensAt:         vs.OpensAt,
		ClosesAt:        vs.ClosesAt,
		CondominiumName: vs.Condominium.Name,
	}
}
