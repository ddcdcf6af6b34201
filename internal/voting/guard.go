// Package voting enforces the one-vote-per-(session, user) rule and the
// session open window, and manages voting sessions.
package voting

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
	"argus-backend/internal/store"
)

// VoteRecord is the caller-facing projection of a vote.
type VoteRecord struct {
	ID        int64     `json:"id"`
	Choice    bool      `json:"choice"`
	Proposal  string    `json:"proposal"`
	VoterName string    `json:"voterName"`
	CastAt    time.Time `json:"castAt"`
}

// Guard decides whether a requested vote may be recorded.
type Guard struct {
	store store.Store
	clock clockwork.Clock
}

// NewGuard creates a voting guard backed by the given store. The clock
// decides whether a session is open; tests inject a fake one.
func NewGuard(s store.Store, clock clockwork.Clock) *Guard {
	return &Guard{store: s, clock: clock}
}

// CastVote records the user's choice in the session. It fails with NotFound
// if the session or user is absent, SessionClosed outside the session's
// [opens, closes] window, and DuplicateVote if the user already voted.
//
// Like the reservation guard, the duplicate probe and the insert run in one
// transaction with the (session, user) unique index as the race-proof
// backstop: concurrent double votes yield exactly one success.
func (g *Guard) CastVote(ctx context.Context, sessionID, userID int64, choice bool) (*VoteRecord, error) {
	if sessionID <= 0 {
		return nil, fault.Validation("session id is required")
	}
	if userID <= 0 {
		return nil, fault.Validation("user id is required")
	}

	now := g.clock.Now()
	var out *VoteRecord
	err := g.store.Transaction(ctx, func(tx store.Store) error {
		session, err := tx.GetVotingSession(ctx, sessionID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("voting session %d not found", sessionID)
		}
		if err != nil {
			return fault.StoreUnavailable(err)
		}

		user, err := tx.GetUser(ctx, userID)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.NotFound("user %d not found", userID)
		}
		if err != nil {
			return fault.StoreUnavailable(err)
		}

		if !sessionOpenAt(session, now) {
			return fault.SessionClosed("session %q is not open for voting on %s (window %s to %s)",
				session.Proposal, model.DateOf(now), session.OpensAt, session.ClosesAt)
		}

		if _, err := tx.FindVoteBySessionAndUser(ctx, sessionID, userID); err == nil {
			return fault.DuplicateVote("user %q has already voted in session %q", user.Name, session.Proposal)
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fault.StoreUnavailable(err)
		}

		v := &model.Vote{
			Choice:          choice,
			CastAt:          now,
			VotingSessionID: sessionID,
			UserID:          userID,
		}
		if err := tx.CreateVote(ctx, v); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return fault.DuplicateVote("user %q has already voted in session %q", user.Name, session.Proposal)
			}
			return fault.StoreUnavailable(err)
		}

		out = &VoteRecord{
			ID:        v.ID,
			Choice:    v.Choice,
			Proposal:  session.Proposal,
			VoterName: user.Name,
			CastAt:    v.CastAt,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListVotes returns all votes for the session, or NotFound if the session
// does not exist.
func (g *Guard) ListVotes(ctx context.Context, sessionID int64) ([]VoteRecord, error) {
	if _, err := g.store.GetVotingSession(ctx, sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fault.NotFound("voting session %d not found", sessionID)
		}
		return nil, fault.StoreUnavailable(err)
	}

	votes, err := g.store.ListVotesBySession(ctx, sessionID)
	if err != nil {
		return nil, fault.StoreUnavailable(err)
	}

	out := make([]VoteRecord, 0, len(votes))
	for _, v := range votes {
		out = append(out, VoteRecord{
			ID:        v.ID,
			Choice:    v.Choice,
			Proposal:  v.VotingSession.Proposal,
			VoterName: v.User.Name,
			CastAt:    v.CastAt,
		})
	}
	return out, nil
}

// GetVote returns a single vote projection.
func (g *Guard) GetVote(ctx context.Context, voteID int64) (*VoteRecord, error) {
	v, err := g.store.GetVote(ctx, voteID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fault.NotFound("vote %d not found", voteID)
	}
	if err != nil {
		return nil, fault.StoreUnavailable(err)
	}
	return &VoteRecord{
		ID:        v.ID,
		Choice:    v.Choice,
		Proposal:  v.VotingSession.Proposal,
		VoterName: v.User.Name,
		CastAt:    v.CastAt,
	}, nil
}

// DeleteVote removes a vote by explicit administrative action and returns a
// confirmation.
func (g *Guard) DeleteVote(ctx context.Context, voteID int64) (string, error) {
	if err := g.store.DeleteVote(ctx, voteID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fault.NotFound("vote %d not found", voteID)
		}
		return "", fault.StoreUnavailable(err)
	}
	return fmt.Sprintf("Vote %d was successfully deleted.", voteID), nil
}

// sessionOpenAt reports whether now falls inside the session's voting window.
// Both boundary days are inclusive: a vote on the closing date still counts.
func sessionOpenAt(s *model.VotingSession, now time.Time) bool {
	today := model.DateOf(now).Time()
	return !today.Before(s.OpensAt.Time()) && !today.After(s.ClosesAt.Time())
}
