package voting

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"argus-backend/internal/fault"
	"argus-backend/internal/model"
)

func TestCreateSession(t *testing.T) {
	ctx := context.Background()

	t.Run("creates the condominium on demand", func(t *testing.T) {
		s := newTestStore(t)
		svc := NewSessionService(s)

		session, err := svc.CreateSession(ctx, "New intercom system", "",
			model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 7), "Residencial Aurora")
		require.NoError(t, err)
		assert.Equal(t, "Residencial Aurora", session.CondominiumName)
		assert.NotZero(t, session.ID)

		condo, err := s.FindCondominiumByName(ctx, "Residencial Aurora")
		require.NoError(t, err)

		// A second session reuses the same condominium.
		again, err := svc.CreateSession(ctx, "Gate repainting", "",
			model.NewDate(2024, time.July, 1), model.NewDate(2024, time.July, 7), "Residencial Aurora")
		require.NoError(t, err)
		assert.Equal(t, condo.Name, again.CondominiumName)

		condos, err := s.ListCondominiums(ctx)
		require.NoError(t, err)
		assert.Len(t, condos, 1)
	})

	t.Run("rejects inverted window", func(t *testing.T) {
		s := newTestStore(t)
		svc := NewSessionService(s)

		_, err := svc.CreateSession(ctx, "Backwards", "",
			model.NewDate(2024, time.June, 7), model.NewDate(2024, time.June, 1), "Residencial Aurora")
		require.Error(t, err)
		assert.Equal(t, fault.KindValidation, fault.KindOf(err))
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		s := newTestStore(t)
		svc := NewSessionService(s)

		_, err := svc.CreateSession(ctx, "", "",
			model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 7), "Residencial Aurora")
		assert.Equal(t, fault.KindValidation, fault.KindOf(err))

		_, err = svc.CreateSession(ctx, "Proposal", "",
			model.Date{}, model.NewDate(2024, time.June, 7), "Residencial Aurora")
		assert.Equal(t, fault.KindValidation, fault.KindOf(err))
	})

	t.Run("single day window is valid", func(t *testing.T) {
		s := newTestStore(t)
		svc := NewSessionService(s)

		_, err := svc.CreateSession(ctx, "Flash poll", "",
			model.NewDate(2024, time.June, 1), model.NewDate(2024, time.June, 1), "Residencial Aurora")
		assert.NoError(t, err)
	})
}

func TestDeleteSession(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		s := newTestStore(t)
		svc := NewSessionService(s)

		err := svc.DeleteSession(ctx, 9999)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})

	t.Run("rejected while votes exist", func(t *testing.T) {
		f := newFixture(t)
		svc := NewSessionService(f.store)

		_, err := f.guard.CastVote(ctx, f.session.ID, f.user.ID, true)
		require.NoError(t, err)

		err = svc.DeleteSession(ctx, f.session.ID)
		require.Error(t, err)
		assert.Equal(t, fault.KindConflict, fault.KindOf(err))

		// Removing the vote unblocks the delete.
		votes, err := f.guard.ListVotes(ctx, f.session.ID)
		require.NoError(t, err)
		_, err = f.guard.DeleteVote(ctx, votes[0].ID)
		require.NoError(t, err)

		require.NoError(t, svc.DeleteSession(ctx, f.session.ID))

		_, err = svc.GetSession(ctx, f.session.ID)
		assert.Equal(t, fault.KindNotFound, fault.KindOf(err))
	})
}

func TestListSessions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	svc := NewSessionService(f.store)

	sessions, err := svc.ListSessions(ctx)
	require.NoError(t, err)
	require.Len(t, sessions, 1)
	assert.Equal(t, "Renovate the pool deck", sessions[0].Proposal)
	assert.Equal(t, "Residencial Argus", sessions[0].CondominiumName)
	assert.Equal(t, "01/06/2024", sessions[0].OpensAt.String())
}
