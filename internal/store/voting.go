package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"argus-backend/internal/model"
)

// VotingStore covers voting sessions and votes. FindVoteBySessionAndUser is
// the duplicate-vote probe; the (session, user) unique index backs it.
type VotingStore interface {
	CreateVotingSession(ctx context.Context, vs *model.VotingSession) error
	GetVotingSession(ctx context.Context, id int64) (*model.VotingSession, error)
	ListVotingSessions(ctx context.Context) ([]model.VotingSession, error)
	DeleteVotingSession(ctx context.Context, id int64) error
	CountVotesBySession(ctx context.Context, sessionID int64) (int64, error)

	CreateVote(ctx context.Context, v *model.Vote) error
	GetVote(ctx context.Context, id int64) (*model.Vote, error)
	FindVoteBySessionAndUser(ctx context.Context, sessionID, userID int64) (*model.Vote, error)
	ListVotesBySession(ctx context.Context, sessionID int64) ([]model.Vote, error)
	DeleteVote(ctx context.Context, id int64) error
}

func (s *gormStore) CreateVotingSession(ctx context.Context, vs *model.VotingSession) error {
	return s.db.WithContext(ctx).Create(vs).Error
}

func (s *gormStore) GetVotingSession(ctx context.Context, id int64) (*model.VotingSession, error) {
	var vs model.VotingSession
	if err := s.db.WithContext(ctx).Preload("Condominium").First(&vs, id).Error; err != nil {
		return nil, err
	}
	return &vs, nil
}

func (s *gormStore) ListVotingSessions(ctx context.Context) ([]model.VotingSession, error) {
	var sessions []model.VotingSession
	if err := s.db.WithContext(ctx).Preload("Condominium").Find(&sessions).Error; err != nil {
		return nil, fmt.Errorf("failed to list voting sessions: %w", err)
	}
	return sessions, nil
}

func (s *gormStore) DeleteVotingSession(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.VotingSession{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (s *gormStore) CountVotesBySession(ctx context.Context, sessionID int64) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).Model(&model.Vote{}).Where("voting_session_id = ?", sessionID).Count(&n).Error
	return n, err
}

func (s *gormStore) CreateVote(ctx context.Context, v *model.Vote) error {
	return s.db.WithContext(ctx).Create(v).Error
}

func (s *gormStore) GetVote(ctx context.Context, id int64) (*model.Vote, error) {
	var v model.Vote
	if err := s.db.WithContext(ctx).Preload("VotingSession").Preload("User").First(&v, id).Error; err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *gormStore) FindVoteBySessionAndUser(ctx context.Context, sessionID, userID int64) (*model.Vote, error) {
	var v model.Vote
	err := s.db.WithContext(ctx).
		Where("voting_session_id = ? AND user_id = ?", sessionID, userID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (s *gormStore) ListVotesBySession(ctx context.Context, sessionID int64) ([]model.Vote, error) {
	var votes []model.Vote
	err := s.db.WithContext(ctx).
		Preload("VotingSession").
		Preload("User").
		Where("voting_session_id = ?", sessionID).
		Find(&votes).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list votes for session %d: %w", sessionID, err)
	}
	return votes, nil
}

func (s *gormStore) DeleteVote(ctx context.Context, id int64) error {
	res := s.db.WithContext(ctx).Delete(&model.Vote{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
