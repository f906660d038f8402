package service

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conectahub/conecta/internal/database"
	"github.com/conectahub/conecta/internal/model"
	"github.com/conectahub/conecta/internal/notify"
	"github.com/conectahub/conecta/internal/token"
	"github.com/conectahub/conecta/internal/validation"
)

type MemberService struct {
	dbm      *database.DatabaseManager
	codec    *token.Codec
	notifier notify.Notifier
	logger   *slog.Logger
}

func NewMemberService(dbm *database.DatabaseManager, codec *token.Codec, notifier notify.Notifier) *MemberService {
	return &MemberService{
		dbm:      dbm,
		codec:    codec,
		notifier: notifier,
		logger:   slog.With("logger", "members"),
	}
}

// CreateFromInvite completes a registration. The presented token must decode,
// reference an approved application, byte-match the token stored on that
// application and be unexpired, and the application must not have a member yet.
func (s *MemberService) CreateFromInvite(in *validation.MemberInput) (*model.Member, error) {
	claims := s.codec.Verify(in.InviteToken)
	if claims == nil {
		return nil, ErrInvalidToken
	}

	a := s.dbm.ApplicationQuery().Id(claims.ApplicationID).One()
	if a == nil {
		return nil, ErrNotFound
	}

	if a.Status != model.StatusApproved {
		return nil, ErrNotApproved
	}

	if a.Token() != in.InviteToken {
		return nil, ErrInvalidToken
	}

	if a.InviteTokenExpiry != nil && a.InviteTokenExpiry.Before(time.Now()) {
		return nil, ErrTokenExpired
	}

	if s.dbm.MemberQuery().Application(a.ID).One() != nil {
		return nil, ErrAlreadyRegistered
	}

	if s.dbm.MemberQuery().Email(a.Email).One() != nil {
		return nil, ErrAlreadyRegistered
	}

	m := &model.Member{
		ID:            uuid.NewString(),
		ApplicationID: a.ID,
		Name:          a.Name,
		Email:         a.Email,
		Company:       a.Company,
		Phone:         in.Phone,
		Position:      in.Position,
		Bio:           in.Bio,
		Expertise:     in.Expertise,
		Status:        model.MemberActive,
		JoinedAt:      time.Now(),
	}

	if err := s.dbm.Create(m); err != nil {
		return nil, err
	}

	s.logger.Info("member created", slog.String("id", m.ID), slog.String("application", a.ID))
	s.notifier.MemberJoined(m)

	return m, nil
}

// List returns every active member, most recent first. The directory is never
// paginated, so the query's default row cap is lifted.
func (s *MemberService) List() []*model.Member {
	return s.dbm.MemberQuery().Status(model.MemberActive).Limit(0).Get()
}

func (s *MemberService) FindByID(id string) (*model.Member, error) {
	m := s.dbm.MemberQuery().Id(id).Full().One()

	if m == nil {
		return nil, ErrMemberNotFound
	}

	return m, nil
}
