package service

import (
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/conectahub/conecta/internal/database"
	"github.com/conectahub/conecta/internal/model"
	"github.com/conectahub/conecta/internal/notify"
	"github.com/conectahub/conecta/internal/token"
	"github.com/conectahub/conecta/internal/validation"
)

type ApplicationService struct {
	dbm      *database.DatabaseManager
	codec    *token.Codec
	notifier notify.Notifier
	baseURL  string
	logger   *slog.Logger
}

func NewApplicationService(dbm *database.DatabaseManager, codec *token.Codec, notifier notify.Notifier, baseURL string) *ApplicationService {
	return &ApplicationService{
		dbm:      dbm,
		codec:    codec,
		notifier: notifier,
		baseURL:  baseURL,
		logger:   slog.With("logger", "applications"),
	}
}

func (s *ApplicationService) Create(in *validation.ApplicationInput) (*model.Application, error) {
	if s.dbm.ApplicationQuery().Email(in.Email).One() != nil {
		return nil, ErrDuplicateEmail
	}

	a := &model.Application{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Email:       in.Email,
		Company:     in.Company,
		Motivation:  in.Motivation,
		Status:      model.StatusPending,
		SubmittedAt: time.Now(),
	}

	if err := s.dbm.Create(a); err != nil {
		return nil, err
	}

	s.notifier.ApplicationReceived(a)

	return a, nil
}

type Page struct {
	Items      []*model.Application
	Page       int
	Limit      int
	Total      int64
	TotalPages int
}

func (s *ApplicationService) List(q *validation.ListQuery) *Page {
	items := s.dbm.ApplicationQuery().
		Status(q.Status).
		Limit(q.Limit).
		Offset((q.Page - 1) * q.Limit).
		Get()

	total := s.dbm.ApplicationQuery().Status(q.Status).Count()

	return &Page{
		Items:      items,
		Page:       q.Page,
		Limit:      q.Limit,
		Total:      total,
		TotalPages: int((total + int64(q.Limit) - 1) / int64(q.Limit)),
	}
}

func (s *ApplicationService) FindByID(id string) (*model.Application, error) {
	a := s.dbm.ApplicationQuery().Id(id).One()

	if a == nil {
		return nil, ErrNotFound
	}

	return a, nil
}

// InviteLink is the URL an approved applicant completes registration on.
func (s *ApplicationService) InviteLink(a *model.Application) string {
	if a == nil || a.InviteToken == nil {
		return ""
	}

	return s.baseURL + "/cadastro/" + *a.InviteToken
}

// Approve transitions a pending application to APPROVED and issues its invite
// token. The write is conditional on status so two concurrent reviews cannot
// both win.
func (s *ApplicationService) Approve(id, reviewedBy string) (*model.Application, error) {
	a, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !a.IsPending() {
		return nil, ErrAlreadyReviewed
	}

	inviteToken, expiry, err := s.codec.Issue(a.ID, a.Email)
	if err != nil {
		return nil, err
	}

	err = s.dbm.ApplicationQuery().Id(id).Status(model.StatusPending).Update(map[string]any{
		"status":              model.StatusApproved,
		"reviewed_by":         reviewedBy,
		"reviewed_at":         time.Now(),
		"invite_token":        inviteToken,
		"invite_token_expiry": expiry,
	})

	if errors.Is(err, database.ErrNoRowsUpdated) {
		return nil, ErrAlreadyReviewed
	}

	if err != nil {
		return nil, err
	}

	a = s.dbm.ApplicationQuery().Id(id).One()

	s.logger.Info("application approved", slog.String("id", id), slog.String("by", reviewedBy))
	s.notifier.ApplicationApproved(a, s.InviteLink(a))

	return a, nil
}

func (s *ApplicationService) Reject(id, reviewedBy string) (*model.Application, error) {
	a, err := s.FindByID(id)
	if err != nil {
		return nil, err
	}

	if !a.IsPending() {
		return nil, ErrAlreadyReviewed
	}

	err = s.dbm.ApplicationQuery().Id(id).Status(model.StatusPending).Update(map[string]any{
		"status":      model.StatusRejected,
		"reviewed_by": reviewedBy,
		"reviewed_at": time.Now(),
	})

	if errors.Is(err, database.ErrNoRowsUpdated) {
		return nil, ErrAlreadyReviewed
	}

	if err != nil {
		return nil, err
	}

	a = s.dbm.ApplicationQuery().Id(id).One()

	s.logger.Info("application rejected", slog.String("id", id), slog.String("by", reviewedBy))
	s.notifier.ApplicationRejected(a)

	return a, nil
}
