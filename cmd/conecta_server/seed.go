package main

import (
	"time"

	"github.com/google/uuid"

	"github.com/conectahub/conecta/internal/model"
)

// seed loads demo data for local development. It is a no-op when the database
// already has applications.
func (app *App) seed() {
	if app.dbm.ApplicationQuery().Count() > 0 {
		app.logger.Info("seed skipped, database not empty")

		return
	}

	now := time.Now()

	pending := []*model.Application{
		{
			ID:          uuid.NewString(),
			Name:        "Mariana Costa",
			Email:       "mariana@exemplo.com.br",
			Company:     "Costa Consultoria",
			Motivation:  "Quero trocar indicações com profissionais de outras áreas e expandir minha rede de contatos em São Paulo.",
			Status:      model.StatusPending,
			SubmittedAt: now.Add(-48 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			Name:        "Rafael Lima",
			Email:       "rafael@exemplo.com.br",
			Company:     "Lima Engenharia",
			Motivation:  "Busco parceiros de negócio confiáveis e um espaço para indicar clientes que não atendo diretamente.",
			Status:      model.StatusPending,
			SubmittedAt: now.Add(-24 * time.Hour),
		},
	}

	for _, a := range pending {
		_ = app.dbm.Create(a)
	}

	reviewedAt := now.Add(-72 * time.Hour)

	approved := &model.Application{
		ID:          uuid.NewString(),
		Name:        "Ana Souza",
		Email:       "ana@exemplo.com.br",
		Company:     "Souza Marketing",
		Motivation:  "Trabalho com marketing digital há dez anos e quero contribuir com a comunidade indicando bons fornecedores.",
		Status:      model.StatusApproved,
		SubmittedAt: now.Add(-96 * time.Hour),
		ReviewedBy:  "admin",
		ReviewedAt:  &reviewedAt,
	}
	_ = app.dbm.Create(approved)

	member := &model.Member{
		ID:            uuid.NewString(),
		ApplicationID: approved.ID,
		Name:          approved.Name,
		Email:         approved.Email,
		Company:       approved.Company,
		Phone:         "+55 11 99999-0000",
		Position:      "Diretora de Marketing",
		Bio:           "Especialista em marketing digital e growth para pequenas empresas.",
		Expertise:     []string{"marketing", "growth", "branding"},
		Status:        model.MemberActive,
		JoinedAt:      now.Add(-60 * time.Hour),
	}
	_ = app.dbm.Create(member)

	referrals := []*model.Referral{
		{
			ID:          uuid.NewString(),
			MemberID:    member.ID,
			Description: "Cliente procurando agência de tráfego pago",
			Status:      model.ReferralSent,
			CreatedAt:   now.Add(-30 * time.Hour),
		},
		{
			ID:          uuid.NewString(),
			MemberID:    member.ID,
			Description: "Contato interessado em consultoria financeira",
			Status:      model.ReferralClosed,
			CreatedAt:   now.Add(-20 * time.Hour),
		},
	}

	for _, r := range referrals {
		_ = app.dbm.Create(r)
	}

	_ = app.dbm.Create(&model.Thank{
		ID:        uuid.NewString(),
		MemberID:  member.ID,
		Message:   "Obrigada pela indicação, fechamos o contrato!",
		CreatedAt: now.Add(-10 * time.Hour),
	})

	app.logger.Info("seed data loaded")
}
