package model

import "time"

const (
	StatusPending  = "PENDING"
	StatusApproved = "APPROVED"
	StatusRejected = "REJECTED"
)

type Application struct {
	ID                string `gorm:"primaryKey"`
	Name              string
	Email             string `gorm:"uniqueIndex"`
	Company           string
	Motivation        string
	Status            string `gorm:"index;default:PENDING"`
	SubmittedAt       time.Time
	ReviewedBy        string
	ReviewedAt        *time.Time
	InviteToken       *string `gorm:"uniqueIndex"`
	InviteTokenExpiry *time.Time
}

type ApplicationDTO struct {
	ID                string     `json:"id"`
	Name              string     `json:"name"`
	Email             string     `json:"email"`
	Company           string     `json:"company"`
	Motivation        string     `json:"motivation"`
	Status            string     `json:"status"`
	SubmittedAt       time.Time  `json:"submittedAt"`
	ReviewedBy        string     `json:"reviewedBy,omitempty"`
	ReviewedAt        *time.Time `json:"reviewedAt,omitempty"`
	InviteToken       string     `json:"inviteToken,omitempty"`
	InviteTokenExpiry *time.Time `json:"inviteTokenExpiry,omitempty"`
}

func (a *Application) IsPending() bool {
	return a != nil && a.Status == StatusPending
}

func (a *Application) Token() string {
	if a == nil || a.InviteToken == nil {
		return ""
	}

	return *a.InviteToken
}

func (a *Application) DTO() *ApplicationDTO {
	if a == nil {
		return nil
	}

	return &ApplicationDTO{
		ID:                a.ID,
		Name:              a.Name,
		Email:             a.Email,
		Company:           a.Company,
		Motivation:        a.Motivation,
		Status:            a.Status,
		SubmittedAt:       a.SubmittedAt,
		ReviewedBy:        a.ReviewedBy,
		ReviewedAt:        a.ReviewedAt,
		InviteToken:       a.Token(),
		InviteTokenExpiry: a.InviteTokenExpiry,
	}
}
