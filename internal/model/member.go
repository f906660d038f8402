package model

import "time"

const (
	MemberActive   = "ACTIVE"
	MemberInactive = "INACTIVE"
)

type Member struct {
	ID            string `gorm:"primaryKey"`
	ApplicationID string `gorm:"uniqueIndex"`
	Application   *Application
	Name          string
	Email         string `gorm:"uniqueIndex"`
	Company       string
	Phone         string
	Position      string
	Bio           string
	Expertise     []string `gorm:"serializer:json"`
	Status        string   `gorm:"index;default:ACTIVE"`
	JoinedAt      time.Time
}

type MemberDTO struct {
	ID            string          `json:"id"`
	ApplicationID string          `json:"applicationId"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	Company       string          `json:"company"`
	Phone         string          `json:"phone,omitempty"`
	Position      string          `json:"position,omitempty"`
	Bio           string          `json:"bio,omitempty"`
	Expertise     []string        `json:"expertise"`
	Status        string          `json:"status"`
	JoinedAt      time.Time       `json:"joinedAt"`
	Application   *ApplicationDTO `json:"application,omitempty"`
}

func (m *Member) DTO() *MemberDTO {
	if m == nil {
		return nil
	}

	return &MemberDTO{
		ID:            m.ID,
		ApplicationID: m.ApplicationID,
		Name:          m.Name,
		Email:         m.Email,
		Company:       m.Company,
		Phone:         m.Phone,
		Position:      m.Position,
		Bio:           m.Bio,
		Expertise:     m.Expertise,
		Status:        m.Status,
		JoinedAt:      m.JoinedAt,
		Application:   m.Application.DTO(),
	}
}
