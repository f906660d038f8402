package model

import "time"

const (
	ReferralSent          = "SENT"
	ReferralInNegotiation = "IN_NEGOTIATION"
	ReferralClosed        = "CLOSED"
	ReferralDeclined      = "DECLINED"
)

// Referral is a business lead one member passed to another. The pipeline only
// counts and groups these, it never drives their lifecycle.
type Referral struct {
	ID          string `gorm:"primaryKey"`
	MemberID    string `gorm:"index"`
	Member      *Member
	Description string
	Status      string `gorm:"index;default:SENT"`
	CreatedAt   time.Time
}

// Thank is a public thank-you note between members, counted on the dashboard.
type Thank struct {
	ID        string `gorm:"primaryKey"`
	MemberID  string `gorm:"index"`
	Member    *Member
	Message   string
	CreatedAt time.Time
}
