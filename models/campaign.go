package models

import (
	"strings"
	"time"
)

// CampaignType is the funding mode of a campaign
type CampaignType string

// Funding modes supported by campaigns
const (
	CampaignFixed    CampaignType = "fixed"
	CampaignFlexible CampaignType = "flexible"
)

// CampaignDB is a campaign as stored in the DB
type CampaignDB struct {
	ID            string    `bson:"_id"`
	Title         string    `bson:"title"`
	Type          string    `bson:"type"`
	CampaignEmail string    `bson:"campaign_email"`
	AuthorID      string    `bson:"author_id"`
	Permalink     string    `bson:"permalink"`
	CreatedAt     time.Time `bson:"created_at,omitempty"`
}

// Campaign is a crowdfunding campaign that pledges are made against
type Campaign struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Type          CampaignType `json:"type"`
	CampaignEmail string       `json:"campaign_email"`
	AuthorID      string       `json:"author_id"`
	Permalink     string       `json:"permalink"`
	CreatedAt     time.Time    `json:"created_at"`
}

// IsFlexible reports whether funds are collected regardless of the goal being met
func (c Campaign) IsFlexible() bool {
	return c.Type == CampaignFlexible
}

// PayeeEmail is the PayPal account that receives the campaign share
func (c Campaign) PayeeEmail() string {
	return strings.TrimSpace(c.CampaignEmail)
}

// IsOwnedBy reports whether the given user authored the campaign
func (c Campaign) IsOwnedBy(userID string) bool {
	return userID != "" && c.AuthorID == userID
}

// PayeeEmailRequest is the body of a payee email edit
type PayeeEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}
