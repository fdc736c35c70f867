package models

// UserDB is the subset of a user record used for pledge limits
type UserDB struct {
	ID            string         `bson:"_id"`
	ContributedTo map[string]int `bson:"atcf_contributed_to,omitempty"`
}

// PledgesTo returns the number of prior pledges the user made to a campaign
func (u UserDB) PledgesTo(campaignID string) int {
	if u.ContributedTo == nil {
		return 0
	}
	return u.ContributedTo[campaignID]
}

// PledgeRequest is the body of a pledge limit check
type PledgeRequest struct {
	Amount string `json:"amount" validate:"omitempty,numeric"`
}

// PledgeCheckResponse is returned when a pledge is allowed
type PledgeCheckResponse struct {
	CampaignID string `json:"campaign_id"`
	Allowed    bool   `json:"allowed"`
	Pledges    int    `json:"pledges"`
	MaxPledges int    `json:"max_pledges,omitempty"`
}

// CampaignAllowanceResponse reports how many campaigns a user may still create
type CampaignAllowanceResponse struct {
	Allowed   bool  `json:"allowed"`
	Created   int64 `json:"created"`
	Limit     int   `json:"limit,omitempty"`
	Remaining int64 `json:"remaining,omitempty"`
}
