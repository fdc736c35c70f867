package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/shopspring/decimal"
)

// Pledge limit notices shown to the user
const (
	PledgeLimitReached    = "pledge-limit-reached"
	PledgeLimitMessage    = "You have reached the maximum number of pledges-per-campaign allowed."
	DonationLimitExceeded = "donation-limit-exceeded"
	DonationLimitMessage  = "Your pledge is more than the maximum amount allowed."
	CampaignLimitReached  = "campaign-limit-reached"
	CampaignLimitMessage  = "You have reached the maximum number of campaigns allowed this year."
)

// LimitError is returned when a pledge or campaign limit stops an action
type LimitError struct {
	Code    string
	Message string
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// PledgeLimitService enforces the gateway's pledge and campaign limits
type PledgeLimitService struct {
	DAO      dao.DAO
	Settings config.Settings
	Now      func() time.Time
}

// CheckPledge decides whether a user may add a pledge to the given campaign.
// Logged out users are not counted and always pass the per-user check.
func (s *PledgeLimitService) CheckPledge(userID, campaignID string, amount string) (*models.PledgeCheckResponse, ResponseType, error) {
	response := &models.PledgeCheckResponse{
		CampaignID: campaignID,
		Allowed:    true,
		MaxPledges: s.Settings.PaymentsPerUser,
	}

	if strings.TrimSpace(amount) != "" {
		pledge, err := decimal.NewFromString(strings.TrimSpace(amount))
		if err != nil {
			return nil, InvalidData, fmt.Errorf("invalid pledge amount [%s]: [%v]", amount, err)
		}
		if !pledge.IsPositive() {
			return nil, InvalidData, fmt.Errorf("invalid pledge amount [%s]: must be greater than zero", amount)
		}
		if s.Settings.MaxDonation.Valid && pledge.GreaterThan(s.Settings.MaxDonation.Decimal) {
			response.Allowed = false
			return response, LimitReached, &LimitError{Code: DonationLimitExceeded, Message: DonationLimitMessage}
		}
	}

	if userID == "" || s.Settings.PaymentsPerUser == 0 {
		return response, Success, nil
	}

	user, err := s.DAO.GetUser(userID)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting user from db: [%v]", err)
	}
	if user == nil {
		return response, Success, nil
	}

	response.Pledges = user.PledgesTo(campaignID)
	if response.Pledges >= s.Settings.PaymentsPerUser {
		response.Allowed = false
		return response, LimitReached, &LimitError{Code: PledgeLimitReached, Message: PledgeLimitMessage}
	}

	return response, Success, nil
}

// CheckCampaignAllowance reports whether a user may create another campaign this calendar year
func (s *PledgeLimitService) CheckCampaignAllowance(userID string) (*models.CampaignAllowanceResponse, ResponseType, error) {
	if userID == "" {
		return nil, InvalidData, errors.New("user id not supplied")
	}

	response := &models.CampaignAllowanceResponse{Allowed: true, Limit: s.Settings.CampaignsPerYear}

	now := s.now()
	startOfYear := time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location())

	created, err := s.DAO.CountCampaignsByAuthorSince(userID, startOfYear)
	if err != nil {
		return nil, Error, fmt.Errorf("error counting campaigns for user: [%v]", err)
	}
	response.Created = created

	if s.Settings.CampaignsPerYear == 0 {
		return response, Success, nil
	}

	response.Remaining = int64(s.Settings.CampaignsPerYear) - created
	if response.Remaining <= 0 {
		response.Remaining = 0
		response.Allowed = false
		return response, LimitReached, &LimitError{Code: CampaignLimitReached, Message: CampaignLimitMessage}
	}

	return response, Success, nil
}

func (s *PledgeLimitService) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}
