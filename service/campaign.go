package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/transformers"
	"github.com/go-playground/validator/v10"
)

// Payee email validation error shown to the campaign owner
const (
	InvalidPayeeEmail        = "invalid-paypal-adaptive-email"
	InvalidPayeeEmailMessage = "Please make sure your PayPal email address is valid."
)

// ErrPayeeEmailLocked is returned when the payee email of a campaign with collected payments is edited
var ErrPayeeEmailLocked = errors.New("the payee email cannot be changed after funds have been collected")

// CampaignService reads campaigns and edits their payee email
type CampaignService struct {
	DAO dao.DAO
}

// GetCampaign returns the campaign with the given id
func (s *CampaignService) GetCampaign(id string) (*models.Campaign, ResponseType, error) {
	campaignDB, err := s.DAO.GetCampaign(id)
	if err != nil {
		return nil, Error, fmt.Errorf("error getting campaign from db: [%v]", err)
	}
	if campaignDB == nil {
		return nil, NotFound, fmt.Errorf("campaign not found. id: %s", id)
	}

	campaign := transformers.CampaignTransformer{}.TransformToRest(*campaignDB)
	return &campaign, Success, nil
}

// ValidatePayeeEmail checks the PayPal email submitted for a campaign
func ValidatePayeeEmail(request models.PayeeEmailRequest) error {
	request.Email = strings.TrimSpace(request.Email)
	if err := validator.New().Struct(request); err != nil {
		return fmt.Errorf("%s: %s", InvalidPayeeEmail, InvalidPayeeEmailMessage)
	}
	return nil
}

// UpdatePayeeEmail validates and stores the payee email of a campaign. Once
// any payment of the campaign has been collected the email can no longer change.
func (s *CampaignService) UpdatePayeeEmail(campaign models.Campaign, request models.PayeeEmailRequest) (*models.Campaign, ResponseType, error) {
	if err := ValidatePayeeEmail(request); err != nil {
		return nil, InvalidData, err
	}

	collected, err := s.DAO.CountCollectedPayments(campaign.ID)
	if err != nil {
		return nil, Error, fmt.Errorf("error counting collected payments: [%v]", err)
	}
	if collected > 0 {
		return nil, Conflict, ErrPayeeEmailLocked
	}

	email := strings.TrimSpace(request.Email)
	err = s.DAO.UpdateCampaignEmail(campaign.ID, email)
	if err != nil {
		return nil, Error, fmt.Errorf("error updating campaign email: [%v]", err)
	}

	campaign.CampaignEmail = email
	return &campaign, Success, nil
}
