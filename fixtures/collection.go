package fixtures

import (
	"time"

	"github.com/appthemer/crowdfunding-payments.api/models"
)

// CampaignID is the id of the campaign used across handler tests
var CampaignID = "campaign-1"

// GetCampaign returns a campaign paid out to payee@example.com
func GetCampaign(campaignType models.CampaignType) *models.Campaign {
	return &models.Campaign{
		ID:            CampaignID,
		Title:         "Solar kettle",
		Type:          campaignType,
		CampaignEmail: " payee@example.com ",
		AuthorID:      "author",
		Permalink:     "https://example.com/campaigns/solar-kettle",
		CreatedAt:     time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC),
	}
}

// GetPreapprovedPayment returns an uncollected payment of the given amount
func GetPreapprovedPayment(id string, amount string) *models.PendingPaymentDB {
	return &models.PendingPaymentDB{
		ID:             id,
		Gateway:        models.GatewayAdaptivePayments,
		Status:         string(models.StatusPreapproval),
		UserID:         "backer",
		CampaignIDs:    []string{CampaignID},
		SenderEmail:    "backer@example.com",
		Amount:         amount,
		PreapprovalKey: "PA-" + id,
	}
}

// GetCollectedPayment returns a payment that was collected with the given pay key
func GetCollectedPayment(id string, amount string, payKey string) *models.PendingPaymentDB {
	payment := GetPreapprovedPayment(id, amount)
	payment.Status = string(models.StatusPublish)
	payment.PayKey = payKey
	payment.PreapprovalPaid = true
	return payment
}

// GetPayResponse returns a Pay response with the given acknowledgement
func GetPayResponse(ack string, payKey string) *models.PayResponse {
	return &models.PayResponse{
		ResponseEnvelope: models.ResponseEnvelope{
			Timestamp:     "2024-03-02T10:00:00.000-08:00",
			Ack:           ack,
			CorrelationID: "3b2f0a1c9d",
			Build:         "54404652",
		},
		PayKey:            payKey,
		PaymentExecStatus: "COMPLETED",
	}
}
