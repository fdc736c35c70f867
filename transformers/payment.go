package transformers

import (
	"fmt"
	"strings"

	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/shopspring/decimal"
)

// Transformer is an interface for all transformer implementations to implement
type Transformer interface {
	TransformToDB(interface{}) interface{}
	TransformToRest(interface{}) interface{}
}

// PaymentTransformer transforms pending payments between rest and database models
type PaymentTransformer struct{}

// TransformToDB transforms a pending payment into its database model
func (pt PaymentTransformer) TransformToDB(rest models.PendingPayment) models.PendingPaymentDB {
	paymentDB := models.PendingPaymentDB{
		ID:              rest.ID,
		Gateway:         rest.Gateway,
		Status:          string(rest.Status),
		UserID:          rest.UserID,
		CampaignIDs:     rest.CampaignIDs,
		SenderEmail:     rest.SenderEmail,
		Amount:          rest.Amount.StringFixed(2),
		PreapprovalKey:  rest.PreapprovalKey,
		PayKey:          rest.PayKey,
		PreapprovalPaid: rest.PreapprovalPaid,
	}

	if !rest.Paid.IsZero() {
		paymentDB.Paid = rest.Paid.StringFixed(2)
	}

	return paymentDB
}

// TransformToRest transforms a pending payment database model into the rest model.
// An unset paid amount is treated as zero.
func (pt PaymentTransformer) TransformToRest(dbResource models.PendingPaymentDB) (models.PendingPayment, error) {
	amount, err := parseAmount(dbResource.Amount)
	if err != nil {
		return models.PendingPayment{}, fmt.Errorf("invalid amount for payment [%s]: [%v]", dbResource.ID, err)
	}

	paid, err := parseAmount(dbResource.Paid)
	if err != nil {
		return models.PendingPayment{}, fmt.Errorf("invalid paid amount for payment [%s]: [%v]", dbResource.ID, err)
	}

	payment := models.PendingPayment{
		ID:              dbResource.ID,
		Gateway:         dbResource.Gateway,
		Status:          models.PaymentStatus(dbResource.Status),
		UserID:          dbResource.UserID,
		CampaignIDs:     dbResource.CampaignIDs,
		SenderEmail:     strings.TrimSpace(dbResource.SenderEmail),
		Amount:          amount,
		Paid:            paid,
		PreapprovalKey:  dbResource.PreapprovalKey,
		PayKey:          dbResource.PayKey,
		PreapprovalPaid: dbResource.PreapprovalPaid,
	}
	return payment, nil
}

// CampaignTransformer transforms campaigns between rest and database models
type CampaignTransformer struct{}

// TransformToDB transforms a campaign into its database model
func (ct CampaignTransformer) TransformToDB(rest models.Campaign) models.CampaignDB {
	return models.CampaignDB{
		ID:            rest.ID,
		Title:         rest.Title,
		Type:          string(rest.Type),
		CampaignEmail: rest.CampaignEmail,
		AuthorID:      rest.AuthorID,
		Permalink:     rest.Permalink,
		CreatedAt:     rest.CreatedAt,
	}
}

// TransformToRest transforms a campaign database model into the rest model.
// Anything other than a flexible campaign is treated as fixed.
func (ct CampaignTransformer) TransformToRest(dbResource models.CampaignDB) models.Campaign {
	campaignType := models.CampaignFixed
	if models.CampaignType(dbResource.Type) == models.CampaignFlexible {
		campaignType = models.CampaignFlexible
	}

	return models.Campaign{
		ID:            dbResource.ID,
		Title:         dbResource.Title,
		Type:          campaignType,
		CampaignEmail: dbResource.CampaignEmail,
		AuthorID:      dbResource.AuthorID,
		Permalink:     dbResource.Permalink,
		CreatedAt:     dbResource.CreatedAt,
	}
}

func parseAmount(value string) (decimal.Decimal, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(value)
}
