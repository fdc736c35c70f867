package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/transformers"
	"github.com/companieshouse/chs.go/log"
)

// Messages recorded against failed collections
const (
	AlreadyCollectedMessage = "This payment has already been collected."
	PaymentErrorMessage     = "There was an error."
)

// PaymentStatusUpdater transitions the status of a payment
type PaymentStatusUpdater interface {
	UpdatePaymentStatus(id string, newStatus models.PaymentStatus) (ResponseType, error)
}

// PreapprovalCollector redeems the preapprovals of a batch of pledges
type PreapprovalCollector struct {
	DAO      dao.DAO
	Gateway  PreapprovalGateway
	Statuses PaymentStatusUpdater
	Config   config.Config
}

// Collect sends every payment to the gateway in turn. A failure only affects
// its own payment and is recorded in the returned set; payments without an
// entry in the set were collected.
func (c *PreapprovalCollector) Collect(ctx context.Context, paymentIDs []string, receivers models.ReceiverSplit) *models.CollectionErrorSet {
	errs := models.NewCollectionErrorSet()

	for _, paymentID := range paymentIDs {
		c.collectPayment(ctx, paymentID, receivers, errs)
	}

	log.Info("collection run complete", log.Data{"payments": len(paymentIDs), "errors": errs.Len()})

	return errs
}

func (c *PreapprovalCollector) collectPayment(ctx context.Context, paymentID string, receivers models.ReceiverSplit, errs *models.CollectionErrorSet) {
	payment, err := c.loadPayment(paymentID)
	if err != nil {
		log.Error(fmt.Errorf("error loading payment for collection: [%v]", err), log.Data{"payment_id": paymentID})
		errs.Add(models.CollectionError{
			PaymentID: paymentID,
			Kind:      models.PaymentError,
			Message:   PaymentErrorMessage,
			Context:   map[string]interface{}{"error": err.Error()},
		})
		return
	}

	// Already paid or other error
	if payment.IsCollected() {
		errs.Add(models.CollectionError{
			PaymentID: paymentID,
			Kind:      models.AlreadyPaid,
			Message:   AlreadyCollectedMessage,
		})
		return
	}

	request := models.PreapprovalPayment{
		PaymentID:      paymentID,
		PreapprovalKey: payment.PreapprovalKey,
		SenderEmail:    payment.SenderEmail,
		Amount:         payment.Amount,
		Receivers:      receivers,
	}

	response, err := c.Gateway.PayPreapprovals(ctx, request)
	if err != nil || response == nil {
		errContext := map[string]interface{}{}
		if err != nil {
			log.Error(fmt.Errorf("error collecting payment from PayPal: [%v]", err), log.Data{"payment_id": paymentID})
			errContext["error"] = err.Error()
		}
		errs.Add(models.CollectionError{
			PaymentID: paymentID,
			Kind:      models.PaymentError,
			Message:   PaymentErrorMessage,
			Context:   errContext,
		})
		return
	}

	responseCode := strings.ToUpper(response.ResponseEnvelope.Ack)
	if responseCode != AckSuccess && responseCode != AckSuccessWithWarning {
		diagnostics := responseContext(response, request)
		errs.Add(models.CollectionError{
			PaymentID: paymentID,
			Kind:      models.InvalidResponse,
			Message: fmt.Sprintf("There was an error collecting funds for payment #%s (%s). PayPal responded with %s",
				paymentID, c.adminURL(paymentID), dumpContext(diagnostics)),
			Context: diagnostics,
		})
		return
	}

	err = c.DAO.MarkPreapprovalPaid(paymentID, response.PayKey)
	if err == nil {
		_, err = c.Statuses.UpdatePaymentStatus(paymentID, models.StatusPublish)
	}
	if err != nil {
		log.Error(fmt.Errorf("payment collected but not recorded: [%v]", err), log.Data{"payment_id": paymentID, "pay_key": response.PayKey})
		errs.Add(models.CollectionError{
			PaymentID: paymentID,
			Kind:      models.RecordError,
			Message:   fmt.Sprintf("Funds were collected for payment #%s with pay key %s but the payment could not be updated.", paymentID, response.PayKey),
			Context:   map[string]interface{}{"pay_key": response.PayKey, "error": err.Error()},
		})
		return
	}

	log.Info("payment collected", log.Data{"payment_id": paymentID, "pay_key": response.PayKey, "ack": responseCode})
}

func (c *PreapprovalCollector) loadPayment(paymentID string) (*models.PendingPayment, error) {
	paymentDB, err := c.DAO.GetPendingPayment(paymentID)
	if err != nil {
		return nil, fmt.Errorf("error getting payment from db: [%v]", err)
	}
	if paymentDB == nil {
		return nil, fmt.Errorf("payment not found. id: %s", paymentID)
	}

	payment, err := transformers.PaymentTransformer{}.TransformToRest(*paymentDB)
	if err != nil {
		return nil, err
	}

	return &payment, nil
}

func (c *PreapprovalCollector) adminURL(paymentID string) string {
	return fmt.Sprintf("%s/%s", strings.TrimRight(c.Config.PaymentAdminURL, "/"), paymentID)
}

// responseContext merges the gateway response with the request that produced it
func responseContext(response *models.PayResponse, request models.PreapprovalPayment) map[string]interface{} {
	return map[string]interface{}{
		"responseEnvelope": response.ResponseEnvelope,
		"payKey":           response.PayKey,
		"error":            response.Error,
		"payment_id":       request.PaymentID,
		"preapproval_key":  request.PreapprovalKey,
		"sender_email":     request.SenderEmail,
		"amount":           request.Amount.StringFixed(2),
		"receivers":        request.Receivers,
	}
}

func dumpContext(diagnostics map[string]interface{}) string {
	dump, err := json.MarshalIndent(diagnostics, "", "  ")
	if err != nil {
		return fmt.Sprintf("%v", diagnostics)
	}
	return string(dump)
}
