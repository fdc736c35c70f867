package service

import (
	"fmt"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/companieshouse/chs.go/log"
)

// PaymentStatusService transitions payments between statuses and keeps the
// per-user pledge counters in step
type PaymentStatusService struct {
	DAO      dao.DAO
	Settings config.Settings
}

// UpdatePaymentStatus writes the new status of a payment and records the pledge
// against the user when the payment leaves the pending status
func (s *PaymentStatusService) UpdatePaymentStatus(id string, newStatus models.PaymentStatus) (ResponseType, error) {
	paymentDB, err := s.DAO.GetPendingPayment(id)
	if err != nil {
		return Error, fmt.Errorf("error getting payment from db: [%v]", err)
	}
	if paymentDB == nil {
		return NotFound, fmt.Errorf("payment not found. id: %s", id)
	}

	oldStatus := models.PaymentStatus(paymentDB.Status)

	err = s.DAO.UpdatePaymentStatus(id, newStatus)
	if err != nil {
		return Error, fmt.Errorf("error updating payment status: [%v]", err)
	}

	// the status is already stored so a missed counter is logged, not returned
	err = s.logPaymentsPerUser(*paymentDB, newStatus, oldStatus)
	if err != nil {
		log.Error(err, log.Data{"payment_id": id, "user_id": paymentDB.UserID, "status": newStatus})
	}

	return Success, nil
}

func (s *PaymentStatusService) logPaymentsPerUser(payment models.PendingPaymentDB, newStatus, oldStatus models.PaymentStatus) error {
	if s.Settings.PaymentsPerUser == 0 {
		return nil
	}

	if oldStatus != models.StatusPending {
		return nil
	}

	switch newStatus {
	case models.StatusRefunded, models.StatusFailed, models.StatusRevoked:
		return nil
	}

	if payment.Gateway != models.GatewayAdaptivePayments {
		return nil
	}

	if payment.UserID == "" || len(payment.CampaignIDs) == 0 {
		return nil
	}

	err := s.DAO.IncrementUserContributions(payment.UserID, payment.CampaignIDs)
	if err != nil {
		return fmt.Errorf("error recording pledge for user: [%v]", err)
	}

	log.Info("recorded pledge against user", log.Data{
		"payment_id":   payment.ID,
		"user_id":      payment.UserID,
		"campaign_ids": payment.CampaignIDs,
	})

	return nil
}
