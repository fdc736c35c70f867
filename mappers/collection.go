package mappers

import "github.com/appthemer/crowdfunding-payments.api/models"

// MapCollectionOutcomes gives every requested payment its outcome in request
// order. A payment with no recorded error was collected.
func MapCollectionOutcomes(paymentIDs []string, errs *models.CollectionErrorSet) []models.PaymentOutcome {
	outcomes := make([]models.PaymentOutcome, 0, len(paymentIDs))
	for _, id := range paymentIDs {
		status := models.Collected
		if len(errs.ForPayment(id)) > 0 {
			status = models.Errored
		}
		outcomes = append(outcomes, models.PaymentOutcome{PaymentID: id, Status: status})
	}
	return outcomes
}

// MapCollectedPaymentIDs returns the ids of the payments that were collected
func MapCollectedPaymentIDs(outcomes []models.PaymentOutcome) []string {
	collected := []string{}
	for _, outcome := range outcomes {
		if outcome.Status == models.Collected {
			collected = append(collected, outcome.PaymentID)
		}
	}
	return collected
}

// MapToCollectFundsResponse builds the response of a collection run
func MapToCollectFundsResponse(runID, campaignID string, receivers models.ReceiverSplit, paymentIDs []string, errs *models.CollectionErrorSet) models.CollectFundsResponse {
	outcomes := MapCollectionOutcomes(paymentIDs, errs)
	return models.CollectFundsResponse{
		RunID:      runID,
		CampaignID: campaignID,
		Receivers:  receivers,
		Collected:  MapCollectedPaymentIDs(outcomes),
		Outcomes:   outcomes,
		Errors:     errs.Errors(),
	}
}
