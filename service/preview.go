package service

import (
	"context"

	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/transformers"
	"golang.org/x/sync/errgroup"
)

// maxPreviewLoads limits the payments loaded at once by a preview
const maxPreviewLoads = 8

// CollectionPreviewService reports what a collection run would do without calling the gateway
type CollectionPreviewService struct {
	DAO dao.DAO
}

// PreviewCollection loads the requested payments and works out each receiver's share
func (s *CollectionPreviewService) PreviewCollection(ctx context.Context, campaignID string, paymentIDs []string, receivers models.ReceiverSplit) (*models.CollectionPreview, ResponseType, error) {
	previews := make([]models.PaymentPreview, len(paymentIDs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxPreviewLoads)

	for i, paymentID := range paymentIDs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			preview, err := s.previewPayment(paymentID, receivers)
			if err != nil {
				return err
			}
			previews[i] = preview
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, Error, err
	}

	return &models.CollectionPreview{
		CampaignID: campaignID,
		Receivers:  receivers,
		Payments:   previews,
	}, Success, nil
}

func (s *CollectionPreviewService) previewPayment(paymentID string, receivers models.ReceiverSplit) (models.PaymentPreview, error) {
	preview := models.PaymentPreview{PaymentID: paymentID}

	paymentDB, err := s.DAO.GetPendingPayment(paymentID)
	if err != nil {
		return preview, err
	}
	if paymentDB == nil {
		preview.Status = models.Uncollected
		return preview, nil
	}

	payment, err := transformers.PaymentTransformer{}.TransformToRest(*paymentDB)
	if err != nil {
		return preview, err
	}

	campaignAmount, ownerAmount := ReceiverAmounts(payment.Amount, receivers)

	preview.Found = true
	preview.Status = payment.CollectionStatus()
	preview.Amount = payment.Amount.StringFixed(2)
	preview.CampaignAmount = campaignAmount.StringFixed(2)
	preview.OwnerAmount = ownerAmount.StringFixed(2)

	return preview, nil
}
