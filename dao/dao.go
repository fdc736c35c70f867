package dao

import (
	"time"

	"github.com/appthemer/crowdfunding-payments.api/models"
)

// DAO is an interface for accessing campaigns, payments and users from a backend store.
// Getters return nil and no error when the resource does not exist.
type DAO interface {
	GetCampaign(id string) (*models.CampaignDB, error)
	UpdateCampaignEmail(id string, email string) error
	CountCampaignsByAuthorSince(authorID string, since time.Time) (int64, error)
	GetPendingPayment(id string) (*models.PendingPaymentDB, error)
	CountCollectedPayments(campaignID string) (int64, error)
	MarkPreapprovalPaid(id string, payKey string) error
	UpdatePaymentStatus(id string, status models.PaymentStatus) error
	GetUser(id string) (*models.UserDB, error)
	IncrementUserContributions(userID string, campaignIDs []string) error
}
