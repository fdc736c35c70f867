package models

import (
	"github.com/shopspring/decimal"
)

// GatewayAdaptivePayments is the gateway name stored against payments taken
// through PayPal Adaptive Payments
const GatewayAdaptivePayments = "paypal_adaptive_payments"

// PaymentStatus is the lifecycle status of a payment
type PaymentStatus string

// Payment statuses used by the payments framework
const (
	StatusPending     PaymentStatus = "pending"
	StatusPreapproval PaymentStatus = "preapproval"
	StatusPublish     PaymentStatus = "publish"
	StatusRefunded    PaymentStatus = "refunded"
	StatusFailed      PaymentStatus = "failed"
	StatusRevoked     PaymentStatus = "revoked"
	StatusAbandoned   PaymentStatus = "abandoned"
)

// CollectionStatus describes where a payment is in the collection process
type CollectionStatus string

// Collection statuses
const (
	Uncollected CollectionStatus = "uncollected"
	Collected   CollectionStatus = "collected"
	Errored     CollectionStatus = "errored"
)

// PendingPaymentDB is a payment as stored in the DB
type PendingPaymentDB struct {
	ID              string   `bson:"_id"`
	Gateway         string   `bson:"gateway"`
	Status          string   `bson:"status"`
	UserID          string   `bson:"user_id,omitempty"`
	CampaignIDs     []string `bson:"downloads,omitempty"`
	SenderEmail     string   `bson:"epap_sender_email"`
	Amount          string   `bson:"epap_amount"`
	Paid            string   `bson:"epap_paid,omitempty"`
	PreapprovalKey  string   `bson:"epap_preapproval_key"`
	PayKey          string   `bson:"epap_pay_key,omitempty"`
	PreapprovalPaid bool     `bson:"epap_preapproval_paid,omitempty"`
}

// PendingPayment is a preapproved pledge waiting to be collected
type PendingPayment struct {
	ID              string          `json:"id"`
	Gateway         string          `json:"gateway"`
	Status          PaymentStatus   `json:"status"`
	UserID          string          `json:"user_id,omitempty"`
	CampaignIDs     []string        `json:"campaign_ids,omitempty"`
	SenderEmail     string          `json:"sender_email"`
	Amount          decimal.Decimal `json:"amount"`
	Paid            decimal.Decimal `json:"paid"`
	PreapprovalKey  string          `json:"preapproval_key"`
	PayKey          string          `json:"pay_key,omitempty"`
	PreapprovalPaid bool            `json:"preapproval_paid"`
}

// IsCollected reports whether the payment must not be sent to the gateway again
func (p PendingPayment) IsCollected() bool {
	return p.Paid.GreaterThan(p.Amount) || p.PreapprovalPaid
}

// CollectionStatus is the stored collection state of the payment
func (p PendingPayment) CollectionStatus() CollectionStatus {
	if p.IsCollected() {
		return Collected
	}
	return Uncollected
}

// PaymentStatusRequest is the body of a payment status transition
type PaymentStatusRequest struct {
	Status PaymentStatus `json:"status" validate:"required,oneof=pending preapproval publish refunded failed revoked abandoned"`
}
