package models

import "fmt"

// Receiver is one leg of a split payment
type Receiver struct {
	Email   string `json:"email"`
	Percent int    `json:"percent"`
}

// ReceiverSplit is the campaign and platform owner share of every collected payment
type ReceiverSplit struct {
	Campaign Receiver `json:"campaign"`
	Owner    Receiver `json:"owner"`
}

// Receivers returns the receivers in the order they are sent to the gateway
func (rs ReceiverSplit) Receivers() []Receiver {
	return []Receiver{rs.Campaign, rs.Owner}
}

// CollectionErrorKind classifies a failed collection
type CollectionErrorKind int

// Enumeration of the per-payment collection failures
const (
	AlreadyPaid CollectionErrorKind = 1 + iota
	InvalidResponse
	PaymentError
	RecordError
)

var collectionErrorKinds = [...]string{
	"already-paid",
	"invalid-response",
	"payment-error",
	"record-error",
}

func (k CollectionErrorKind) String() string {
	if k < AlreadyPaid || int(k) > len(collectionErrorKinds) {
		return "unknown"
	}
	return collectionErrorKinds[k-1]
}

// MarshalText renders the kind by name in JSON responses
func (k CollectionErrorKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText reads a kind from its name
func (k *CollectionErrorKind) UnmarshalText(text []byte) error {
	for i, name := range collectionErrorKinds {
		if name == string(text) {
			*k = CollectionErrorKind(i + 1)
			return nil
		}
	}
	return fmt.Errorf("unknown collection error kind [%s]", text)
}

// CollectionError is a single per-payment failure of a collection run
type CollectionError struct {
	PaymentID string                 `json:"payment_id"`
	Kind      CollectionErrorKind    `json:"kind"`
	Message   string                 `json:"message"`
	Context   map[string]interface{} `json:"context,omitempty"`
}

// Key is the namespaced identifier of the failure, e.g. already-paid-123
func (e CollectionError) Key() string {
	return fmt.Sprintf("%s-%s", e.Kind, e.PaymentID)
}

// CollectionErrorSet accumulates collection failures in the order they occur
type CollectionErrorSet struct {
	errors []CollectionError
}

// NewCollectionErrorSet returns an empty error set
func NewCollectionErrorSet() *CollectionErrorSet {
	return &CollectionErrorSet{errors: []CollectionError{}}
}

// Add records a failure
func (s *CollectionErrorSet) Add(e CollectionError) {
	s.errors = append(s.errors, e)
}

// Errors returns the recorded failures in insertion order
func (s *CollectionErrorSet) Errors() []CollectionError {
	return append([]CollectionError{}, s.errors...)
}

// ForPayment returns the failures recorded for a payment
func (s *CollectionErrorSet) ForPayment(paymentID string) []CollectionError {
	var found []CollectionError
	for _, e := range s.errors {
		if e.PaymentID == paymentID {
			found = append(found, e)
		}
	}
	return found
}

// Has reports whether a failure with the given key was recorded
func (s *CollectionErrorSet) Has(key string) bool {
	for _, e := range s.errors {
		if e.Key() == key {
			return true
		}
	}
	return false
}

// Len is the number of recorded failures
func (s *CollectionErrorSet) Len() int {
	return len(s.errors)
}

// IsEmpty reports whether every payment was collected
func (s *CollectionErrorSet) IsEmpty() bool {
	return len(s.errors) == 0
}

// IncomingCollectFundsRequest is the body of a collect funds request
type IncomingCollectFundsRequest struct {
	Payments []string `json:"payments" validate:"required,min=1,unique,dive,required"`
}

// PaymentOutcome is the result of collecting a single payment
type PaymentOutcome struct {
	PaymentID string           `json:"payment_id"`
	Status    CollectionStatus `json:"status"`
}

// CollectFundsResponse is returned once a collection run has completed
type CollectFundsResponse struct {
	RunID      string            `json:"run_id"`
	CampaignID string            `json:"campaign_id"`
	Receivers  ReceiverSplit     `json:"receivers"`
	Collected  []string          `json:"collected"`
	Outcomes   []PaymentOutcome  `json:"outcomes"`
	Errors     []CollectionError `json:"errors"`
}

// PaymentPreview is the read-only state of a payment before collection
type PaymentPreview struct {
	PaymentID      string           `json:"payment_id"`
	Status         CollectionStatus `json:"status"`
	Amount         string           `json:"amount,omitempty"`
	CampaignAmount string           `json:"campaign_amount,omitempty"`
	OwnerAmount    string           `json:"owner_amount,omitempty"`
	Found          bool             `json:"found"`
}

// CollectionPreview is returned by the collection preview endpoint
type CollectionPreview struct {
	CampaignID string           `json:"campaign_id"`
	Receivers  ReceiverSplit    `json:"receivers"`
	Payments   []PaymentPreview `json:"payments"`
}
