package models

import "github.com/shopspring/decimal"

// PreapprovalPayment is everything the gateway needs to redeem a preapproval
type PreapprovalPayment struct {
	PaymentID      string          `json:"payment_id"`
	PreapprovalKey string          `json:"preapproval_key"`
	SenderEmail    string          `json:"sender_email"`
	Amount         decimal.Decimal `json:"amount"`
	Receivers      ReceiverSplit   `json:"receivers"`
}

// OutgoingPayRequest is the request sent to the Adaptive Payments Pay operation
type OutgoingPayRequest struct {
	ActionType      string          `json:"actionType"`
	CurrencyCode    string          `json:"currencyCode"`
	FeesPayer       string          `json:"feesPayer,omitempty"`
	PreapprovalKey  string          `json:"preapprovalKey"`
	SenderEmail     string          `json:"senderEmail"`
	TrackingID      string          `json:"trackingId,omitempty"`
	ReturnURL       string          `json:"returnUrl"`
	CancelURL       string          `json:"cancelUrl"`
	ReceiverList    ReceiverList    `json:"receiverList"`
	RequestEnvelope RequestEnvelope `json:"requestEnvelope"`
}

// ReceiverList wraps the receivers of a Pay request
type ReceiverList struct {
	Receiver []PayReceiver `json:"receiver"`
}

// PayReceiver is a single receiver and the amount it is paid
type PayReceiver struct {
	Amount string `json:"amount"`
	Email  string `json:"email"`
}

// RequestEnvelope is common to every Adaptive Payments request
type RequestEnvelope struct {
	ErrorLanguage string `json:"errorLanguage"`
}

// PayResponse is the response of the Adaptive Payments Pay operation
type PayResponse struct {
	ResponseEnvelope  ResponseEnvelope `json:"responseEnvelope"`
	PayKey            string           `json:"payKey,omitempty"`
	PaymentExecStatus string           `json:"paymentExecStatus,omitempty"`
	Error             []PayError       `json:"error,omitempty"`
}

// ResponseEnvelope carries the acknowledgement code of a response
type ResponseEnvelope struct {
	Timestamp     string `json:"timestamp,omitempty"`
	Ack           string `json:"ack"`
	CorrelationID string `json:"correlationId,omitempty"`
	Build         string `json:"build,omitempty"`
}

// PayError is an error reported by PayPal
type PayError struct {
	ErrorID  string `json:"errorId"`
	Domain   string `json:"domain,omitempty"`
	Severity string `json:"severity,omitempty"`
	Category string `json:"category,omitempty"`
	Message  string `json:"message"`
}
