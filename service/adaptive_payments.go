package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/companieshouse/chs.go/log"
)

// Adaptive Payments API endpoints
const (
	AdaptivePaymentsBaseSandbox = "https://svcs.sandbox.paypal.com/AdaptivePayments"
	AdaptivePaymentsBaseLive    = "https://svcs.paypal.com/AdaptivePayments"
)

// Acknowledgement codes returned in a PayPal response envelope
const (
	AckSuccess            = "SUCCESS"
	AckSuccessWithWarning = "SUCCESSWITHWARNING"
)

// PreapprovalGateway redeems preapprovals with a payment provider
type PreapprovalGateway interface {
	PayPreapprovals(ctx context.Context, payment models.PreapprovalPayment) (*models.PayResponse, error)
}

// AdaptivePaymentsService calls the PayPal Adaptive Payments Pay operation
type AdaptivePaymentsService struct {
	Config     config.Config
	BaseURL    string
	HTTPClient *http.Client
}

// NewAdaptivePaymentsService returns an Adaptive Payments client for the configured PayPal environment
func NewAdaptivePaymentsService(cfg config.Config) (*AdaptivePaymentsService, error) {
	baseURL := getAdaptivePaymentsBase(cfg.PaypalEnv)
	if baseURL == "" {
		return nil, fmt.Errorf("invalid paypal env in config: %s", cfg.PaypalEnv)
	}

	return &AdaptivePaymentsService{
		Config:     cfg,
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: time.Duration(cfg.PaypalTimeoutSecs) * time.Second},
	}, nil
}

// PayPreapprovals debits the sender's preapproval and pays the receivers their share
func (ap *AdaptivePaymentsService) PayPreapprovals(ctx context.Context, payment models.PreapprovalPayment) (*models.PayResponse, error) {
	campaignAmount, ownerAmount := ReceiverAmounts(payment.Amount, payment.Receivers)

	payRequest := models.OutgoingPayRequest{
		ActionType:     "PAY",
		CurrencyCode:   ap.Config.PaypalCurrency,
		FeesPayer:      "EACHRECEIVER",
		PreapprovalKey: payment.PreapprovalKey,
		SenderEmail:    payment.SenderEmail,
		TrackingID:     payment.PaymentID,
		ReturnURL:      ap.Config.PaymentAdminURL,
		CancelURL:      ap.Config.PaymentAdminURL,
		ReceiverList: models.ReceiverList{
			Receiver: []models.PayReceiver{
				{Amount: campaignAmount.StringFixed(2), Email: payment.Receivers.Campaign.Email},
				{Amount: ownerAmount.StringFixed(2), Email: payment.Receivers.Owner.Email},
			},
		},
		RequestEnvelope: models.RequestEnvelope{ErrorLanguage: "en_US"},
	}

	requestBody, err := json.Marshal(payRequest)
	if err != nil {
		return nil, fmt.Errorf("error reading Pay request: [%s]", err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, ap.BaseURL+"/Pay", bytes.NewBuffer(requestBody))
	if err != nil {
		return nil, fmt.Errorf("error generating request for PayPal: [%s]", err)
	}

	request.Header.Add("X-PAYPAL-SECURITY-USERID", ap.Config.PaypalAPIUsername)
	request.Header.Add("X-PAYPAL-SECURITY-PASSWORD", ap.Config.PaypalAPIPassword)
	request.Header.Add("X-PAYPAL-SECURITY-SIGNATURE", ap.Config.PaypalAPISignature)
	request.Header.Add("X-PAYPAL-APPLICATION-ID", ap.Config.PaypalAppID)
	request.Header.Add("X-PAYPAL-REQUEST-DATA-FORMAT", "JSON")
	request.Header.Add("X-PAYPAL-RESPONSE-DATA-FORMAT", "JSON")
	request.Header.Add("content-type", "application/json")

	log.Trace("performing PayPal Pay request", log.Data{"payment_id": payment.PaymentID})

	resp, err := ap.httpClient().Do(request)
	if err != nil {
		return nil, fmt.Errorf("error sending Pay request to PayPal: [%s]", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("error status [%v] back from PayPal", resp.StatusCode)
	}

	payResponse := &models.PayResponse{}
	err = json.Unmarshal(body, payResponse)
	if err != nil {
		return nil, fmt.Errorf("error reading response from PayPal: [%s]", err)
	}

	return payResponse, nil
}

func (ap *AdaptivePaymentsService) httpClient() *http.Client {
	if ap.HTTPClient == nil {
		return http.DefaultClient
	}
	return ap.HTTPClient
}

func getAdaptivePaymentsBase(env string) string {
	switch env {
	case "live":
		return AdaptivePaymentsBaseLive
	case "sandbox", "test":
		return AdaptivePaymentsBaseSandbox
	default:
		return ""
	}
}
