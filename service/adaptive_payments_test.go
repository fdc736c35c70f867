package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/jarcoal/httpmock"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

const sandboxPayURL = AdaptivePaymentsBaseSandbox + "/Pay"

var defaultPreapprovalPayment = models.PreapprovalPayment{
	PaymentID:      "123",
	PreapprovalKey: "PA-123",
	SenderEmail:    "sender@example.com",
	Amount:         decimal.RequireFromString("50.00"),
	Receivers: models.ReceiverSplit{
		Campaign: models.Receiver{Email: "campaign@example.com", Percent: 85},
		Owner:    models.Receiver{Email: "owner@example.com", Percent: 15},
	},
}

func adaptivePaymentsConfig() config.Config {
	return config.Config{
		PaypalEnv:          "sandbox",
		PaypalAppID:        "APP-80W284485P519543T",
		PaypalAPIUsername:  "api-user",
		PaypalAPIPassword:  "api-password",
		PaypalAPISignature: "api-signature",
		PaypalCurrency:     "USD",
		PaypalTimeoutSecs:  5,
		PaymentAdminURL:    "https://admin.example.com/payments",
	}
}

func TestUnitNewAdaptivePaymentsService(t *testing.T) {

	Convey("Sandbox environment", t, func() {
		svc, err := NewAdaptivePaymentsService(adaptivePaymentsConfig())
		So(err, ShouldBeNil)
		So(svc.BaseURL, ShouldEqual, AdaptivePaymentsBaseSandbox)
	})

	Convey("Test environment uses the sandbox", t, func() {
		cfg := adaptivePaymentsConfig()
		cfg.PaypalEnv = "test"
		svc, err := NewAdaptivePaymentsService(cfg)
		So(err, ShouldBeNil)
		So(svc.BaseURL, ShouldEqual, AdaptivePaymentsBaseSandbox)
	})

	Convey("Live environment", t, func() {
		cfg := adaptivePaymentsConfig()
		cfg.PaypalEnv = "live"
		svc, err := NewAdaptivePaymentsService(cfg)
		So(err, ShouldBeNil)
		So(svc.BaseURL, ShouldEqual, AdaptivePaymentsBaseLive)
	})

	Convey("Invalid environment", t, func() {
		cfg := adaptivePaymentsConfig()
		cfg.PaypalEnv = "staging"
		svc, err := NewAdaptivePaymentsService(cfg)
		So(svc, ShouldBeNil)
		So(err.Error(), ShouldEqual, "invalid paypal env in config: staging")
	})
}

func TestUnitPayPreapprovals(t *testing.T) {

	Convey("Successful Pay request", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc, _ := NewAdaptivePaymentsService(adaptivePaymentsConfig())

		var sent models.OutgoingPayRequest
		var headers http.Header
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, func(req *http.Request) (*http.Response, error) {
			headers = req.Header
			if err := json.NewDecoder(req.Body).Decode(&sent); err != nil {
				return nil, err
			}
			return httpmock.NewJsonResponse(http.StatusOK, models.PayResponse{
				ResponseEnvelope:  models.ResponseEnvelope{Ack: "Success", CorrelationID: "c0ffee"},
				PayKey:            "AP-PK123",
				PaymentExecStatus: "COMPLETED",
			})
		})

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(err, ShouldBeNil)
		So(response.ResponseEnvelope.Ack, ShouldEqual, "Success")
		So(response.PayKey, ShouldEqual, "AP-PK123")

		So(headers.Get("X-PAYPAL-SECURITY-USERID"), ShouldEqual, "api-user")
		So(headers.Get("X-PAYPAL-SECURITY-PASSWORD"), ShouldEqual, "api-password")
		So(headers.Get("X-PAYPAL-SECURITY-SIGNATURE"), ShouldEqual, "api-signature")
		So(headers.Get("X-PAYPAL-APPLICATION-ID"), ShouldEqual, "APP-80W284485P519543T")
		So(headers.Get("X-PAYPAL-REQUEST-DATA-FORMAT"), ShouldEqual, "JSON")

		So(sent.ActionType, ShouldEqual, "PAY")
		So(sent.CurrencyCode, ShouldEqual, "USD")
		So(sent.PreapprovalKey, ShouldEqual, "PA-123")
		So(sent.SenderEmail, ShouldEqual, "sender@example.com")
		So(sent.TrackingID, ShouldEqual, "123")
		So(sent.ReceiverList.Receiver, ShouldResemble, []models.PayReceiver{
			{Amount: "42.50", Email: "campaign@example.com"},
			{Amount: "7.50", Email: "owner@example.com"},
		})
	})

	Convey("Failure acknowledgement is returned to the caller", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc, _ := NewAdaptivePaymentsService(adaptivePaymentsConfig())
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, models.PayResponse{
			ResponseEnvelope: models.ResponseEnvelope{Ack: "Failure"},
			Error:            []models.PayError{{ErrorID: "579024", Message: "Preapproval has expired"}},
		})
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, responder)

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(err, ShouldBeNil)
		So(response.ResponseEnvelope.Ack, ShouldEqual, "Failure")
		So(response.Error[0].ErrorID, ShouldEqual, "579024")
	})

	Convey("Error sending request", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc, _ := NewAdaptivePaymentsService(adaptivePaymentsConfig())
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, httpmock.NewErrorResponder(errors.New("error")))

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(response, ShouldBeNil)
		So(err.Error(), ShouldStartWith, "error sending Pay request to PayPal")
	})

	Convey("Non 200 status", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc, _ := NewAdaptivePaymentsService(adaptivePaymentsConfig())
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, httpmock.NewStringResponder(http.StatusInternalServerError, "oops"))

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(response, ShouldBeNil)
		So(err.Error(), ShouldEqual, "error status [500] back from PayPal")
	})

	Convey("Undecodable response", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc, _ := NewAdaptivePaymentsService(adaptivePaymentsConfig())
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, httpmock.NewStringResponder(http.StatusOK, "ack=Success"))

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(response, ShouldBeNil)
		So(err.Error(), ShouldStartWith, "error reading response from PayPal")
	})

	Convey("Client falls back to the default HTTP client", t, func() {
		httpmock.Activate()
		defer httpmock.DeactivateAndReset()

		svc := &AdaptivePaymentsService{Config: adaptivePaymentsConfig(), BaseURL: AdaptivePaymentsBaseSandbox}
		responder, _ := httpmock.NewJsonResponder(http.StatusOK, models.PayResponse{ResponseEnvelope: models.ResponseEnvelope{Ack: "Success"}})
		httpmock.RegisterResponder(http.MethodPost, sandboxPayURL, responder)

		response, err := svc.PayPreapprovals(context.Background(), defaultPreapprovalPayment)
		So(err, ShouldBeNil)
		So(response.ResponseEnvelope.Ack, ShouldEqual, "Success")
	})
}
