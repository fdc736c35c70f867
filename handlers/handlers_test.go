package handlers

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/gorilla/mux"
	"github.com/shopspring/decimal"
)

var defaultSettings = config.Settings{
	OwnerEmail:         "owner@example.com",
	OwnerPercent:       decimal.NewFromInt(10),
	FlexibleFeePercent: decimal.NewFromInt(5),
	PaymentsPerUser:    2,
}

// setUpServices points the package services at the supplied mocks
func setUpServices(mockDAO *dao.MockDAO, gateway service.PreapprovalGateway, gatewaySettings config.Settings) {
	registerRoutes(mux.NewRouter(), config.Config{PaymentAdminURL: "https://admin.example.com/payments"}, gatewaySettings, mockDAO, gateway)
}

func requestWithCampaign(method, target string, body io.Reader, campaign *models.Campaign) *http.Request {
	req := httptest.NewRequest(method, target, body)
	ctx := context.WithValue(req.Context(), helpers.ContextKeyCampaign, campaign)
	return req.WithContext(ctx)
}

func withUser(req *http.Request, userID string) *http.Request {
	ctx := context.WithValue(req.Context(), authentication.ContextKeyUserDetails, authentication.AuthUserDetails{ID: userID})
	return req.WithContext(ctx)
}
