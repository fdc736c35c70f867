package handlers

import (
	"fmt"
	"net/http"
	"os"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/interceptors"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

var settings config.Settings
var campaignService *service.CampaignService
var collector *service.PreapprovalCollector
var previewService *service.CollectionPreviewService
var pledgeLimitService *service.PledgeLimitService
var paymentStatusService *service.PaymentStatusService

// Register defines the route mappings for the main router and it's subrouters
func Register(mainRouter *mux.Router, cfg config.Config) {
	gatewaySettings, err := cfg.Settings()
	if err != nil {
		log.Error(fmt.Errorf("error reading gateway settings: [%v]", err))
		os.Exit(1)
	}

	gateway, err := service.NewAdaptivePaymentsService(cfg)
	if err != nil {
		log.Error(fmt.Errorf("error creating adaptive payments client: [%v]", err))
		os.Exit(1)
	}

	registerRoutes(mainRouter, cfg, *gatewaySettings, dao.NewDAO(&cfg), gateway)
}

func registerRoutes(mainRouter *mux.Router, cfg config.Config, gatewaySettings config.Settings, d dao.DAO, gateway service.PreapprovalGateway) {
	settings = gatewaySettings

	campaignService = &service.CampaignService{DAO: d}
	paymentStatusService = &service.PaymentStatusService{DAO: d, Settings: settings}
	pledgeLimitService = &service.PledgeLimitService{DAO: d, Settings: settings}
	previewService = &service.CollectionPreviewService{DAO: d}
	collector = &service.PreapprovalCollector{
		DAO:      d,
		Gateway:  gateway,
		Statuses: paymentStatusService,
		Config:   cfg,
	}

	campaignLoader := &interceptors.CampaignAuthenticationInterceptor{Service: campaignService}
	campaignOwner := &interceptors.CampaignAuthenticationInterceptor{Service: campaignService, OwnerOnly: true}

	mainRouter.HandleFunc("/healthcheck", healthCheck).Methods("GET").Name("get-healthcheck")

	// Create subrouters. Each group of routes needs different auth middleware, so router needs to be split up.
	// This allows per-subrouter middleware.

	// collect-funds endpoints are only available to collection admins
	collectFundsRouter := mainRouter.PathPrefix("/admin/campaigns/{campaign_id}/collect-funds").Subrouter()
	collectFundsRouter.HandleFunc("", HandleCollectFunds).Methods("POST").Name("collect-funds")
	collectFundsRouter.HandleFunc("", HandlePreviewCollection).Methods("GET").Name("preview-collect-funds")

	// payee-email can be changed by the campaign author or a campaign admin
	payeeEmailRouter := mainRouter.PathPrefix("/campaigns/{campaign_id}/payee-email").Subrouter()
	payeeEmailRouter.HandleFunc("", HandleUpdatePayeeEmail).Methods("PUT").Name("update-payee-email")

	// pledge checks are made for logged in and logged out backers
	pledgeRouter := mainRouter.PathPrefix("/campaigns/{campaign_id}/pledges").Subrouter()
	pledgeRouter.HandleFunc("", HandleCheckPledge).Methods("POST").Name("check-pledge")

	allowanceRouter := mainRouter.PathPrefix("/users/campaign-allowance").Subrouter()
	allowanceRouter.HandleFunc("", HandleCampaignAllowance).Methods("GET").Name("get-campaign-allowance")

	// payment status transitions come from the payments framework with an elevated API key
	privateStatusRouter := mainRouter.PathPrefix("/private/payments/{payment_id}/status").Subrouter()
	privateStatusRouter.HandleFunc("", HandlePatchPaymentStatus).Methods("PATCH").Name("patch-payment-status")

	// Set middleware for subrouters
	collectFundsRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept, interceptors.CollectFundsAdminIntercept, campaignLoader.CampaignAuthenticationIntercept)
	payeeEmailRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept, campaignOwner.CampaignAuthenticationIntercept)
	pledgeRouter.Use(log.Handler, interceptors.OptionalUserIntercept, campaignLoader.CampaignAuthenticationIntercept)
	allowanceRouter.Use(log.Handler, interceptors.UserAuthenticationIntercept)
	privateStatusRouter.Use(log.Handler, authentication.ElevatedPrivilegesInterceptor)
}

func healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
