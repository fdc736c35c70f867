package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/appthemer/crowdfunding-payments.api/mappers"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/appthemer/crowdfunding-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// handleFundsCollectedMessage allows us to mock the call to produceFundsCollectedMessage for unit tests
var handleFundsCollectedMessage = produceFundsCollectedMessage

// newRunID allows tests to fix the id of a collection run
var newRunID = uuid.NewString

// HandleCollectFunds collects the preapproved payments of a campaign. Failed
// payments are reported in the response body; they do not fail the request.
func HandleCollectFunds(w http.ResponseWriter, req *http.Request) {
	campaign, ok := req.Context().Value(helpers.ContextKeyCampaign).(*models.Campaign)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid Campaign in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var incomingRequest models.IncomingCollectFundsRequest
	err := json.NewDecoder(req.Body).Decode(&incomingRequest)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(incomingRequest); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid POST request to collect funds: [%v]", err))
		utils.WriteMessageWithStatus(w, req, "payments must be supplied once each", http.StatusBadRequest)
		return
	}

	receivers, err := service.SplitForCampaign(settings, *campaign)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error computing receiver split: [%v]", err), log.Data{"campaign_id": campaign.ID})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	runID := newRunID()
	logData := log.Data{"run_id": runID, "campaign_id": campaign.ID, "payments": len(incomingRequest.Payments)}
	log.InfoR(req, "collecting funds", logData)

	// The run is not abandoned when the caller goes away
	errs := collector.Collect(context.WithoutCancel(req.Context()), incomingRequest.Payments, receivers)

	response := mappers.MapToCollectFundsResponse(runID, campaign.ID, receivers, incomingRequest.Payments, errs)

	for _, paymentID := range response.Collected {
		err = handleFundsCollectedMessage(paymentID, campaign.ID, runID)
		if err != nil {
			log.ErrorR(req, fmt.Errorf("error producing funds collected kafka message: [%v]", err), log.Data{"payment_id": paymentID, "run_id": runID})
		}
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)

	logData["collected"] = len(response.Collected)
	logData["errors"] = len(response.Errors)
	log.InfoR(req, "Successful POST request to collect funds", logData)
}

// HandlePreviewCollection reports what collecting the requested payments would do
func HandlePreviewCollection(w http.ResponseWriter, req *http.Request) {
	campaign, ok := req.Context().Value(helpers.ContextKeyCampaign).(*models.Campaign)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid Campaign in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	paymentIDs := splitPaymentIDs(req.URL.Query().Get("payments"))
	if len(paymentIDs) == 0 {
		log.ErrorR(req, fmt.Errorf("payments not supplied"))
		utils.WriteMessageWithStatus(w, req, "payments must be supplied", http.StatusBadRequest)
		return
	}

	receivers, err := service.SplitForCampaign(settings, *campaign)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error computing receiver split: [%v]", err), log.Data{"campaign_id": campaign.ID})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	preview, responseType, err := previewService.PreviewCollection(req.Context(), campaign.ID, paymentIDs, receivers)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error previewing collection: [%v]", err), log.Data{"service_response_type": responseType.String()})
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	utils.WriteJSONWithStatus(w, req, preview, http.StatusOK)
}

func splitPaymentIDs(payments string) []string {
	var ids []string
	for _, id := range strings.Split(payments, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}
