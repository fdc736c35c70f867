package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/appthemer/crowdfunding-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
)

// HandleUpdatePayeeEmail changes the PayPal account that receives the campaign share
func HandleUpdatePayeeEmail(w http.ResponseWriter, req *http.Request) {
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

	var request models.PayeeEmailRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	updated, responseType, err := campaignService.UpdatePayeeEmail(*campaign, request)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating payee email: [%v]", err), log.Data{"campaign_id": campaign.ID, "service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			utils.WriteJSONWithStatus(w, req, utils.NewNoticeResponse(service.InvalidPayeeEmail, service.InvalidPayeeEmailMessage), http.StatusBadRequest)
		case service.Conflict:
			utils.WriteMessageWithStatus(w, req, err.Error(), http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSONWithStatus(w, req, updated, http.StatusOK)

	log.InfoR(req, "Successful PUT request for payee email", log.Data{"campaign_id": campaign.ID})
}
