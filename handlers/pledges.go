package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/appthemer/crowdfunding-payments.api/utils"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
)

// HandleCheckPledge checks a backer may pledge to a campaign. A backer who has
// reached a limit is sent back to the campaign with the limit notice.
func HandleCheckPledge(w http.ResponseWriter, req *http.Request) {
	campaign, ok := req.Context().Value(helpers.ContextKeyCampaign).(*models.Campaign)
	if !ok {
		log.ErrorR(req, fmt.Errorf("invalid Campaign in request context"))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	var request models.PledgeRequest
	if req.Body != nil {
		err := json.NewDecoder(req.Body).Decode(&request)
		if err != nil && !errors.Is(err, io.EOF) {
			log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	if err := validator.New().Struct(request); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid pledge request: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	response, responseType, err := pledgeLimitService.CheckPledge(helpers.GetUserID(req), campaign.ID, request.Amount)
	if err != nil {
		var limitErr *service.LimitError
		if responseType == service.LimitReached && errors.As(err, &limitErr) {
			log.InfoR(req, "pledge refused", log.Data{"campaign_id": campaign.ID, "notice": limitErr.Code})
			if campaign.Permalink != "" {
				redirectUser(w, req, campaign.Permalink, limitErr.Code)
				return
			}
			utils.WriteJSONWithStatus(w, req, utils.NewNoticeResponse(limitErr.Code, limitErr.Message), http.StatusForbidden)
			return
		}

		log.ErrorR(req, fmt.Errorf("error checking pledge: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)
}

// HandleCampaignAllowance reports how many campaigns the user may still create this year
func HandleCampaignAllowance(w http.ResponseWriter, req *http.Request) {
	response, responseType, err := pledgeLimitService.CheckCampaignAllowance(helpers.GetUserID(req))
	if err != nil && responseType != service.LimitReached {
		log.ErrorR(req, fmt.Errorf("error checking campaign allowance: [%v]", err), log.Data{"service_response_type": responseType.String()})
		switch responseType {
		case service.InvalidData:
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	utils.WriteJSONWithStatus(w, req, response, http.StatusOK)
}
