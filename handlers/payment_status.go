package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/companieshouse/chs.go/log"
	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
)

// HandlePatchPaymentStatus moves a payment to a new status
func HandlePatchPaymentStatus(w http.ResponseWriter, req *http.Request) {
	id := mux.Vars(req)["payment_id"]
	if id == "" {
		log.ErrorR(req, fmt.Errorf("payment id not supplied"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Body == nil {
		log.ErrorR(req, fmt.Errorf("request body empty"))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var request models.PaymentStatusRequest
	err := json.NewDecoder(req.Body).Decode(&request)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("request body invalid: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err = validator.New().Struct(request); err != nil {
		log.ErrorR(req, fmt.Errorf("invalid PATCH request for payment status: [%v]", err))
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	responseType, err := paymentStatusService.UpdatePaymentStatus(id, request.Status)
	if err != nil {
		log.ErrorR(req, fmt.Errorf("error updating payment status: [%v]", err), log.Data{"payment_id": id, "service_response_type": responseType.String()})
		switch responseType {
		case service.NotFound:
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)

	log.InfoR(req, "Successful PATCH request for payment status", log.Data{"payment_id": id, "status": request.Status})
}
