package interceptors

import (
	"context"
	"fmt"
	"net/http"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/appthemer/crowdfunding-payments.api/service"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
	"github.com/gorilla/mux"
)

// CampaignGetter loads the campaign a request is made against
type CampaignGetter interface {
	GetCampaign(id string) (*models.Campaign, service.ResponseType, error)
}

// CampaignAuthenticationInterceptor contains the campaign service used in the interceptor
type CampaignAuthenticationInterceptor struct {
	Service CampaignGetter
	// OwnerOnly restricts the route to the campaign author and campaign admins
	OwnerOnly bool
}

// CampaignAuthenticationIntercept loads the campaign named in the route into
// the request context and checks the caller may act on it
func (ci CampaignAuthenticationInterceptor) CampaignAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["campaign_id"]
		if id == "" {
			log.ErrorR(r, fmt.Errorf("CampaignAuthenticationInterceptor error: no campaign id"))
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		campaign, responseType, err := ci.Service.GetCampaign(id)
		if err != nil {
			log.ErrorR(r, fmt.Errorf("CampaignAuthenticationInterceptor error when retrieving campaign: [%v]", err), log.Data{"service_response_type": responseType.String()})
			switch responseType {
			case service.NotFound:
				w.WriteHeader(http.StatusNotFound)
			default:
				w.WriteHeader(http.StatusInternalServerError)
			}
			return
		}

		ctx := context.WithValue(r.Context(), helpers.ContextKeyCampaign, campaign)

		if !ci.OwnerOnly {
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		identityType := authentication.GetAuthorisedIdentityType(r)
		authorisedUser := helpers.GetUserID(r)
		authUserIsCampaignAuthor := campaign.IsOwnedBy(authorisedUser)
		authUserHasCampaignEditRole := authentication.IsRoleAuthorised(r, helpers.AdminCampaignEditRole)
		apiKeyHasElevatedPrivileges := identityType == authentication.APIKeyIdentityType && authentication.IsKeyElevatedPrivilegesAuthorised(r)

		debugMap := log.Data{
			"campaign_id":                      id,
			"auth_user_is_campaign_author":     authUserIsCampaignAuthor,
			"auth_user_has_campaign_edit_role": authUserHasCampaignEditRole,
			"api_key_has_elevated_privileges":  apiKeyHasElevatedPrivileges,
			"request_method":                   r.Method,
		}

		switch {
		case authUserIsCampaignAuthor:
			log.InfoR(r, "CampaignAuthenticationInterceptor authorised as author", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case authUserHasCampaignEditRole:
			log.InfoR(r, "CampaignAuthenticationInterceptor authorised as campaign edit role", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		case apiKeyHasElevatedPrivileges:
			log.InfoR(r, "CampaignAuthenticationInterceptor authorised as api key elevated user", debugMap)
			next.ServeHTTP(w, r.WithContext(ctx))
		default:
			w.WriteHeader(http.StatusForbidden)
			log.InfoR(r, "CampaignAuthenticationInterceptor unauthorised", debugMap)
		}
	})
}
