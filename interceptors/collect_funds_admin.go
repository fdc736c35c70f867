package interceptors

import (
	"fmt"
	"net/http"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
)

// CollectFundsAdminIntercept checks that the caller may collect and preview the funds of a campaign
func CollectFundsAdminIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

		identityType := authentication.GetAuthorisedIdentityType(r)
		if !(identityType == authentication.Oauth2IdentityType || identityType == authentication.APIKeyIdentityType) {
			log.Error(fmt.Errorf("collect funds admin interceptor unauthorised: not oauth2 or API key identity type"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		// Get user details from context, passed in by UserAuthenticationIntercept
		userDetails, ok := r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
		if !ok {
			log.ErrorR(r, fmt.Errorf("CollectFundsAdminIntercept error: invalid AuthUserDetails from UserAuthenticationIntercept"))
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		if userDetails.ID == "" {
			log.Error(fmt.Errorf("CollectFundsAdminIntercept unauthorised: no authorised identity"))
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authUserHasCollectFundsRole := authentication.IsRoleAuthorised(r, helpers.AdminCollectFundsRole)
		apiKeyHasElevatedPrivileges := identityType == authentication.APIKeyIdentityType && authentication.IsKeyElevatedPrivilegesAuthorised(r)

		debugMap := log.Data{
			"auth_user_has_collect_funds_role": authUserHasCollectFundsRole,
			"api_key_has_elevated_privileges":  apiKeyHasElevatedPrivileges,
			"request_method":                   r.Method,
		}

		if authUserHasCollectFundsRole || apiKeyHasElevatedPrivileges {
			log.InfoR(r, "CollectFundsAdminIntercept authorised", debugMap)
			next.ServeHTTP(w, r)
			return
		}

		w.WriteHeader(http.StatusUnauthorized)
		log.InfoR(r, "CollectFundsAdminIntercept unauthorised", debugMap)
	})
}
