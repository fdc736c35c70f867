package helpers

import (
	"net/http"

	"github.com/companieshouse/chs.go/authentication"
)

// Admin roles carried in the ERIC-Authorised-Roles header
const (
	AdminCollectFundsRole = "/admin/collect-funds"
	AdminCampaignEditRole = "/admin/campaign-edit"
)

// GetUserID returns the id of the user put in the request context by the user
// authentication interceptor, or an empty string for a logged out user
func GetUserID(r *http.Request) string {
	userDetails, ok := r.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
	if !ok {
		return ""
	}
	return userDetails.ID
}
