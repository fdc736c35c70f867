package interceptors

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/companieshouse/chs.go/authentication"
	"github.com/companieshouse/chs.go/log"
)

// UserAuthenticationIntercept checks that the caller is an authenticated user
// or API key and puts the caller's details in the request context
func UserAuthenticationIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Check headers for identity type and identity
		identityType := authentication.GetAuthorisedIdentityType(r)
		if !(identityType == authentication.Oauth2IdentityType || identityType == authentication.APIKeyIdentityType) {
			log.ErrorR(r, fmt.Errorf("authentication interceptor unauthorised: not oauth2 or API key identity type"), log.Data{"identity_type_used": identityType})
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		authUserDetails, ok := userDetails(r, identityType)
		if !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), authentication.ContextKeyUserDetails, authUserDetails)
		log.DebugR(r, "UserAuthenticationIntercept proceeding with user details in context", log.Data{"user_id": authUserDetails.ID, "identity_type": identityType})

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// OptionalUserIntercept adds the details of a logged in user to the request
// context and lets logged out requests through untouched
func OptionalUserIntercept(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if authentication.GetAuthorisedIdentityType(r) != authentication.Oauth2IdentityType {
			next.ServeHTTP(w, r)
			return
		}

		authUserDetails, ok := userDetails(r, authentication.Oauth2IdentityType)
		if !ok {
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), authentication.ContextKeyUserDetails, authUserDetails)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func userDetails(r *http.Request, identityType string) (authentication.AuthUserDetails, bool) {
	identity := authentication.GetAuthorisedIdentity(r)
	if identity == "" {
		log.ErrorR(r, fmt.Errorf("authentication interceptor unauthorised: no authorised identity"))
		return authentication.AuthUserDetails{}, false
	}

	authUserDetails := authentication.AuthUserDetails{ID: identity}
	if identityType != authentication.Oauth2IdentityType {
		return authUserDetails, true
	}

	authorisedUser := authentication.GetAuthorisedUser(r)
	if authorisedUser == "" {
		log.ErrorR(r, fmt.Errorf("authentication interceptor unauthorised: no authorised user"))
		return authentication.AuthUserDetails{}, false
	}

	// ERIC-Authorised-User is email;forename;surname
	details := strings.Split(authorisedUser, ";")
	authUserDetails.Email = strings.TrimSpace(details[0])
	if len(details) > 1 {
		authUserDetails.Forename = details[1]
	}
	if len(details) > 2 {
		authUserDetails.Surname = details[2]
	}

	return authUserDetails, true
}
