package interceptors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/appthemer/crowdfunding-payments.api/helpers"
	"github.com/companieshouse/chs.go/authentication"
	. "github.com/smartystreets/goconvey/convey"
)

func GetTestHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
	}
}

// userCapturingHandler records the user details the interceptor put in the context
func userCapturingHandler(details *authentication.AuthUserDetails) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		*details, _ = req.Context().Value(authentication.ContextKeyUserDetails).(authentication.AuthUserDetails)
		w.WriteHeader(http.StatusOK)
	}
}

func TestUnitUserAuthenticationIntercept(t *testing.T) {

	Convey("No identity type", t, func() {
		req, _ := http.NewRequest("GET", "/campaigns/c1/payee-email", nil)
		w := httptest.NewRecorder()
		UserAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("No identity", t, func() {
		req, _ := http.NewRequest("GET", "/campaigns/c1/payee-email", nil)
		req.Header.Set("Eric-Identity-Type", "oauth2")
		w := httptest.NewRecorder()
		UserAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("No authorised user for oauth2", t, func() {
		req, _ := http.NewRequest("GET", "/campaigns/c1/payee-email", nil)
		req.Header.Set("Eric-Identity", "user1")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		w := httptest.NewRecorder()
		UserAuthenticationIntercept(GetTestHandler()).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusUnauthorized)
	})

	Convey("Oauth2 user details added to context", t, func() {
		req, _ := http.NewRequest("GET", "/campaigns/c1/payee-email", nil)
		req.Header.Set("Eric-Identity", "user1")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-User", "test@test.com;test;user")

		var details authentication.AuthUserDetails
		w := httptest.NewRecorder()
		UserAuthenticationIntercept(userCapturingHandler(&details)).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(details.ID, ShouldEqual, "user1")
		So(details.Email, ShouldEqual, "test@test.com")
		So(details.Forename, ShouldEqual, "test")
		So(details.Surname, ShouldEqual, "user")
	})

	Convey("API key caller added to context", t, func() {
		req, _ := http.NewRequest("GET", "/campaigns/c1/payee-email", nil)
		req.Header.Set("Eric-Identity", "key1")
		req.Header.Set("Eric-Identity-Type", "key")

		var details authentication.AuthUserDetails
		w := httptest.NewRecorder()
		UserAuthenticationIntercept(userCapturingHandler(&details)).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(details.ID, ShouldEqual, "key1")
	})
}

func TestUnitOptionalUserIntercept(t *testing.T) {

	Convey("Logged out request passes without user details", t, func() {
		req, _ := http.NewRequest("POST", "/campaigns/c1/pledges", nil)
		var userID string
		w := httptest.NewRecorder()
		OptionalUserIntercept(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID = helpers.GetUserID(r)
		})).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(userID, ShouldBeEmpty)
	})

	Convey("Incomplete oauth2 headers pass without user details", t, func() {
		req, _ := http.NewRequest("POST", "/campaigns/c1/pledges", nil)
		req.Header.Set("Eric-Identity-Type", "oauth2")
		var userID string
		w := httptest.NewRecorder()
		OptionalUserIntercept(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID = helpers.GetUserID(r)
		})).ServeHTTP(w, req)
		So(w.Code, ShouldEqual, http.StatusOK)
		So(userID, ShouldBeEmpty)
	})

	Convey("Logged in user added to context", t, func() {
		req, _ := http.NewRequest("POST", "/campaigns/c1/pledges", nil)
		req.Header.Set("Eric-Identity", "user1")
		req.Header.Set("Eric-Identity-Type", "oauth2")
		req.Header.Set("ERIC-Authorised-User", "test@test.com")
		var userID string
		w := httptest.NewRecorder()
		OptionalUserIntercept(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID = helpers.GetUserID(r)
		})).ServeHTTP(w, req)
		So(userID, ShouldEqual, "user1")
	})
}
