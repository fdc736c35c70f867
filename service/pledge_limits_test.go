package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/dao"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	. "github.com/smartystreets/goconvey/convey"
)

func TestUnitCheckPledge(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	settings := config.Settings{
		PaymentsPerUser: 2,
		MaxDonation:     decimal.NewNullDecimal(decimal.NewFromInt(1000)),
	}

	Convey("Logged out user always passes the pledge count", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl), Settings: settings}

		response, responseType, err := svc.CheckPledge("", "c1", "")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Allowed, ShouldBeTrue)
	})

	Convey("No limit configured", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl)}

		response, responseType, err := svc.CheckPledge("user1", "c1", "5000")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Allowed, ShouldBeTrue)
	})

	Convey("User below the limit", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: settings}

		mockDAO.EXPECT().GetUser("user1").Return(&models.UserDB{ID: "user1", ContributedTo: map[string]int{"c1": 1}}, nil)

		response, responseType, err := svc.CheckPledge("user1", "c1", "10")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Pledges, ShouldEqual, 1)
		So(response.MaxPledges, ShouldEqual, 2)
	})

	Convey("User at the limit", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: settings}

		mockDAO.EXPECT().GetUser("user1").Return(&models.UserDB{ID: "user1", ContributedTo: map[string]int{"c1": 2}}, nil)

		response, responseType, err := svc.CheckPledge("user1", "c1", "")
		So(responseType, ShouldEqual, LimitReached)
		So(response.Allowed, ShouldBeFalse)
		limitErr, ok := err.(*LimitError)
		So(ok, ShouldBeTrue)
		So(limitErr.Code, ShouldEqual, PledgeLimitReached)
		So(limitErr.Message, ShouldEqual, PledgeLimitMessage)
	})

	Convey("User without a record", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: settings}

		mockDAO.EXPECT().GetUser("user1").Return(nil, nil)

		response, responseType, err := svc.CheckPledge("user1", "c1", "")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Pledges, ShouldEqual, 0)
	})

	Convey("Error getting user", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: settings}

		mockDAO.EXPECT().GetUser("user1").Return(nil, fmt.Errorf("error"))

		response, responseType, err := svc.CheckPledge("user1", "c1", "")
		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error getting user from db: [error]")
	})

	Convey("Pledge above the max donation", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl), Settings: settings}

		response, responseType, err := svc.CheckPledge("user1", "c1", "1000.01")
		So(responseType, ShouldEqual, LimitReached)
		So(response.Allowed, ShouldBeFalse)
		So(err.Error(), ShouldEqual, DonationLimitExceeded+": "+DonationLimitMessage)
	})

	Convey("Invalid pledge amount", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl), Settings: settings}

		response, responseType, err := svc.CheckPledge("user1", "c1", "ten")
		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldStartWith, "invalid pledge amount [ten]")
	})

	Convey("Pledge amount must be positive without a max donation", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl)}

		for _, amount := range []string{"-5", "0", "0.00"} {
			response, responseType, err := svc.CheckPledge("user1", "c1", amount)
			So(response, ShouldBeNil)
			So(responseType, ShouldEqual, InvalidData)
			So(err.Error(), ShouldEqual, "invalid pledge amount ["+amount+"]: must be greater than zero")
		}
	})
}

func TestUnitCheckCampaignAllowance(t *testing.T) {
	mockCtrl := gomock.NewController(t)
	defer mockCtrl.Finish()

	now := func() time.Time { return time.Date(2024, time.June, 15, 10, 0, 0, 0, time.UTC) }
	startOfYear := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

	Convey("No user supplied", t, func() {
		svc := PledgeLimitService{DAO: dao.NewMockDAO(mockCtrl), Now: now}

		response, responseType, err := svc.CheckCampaignAllowance("")
		So(response, ShouldBeNil)
		So(responseType, ShouldEqual, InvalidData)
		So(err.Error(), ShouldEqual, "user id not supplied")
	})

	Convey("Campaigns remaining this year", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: config.Settings{CampaignsPerYear: 3}, Now: now}

		mockDAO.EXPECT().CountCampaignsByAuthorSince("user1", startOfYear).Return(int64(1), nil)

		response, responseType, err := svc.CheckCampaignAllowance("user1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Allowed, ShouldBeTrue)
		So(response.Created, ShouldEqual, 1)
		So(response.Remaining, ShouldEqual, 2)
	})

	Convey("Yearly limit reached", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: config.Settings{CampaignsPerYear: 3}, Now: now}

		mockDAO.EXPECT().CountCampaignsByAuthorSince("user1", startOfYear).Return(int64(3), nil)

		response, responseType, err := svc.CheckCampaignAllowance("user1")
		So(responseType, ShouldEqual, LimitReached)
		So(response.Allowed, ShouldBeFalse)
		So(response.Remaining, ShouldEqual, 0)
		So(err.(*LimitError).Code, ShouldEqual, CampaignLimitReached)
	})

	Convey("No yearly limit", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Now: now}

		mockDAO.EXPECT().CountCampaignsByAuthorSince("user1", startOfYear).Return(int64(12), nil)

		response, responseType, err := svc.CheckCampaignAllowance("user1")
		So(err, ShouldBeNil)
		So(responseType, ShouldEqual, Success)
		So(response.Allowed, ShouldBeTrue)
		So(response.Created, ShouldEqual, 12)
	})

	Convey("Error counting campaigns", t, func() {
		mockDAO := dao.NewMockDAO(mockCtrl)
		svc := PledgeLimitService{DAO: mockDAO, Settings: config.Settings{CampaignsPerYear: 3}, Now: now}

		mockDAO.EXPECT().CountCampaignsByAuthorSince("user1", startOfYear).Return(int64(0), fmt.Errorf("error"))

		_, responseType, err := svc.CheckCampaignAllowance("user1")
		So(responseType, ShouldEqual, Error)
		So(err.Error(), ShouldEqual, "error counting campaigns for user: [error]")
	})
}
