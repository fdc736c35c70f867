package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/shopspring/decimal"
)

// ErrInvalidSplit is returned when the owner percentage falls outside 0-100
var ErrInvalidSplit = errors.New("owner percentage must be between 0 and 100")

var hundred = decimal.NewFromInt(100)

// ComputeSplit works out the campaign and platform owner receivers of a
// collection. Flexible campaigns pay the flexible fee on top of the owner's
// base percentage. Percentages are whole numbers: the owner percentage is
// truncated and the campaign receives the rest, so the two always add up to 100.
func ComputeSplit(mode models.CampaignType, ownerBasePercent, flexibleFeePercent decimal.Decimal, ownerEmail, campaignEmail string) (models.ReceiverSplit, error) {
	ownerPercent := ownerBasePercent
	if mode == models.CampaignFlexible {
		ownerPercent = ownerPercent.Add(flexibleFeePercent)
	}

	ownerPercent = ownerPercent.Truncate(0)
	if ownerPercent.IsNegative() || ownerPercent.GreaterThan(hundred) {
		return models.ReceiverSplit{}, fmt.Errorf("%w: got [%s]", ErrInvalidSplit, ownerPercent.String())
	}

	owner := int(ownerPercent.IntPart())

	return models.ReceiverSplit{
		Campaign: models.Receiver{
			Email:   strings.TrimSpace(campaignEmail),
			Percent: 100 - owner,
		},
		Owner: models.Receiver{
			Email:   strings.TrimSpace(ownerEmail),
			Percent: owner,
		},
	}, nil
}

// SplitForCampaign computes the split of a campaign using the configured owner receiver and flexible fee
func SplitForCampaign(settings config.Settings, campaign models.Campaign) (models.ReceiverSplit, error) {
	return ComputeSplit(campaign.Type, settings.OwnerPercent, settings.FlexibleFeePercent, settings.OwnerEmail, campaign.PayeeEmail())
}

// ReceiverAmounts divides an amount between the receivers of a split. The
// campaign share is truncated to the penny and the owner receives the remainder.
func ReceiverAmounts(amount decimal.Decimal, split models.ReceiverSplit) (campaignAmount, ownerAmount decimal.Decimal) {
	campaignAmount = amount.Mul(decimal.NewFromInt(int64(split.Campaign.Percent))).Div(hundred).Truncate(2)
	ownerAmount = amount.Sub(campaignAmount)
	return campaignAmount, ownerAmount
}
