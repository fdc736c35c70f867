// Package config defines the environment variable and command-line flags
// supported by this service and includes default values for particular
// fields.
package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/companieshouse/gofigure"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var cfg *Config
var mtx sync.Mutex

// Config defines the configuration options for this service.
type Config struct {
	BindAddr            string   `env:"BIND_ADDR"                flag:"bind-addr"                flagDesc:"Bind address"`
	MongoDBURL          string   `env:"MONGODB_URL"              flag:"mongodb-url"              flagDesc:"MongoDB server URL"`
	Database            string   `env:"MONGODB_DATABASE"         flag:"mongodb-database"         flagDesc:"MongoDB database for data"`
	CampaignsCollection string   `env:"MONGODB_CAMPAIGNS"        flag:"mongodb-campaigns"        flagDesc:"MongoDB collection for campaigns"`
	PaymentsCollection  string   `env:"MONGODB_PAYMENTS"         flag:"mongodb-payments"         flagDesc:"MongoDB collection for payments"`
	UsersCollection     string   `env:"MONGODB_USERS"            flag:"mongodb-users"            flagDesc:"MongoDB collection for users"`
	BrokerAddr          []string `env:"KAFKA_BROKER_ADDR"        flag:"broker-addr"              flagDesc:"Kafka broker address"`
	SchemaRegistryURL   string   `env:"SCHEMA_REGISTRY_URL"      flag:"schema-registry-url"      flagDesc:"Schema registry url"`
	PaymentAdminURL     string   `env:"PAYMENT_ADMIN_URL"        flag:"payment-admin-url"        flagDesc:"Base URL of the payment history admin page"`
	PaypalEnv           string   `env:"PAYPAL_ENV"               flag:"paypal-env"               flagDesc:"PayPal environment: live or sandbox"`
	PaypalAppID         string   `env:"PAYPAL_APP_ID"            flag:"paypal-app-id"            flagDesc:"PayPal Adaptive Payments application ID"`
	PaypalAPIUsername   string   `env:"PAYPAL_API_USERNAME"      flag:"paypal-api-username"      flagDesc:"PayPal classic API username"`
	PaypalAPIPassword   string   `env:"PAYPAL_API_PASSWORD"      flag:"paypal-api-password"      flagDesc:"PayPal classic API password"`
	PaypalAPISignature  string   `env:"PAYPAL_API_SIGNATURE"     flag:"paypal-api-signature"     flagDesc:"PayPal classic API signature"`
	PaypalCurrency      string   `env:"PAYPAL_CURRENCY"          flag:"paypal-currency"          flagDesc:"Currency code sent with Pay requests"`
	PaypalTimeoutSecs   int      `env:"PAYPAL_TIMEOUT_SECONDS"   flag:"paypal-timeout-seconds"   flagDesc:"Timeout for a single PayPal request"`
	EpapMaxDonation     string   `env:"EPAP_MAX_DONATION"        flag:"epap-max-donation"        flagDesc:"The maximum amount of money PayPal can accept on your account"`
	EpapCampaignsPerYr  string   `env:"EPAP_CAMPAIGNS_PER_YEAR"  flag:"epap-campaigns-per-year"  flagDesc:"The maximum amount of campaigns that each user may create per year"`
	EpapPaymentsPerUser string   `env:"EPAP_PAYMENTS_PER_USER"   flag:"epap-payments-per-user"   flagDesc:"The maximum times a user can contribute to a single campaign"`
	EpapReceivers       string   `env:"EPAP_RECEIVERS"           flag:"epap-receivers"           flagDesc:"Platform owner receiver as email|percent"`
	EpapFlexibleFee     string   `env:"EPAP_FLEXIBLE_FEE"        flag:"epap-flexible-fee"        flagDesc:"Additional percentage taken from flexible campaigns"`
}

// Settings are the parsed gateway settings used by the collection and pledge
// limit services. Zero limits mean no limit is enforced.
type Settings struct {
	MaxDonation        decimal.NullDecimal
	CampaignsPerYear   int    `validate:"gte=0"`
	PaymentsPerUser    int    `validate:"gte=0"`
	OwnerEmail         string `validate:"omitempty,email"`
	OwnerPercent       decimal.Decimal
	FlexibleFeePercent decimal.Decimal
}

// DefaultConfig returns a pointer to a Config instance that has been populated
// with default values.
func DefaultConfig() *Config {
	return &Config{
		Database:            "crowdfunding",
		CampaignsCollection: "campaigns",
		PaymentsCollection:  "payments",
		UsersCollection:     "users",
		PaypalEnv:           "sandbox",
		PaypalCurrency:      "USD",
		PaypalTimeoutSecs:   30,
	}
}

// Get returns a pointer to a Config instance that has been populated with
// values provided by the environment or command-line flags, or with default
// values if none are provided.
func Get() (*Config, error) {
	mtx.Lock()
	defer mtx.Unlock()

	if cfg != nil {
		return cfg, nil
	}

	cfg = DefaultConfig()

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Settings parses the EPAP_* values into typed gateway settings.
func (c *Config) Settings() (*Settings, error) {
	settings := &Settings{}

	if v := strings.TrimSpace(c.EpapMaxDonation); v != "" {
		maxDonation, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid max donation [%s]: [%v]", v, err)
		}
		settings.MaxDonation = decimal.NewNullDecimal(maxDonation)
	}

	var err error
	if settings.CampaignsPerYear, err = parseLimit(c.EpapCampaignsPerYr); err != nil {
		return nil, fmt.Errorf("invalid campaigns per year: [%v]", err)
	}
	if settings.PaymentsPerUser, err = parseLimit(c.EpapPaymentsPerUser); err != nil {
		return nil, fmt.Errorf("invalid payments per user: [%v]", err)
	}

	if strings.TrimSpace(c.EpapReceivers) != "" {
		owner := strings.Split(c.EpapReceivers, "|")
		if len(owner) != 2 {
			return nil, errors.New("receivers must be in the format email|percent")
		}
		settings.OwnerEmail = strings.TrimSpace(owner[0])
		if settings.OwnerPercent, err = decimal.NewFromString(strings.TrimSpace(owner[1])); err != nil {
			return nil, fmt.Errorf("invalid owner percentage [%s]: [%v]", owner[1], err)
		}
	}

	if v := strings.TrimSpace(c.EpapFlexibleFee); v != "" {
		if settings.FlexibleFeePercent, err = decimal.NewFromString(v); err != nil {
			return nil, fmt.Errorf("invalid flexible fee [%s]: [%v]", v, err)
		}
	}

	if err = validator.New().Struct(settings); err != nil {
		return nil, fmt.Errorf("invalid gateway settings: [%v]", err)
	}

	return settings, nil
}

func parseLimit(value string) (int, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	return strconv.Atoi(value)
}
