package dao

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/appthemer/crowdfunding-payments.api/models"
	"github.com/companieshouse/chs.go/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var client *mongo.Client

func getMongoClient(mongoDBURL string) *mongo.Client {
	if client != nil {
		return client
	}

	ctx := context.Background()

	clientOptions := options.Client().ApplyURI(mongoDBURL)
	mongoClient, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Error(fmt.Errorf("failed to connect to mongodb: [%v]", err))
		os.Exit(1)
	}

	// check we can connect to the mongodb instance. failure here should result in wider issues
	err = mongoClient.Ping(ctx, nil)
	if err != nil {
		log.Error(fmt.Errorf("ping to mongodb failed: [%v]", err))
		os.Exit(1)
	}

	log.Info("connected to mongodb successfully")

	client = mongoClient
	return client
}

// MongoDatabaseInterface is an interface that describes the mongodb driver
type MongoDatabaseInterface interface {
	Collection(name string, opts ...*options.CollectionOptions) *mongo.Collection
}

func getMongoDatabase(mongoDBURL, databaseName string) MongoDatabaseInterface {
	return getMongoClient(mongoDBURL).Database(databaseName)
}

// MongoService is an implementation of the DAO interface using MongoDB as the backend driver.
type MongoService struct {
	db                  MongoDatabaseInterface
	CampaignsCollection string
	PaymentsCollection  string
	UsersCollection     string
}

// NewDAO returns a DAO backed by the configured MongoDB database
func NewDAO(cfg *config.Config) DAO {
	database := getMongoDatabase(cfg.MongoDBURL, cfg.Database)
	return &MongoService{
		db:                  database,
		CampaignsCollection: cfg.CampaignsCollection,
		PaymentsCollection:  cfg.PaymentsCollection,
		UsersCollection:     cfg.UsersCollection,
	}
}

// GetCampaign gets a campaign from the DB
// If campaign not found in DB, return nil
func (m *MongoService) GetCampaign(id string) (*models.CampaignDB, error) {
	var resource models.CampaignDB

	collection := m.db.Collection(m.CampaignsCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no campaign found for id", log.Data{"campaign_id": id})
			return nil, nil
		}
		return nil, err
	}

	return &resource, nil
}

// UpdateCampaignEmail sets the PayPal payee email of a campaign
func (m *MongoService) UpdateCampaignEmail(id string, email string) error {
	collection := m.db.Collection(m.CampaignsCollection)

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": bson.M{"campaign_email": email}})
	if err != nil {
		return fmt.Errorf("error updating campaign email for campaign [%s]: [%v]", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("campaign [%s] not found", id)
	}

	return nil
}

// CountCampaignsByAuthorSince counts the campaigns a user has created since the given time
func (m *MongoService) CountCampaignsByAuthorSince(authorID string, since time.Time) (int64, error) {
	collection := m.db.Collection(m.CampaignsCollection)

	filter := bson.M{
		"author_id":  authorID,
		"created_at": bson.M{"$gte": since},
	}

	return collection.CountDocuments(context.Background(), filter)
}

// GetPendingPayment gets a payment from the DB
// If payment not found in DB, return nil
func (m *MongoService) GetPendingPayment(id string) (*models.PendingPaymentDB, error) {
	var resource models.PendingPaymentDB

	collection := m.db.Collection(m.PaymentsCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			log.Debug("no payment found for id", log.Data{"payment_id": id})
			return nil, nil
		}
		return nil, err
	}

	return &resource, nil
}

// CountCollectedPayments counts the payments of a campaign that have been collected
func (m *MongoService) CountCollectedPayments(campaignID string) (int64, error) {
	collection := m.db.Collection(m.PaymentsCollection)

	filter := bson.M{
		"downloads":             campaignID,
		"epap_preapproval_paid": true,
	}

	return collection.CountDocuments(context.Background(), filter)
}

// MarkPreapprovalPaid stores the pay key returned by PayPal and flags the preapproval as paid
func (m *MongoService) MarkPreapprovalPaid(id string, payKey string) error {
	collection := m.db.Collection(m.PaymentsCollection)

	update := bson.M{"$set": bson.M{
		"epap_pay_key":          payKey,
		"epap_preapproval_paid": true,
	}}

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("error storing pay key for payment [%s]: [%v]", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment [%s] not found", id)
	}

	return nil
}

// UpdatePaymentStatus sets the status of a payment
func (m *MongoService) UpdatePaymentStatus(id string, status models.PaymentStatus) error {
	collection := m.db.Collection(m.PaymentsCollection)

	result, err := collection.UpdateOne(context.Background(), bson.M{"_id": id}, bson.M{"$set": bson.M{"status": string(status)}})
	if err != nil {
		return fmt.Errorf("error updating status for payment [%s]: [%v]", id, err)
	}
	if result.MatchedCount == 0 {
		return fmt.Errorf("payment [%s] not found", id)
	}

	return nil
}

// GetUser gets a user from the DB
// If user not found in DB, return nil
func (m *MongoService) GetUser(id string) (*models.UserDB, error) {
	var resource models.UserDB

	collection := m.db.Collection(m.UsersCollection)
	err := collection.FindOne(context.Background(), bson.M{"_id": id}).Decode(&resource)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return &resource, nil
}

// IncrementUserContributions adds one pledge to the user's counter for each campaign
func (m *MongoService) IncrementUserContributions(userID string, campaignIDs []string) error {
	if len(campaignIDs) == 0 {
		return nil
	}

	for _, campaignID := range campaignIDs {
		if !validCounterKey(campaignID) {
			return fmt.Errorf("invalid campaign id [%s] for contribution counter", campaignID)
		}
	}

	collection := m.db.Collection(m.UsersCollection)

	increments := bson.M{}
	for _, campaignID := range campaignIDs {
		key := "atcf_contributed_to." + campaignID
		if v, ok := increments[key].(int); ok {
			increments[key] = v + 1
		} else {
			increments[key] = 1
		}
	}

	_, err := collection.UpdateOne(
		context.Background(),
		bson.M{"_id": userID},
		bson.M{"$inc": increments},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("error incrementing contributions for user [%s]: [%v]", userID, err)
	}

	return nil
}

// validCounterKey reports whether a campaign id can be used as a field name in
// the contribution counters
func validCounterKey(campaignID string) bool {
	return campaignID != "" && !strings.HasPrefix(campaignID, "$") && !strings.Contains(campaignID, ".")
}
