package handlers

import (
	"fmt"
	"net/http"
	"net/url"

	"github.com/appthemer/crowdfunding-payments.api/config"
	"github.com/companieshouse/chs.go/avro"
	"github.com/companieshouse/chs.go/avro/schema"
	"github.com/companieshouse/chs.go/kafka/producer"
	"github.com/companieshouse/chs.go/log"
)

// ProducerTopic is the topic to which the funds collected kafka message is sent
const ProducerTopic = "funds-collected"

// ProducerSchemaName is the schema which will be used to send the funds collected kafka message with
const ProducerSchemaName = "funds-collected"

// fundsCollected represents the avro schema of the funds collected message
type fundsCollected struct {
	PaymentID  string `avro:"payment_id"`
	CampaignID string `avro:"campaign_id"`
	RunID      string `avro:"run_id"`
}

// redirectUser redirects the user back to the campaign with a notice code added to the query
func redirectUser(w http.ResponseWriter, r *http.Request, redirectURI string, notice string) {
	generatedURL, err := url.Parse(redirectURI)
	if err != nil {
		log.ErrorR(r, fmt.Errorf("error redirecting user: [%s]", err))
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	query := generatedURL.Query()
	query.Set("notice", notice)
	generatedURL.RawQuery = query.Encode()

	log.InfoR(r, "Redirecting to:", log.Data{"generated_url": generatedURL.String()})

	http.Redirect(w, r, generatedURL.String(), http.StatusSeeOther)
}

// produceFundsCollectedMessage handles creating a producer, marshalling the collected payment into the correct avro
// schema and sending the message to the topic defined in ProducerTopic
func produceFundsCollectedMessage(paymentID string, campaignID string, runID string) error {
	cfg, err := config.Get()
	if err != nil {
		err = fmt.Errorf("error getting config for kafka message production: [%v]", err)
		return err
	}

	// Get a producer
	kafkaProducer, err := producer.New(&producer.Config{Acks: &producer.WaitForAll, BrokerAddrs: cfg.BrokerAddr})
	if err != nil {
		err = fmt.Errorf("error creating kafka producer: [%v]", err)
		return err
	}
	fundsCollectedSchema, err := schema.Get(cfg.SchemaRegistryURL, ProducerSchemaName)
	if err != nil {
		err = fmt.Errorf("error getting schema from schema registry: [%v]", err)
		return err
	}
	producerSchema := &avro.Schema{
		Definition: fundsCollectedSchema,
	}

	message, err := prepareKafkaMessage(fundsCollected{PaymentID: paymentID, CampaignID: campaignID, RunID: runID}, *producerSchema)
	if err != nil {
		err = fmt.Errorf("error preparing kafka message with schema: [%v]", err)
		return err
	}

	partition, offset, err := kafkaProducer.Send(message)
	if err != nil {
		err = fmt.Errorf("failed to send message in partition: %d at offset %d", partition, offset)
		return err
	}
	return nil
}

// prepareKafkaMessage is pulled out of produceFundsCollectedMessage() to allow unit testing of non-kafka portion of code
func prepareKafkaMessage(collected fundsCollected, fundsCollectedSchema avro.Schema) (*producer.Message, error) {
	messageBytes, err := fundsCollectedSchema.Marshal(collected)
	if err != nil {
		err = fmt.Errorf("error marshalling funds collected message: [%v]", err)
		return nil, err
	}

	producerMessage := &producer.Message{
		Value: messageBytes,
		Topic: ProducerTopic,
	}
	return producerMessage, nil
}
