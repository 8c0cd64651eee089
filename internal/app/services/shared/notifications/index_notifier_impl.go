package notifications

import (
	"context"
	"sync"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/app/models"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQIndexNotifier struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
	mu        sync.Mutex
}

// NewRabbitMQIndexNotifier declares the durable notification queue and
// returns a publisher for indexed-event messages.
func NewRabbitMQIndexNotifier(conn *amqp.Connection, logger *zap.Logger, queueName string) (contracts.IndexNotifier, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &rabbitMQIndexNotifier{
		ch:        ch,
		log:       logger,
		queueName: queueName,
	}, nil
}

func (n *rabbitMQIndexNotifier) PublishIndexedEvent(ctx context.Context, doc *models.EventDocument) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	n.log.Info("rabbitMQIndexNotifier.PublishIndexedEvent called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCompositionIDKey, doc.CompositionID),
		zap.String(constvars.LoggingQueueKey, n.queueName),
	)

	body, err := json.Marshal(doc)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	n.mu.Lock()
	defer n.mu.Unlock()

	msg := amqp.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp.Persistent,
	}
	if err := n.ch.PublishWithContext(ctx, "", n.queueName, false, false, msg); err != nil {
		return exceptions.ErrPublishNotification(err)
	}
	return nil
}
