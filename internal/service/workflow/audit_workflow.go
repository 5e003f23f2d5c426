package workflow

import (
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/qs-lzh/movie-catalog/internal/model"
	"github.com/qs-lzh/movie-catalog/internal/mq"
	"github.com/qs-lzh/movie-catalog/internal/repository"
)

// AuditWorkflow carries catalog and auth events from the request path to the
// audit log asynchronously. Publishing is fire-and-log: a broker failure
// never fails the request that triggered the event.
type AuditWorkflow struct {
	auditRepo repository.AuditRepo
	logger    *zap.Logger

	publishCh *amqp.Channel
}

func NewAuditWorkflow(auditRepo repository.AuditRepo, logger *zap.Logger) *AuditWorkflow {
	return &AuditWorkflow{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

func (w *AuditWorkflow) Start(mqConn *amqp.Connection) error {
	ch, err := mq.NewChannel(mqConn)
	if err != nil {
		return err
	}
	w.publishCh = ch

	if err := w.ConsumeAuditEvents(mqConn); err != nil {
		return err
	}
	return nil
}

// Record publishes an audit event. A no-op when the workflow was never
// started, so the service runs fine without a broker configured.
func (w *AuditWorkflow) Record(message mq.AuditMessage) {
	if w.publishCh == nil {
		return
	}
	if err := mq.SendImmediateMessage(w.publishCh, mq.AuditImmediateQueue, message); err != nil {
		w.logger.Error("failed to publish audit event",
			zap.String("action", message.Action),
			zap.Error(err),
		)
	}
}

func (w *AuditWorkflow) ConsumeAuditEvents(conn *amqp.Connection) error {
	ch, err := mq.NewChannel(conn)
	if err != nil {
		return err
	}

	msgs, err := ch.Consume(mq.AuditImmediateQueue, "", false, false, false, false, nil)
	if err != nil {
		return err
	}

	go func() {
		for msg := range msgs {
			if err := w.handleAuditEvent(msg); err != nil {
				w.logger.Error("failed to handle audit event", zap.Error(err))
			}
		}
	}()

	return nil
}

func (w *AuditWorkflow) handleAuditEvent(msg amqp.Delivery) error {
	var message mq.AuditMessage
	if err := json.Unmarshal(msg.Body, &message); err != nil {
		msg.Nack(false, false)
		return err
	}

	entry := &model.AuditLog{
		Action:  message.Action,
		ActorID: message.ActorID,
		MovieID: message.MovieID,
		Detail:  message.Detail,
	}
	if err := w.auditRepo.Create(entry); err != nil {
		msg.Nack(false, true)
		return err
	}

	msg.Ack(false)

	return nil
}
