package order_status_changed

import (
	"encoding/json"
	"strings"

	"github.com/IBM/sarama"
	"storefront/pkg/logger"
)

type Handler struct {
	tracker Tracker
	log     handlerLogger
}

func New(log handlerLogger, tracker Tracker) *Handler {
	handlerLog := log.With(logger.NewField("consumer", "order.status.changed"))

	return &Handler{
		tracker: tracker,
		log:     handlerLog,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.status.changed: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			h.messageProcessing(message)
			sess.MarkMessage(message, "")

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.status.changed: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing пересеивает прогрессию заказа статусом из события.
// Все ошибки разбора терминальные: сообщение коммитится, повтор не поможет.
func (h *Handler) messageProcessing(message *sarama.ConsumerMessage) {
	var event statusChangedEvent
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.status.changed handler received bad message")
		return
	}

	id := strings.TrimSpace(string(event.OrderID))
	msgLog := h.log.With(
		logger.NewField("order", id),
		logger.NewField("status", event.Status),
		logger.NewField("offset", message.Offset),
	)

	if id == "" || strings.TrimSpace(event.Status) == "" {
		msgLog.Warn("order.status.changed handler missing order_id or status")
		return
	}

	if !h.tracker.Reseed(id, event.Status) {
		// заказ никто не смотрит или статус не изменился
		return
	}

	msgLog.Info("order.status.changed: reseeded")
}
