package kafka

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/IBM/sarama"
	"storefront/internal/pkg/config"
	"storefront/pkg/logger"
	retrierconfig "storefront/pkg/retrier"
	"storefront/pkg/retrier/backoff_adapter"
)

const clientID = "storefront"

// SaramaOptions параметры consumer group, которые приходят из конфига.
type SaramaOptions struct {
	Version    string
	AutoCommit bool
}

// Consumer читает order.status.changed в рамках consumer group.
type Consumer struct {
	log     logger.Logger
	client  sarama.ConsumerGroup
	topics  []string
	handler sarama.ConsumerGroupHandler
}

// NewSaramaConfig собирает конфиг группы. Смещение всегда OffsetNewest:
// трекер живёт в памяти и знает только о заказах, открытых после старта.
func NewSaramaConfig(opts SaramaOptions) (*sarama.Config, error) {
	version, err := sarama.ParseKafkaVersion(opts.Version)
	if err != nil {
		return nil, fmt.Errorf("parse kafka version %q: %w", opts.Version, err)
	}

	cfg := sarama.NewConfig()
	cfg.ClientID = clientID
	cfg.Version = version
	cfg.Consumer.Return.Errors = true
	cfg.Consumer.Offsets.Initial = sarama.OffsetNewest
	cfg.Consumer.Offsets.AutoCommit.Enable = opts.AutoCommit
	cfg.Consumer.Group.Rebalance.GroupStrategies = []sarama.BalanceStrategy{
		sarama.NewBalanceStrategyRoundRobin(),
	}

	return cfg, nil
}

func NewConsumer(ctx context.Context, log logger.Logger, cfg *config.Kafka, handler sarama.ConsumerGroupHandler) (*Consumer, error) {
	brokers := cfg.BrokerList()
	topics := []string{cfg.Topic}

	saramaConfig, err := NewSaramaConfig(SaramaOptions{
		Version:    cfg.Sarama.Version,
		AutoCommit: cfg.Sarama.ConsumerOffsetsAutocommit,
	})
	if err != nil {
		return nil, fmt.Errorf("build sarama config: %w", err)
	}

	kafkaLog := log.With(
		logger.NewField("brokers", brokers),
		logger.NewField("group", cfg.ConsumerGroup),
		logger.NewField("topics", topics),
	)

	// группа создаётся только после того, как брокеры ответили
	err = pingKafka(ctx, kafkaLog, brokers, cfg.Topic, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("kafka connection: %w", err)
	}

	client, err := sarama.NewConsumerGroup(brokers, cfg.ConsumerGroup, saramaConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create consumer group: %w", err)
	}

	return &Consumer{
		log:     kafkaLog,
		client:  client,
		topics:  topics,
		handler: handler,
	}, nil
}

// Start блокируется до отмены ctx или Close. Consume перезапускается после каждого ребаланса.
func (c *Consumer) Start(ctx context.Context) error {
	c.log.Info("kafka consumer starting")

	go c.logErrors(ctx)

	for {
		err := c.client.Consume(ctx, c.topics, c.handler)
		switch {
		case errors.Is(err, sarama.ErrClosedConsumerGroup):
			return nil
		case err != nil:
			c.log.Error("consume failed", logger.NewField("error", err))
			return fmt.Errorf("consume: %w", err)
		}

		if ctx.Err() != nil {
			c.log.Info("kafka consumer stopped")
			return ctx.Err()
		}
	}
}

func (c *Consumer) Close() error {
	return c.client.Close()
}

// logErrors вычитывает асинхронные ошибки группы (Return.Errors = true),
// иначе канал заполнится и группа встанет.
func (c *Consumer) logErrors(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-c.client.Errors():
			if !ok {
				return
			}
			c.log.Warn("kafka consumer group error", logger.NewField("error", err))
		}
	}
}

func pingKafka(ctx context.Context, log logger.Logger, brokers []string, topic string, cfg *sarama.Config) error {
	retrier := backoff_adapter.New(retrierconfig.Startup())

	var attempt uint64
	var topics []string
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		log.Info("attempting Kafka connection", logger.NewField("attempt", attempt))

		client, err := sarama.NewClient(brokers, cfg)
		if err != nil {
			return err
		}
		defer func() {
			if err := client.Close(); err != nil {
				log.Error("failed to close Kafka connection", logger.NewField("error", err))
			}
		}()

		topics, err = client.Topics()
		return err
	})
	if err != nil {
		log.Error("Kafka connection failed after retries",
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		)
		return fmt.Errorf("failed to connect to Kafka: %w", err)
	}

	// топик может появиться позже, при auto.create.topics группа подождёт первую запись
	if !slices.Contains(topics, topic) {
		log.Warn("topic not found on brokers yet", logger.NewField("topic", topic))
	}

	log.Info("Kafka connection established", logger.NewField("attempts", attempt))
	return nil
}
