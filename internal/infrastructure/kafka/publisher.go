package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/LavaJover/football-team-service/internal/domain"
	"github.com/segmentio/kafka-go"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaTransferPublisher writes transfer events to a single topic, keyed by player id.
type KafkaTransferPublisher struct {
	writer messageWriter
}

func NewKafkaTransferPublisher(brokers []string, topic string) *KafkaTransferPublisher {
	return &KafkaTransferPublisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           5 * time.Second,
		},
	}
}

func (k *KafkaTransferPublisher) PublishTransfer(ctx context.Context, event domain.TransferEvent) error {
	msg, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal transfer event: %w", err)
	}

	return k.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.FormatInt(event.PlayerID, 10)),
		Value: msg,
		Time:  time.Now(),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(event.EventID)},
		},
	})
}

func (k *KafkaTransferPublisher) Close() error {
	return k.writer.Close()
}
