package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	k "github.com/segmentio/kafka-go"

	"github.com/qrave1/RoomChat/internal/domain/models"
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...k.Message) error
	Close() error
}

// Writer публикует принятые сообщения в топик для внешних потребителей (уведомления, индексация).
// Ключ - id комнаты, так сообщения одной комнаты попадают в одну партицию по порядку.
type Writer struct {
	w messageWriter
}

func NewWriter(brokers []string, topic string) *Writer {
	return &Writer{
		w: &k.Writer{
			Addr:         k.TCP(brokers...),
			Topic:        topic,
			Balancer:     &k.Hash{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: k.RequireOne,
			Async:        true,
		},
	}
}

func (w *Writer) Close() error { return w.w.Close() }

func (w *Writer) PublishMessage(ctx context.Context, msg *models.Message) error {
	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	return w.w.WriteMessages(ctx, k.Message{
		Key:   []byte(msg.RoomID.String()),
		Value: value,
		Time:  msg.Timestamp,
	})
}
