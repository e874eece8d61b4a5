package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

type Producer struct {
	l                  *slog.Logger
	w                  *kafka.Writer
	paymentLinkedTopic string
}

func NewProducer(l *slog.Logger, brokers []string, topic string) *Producer {
	l = l.WithGroup("kafka").With("topic", topic)

	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "",
		Balancer:               &kafka.LeastBytes{},
		Async:                  true,
		Compression:            0,
		Logger:                 &infoLogger{l: l},
		ErrorLogger:            &errorLogger{l: l},
		AllowAutoTopicCreation: true,
	}

	return &Producer{
		l:                  l,
		w:                  w,
		paymentLinkedTopic: topic,
	}
}

type PaymentLinkedEvent struct {
	PaymentID    string          `json:"payment_id"`
	DocumentID   string          `json:"document_id"`
	DocumentKind string          `json:"document_kind"`
	Amount       decimal.Decimal `json:"amount"`
}

func (p *Producer) SendPaymentLinked(ctx context.Context, paymentID, documentID, documentKind string, amount decimal.Decimal) {
	event := PaymentLinkedEvent{
		PaymentID:    paymentID,
		DocumentID:   documentID,
		DocumentKind: documentKind,
		Amount:       amount,
	}

	b, err := json.Marshal(event)
	if err != nil {
		p.l.Error(fmt.Sprintf("marshal event: %s", err))
		return
	}

	err = p.w.WriteMessages(ctx, kafka.Message{
		Key:   []byte(paymentID),
		Value: b,
		Topic: p.paymentLinkedTopic,
	})
	if err != nil {
		p.l.Error(fmt.Sprintf("write kafka message: %s", err))
		return
	}
}

func (p *Producer) Close() {
	err := p.w.Close()
	if err != nil {
		p.l.Error(fmt.Sprintf("close kafka writer: %s", err))
	}
}

type infoLogger struct {
	l *slog.Logger
}

func (l *infoLogger) Printf(format string, v ...any) {
	l.l.Info(fmt.Sprintf(format, v...))
}

type errorLogger struct {
	l *slog.Logger
}

func (l *errorLogger) Printf(format string, v ...any) {
	l.l.Error(fmt.Sprintf(format, v...))
}
