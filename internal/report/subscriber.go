package report

import (
	"log"

	"github.com/nats-io/nats.go"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/metrics"
	"Go2SendGraph/internal/model"
)

// Handler processes one received snapshot report.
type Handler func(model.SnapshotReport)

// Subscriber consumes snapshot reports from a NATS subject.
type Subscriber struct {
	nc      *nats.Conn
	sub     *nats.Subscription
	subject string
}

// NewSubscriber connects to the NATS server from the configuration.
func NewSubscriber(cfg config.NATSConfig) (*Subscriber, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.URL)
	return &Subscriber{nc: nc, subject: cfg.Subject}, nil
}

// Start subscribes to the configured subject and hands every decoded
// report to handler. Reports that fail to decode are counted and
// dropped, never fatal.
func (s *Subscriber) Start(handler Handler) error {
	sub, err := s.nc.Subscribe(s.subject, func(msg *nats.Msg) {
		r, err := Decode(msg.Data)
		if err != nil {
			metrics.ReportsRejected.Inc()
			log.Printf("Error decoding snapshot report: %v", err)
			return
		}
		handler(r)
	})
	if err != nil {
		return err
	}
	s.sub = sub
	log.Printf("Subscribed to '%s'. Waiting for snapshot reports...", s.subject)
	return nil
}

// Close unsubscribes and closes the NATS connection.
func (s *Subscriber) Close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	if s.nc != nil {
		s.nc.Close()
		log.Println("NATS connection closed.")
	}
}
