package report

import (
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"

	"Go2SendGraph/internal/config"
	"Go2SendGraph/internal/model"
)

// Publisher ships snapshot reports to the aggregation engine over NATS.
type Publisher struct {
	nc      *nats.Conn
	subject string
}

// NewPublisher connects to the NATS server from the configuration.
func NewPublisher(cfg config.NATSConfig) (*Publisher, error) {
	nc, err := nats.Connect(cfg.URL)
	if err != nil {
		return nil, err
	}
	log.Printf("Connected to NATS server at %s", cfg.URL)
	return &Publisher{nc: nc, subject: cfg.Subject}, nil
}

// Publish stamps the counts with a report id and capture time and
// publishes them on the configured subject.
func (p *Publisher) Publish(taskID model.TaskID, counts map[model.TaskID]int64) error {
	data, err := Encode(model.SnapshotReport{
		ReportID: uuid.NewString(),
		TaskID:   taskID,
		TakenAt:  time.Now().UTC(),
		Counts:   counts,
	})
	if err != nil {
		return err
	}
	return p.nc.Publish(p.subject, data)
}

// Close drains and closes the NATS connection.
func (p *Publisher) Close() {
	if p.nc != nil {
		p.nc.Drain()
		log.Println("NATS connection drained and closed.")
	}
}
