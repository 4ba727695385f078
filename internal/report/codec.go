// Package report moves snapshot reports from task hosts to the
// aggregation engine over NATS, encoded as gob. Delivery is best effort:
// a report that is lost simply leaves the previous interval's weights in
// place until the next one arrives.
package report

import (
	"bytes"
	"encoding/gob"
	"fmt"

	"Go2SendGraph/internal/model"
)

// Encode serializes a snapshot report for transport.
func Encode(r model.SnapshotReport) ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(r); err != nil {
		return nil, fmt.Errorf("failed to encode snapshot report: %w", err)
	}
	return buf.Bytes(), nil
}

// Decode deserializes a snapshot report received from the transport.
func Decode(data []byte) (model.SnapshotReport, error) {
	var r model.SnapshotReport
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&r); err != nil {
		return model.SnapshotReport{}, fmt.Errorf("failed to decode snapshot report: %w", err)
	}
	return r, nil
}
