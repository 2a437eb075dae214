package stream

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/shenikar/hazard_hotspots/internal/config"
	"github.com/shenikar/hazard_hotspots/internal/models"
)

// HotspotWriter публикует каждый снимок горячих точек в топик Kafka,
// одно сообщение на горячую точку с ключом по ячейке
type HotspotWriter struct {
	writer *kafkago.Writer
}

func NewHotspotWriter(cfg *config.Config) *HotspotWriter {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(cfg.KafkaBrokers...),
		Topic:        cfg.KafkaHotspotTopic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}
	return &HotspotWriter{writer: w}
}

// PublishSnapshot отправляет все горячие точки снимка одним вызовом WriteMessages
func (w *HotspotWriter) PublishSnapshot(ctx context.Context, snapshot *models.HotspotSnapshot) error {
	if len(snapshot.Hotspots) == 0 {
		return nil
	}
	msgs := make([]kafkago.Message, len(snapshot.Hotspots))
	for i := range snapshot.Hotspots {
		msg, err := serializeToMessage(snapshot.Hotspots[i], snapshot.GeneratedAt)
		if err != nil {
			return err
		}
		msgs[i] = msg
	}
	if err := w.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("stream: write hotspots: %w", err)
	}
	return nil
}

func (w *HotspotWriter) Close() error {
	return w.writer.Close()
}

func serializeToMessage(h models.Hotspot, generatedAt time.Time) (kafkago.Message, error) {
	data, err := json.Marshal(h)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize hotspot: %w", err)
	}
	return kafkago.Message{
		Key:   []byte(h.CellID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "severity", Value: []byte(h.SeverityLevel)},
			{Key: "generated_at", Value: []byte(generatedAt.Format(time.RFC3339))},
		},
	}, nil
}
