package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shenikar/road_intelligence/internal/models"
	"github.com/shenikar/road_intelligence/internal/pipeline"
	"github.com/shenikar/road_intelligence/internal/schema"
	"github.com/sirupsen/logrus"
)

const (
	// OperatorID - отправитель сообщений, набранных в панели
	OperatorID = "OPERATOR-01"
	// EmptyChannelMessage показывается, когда в канале еще нет сообщений
	EmptyChannelMessage = "No messages in this channel yet."
)

var messageTable = tableSpec[models.Message]{
	name:        "emergency.messages",
	schema:      schema.Message,
	filterField: "channel",
	defaultSort: pipeline.SortState{Field: "timestamp", Direction: pipeline.Ascending},
}

// Channels - каналы центра связи в порядке вкладок
var Channels = []models.Channel{
	{ID: models.ChannelDispatch, Name: "Dispatch", Icon: "Radio", Active: true},
	{ID: models.ChannelPolice, Name: "Police", Icon: "Shield", Active: true},
	{ID: models.ChannelFire, Name: "Fire Dept", Icon: "Flame", Active: true},
	{ID: models.ChannelMedical, Name: "Medical", Icon: "Heart", Active: false},
	{ID: models.ChannelMaintenance, Name: "Maintenance", Icon: "Wrench", Active: true},
}

// ChannelByID ищет канал по id
func ChannelByID(id string) (models.Channel, bool) {
	for _, c := range Channels {
		if c.ID == id {
			return c, true
		}
	}
	return models.Channel{}, false
}

// ChannelCount - канал и число сообщений в нем по всей ленте
type ChannelCount struct {
	Channel models.Channel
	Count   int
}

// MessageFeed - лента одного канала (или всех) с отметками "сколько назад"
type MessageFeed struct {
	View     pipeline.View[models.Message]
	TimeAgo  map[string]string
	Channels []ChannelCount
}

// NewMessage - текст, набранный оператором
type NewMessage struct {
	Channel string
	Content string
}

// ListMessages возвращает ленту канала, старые сообщения сверху
func (s *emergencyService) ListMessages(_ context.Context, q ViewQuery) MessageFeed {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "ListMessages",
		"channel": q.Filter,
	})

	set := s.stores.Messages.Set()
	view := messageTable.run(log, s.observer, set, q)

	now := s.clock()
	ago := make(map[string]string, len(view.Records))
	for _, m := range view.Records {
		ago[m.ID] = MessageAge(now, m.Timestamp)
	}

	summary, err := pipeline.SummarizeSet(schema.Message, set, "channel", nil)
	if err != nil {
		log.WithError(err).Warn("Failed to summarize messages")
	}
	counts := make([]ChannelCount, 0, len(Channels))
	for _, c := range Channels {
		counts = append(counts, ChannelCount{Channel: c, Count: summary.Count(c.ID)})
	}

	log.WithField("count", len(view.Records)).Debug("Messages listed")
	return MessageFeed{View: view, TimeAgo: ago, Channels: counts}
}

// SendMessage добавляет сообщение оператора в конец ленты канала
func (s *emergencyService) SendMessage(_ context.Context, in NewMessage) (models.Message, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service": "emergency",
		"method":  "SendMessage",
		"channel": in.Channel,
	})

	if _, ok := ChannelByID(in.Channel); !ok {
		log.Warn("Attempted to send a message to an unknown channel")
		return models.Message{}, fmt.Errorf("service: channel %s not found: %w", in.Channel, ErrNotFound)
	}

	message := models.Message{
		ID:        "MSG-" + strings.ToUpper(uuid.NewString()[:8]),
		Channel:   in.Channel,
		Sender:    OperatorID,
		Content:   strings.TrimSpace(in.Content),
		Timestamp: s.clock(),
		Priority:  models.MessagePriorityNormal,
		Type:      models.MessageBroadcast,
	}
	if replaced := s.stores.Messages.Upsert(message); replaced {
		log.WithField("message_id", message.ID).Error("Generated message id collided with an existing one")
		return models.Message{}, fmt.Errorf("service: could not send message %s: %w", message.ID, ErrConflict)
	}

	log.WithField("message_id", message.ID).Info("Message sent")
	return message, nil
}

// MessageAge: "Just now", "1 min ago", "N min ago"
func MessageAge(now, at time.Time) string {
	minutes := int(now.Sub(at) / time.Minute)
	switch {
	case minutes < 1:
		return "Just now"
	case minutes == 1:
		return "1 min ago"
	default:
		return fmt.Sprintf("%d min ago", minutes)
	}
}
