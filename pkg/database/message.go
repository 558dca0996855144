package database

import (
	"encoding/base64"
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
)

type MessageKind string

const (
	MessageKindText  = MessageKind("text")
	MessageKindImage = MessageKind("image")
	MessageKindVoice = MessageKind("voice")
)

type InboundMessage struct {
	From      string
	Kind      MessageKind
	Text      string
	Caption   string
	Content   []byte
	MimeType  string
	MessageID string
	Timestamp time.Time
}

// RawInput is the textual part of the message kept for LastTransaction.
func (m InboundMessage) RawInput() string {
	if m.Kind == MessageKindText {
		return m.Text
	}

	return m.Caption
}

type OutboundMessage struct {
	To      string `json:"to"`
	Message string `json:"message"`
}

type IncomingEnvelope struct {
	Type MessageKind  `json:"type"`
	Data IncomingData `json:"data"`
}

type IncomingData struct {
	From      string       `json:"from"`
	MessageID string       `json:"messageId"`
	Text      string       `json:"text,omitempty"`
	Content   string       `json:"content,omitempty"`
	Caption   string       `json:"caption,omitempty"`
	MimeType  string       `json:"mimetype,omitempty"`
	Timestamp FlexibleTime `json:"timestamp"`
}

// FlexibleTime accepts RFC3339 strings as well as unix seconds or milliseconds.
type FlexibleTime struct {
	time.Time
}

func (f *FlexibleTime) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "" || raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return err
		}

		if str == "" {
			return nil
		}

		if parsed, err := time.Parse(time.RFC3339Nano, str); err == nil {
			f.Time = parsed
			return nil
		}

		raw = str
	}

	num, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return errors.Newf("unsupported timestamp format: %s", raw)
	}

	if num > 1e12 {
		f.Time = time.UnixMilli(int64(num))
	} else {
		f.Time = time.Unix(int64(num), 0)
	}

	return nil
}

func (f FlexibleTime) MarshalJSON() ([]byte, error) {
	if f.IsZero() {
		return []byte("null"), nil
	}

	return json.Marshal(f.Time.Format(time.RFC3339Nano))
}

func DecodeInbound(payload []byte) (InboundMessage, error) {
	var envelope IncomingEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return InboundMessage{}, errors.Wrap(err, "invalid incoming envelope")
	}

	data := envelope.Data
	if data.From == "" {
		return InboundMessage{}, errors.New("incoming message has no sender")
	}

	msg := InboundMessage{
		From:      data.From,
		Kind:      envelope.Type,
		Text:      data.Text,
		Caption:   data.Caption,
		MimeType:  data.MimeType,
		MessageID: data.MessageID,
		Timestamp: data.Timestamp.Time,
	}

	switch envelope.Type {
	case MessageKindText:
	case MessageKindImage, MessageKindVoice:
		content, err := base64.StdEncoding.DecodeString(data.Content)
		if err != nil {
			return InboundMessage{}, errors.Wrapf(err, "invalid %s content", envelope.Type)
		}

		msg.Content = content
	default:
		return InboundMessage{}, errors.Newf("unsupported message type: %s", envelope.Type)
	}

	return msg, nil
}
