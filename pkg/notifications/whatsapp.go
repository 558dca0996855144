package notifications

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

type Publisher interface {
	Publish(ctx context.Context, channel string, payload []byte) error
}

// WhatsApp hands replies to the gateway through the response channel.
type WhatsApp struct {
	publisher Publisher
}

func NewWhatsApp(
	publisher Publisher,
) *WhatsApp {
	return &WhatsApp{
		publisher: publisher,
	}
}

func (w *WhatsApp) SendMessage(
	ctx context.Context,
	to string,
	text string,
) error {
	payload, err := json.Marshal(database.OutboundMessage{
		To:      to,
		Message: text,
	})
	if err != nil {
		return errors.Wrap(err, "marshal reply")
	}

	if err = w.publisher.Publish(ctx, common.ChannelResponse, payload); err != nil {
		return errors.Wrapf(err, "publish reply to %s", to)
	}

	return nil
}
