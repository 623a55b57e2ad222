package mail

import (
	"context"
	"fmt"

	"github.com/xavierca1/ligue-leads/internal/entity"
	"github.com/xavierca1/ligue-leads/internal/infra/integration/postage"
)

// Transport routes a dispatch to the channel's real carrier: SMTP for email,
// the postage provider for postal letters.
type Transport struct {
	Email  *EmailSender
	Postal *postage.Client
}

func NewTransport(email *EmailSender, postal *postage.Client) *Transport {
	return &Transport{Email: email, Postal: postal}
}

func (t *Transport) Send(ctx context.Context, channel, recipient, subject, content string) error {
	switch channel {
	case entity.ChannelEmail:
		return t.Email.Send(recipient, subject, content)
	case entity.ChannelPostal:
		return t.Postal.SendLetter(ctx, postage.SendLetterInput{
			Address: recipient,
			Content: content,
		})
	default:
		return fmt.Errorf("unknown dispatch channel: %s", channel)
	}
}
