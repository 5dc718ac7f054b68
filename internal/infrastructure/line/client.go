package line

import (
	"errors"
	"fmt"
	"net/http"

	"apptracker/internal/pkg/config"
	"apptracker/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// ErrDisabled is returned by calls that need credentials the client was built without.
var ErrDisabled = errors.New("LINE messaging is not configured")

// Client wraps the linebot.Client. The embedded client is nil when LINE is
// not configured; push calls then become no-ops.
type Client struct {
	*linebot.Client
	log logger.Logger
}

// NewClient creates a LINE Bot client from cfg. Extra options are passed to
// linebot.New (tests point the endpoint at a local server).
func NewClient(cfg config.LineConfig, log logger.Logger, options ...linebot.ClientOption) (*Client, error) {
	if !cfg.Enabled() {
		log.Warn("LINE channel credentials not set, LINE messaging disabled.")
		return &Client{log: log}, nil
	}

	bot, err := linebot.New(cfg.ChannelSecret, cfg.ChannelAccessToken, options...)
	if err != nil {
		return nil, fmt.Errorf("failed to create LINE Bot client: %w", err)
	}
	log.Info("Successfully created LINE Bot client.")
	return &Client{
		Client: bot,
		log:    log,
	}, nil
}

// Enabled reports whether messages can be sent.
func (c *Client) Enabled() bool {
	return c != nil && c.Client != nil
}

// SendMessages sends one or more messages using the ReplyMessage API.
func (c *Client) SendMessages(replyToken string, messages ...linebot.SendingMessage) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if _, err := c.ReplyMessage(replyToken, messages...).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent reply message.")
	return nil
}

// PushMessages sends one or more messages using the PushMessage API.
func (c *Client) PushMessages(to string, messages ...linebot.SendingMessage) error {
	if !c.Enabled() {
		return ErrDisabled
	}
	if _, err := c.PushMessage(to, messages...).Do(); err != nil {
		return err
	}
	c.log.Debug("Successfully sent push message.")
	return nil
}

// PushText pushes a plain text message. It does nothing when LINE is disabled.
func (c *Client) PushText(to, text string) error {
	if !c.Enabled() {
		return nil
	}
	return c.PushMessages(to, linebot.NewTextMessage(text))
}

// ParseRequest verifies the signature of a webhook request and decodes its events.
func (c *Client) ParseRequest(r *http.Request) ([]*linebot.Event, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}
	return c.Client.ParseRequest(r)
}
