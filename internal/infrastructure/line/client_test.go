package line

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"apptracker/internal/pkg/config"
	"apptracker/internal/pkg/logger"

	"github.com/line/line-bot-sdk-go/v7/linebot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisabledClient(t *testing.T) {
	c, err := NewClient(config.LineConfig{}, logger.Discard())
	require.NoError(t, err)

	assert.False(t, c.Enabled())
	assert.NoError(t, c.PushText("U123", "hello"))
	assert.ErrorIs(t, c.SendMessages("token", linebot.NewTextMessage("hi")), ErrDisabled)

	_, err = c.ParseRequest(httptest.NewRequest(http.MethodPost, "/callback", nil))
	assert.ErrorIs(t, err, ErrDisabled)
}

func TestPushText(t *testing.T) {
	var got struct {
		To       string `json:"to"`
		Messages []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"messages"`
	}
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/bot/message/push", r.URL.Path)
		auth = r.Header.Get("Authorization")
		body, _ := io.ReadAll(r.Body)
		assert.NoError(t, json.Unmarshal(body, &got))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	cfg := config.LineConfig{ChannelSecret: "secret", ChannelAccessToken: "token"}
	c, err := NewClient(cfg, logger.Discard(), linebot.WithEndpointBase(server.URL))
	require.NoError(t, err)
	require.True(t, c.Enabled())

	require.NoError(t, c.PushText("U123", "Deadline tomorrow"))
	assert.Equal(t, "Bearer token", auth)
	assert.Equal(t, "U123", got.To)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "text", got.Messages[0].Type)
	assert.Equal(t, "Deadline tomorrow", got.Messages[0].Text)
}

func TestPushTextReportsAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"message":"The request body has 1 error(s)"}`))
	}))
	defer server.Close()

	cfg := config.LineConfig{ChannelSecret: "secret", ChannelAccessToken: "token"}
	c, err := NewClient(cfg, logger.Discard(), linebot.WithEndpointBase(server.URL))
	require.NoError(t, err)

	assert.Error(t, c.PushText("U123", "hello"))
}
