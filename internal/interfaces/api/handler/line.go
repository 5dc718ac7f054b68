package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"apptracker/internal/application/dto"
	"apptracker/internal/application/service"
	"apptracker/internal/domain/entity"
	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

// Commands answered with the upcoming reminders.
var upcomingCommands = map[string]bool{"reminders": true, "提醒": true}

// Commands answered with the help text.
var helpCommands = map[string]bool{"help": true, "帮助": true}

const lineDueLayout = "01/02 15:04"

// LineMessenger is the part of the LINE client the webhook needs.
type LineMessenger interface {
	ParseRequest(r *http.Request) ([]*linebot.Event, error)
	SendMessages(replyToken string, messages ...linebot.SendingMessage) error
}

// LineHandler handles incoming LINE webhook events.
type LineHandler struct {
	lineClient      LineMessenger
	userService     service.UserService
	reminderService service.ReminderService
	translator      *i18n.Translator
	clock           service.Clock
	log             logger.Logger
}

// NewLineHandler creates a new LineHandler.
func NewLineHandler(
	lineClient LineMessenger,
	userService service.UserService,
	reminderService service.ReminderService,
	translator *i18n.Translator,
	clock service.Clock,
	log logger.Logger,
) *LineHandler {
	return &LineHandler{
		lineClient:      lineClient,
		userService:     userService,
		reminderService: reminderService,
		translator:      translator,
		clock:           clock,
		log:             log,
	}
}

// HandleWebhook is the main entry point for webhook requests.
func (h *LineHandler) HandleWebhook(c echo.Context) error {
	ctx := c.Request().Context()
	events, err := h.lineClient.ParseRequest(c.Request())
	if err != nil {
		if errors.Is(err, linebot.ErrInvalidSignature) {
			h.log.Warn("Invalid LINE signature received")
			return c.String(http.StatusBadRequest, "Invalid signature")
		}
		h.log.Error("Failed to parse LINE webhook request", err)
		return c.String(http.StatusInternalServerError, "Error parsing request")
	}

	for _, event := range events {
		if event.Source == nil || event.Source.UserID == "" {
			continue
		}
		h.log.Debug(fmt.Sprintf("Processing event type: %s", event.Type))
		switch event.Type {
		case linebot.EventTypeMessage:
			h.handleMessageEvent(ctx, event)
		case linebot.EventTypeFollow:
			h.handleFollowEvent(ctx, event)
		case linebot.EventTypeUnfollow:
			h.handleUnfollowEvent(ctx, event)
		default:
			h.log.Debug(fmt.Sprintf("Unhandled event type: %s", event.Type))
		}
	}

	return c.String(http.StatusOK, "OK")
}

func (h *LineHandler) handleFollowEvent(ctx context.Context, event *linebot.Event) {
	lineUserID := event.Source.UserID
	h.log.Info(fmt.Sprintf("LINE user %s followed the bot.", lineUserID))

	lang := h.translator.Default()
	if user, err := h.userService.FindByLineUserID(ctx, lineUserID); err == nil {
		lang = h.translator.Resolve(user.Language)
	}
	h.reply(event.ReplyToken,
		linebot.NewTextMessage(h.translator.T(lang, "line.welcome")),
		h.helpMessage(lang),
	)
}

func (h *LineHandler) handleUnfollowEvent(ctx context.Context, event *linebot.Event) {
	lineUserID := event.Source.UserID
	h.log.Info(fmt.Sprintf("LINE user %s unfollowed or blocked the bot.", lineUserID))
	// No reply is possible for unfollow events.
	if err := h.userService.UnlinkLineAccount(ctx, lineUserID); err != nil {
		h.log.Error(fmt.Sprintf("Failed to unlink LINE user %s", lineUserID), err)
	}
}

func (h *LineHandler) handleMessageEvent(ctx context.Context, event *linebot.Event) {
	message, ok := event.Message.(*linebot.TextMessage)
	if !ok {
		h.log.Debug(fmt.Sprintf("Received non-text message from %s", event.Source.UserID))
		return
	}
	lineUserID := event.Source.UserID
	text := strings.TrimSpace(message.Text)

	user, err := h.userService.FindByLineUserID(ctx, lineUserID)
	if err != nil && !errors.Is(err, appErrors.ErrNotFound) {
		h.log.Error(fmt.Sprintf("Failed to look up LINE user %s", lineUserID), err)
		return
	}
	lang := h.translator.Default()
	if user != nil {
		lang = h.translator.Resolve(user.Language)
	}

	command := strings.ToLower(text)
	switch {
	case helpCommands[command]:
		h.reply(event.ReplyToken, h.helpMessage(lang))
	case upcomingCommands[command]:
		if user == nil {
			h.replyText(event.ReplyToken, h.translator.T(lang, "line.notLinked"))
			return
		}
		h.sendUpcoming(ctx, event.ReplyToken, user)
	default:
		h.tryLink(ctx, event.ReplyToken, text, lineUserID, lang, user != nil)
	}
}

// tryLink treats any other text as a link code. Linked users who sent
// something else get the help text.
func (h *LineHandler) tryLink(ctx context.Context, replyToken, code, lineUserID, lang string, linked bool) {
	user, err := h.userService.LinkLineAccount(ctx, code, lineUserID)
	if err != nil {
		if !errors.Is(err, appErrors.ErrNotFound) {
			h.log.Error(fmt.Sprintf("Failed to link LINE user %s", lineUserID), err)
		}
		if linked {
			h.reply(replyToken, h.helpMessage(lang))
			return
		}
		h.replyText(replyToken, h.translator.T(lang, "line.linkFailed"))
		return
	}
	lang = h.translator.Resolve(user.Language)
	h.replyText(replyToken, h.translator.Format(lang, "line.linkSuccess", map[string]string{"name": user.Name}))
}

func (h *LineHandler) sendUpcoming(ctx context.Context, replyToken string, user *entity.User) {
	lang := h.translator.Resolve(user.Language)
	actor := dto.Actor{UserID: user.ID, Role: user.Role}
	reminders, err := h.reminderService.ListUpcoming(ctx, actor, service.DefaultUpcomingDays)
	if err != nil {
		h.log.Error(fmt.Sprintf("Failed to list upcoming reminders for user %s", user.ID), err)
		h.replyText(replyToken, h.translator.T(lang, "api.reminders.fetchError"))
		return
	}
	if len(reminders) == 0 {
		h.replyText(replyToken, h.translator.T(lang, "line.noUpcoming"))
		return
	}

	var builder strings.Builder
	builder.WriteString(h.translator.T(lang, "line.upcomingHeader"))
	for _, r := range reminders {
		builder.WriteString("\n")
		builder.WriteString(h.translator.Format(lang, "line.upcomingItem", map[string]string{
			"title": r.Title,
			"due":   r.DueDate.In(h.clock.Location).Format(lineDueLayout),
		}))
	}
	h.replyText(replyToken, builder.String())
}

func (h *LineHandler) helpMessage(lang string) linebot.SendingMessage {
	quickReply := linebot.NewQuickReplyItems(
		linebot.NewQuickReplyButton("", linebot.NewMessageAction("reminders", "reminders")),
		linebot.NewQuickReplyButton("", linebot.NewMessageAction("提醒", "提醒")),
	)
	return linebot.NewTextMessage(h.translator.T(lang, "line.help")).WithQuickReplies(quickReply)
}

func (h *LineHandler) replyText(replyToken, text string) {
	h.reply(replyToken, linebot.NewTextMessage(text))
}

func (h *LineHandler) reply(replyToken string, messages ...linebot.SendingMessage) {
	if err := h.lineClient.SendMessages(replyToken, messages...); err != nil {
		h.log.Error("Failed to send LINE reply", err)
	}
}
