// Package response writes the JSON envelope every endpoint answers with.
package response

import (
	"fmt"
	"net/http"
	"time"

	appErrors "apptracker/internal/pkg/errors"
	"apptracker/internal/pkg/i18n"
	"apptracker/internal/pkg/logger"

	"github.com/labstack/echo/v4"
)

// LangKey is the echo context key holding the request language.
const LangKey = "lang"

// Envelope is the body of every API response.
type Envelope struct {
	Success    bool        `json:"success"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message,omitempty"`
	MessageKey string      `json:"messageKey,omitempty"`
	Error      string      `json:"error,omitempty"`
	Timestamp  time.Time   `json:"timestamp"`
}

// Writer renders envelopes with messages in the request language.
type Writer struct {
	translator *i18n.Translator
	log        logger.Logger
	now        func() time.Time
}

func NewWriter(translator *i18n.Translator, log logger.Logger) *Writer {
	return &Writer{
		translator: translator,
		log:        log,
		now:        time.Now,
	}
}

// Language returns the language resolved for the request.
func (w *Writer) Language(c echo.Context) string {
	if lang, ok := c.Get(LangKey).(string); ok && lang != "" {
		return lang
	}
	return w.translator.Default()
}

// OK answers 200 with data and the translated key.
func (w *Writer) OK(c echo.Context, key string, data interface{}) error {
	return w.success(c, http.StatusOK, key, data)
}

// Created answers 201 with data and the translated key.
func (w *Writer) Created(c echo.Context, key string, data interface{}) error {
	return w.success(c, http.StatusCreated, key, data)
}

// Fail answers with the status and message key carried by err. Causes of
// server errors are logged and never sent to the client.
func (w *Writer) Fail(c echo.Context, err error) error {
	status := appErrors.StatusOf(err)
	key := appErrors.KeyOf(err, defaultKey(status))
	if status >= http.StatusInternalServerError {
		w.log.Error(fmt.Sprintf("%s %s failed", c.Request().Method, c.Request().URL.Path), err)
	} else {
		w.log.Debug(fmt.Sprintf("%s %s rejected: %v", c.Request().Method, c.Request().URL.Path, err))
	}
	return w.Status(c, status, key)
}

// Status answers with an explicit error status and message key.
func (w *Writer) Status(c echo.Context, status int, key string) error {
	text := w.translator.T(w.Language(c), key)
	return c.JSON(status, Envelope{
		Success:    false,
		Data:       nil,
		Message:    text,
		MessageKey: key,
		Error:      text,
		Timestamp:  w.now().UTC(),
	})
}

func (w *Writer) success(c echo.Context, status int, key string, data interface{}) error {
	env := Envelope{
		Success:   true,
		Data:      data,
		Timestamp: w.now().UTC(),
	}
	if key != "" {
		env.MessageKey = key
		env.Message = w.translator.T(w.Language(c), key)
	}
	return c.JSON(status, env)
}

func defaultKey(status int) string {
	switch status {
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return "api.general.validationError"
	case http.StatusUnauthorized:
		return "api.auth.unauthorized"
	case http.StatusForbidden:
		return "api.auth.forbidden"
	case http.StatusNotFound:
		return "api.general.notFound"
	case http.StatusConflict:
		return "api.general.duplicateError"
	case http.StatusMethodNotAllowed:
		return "api.general.methodNotAllowed"
	default:
		return "api.general.serverError"
	}
}
