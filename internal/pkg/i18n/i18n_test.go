package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTranslator(t *testing.T) *Translator {
	t.Helper()
	tr, err := New(Chinese)
	require.NoError(t, err)
	return tr
}

func TestTranslate(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		name string
		lang string
		key  string
		want string
	}{
		{"english", English, "api.reminders.notFound", "Reminder not found"},
		{"chinese", Chinese, "api.reminders.notFound", "提醒不存在"},
		{"unsupported language falls back to chinese", "fr", "api.auth.forbidden", "没有权限执行此操作"},
		{"missing key returns the key", English, "api.nothing.here", "api.nothing.here"},
		{"non-leaf key returns the key", English, "api.reminders", "api.reminders"},
		{"nested status label", English, "applications.status.under_review", "Under review"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.T(tt.lang, tt.key))
		})
	}
}

func TestCatalogsHaveSameKeys(t *testing.T) {
	tr := newTranslator(t)

	zh := tr.catalogs[Chinese].Keys()
	en := tr.catalogs[English].Keys()
	assert.ElementsMatch(t, zh, en)
}

func TestFormat(t *testing.T) {
	tr := newTranslator(t)

	got := tr.Format(English, "notifications.statusUpdate.message", map[string]string{
		"university": "MIT",
		"status":     "Submitted",
	})
	assert.Equal(t, "Your application to MIT is now: Submitted.", got)

	// Unknown placeholders are left alone.
	assert.Equal(t, "Deadline approaching: {title}", tr.Format(English, "notifications.deadline.title", nil))
}

func TestNegotiate(t *testing.T) {
	tr := newTranslator(t)

	tests := []struct {
		header string
		want   string
	}{
		{"", Chinese},
		{"en-US,en;q=0.9", English},
		{"zh-CN,zh;q=0.9", Chinese},
		{"fr-FR", Chinese},
		{"not a header;;;", Chinese},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, tr.Negotiate(tt.header))
		})
	}
}

func TestEnglishDefault(t *testing.T) {
	tr, err := New(English)
	require.NoError(t, err)

	assert.Equal(t, English, tr.Negotiate("fr-FR"))
	assert.Equal(t, English, tr.Resolve("de"))
	assert.Equal(t, Chinese, tr.Resolve("ZH"))
	// Fallback stays chinese regardless of the default.
	assert.Equal(t, "提醒不存在", tr.T("de", "api.reminders.notFound"))
}

func TestNewRejectsUnsupportedDefault(t *testing.T) {
	_, err := New("fr")
	assert.Error(t, err)
}
