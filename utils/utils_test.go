package utils

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("", DisplayName(nil))
	assert.Equal("user", DisplayName(&tgbotapi.User{UserName: "user", FirstName: "First"}))
	assert.Equal("First", DisplayName(&tgbotapi.User{FirstName: "First"}))
}

func TestTruncateText(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("abc", TruncateText("abc", 10))
	assert.Equal("abcdefg...", TruncateText("abcdefghijklmn", 10))
}
