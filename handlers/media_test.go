package handlers

import (
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/stretchr/testify/assert"
)

func TestMediaFileIDPhotoPicksLargest(t *testing.T) {
	assert := assert.New(t)

	message := &tgbotapi.Message{
		Photo: []tgbotapi.PhotoSize{
			{FileID: "small", Width: 90},
			{FileID: "medium", Width: 320},
			{FileID: "large", Width: 800},
		},
	}

	fileID, ok := mediaFileID(message)
	assert.True(ok)
	assert.Equal("large", fileID)
}

func TestMediaFileIDStickerPrefersThumbnail(t *testing.T) {
	assert := assert.New(t)

	message := &tgbotapi.Message{
		Sticker: &tgbotapi.Sticker{
			FileID:    "sticker",
			Thumbnail: &tgbotapi.PhotoSize{FileID: "thumb"},
		},
	}

	fileID, ok := mediaFileID(message)
	assert.True(ok)
	assert.Equal("thumb", fileID)

	message.Sticker.Thumbnail = nil
	fileID, ok = mediaFileID(message)
	assert.True(ok)
	assert.Equal("sticker", fileID)
}

func TestMediaFileIDAnimationPrefersThumbnail(t *testing.T) {
	assert := assert.New(t)

	message := &tgbotapi.Message{
		Animation: &tgbotapi.Animation{
			FileID:    "animation",
			Thumbnail: &tgbotapi.PhotoSize{FileID: "thumb"},
		},
	}

	fileID, ok := mediaFileID(message)
	assert.True(ok)
	assert.Equal("thumb", fileID)

	message.Animation.Thumbnail = nil
	fileID, ok = mediaFileID(message)
	assert.True(ok)
	assert.Equal("animation", fileID)
}

func TestMediaFileIDTextOnly(t *testing.T) {
	assert := assert.New(t)

	_, ok := mediaFileID(&tgbotapi.Message{Text: "salom"})
	assert.False(ok)
}
