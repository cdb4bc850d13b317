package handlers

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/therahmonqulov/serjantbek/moderation"
)

// mediaFileID 取消息中待审查的媒体文件。图片取最大尺寸，贴纸和
// GIF 优先用缩略图，没有缩略图时退回原始文件。
func mediaFileID(message *tgbotapi.Message) (string, bool) {
	switch {
	case len(message.Photo) > 0:
		// 尺寸从小到大排列，末尾为最大
		return message.Photo[len(message.Photo)-1].FileID, true
	case message.Sticker != nil:
		if message.Sticker.Thumbnail != nil {
			return message.Sticker.Thumbnail.FileID, true
		}
		return message.Sticker.FileID, true
	case message.Animation != nil:
		if message.Animation.Thumbnail != nil {
			return message.Animation.Thumbnail.FileID, true
		}
		return message.Animation.FileID, true
	}
	return "", false
}

// moderateMedia 下载媒体内容并提交视觉分类器审查。下载或分类
// 失败时视作无违规，只记日志，不做任何处理。
func (h *Handler) moderateMedia(message *tgbotapi.Message, fileID string) error {
	ctx := context.Background()

	imageBase64, err := h.fileBase64(fileID)
	if err != nil {
		h.logger.Error("下载媒体文件失败",
			"chat_id", message.Chat.ID, "file_id", fileID, "err", err)
		return nil
	}

	safeSearch, err := h.Vision.AnnotateSafeSearch(ctx, imageBase64)
	if err != nil {
		h.logger.Error("SafeSearch 检测失败",
			"chat_id", message.Chat.ID, "file_id", fileID, "err", err)
		return nil
	}

	category, ok := moderation.ClassifyMedia(safeSearch.Verdict())
	if !ok {
		return nil
	}

	h.enforce(message, category, "")
	return nil
}

// fileBase64 通过 Bot API 下载文件并转为 base64
func (h *Handler) fileBase64(fileID string) (string, error) {
	file, err := h.Bot.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return "", err
	}

	res, err := h.httpClient.Get(file.Link(h.Bot.Token))
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	if res.StatusCode != 200 {
		return "", fmt.Errorf("下载文件失败 statusCode=%d", res.StatusCode)
	}

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(data), nil
}
