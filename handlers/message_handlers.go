package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/therahmonqulov/serjantbek/db/models"
	"github.com/therahmonqulov/serjantbek/moderation"
	"github.com/therahmonqulov/serjantbek/utils"
)

// HandleMessage 处理普通消息
func (h *Handler) HandleMessage(message *tgbotapi.Message) error {
	// 私聊中只响应命令，不做审查
	if message.Chat.IsPrivate() {
		return nil
	}

	// 只在群组中工作
	if !message.Chat.IsGroup() && !message.Chat.IsSuperGroup() {
		return nil
	}

	if message.From == nil {
		return nil
	}

	role, err := h.memberRole(message.Chat.ID, message.From.ID)
	if err != nil {
		// 角色查询失败时放行，避免误伤
		h.logger.Error("查询成员角色失败",
			"chat_id", message.Chat.ID, "user_id", message.From.ID, "err", err)
		return nil
	}
	if !shouldModerate(role) {
		return nil
	}

	if message.Text != "" {
		return h.moderateText(message)
	}

	if fileID, ok := mediaFileID(message); ok {
		return h.moderateMedia(message, fileID)
	}

	return nil
}

// moderateText 对文本消息做规则审查
func (h *Handler) moderateText(message *tgbotapi.Message) error {
	category, ok := moderation.ClassifyText(message.Text, h.Rules)
	if !ok {
		return nil
	}

	h.enforce(message, category, message.Text)
	return nil
}

// enforce 执行违规处理并记录
func (h *Handler) enforce(message *tgbotapi.Message, category moderation.Category, text string) {
	violation := moderation.Violation{
		Category:      category,
		ChatID:        message.Chat.ID,
		MessageID:     message.MessageID,
		UserID:        message.From.ID,
		Username:      message.From.UserName,
		FirstName:     message.From.FirstName,
		MessageText:   text,
		DeleteMessage: true,
	}

	count, muted := h.Enforcer.Enforce(context.Background(), violation)
	violationsTotal.WithLabelValues(string(category)).Inc()

	h.logger.Info("已处理违规",
		"chat_id", message.Chat.ID, "user_id", message.From.ID,
		"category", category, "count", count, "muted", muted)

	h.queueViolation(models.ViolationInfo{
		ChatID:      message.Chat.ID,
		UserID:      message.From.ID,
		Username:    utils.DisplayName(message.From),
		MessageID:   message.MessageID,
		Category:    string(category),
		MessageText: utils.TruncateText(text, 500),
	})

	if muted {
		until := time.Now().Add(moderation.MuteDuration)
		if err := h.DB.LogMute(message.Chat.ID, message.From.ID, until); err != nil {
			h.logger.Error("记录禁言失败",
				"chat_id", message.Chat.ID, "user_id", message.From.ID, "err", err)
		}
	}
}
