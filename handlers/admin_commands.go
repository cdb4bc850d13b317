package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/therahmonqulov/serjantbek/utils"
)

// /clear 一次最多尝试删除的消息数
const clearSweepLimit = 10000

// HandleClear 批量删除群组消息，只有管理员和群主可以执行
func (h *Handler) HandleClear(message *tgbotapi.Message, _ string) error {
	if !message.Chat.IsGroup() && !message.Chat.IsSuperGroup() {
		return nil
	}
	if message.From == nil {
		return nil
	}

	role, err := h.memberRole(message.Chat.ID, message.From.ID)
	if err != nil {
		h.logger.Error("查询成员角色失败",
			"chat_id", message.Chat.ID, "user_id", message.From.ID, "err", err)
		return err
	}

	if !canClear(role) {
		text := fmt.Sprintf("@%s, bu buyruq faqat adminlar uchun.", utils.DisplayName(message.From))
		msg := tgbotapi.NewMessage(message.Chat.ID, text)
		_, err := h.Bot.Send(msg)
		return err
	}

	msg := tgbotapi.NewMessage(message.Chat.ID,
		"⚡️ Xabarlarni o'chirishni boshlayapman (so'nggi 10000 ta xabar).")
	if _, err := h.Bot.Send(msg); err != nil {
		h.logger.Error("发送清理提示失败", "chat_id", message.Chat.ID, "err", err)
	}

	deleted := sweepMessages(func(messageID int) error {
		_, err := h.Bot.Request(tgbotapi.NewDeleteMessage(message.Chat.ID, messageID))
		return err
	}, message.MessageID)

	h.logger.Info("批量删除完成",
		"chat_id", message.Chat.ID, "start_id", message.MessageID, "deleted", deleted)
	return nil
}

// sweepMessages 从 startID 起按 id 递减依次尝试删除，下界为
// startID-10000（不含）。id 可能属于已删除或不存在的消息，单条
// 失败直接忽略。返回成功删除的数量。
func sweepMessages(deleteFn func(messageID int) error, startID int) int {
	deleted := 0
	for id := startID; id > startID-clearSweepLimit; id-- {
		if err := deleteFn(id); err == nil {
			deleted++
		}
	}
	return deleted
}
