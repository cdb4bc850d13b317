package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// HandleCallbackQuery 处理回调查询
func (h *Handler) HandleCallbackQuery(query *tgbotapi.CallbackQuery) error {
	if query.Message == nil {
		callback := tgbotapi.NewCallback(query.ID, "Xatolik yuz berdi!")
		_, err := h.Bot.Request(callback)
		return err
	}

	chatID := query.Message.Chat.ID

	switch query.Data {
	case "commands":
		text := "⚠️ Bu buyruqlar faqat adminlar uchun:\n\n/clear - Guruhdagi xabarlarni tozalash."
		if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			return h.answerCallback(query.ID, "Xatolik yuz berdi!")
		}
		return h.answerCallback(query.ID, "")

	case "stats":
		stats, err := h.DB.GetStats(chatID)
		if err != nil {
			h.logger.Error("获取统计信息失败", "chat_id", chatID, "err", err)
			return h.answerCallback(query.ID, "Xatolik yuz berdi!")
		}

		text := fmt.Sprintf("📊 Bot statistikasi:\n\n"+
			"Aniqlangan qoidabuzarliklar: %d\n"+
			" - So'kinish: %d\n"+
			" - Reklama: %d\n"+
			" - 18+ kontent: %d\n"+
			"Berilgan taqiqlar: %d",
			stats.TotalViolations,
			stats.ByCategory["profanity"],
			stats.ByCategory["advertisement"],
			stats.ByCategory["adult_content"],
			stats.TotalMutes)
		if _, err := h.Bot.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
			return h.answerCallback(query.ID, "Xatolik yuz berdi!")
		}
		return h.answerCallback(query.ID, "")

	default:
		return h.answerCallback(query.ID, "Bu funksiya mavjud emas!")
	}
}

func (h *Handler) answerCallback(queryID, text string) error {
	callback := tgbotapi.NewCallback(queryID, text)
	_, err := h.Bot.Request(callback)
	return err
}

// HandleMyChatMember 处理机器人自身在群组中的角色变化
func (h *Handler) HandleMyChatMember(update *tgbotapi.ChatMemberUpdated) error {
	switch update.NewChatMember.Status {
	case "administrator":
		msg := tgbotapi.NewMessage(update.Chat.ID, "✅ Men guruh admini bo'ldim. Ishga tayyorman!")
		_, err := h.Bot.Send(msg)
		return err
	case "member":
		msg := tgbotapi.NewMessage(update.Chat.ID, "⚠️ Menga to'liq adminlik huquqini berishingiz kerak!")
		_, err := h.Bot.Send(msg)
		return err
	}
	return nil
}
