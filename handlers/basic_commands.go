package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/therahmonqulov/serjantbek/utils"
)

// HandleStart 启动机器人，只在私聊中响应
func (h *Handler) HandleStart(message *tgbotapi.Message, _ string) error {
	if !message.Chat.IsPrivate() {
		return nil
	}

	text := fmt.Sprintf("👮🏻‍♂️ Salom @%s!\n\n"+
		"Men guruhdagi vazifalarim:\n"+
		"♻️ - Reklama havolalarini tozalash\n"+
		"🔞 - 18+ kontentga qarshi\n"+
		"🗣 - So'kinuvchilarga 10 daqiqalik taqiq\n\n"+
		"⚠️ Diqqat! Menga to'liq adminlik huquqini berishingiz kerak.",
		utils.DisplayName(message.From))

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	msg.ReplyMarkup = h.startKeyboard()
	_, err := h.Bot.Send(msg)
	return err
}

// startKeyboard /start 消息附带的按钮
func (h *Handler) startKeyboard() tgbotapi.InlineKeyboardMarkup {
	addToGroupURL := fmt.Sprintf("http://t.me/%s?startgroup=new&admin=all", h.Bot.Self.UserName)
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonURL("➕ GURUHGA QO'SHISH", addToGroupURL),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📈 Bot statikasi", "stats"),
			tgbotapi.NewInlineKeyboardButtonData("📜 Bot buyruqlari", "commands"),
		),
	)
}

// HandleHelp 显示帮助信息
func (h *Handler) HandleHelp(message *tgbotapi.Message, _ string) error {
	text := "📖 Yordam\n\n" +
		"Men guruhlarni avtomatik nazorat qilaman:\n" +
		"♻️ - Reklama havolalarini o'chiraman\n" +
		"🔞 - 18+ kontentni o'chiraman\n" +
		"🗣 - So'kinuvchilarga 3 ta ogohlantirishdan keyin 10 daqiqalik taqiq qo'yaman\n\n" +
		"Buyruqlar:\n" +
		"/start - Botni ishga tushirish\n" +
		"/help - Yordam olish\n" +
		"/clear - Guruhdagi xabarlarni tozalash (faqat adminlar)"

	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	_, err := h.Bot.Send(msg)
	return err
}
