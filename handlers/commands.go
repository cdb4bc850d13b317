package handlers

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SetupCommands 设置机器人的命令列表
func (h *Handler) SetupCommands() {
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Botni ishga tushirish",
		},
		{
			Command:     "help",
			Description: "Yordam olish",
		},
		{
			Command:     "clear",
			Description: "Guruhdagi xabarlarni tozalash (faqat adminlar)",
		},
	}

	setMyCommandsConfig := tgbotapi.NewSetMyCommands(commands...)
	if _, err := h.Bot.Request(setMyCommandsConfig); err != nil {
		// 设置命令失败，仅记录错误
		h.logger.Error("设置命令失败", "err", err)
	}
}

// HandleCommand 处理命令消息
func (h *Handler) HandleCommand(message *tgbotapi.Message) error {
	command := message.Command()
	args := message.CommandArguments()

	handler, exists := h.CommandMap[command]
	if !exists {
		// 私聊中提示未知命令；群组中的未知命令当普通文本审查
		if message.Chat.IsPrivate() {
			return h.HandleUnknownCommand(message)
		}
		return h.HandleMessage(message)
	}

	return handler(message, args)
}

// HandleUnknownCommand 处理未知命令
func (h *Handler) HandleUnknownCommand(message *tgbotapi.Message) error {
	text := "Noma'lum buyruq. Barcha buyruqlar uchun /help dan foydalaning."
	msg := tgbotapi.NewMessage(message.Chat.ID, text)
	_, err := h.Bot.Send(msg)
	return err
}
