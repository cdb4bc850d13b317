package handlers

import (
	"context"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// botActions 把执法动作落到 Telegram Bot API 上
type botActions struct {
	bot *tgbotapi.BotAPI
}

func (a *botActions) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	_, err := a.bot.Request(tgbotapi.NewDeleteMessage(chatID, messageID))
	return err
}

func (a *botActions) SendMessage(_ context.Context, chatID int64, text string) error {
	_, err := a.bot.Send(tgbotapi.NewMessage(chatID, text))
	return err
}

// RestrictMember 在截止时间前收回用户的全部发言权限
func (a *botActions) RestrictMember(_ context.Context, chatID, userID int64, until time.Time) error {
	restrict := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{
			ChatID: chatID,
			UserID: userID,
		},
		UntilDate: until.Unix(),
		Permissions: &tgbotapi.ChatPermissions{
			CanSendMessages:       false,
			CanSendMediaMessages:  false,
			CanSendPolls:          false,
			CanSendOtherMessages:  false,
			CanAddWebPagePreviews: false,
			CanChangeInfo:         false,
			CanInviteUsers:        false,
			CanPinMessages:        false,
		},
	}
	_, err := a.bot.Request(restrict)
	return err
}
