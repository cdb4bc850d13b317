package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	cache "github.com/patrickmn/go-cache"
)

// memberRole 查询用户在群组中的角色，短暂缓存以减少 API 调用
func (h *Handler) memberRole(chatID, userID int64) (string, error) {
	key := fmt.Sprintf("%d:%d", chatID, userID)
	if v, ok := h.roleCache.Get(key); ok {
		return v.(string), nil
	}

	member, err := h.Bot.GetChatMember(tgbotapi.GetChatMemberConfig{
		ChatConfigWithUser: tgbotapi.ChatConfigWithUser{
			ChatID: chatID,
			UserID: userID,
		},
	})
	if err != nil {
		return "", err
	}

	h.roleCache.Set(key, member.Status, cache.DefaultExpiration)
	return member.Status, nil
}

// shouldModerate 只审查普通成员。管理员、群主以及已受限、已退出
// 和被移除的用户均不处理。
func shouldModerate(role string) bool {
	return role == "member"
}

// canClear 只有管理员和群主可以执行 /clear
func canClear(role string) bool {
	return role == "administrator" || role == "creator"
}
