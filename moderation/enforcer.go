package moderation

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// 禁言时长，固定 10 分钟
const MuteDuration = 600 * time.Second

// Violation 一次已检出的违规，由分类器产生、执法器消费，不保留
type Violation struct {
	Category      Category
	ChatID        int64
	MessageID     int
	UserID        int64
	Username      string
	FirstName     string
	MessageText   string
	DeleteMessage bool
}

// Handle 违规用户的展示名，优先用户名，否则用昵称
func (v *Violation) Handle() string {
	if v.Username != "" {
		return v.Username
	}
	return v.FirstName
}

// 各类别对应的警告文案
var warningText = map[Category]string{
	CategoryProfanity:     "❗️ So'kinish taqiqlangan!",
	CategoryAdvertisement: "❕ Reklama taqiqlangan!",
	CategoryAdultContent:  "❗️ 18+ kontent taqiqlangan!",
}

// Actions 执法动作依赖的平台调用
type Actions interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendMessage(ctx context.Context, chatID int64, text string) error
	RestrictMember(ctx context.Context, chatID, userID int64, until time.Time) error
}

// Enforcer 对违规执行删除、警告、禁言三个步骤。每一步独立失败，
// 只记日志，不影响后续步骤。
type Enforcer struct {
	actions Actions
	ledger  *Ledger
	logger  *slog.Logger
}

// NewEnforcer 创建执法器
func NewEnforcer(actions Actions, ledger *Ledger, logger *slog.Logger) *Enforcer {
	return &Enforcer{
		actions: actions,
		ledger:  ledger,
		logger:  logger,
	}
}

// Enforce 处理一次违规，返回该用户的最新警告计数，以及本次是否
// 成功施加了禁言。删除失败不阻止警告消息，警告消息失败不阻止
// 禁言；禁言调用失败时不清零计数，避免禁言未生效却被视作已处理。
func (e *Enforcer) Enforce(ctx context.Context, v Violation) (int, bool) {
	if v.DeleteMessage {
		if err := e.actions.DeleteMessage(ctx, v.ChatID, v.MessageID); err != nil {
			e.logger.Error("删除违规消息失败",
				"chat_id", v.ChatID, "message_id", v.MessageID, "err", err)
		}
	}

	count := e.ledger.Record(v.UserID)

	text := fmt.Sprintf("%s @%s (%d-ogohlantirish)", warningText[v.Category], v.Handle(), count)
	if err := e.actions.SendMessage(ctx, v.ChatID, text); err != nil {
		e.logger.Error("发送警告消息失败",
			"chat_id", v.ChatID, "user_id", v.UserID, "err", err)
	}

	muted := false
	if ShouldMute(count) {
		until := time.Now().Add(MuteDuration)
		if err := e.actions.RestrictMember(ctx, v.ChatID, v.UserID, until); err != nil {
			e.logger.Error("禁言用户失败",
				"chat_id", v.ChatID, "user_id", v.UserID, "err", err)
		} else {
			muted = true
			e.ledger.Reset(v.UserID)
			e.logger.Info("用户已被禁言",
				"chat_id", v.ChatID, "user_id", v.UserID, "until", until)
		}
	}

	return count, muted
}
