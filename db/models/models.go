package models

import (
	"time"
)

// Violation 记录一次已处理的违规
type Violation struct {
	ID          int64     `db:"id"`
	ChatID      int64     `db:"chat_id"`      // 群组ID
	UserID      int64     `db:"user_id"`      // 违规用户ID
	Username    string    `db:"username"`     // 违规用户名，可能为空
	MessageID   int       `db:"message_id"`   // 消息ID
	Category    string    `db:"category"`     // 违规类别
	MessageText string    `db:"message_text"` // 消息内容，对媒体为空
	RecordedAt  time.Time `db:"recorded_at"`  // 记录时间
}

// ViolationInfo 用于批量写入队列的简化结构
type ViolationInfo struct {
	ChatID      int64  // 群组ID
	UserID      int64  // 违规用户ID
	Username    string // 违规用户名
	MessageID   int    // 消息ID
	Category    string // 违规类别
	MessageText string // 消息内容
}

// Mute 记录一次禁言
type Mute struct {
	ID      int64     `db:"id"`
	ChatID  int64     `db:"chat_id"`  // 群组ID
	UserID  int64     `db:"user_id"`  // 被禁言用户ID
	Until   time.Time `db:"until"`    // 禁言截止时间
	MutedAt time.Time `db:"muted_at"` // 禁言时间
}

// Stats 统计信息
type Stats struct {
	TotalViolations int64            // 违规总数
	ByCategory      map[string]int64 // 按类别的违规数
	TotalMutes      int64            // 禁言总数
}
