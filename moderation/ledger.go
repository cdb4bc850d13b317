package moderation

import "sync"

// 触发禁言的警告次数阈值
const muteThreshold = 3

// Ledger 按用户维护的内存警告计数器。进程重启后计数清零，
// 不做持久化。
type Ledger struct {
	mu     sync.Mutex
	counts map[int64]int
}

// NewLedger 创建一个空的警告计数器
func NewLedger() *Ledger {
	return &Ledger{
		counts: make(map[int64]int),
	}
}

// Record 给用户记一次警告并返回新的计数。同一用户的并发递增
// 由互斥锁串行化，不会丢失更新。
func (l *Ledger) Record(userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.counts[userID]++
	return l.counts[userID]
}

// Count 返回用户当前的警告计数
func (l *Ledger) Count(userID int64) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.counts[userID]
}

// Reset 将用户的警告计数清零
func (l *Ledger) Reset(userID int64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	delete(l.counts, userID)
}

// ShouldMute 判断计数是否已达到禁言阈值
func ShouldMute(count int) bool {
	return count >= muteThreshold
}
