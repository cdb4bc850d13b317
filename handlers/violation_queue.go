package handlers

import (
	"time"

	"github.com/therahmonqulov/serjantbek/db/models"
)

// processViolationQueue 批量落库违规记录
func (h *Handler) processViolationQueue() {
	ticker := time.NewTicker(2 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		h.flushViolationQueue()
	}
}

// flushViolationQueue 刷新违规队列，批量写入
func (h *Handler) flushViolationQueue() {
	h.violationQueueLock.Lock()

	// 如果队列为空，不处理
	if len(h.violationQueue) == 0 {
		h.violationQueueLock.Unlock()
		return
	}

	// 取出队列中的所有记录
	infos := h.violationQueue
	h.violationQueue = nil
	h.violationQueueLock.Unlock()

	// 开始事务处理
	tx, err := h.DB.BeginTx()
	if err != nil {
		// 如果开启事务失败，逐条写入
		for _, info := range infos {
			_ = h.DB.LogViolation(info)
		}
		return
	}

	// 批量插入
	success := h.DB.LogViolationsBatch(tx, infos)

	// 如果批量处理成功，提交事务
	if success {
		_ = tx.Commit()
	} else {
		// 否则回滚并逐条写入
		_ = tx.Rollback()
		for _, info := range infos {
			_ = h.DB.LogViolation(info)
		}
	}
}

// queueViolation 添加到违规队列
func (h *Handler) queueViolation(info models.ViolationInfo) {
	h.violationQueueLock.Lock()
	defer h.violationQueueLock.Unlock()

	h.violationQueue = append(h.violationQueue, info)
}
