package handlers

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSweepMessagesBounds(t *testing.T) {
	assert := assert.New(t)

	var attempted []int
	deleted := sweepMessages(func(messageID int) error {
		attempted = append(attempted, messageID)
		return nil
	}, 20000)

	assert.Equal(clearSweepLimit, len(attempted))
	assert.Equal(clearSweepLimit, deleted)
	assert.Equal(20000, attempted[0])
	// 下界为 startID-10000，不含
	assert.Equal(10001, attempted[len(attempted)-1])
}

func TestSweepMessagesToleratesFailures(t *testing.T) {
	assert := assert.New(t)

	attempted := 0
	deleted := sweepMessages(func(messageID int) error {
		attempted++
		// 偶数 id 模拟已删除的消息
		if messageID%2 == 0 {
			return errors.New("message to delete not found")
		}
		return nil
	}, 20000)

	// 失败不会中断遍历
	assert.Equal(clearSweepLimit, attempted)
	assert.Equal(clearSweepLimit/2, deleted)
}
