package moderation

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLedgerSequence(t *testing.T) {
	assert := assert.New(t)
	ledger := NewLedger()

	assert.Equal(0, ledger.Count(100))

	assert.Equal(1, ledger.Record(100))
	assert.False(ShouldMute(1))
	assert.Equal(2, ledger.Record(100))
	assert.False(ShouldMute(2))
	assert.Equal(3, ledger.Record(100))
	assert.True(ShouldMute(3))

	ledger.Reset(100)
	assert.Equal(0, ledger.Count(100))

	// 禁言后重新从 1 开始计数
	assert.Equal(1, ledger.Record(100))
}

func TestLedgerUserIsolation(t *testing.T) {
	assert := assert.New(t)
	ledger := NewLedger()

	ledger.Record(1)
	ledger.Record(1)
	ledger.Record(2)

	assert.Equal(2, ledger.Count(1))
	assert.Equal(1, ledger.Count(2))

	ledger.Reset(1)
	assert.Equal(0, ledger.Count(1))
	assert.Equal(1, ledger.Count(2))
}

func TestLedgerConcurrent(t *testing.T) {
	assert := assert.New(t)
	ledger := NewLedger()

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ledger.Record(7)
		}()
		go func() {
			defer wg.Done()
			ledger.Record(8)
		}()
	}
	wg.Wait()

	assert.Equal(100, ledger.Count(7))
	assert.Equal(100, ledger.Count(8))
}
