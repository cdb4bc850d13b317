package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestShouldModerate(t *testing.T) {
	assert := assert.New(t)

	assert.True(shouldModerate("member"))

	// 管理员和群主不受审查，已受限和已离开的用户也不处理
	for _, role := range []string{"creator", "administrator", "restricted", "left", "kicked"} {
		assert.False(shouldModerate(role), "role: %s", role)
	}
}

func TestCanClear(t *testing.T) {
	assert := assert.New(t)

	assert.True(canClear("administrator"))
	assert.True(canClear("creator"))
	assert.False(canClear("member"))
	assert.False(canClear("restricted"))
	assert.False(canClear("left"))
	assert.False(canClear("kicked"))
}
