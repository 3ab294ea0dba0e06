package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrderStatus(t *testing.T) {
	for _, s := range []string{"pending", "completed", "cancelled"} {
		st, err := ParseOrderStatus(s)
		assert.NoError(t, err)
		assert.Equal(t, OrderStatus(s), st)
		assert.True(t, st.Valid())
	}

	for _, s := range []string{"", "shipped", "PENDING"} {
		_, err := ParseOrderStatus(s)
		assert.Error(t, err, s)
		assert.False(t, OrderStatus(s).Valid())
	}
}
