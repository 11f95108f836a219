package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCurrentWeek(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("due date 84 days out is week 28", func(t *testing.T) {
		dueDate := now.AddDate(0, 0, 84)
		week := CurrentWeek(dueDate, now)
		assert.Equal(t, 28, week)
		assert.Equal(t, TrimesterThird, Trimester(week))
	})

	t.Run("due date today is week 40", func(t *testing.T) {
		assert.Equal(t, 40, CurrentWeek(now, now))
	})

	t.Run("overdue pregnancies clamp at week 42", func(t *testing.T) {
		dueDate := now.AddDate(0, 0, -60)
		assert.Equal(t, 42, CurrentWeek(dueDate, now))
	})

	t.Run("far-future due date clamps at week 1", func(t *testing.T) {
		dueDate := now.AddDate(0, 0, 400)
		assert.Equal(t, 1, CurrentWeek(dueDate, now))
	})

	t.Run("280 days out is week 1", func(t *testing.T) {
		dueDate := now.AddDate(0, 0, 280)
		assert.Equal(t, 1, CurrentWeek(dueDate, now))
	})
}

func TestTrimester(t *testing.T) {
	assert.Equal(t, TrimesterFirst, Trimester(1))
	assert.Equal(t, TrimesterFirst, Trimester(12))
	assert.Equal(t, TrimesterSecond, Trimester(13))
	assert.Equal(t, TrimesterSecond, Trimester(27))
	assert.Equal(t, TrimesterThird, Trimester(28))
	assert.Equal(t, TrimesterThird, Trimester(42))
}
