package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFakeAdvanceFiresDueTimers(t *testing.T) {
	c := NewFake(time.Unix(0, 0))

	var order []string
	c.AfterFunc(200*time.Millisecond, func() { order = append(order, "late") })
	c.AfterFunc(100*time.Millisecond, func() { order = append(order, "early") })

	c.Advance(50 * time.Millisecond)
	assert.Empty(t, order)
	assert.Equal(t, 2, c.Pending())

	c.Advance(200 * time.Millisecond)
	assert.Equal(t, []string{"early", "late"}, order)
	assert.Equal(t, 0, c.Pending())
}

func TestFakeStop(t *testing.T) {
	c := NewFake(time.Unix(0, 0))
	fired := false
	timer := c.AfterFunc(time.Second, func() { fired = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())

	c.Advance(2 * time.Second)
	assert.False(t, fired)
}

func TestFakeNow(t *testing.T) {
	start := time.Date(2024, 9, 1, 10, 0, 0, 0, time.UTC)
	c := NewFake(start)
	c.Advance(time.Minute)
	assert.Equal(t, start.Add(time.Minute), c.Now())
}
