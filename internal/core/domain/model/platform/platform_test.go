package platform_test

import (
	"testing"
	"time"

	"vintage/internal/core/domain/model/kernel"
	"vintage/internal/core/domain/model/platform"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tolerance = 1e-9

func newPlatform(t *testing.T) *platform.Platform {
	t.Helper()

	p, err := platform.NewPlatform(kernel.NewUUID(), kernel.NewDate(2024, time.June, 1))
	require.NoError(t, err)
	return p
}

func TestNewPlatform(t *testing.T) {
	t.Run("should start with an empty profit ledger", func(t *testing.T) {
		p := newPlatform(t)

		assert.True(t, p.CurrentDate().IsEqual(kernel.NewDate(2024, time.June, 1)))
		assert.InDelta(t, 0.0, p.VintageProfit(), tolerance)
	})

	t.Run("should fail with zero date", func(t *testing.T) {
		var invalidDate kernel.Date

		p, err := platform.NewPlatform(kernel.NewUUID(), invalidDate)

		require.Error(t, err)
		assert.Nil(t, p)
	})

	t.Run("nil platform should fail validation", func(t *testing.T) {
		var p *platform.Platform

		assert.Equal(t, platform.ErrPlatformIsNotConstructed, p.Validate())
	})
}

func TestPlatform_AccrueHandover(t *testing.T) {
	t.Run("pristine items earn the higher satisfaction fee", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.AccrueHandover(10, 1))

		assert.InDelta(t, 10*0.112+0.5, p.VintageProfit(), tolerance)
	})

	t.Run("worn items earn the lower satisfaction fee", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.AccrueHandover(10, 0.5))

		assert.InDelta(t, 10*0.112+0.25, p.VintageProfit(), tolerance)
	})

	t.Run("handovers accumulate", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.AccrueHandover(10, 1))
		require.NoError(t, p.AccrueHandover(3.5, 0))

		assert.InDelta(t, 10*0.112+0.5+3.5*0.112+0.25, p.VintageProfit(), tolerance)
	})

	t.Run("should fail for negative price", func(t *testing.T) {
		p := newPlatform(t)

		require.Error(t, p.AccrueHandover(-1, 0.5))
		assert.InDelta(t, 0.0, p.VintageProfit(), tolerance)
	})

	t.Run("should fail for condition score out of range", func(t *testing.T) {
		p := newPlatform(t)

		require.Error(t, p.AccrueHandover(10, 1.5))
	})
}

func TestPlatform_ReverseHandover(t *testing.T) {
	t.Run("accrue then reverse leaves the ledger where it started", func(t *testing.T) {
		p := newPlatform(t)
		require.NoError(t, p.AccrueHandover(10, 1))
		require.NoError(t, p.AccrueHandover(3.5, 0.5))

		require.NoError(t, p.ReverseHandover(3.5, 0.5))
		require.NoError(t, p.ReverseHandover(10, 1))

		assert.InDelta(t, 0.0, p.VintageProfit(), tolerance)
	})
}

func TestPlatform_Clock(t *testing.T) {
	t.Run("AdvanceDay moves one day forward", func(t *testing.T) {
		p := newPlatform(t)

		p.AdvanceDay()

		assert.True(t, p.CurrentDate().IsEqual(kernel.NewDate(2024, time.June, 2)))
	})

	t.Run("SetDate jumps to the target", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.SetDate(kernel.NewDate(2024, time.June, 20)))

		assert.True(t, p.CurrentDate().IsEqual(kernel.NewDate(2024, time.June, 20)))
	})

	t.Run("SetDate accepts the current day", func(t *testing.T) {
		p := newPlatform(t)

		require.NoError(t, p.SetDate(kernel.NewDate(2024, time.June, 1)))
	})

	t.Run("clock never moves backward", func(t *testing.T) {
		p := newPlatform(t)

		err := p.SetDate(kernel.NewDate(2024, time.May, 31))

		require.Error(t, err)
		assert.True(t, p.CurrentDate().IsEqual(kernel.NewDate(2024, time.June, 1)))
	})
}

func TestRestorePlatform(t *testing.T) {
	p, err := platform.RestorePlatform(kernel.NewUUID(), kernel.NewDate(2024, time.June, 5), 12.5)

	require.NoError(t, err)
	assert.InDelta(t, 12.5, p.VintageProfit(), tolerance)
	assert.True(t, p.CurrentDate().IsEqual(kernel.NewDate(2024, time.June, 5)))
}
