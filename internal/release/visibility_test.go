package release

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsComingSoon_ExplicitFalseAlwaysWins(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	future := now.Add(48 * time.Hour)

	assert.False(t, IsComingSoon(false, &future, nil, now))
	assert.False(t, IsComingSoon(false, nil, nil, now))
}

func TestIsComingSoon_WindowBoundary(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	past := now.Add(-time.Second)
	future := now.Add(time.Second)

	assert.False(t, IsComingSoon(true, &past, nil, now), "one second past: badge hides")
	assert.True(t, IsComingSoon(true, &future, nil, now), "one second ahead: badge shows")
	assert.False(t, IsComingSoon(true, &now, nil, now), "at the instant: window is open")
}

func TestIsComingSoon_FallsBackToReleaseDate(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

	pastDate := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	futureDate := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	assert.False(t, IsComingSoon(true, nil, &pastDate, now))
	assert.True(t, IsComingSoon(true, nil, &futureDate, now))
}

func TestIsComingSoon_NoInstantStaysUp(t *testing.T) {
	// announced with no date at all: badge stays until an admin flips it
	assert.True(t, IsComingSoon(true, nil, nil, time.Now()))
}
