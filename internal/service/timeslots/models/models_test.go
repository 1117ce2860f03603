package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-TimeslotService/internal/domain"
)

func TestFromDomainSlot_FreeSlot(t *testing.T) {
	slot := &domain.TimeSlot{
		ID:        1,
		Category:  domain.Category{ID: 2, Name: "consultation"},
		StartTime: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		EndTime:   time.Date(2026, 3, 2, 11, 0, 0, 0, time.UTC),
	}

	resp := FromDomainSlot(slot, nil)

	require.NotNil(t, resp)
	assert.Equal(t, "2026-03-02T10:00:00Z", resp.StartTime)
	assert.Equal(t, "2026-03-02T11:00:00Z", resp.EndTime)
	assert.Nil(t, resp.BookedBy)
	assert.False(t, resp.IsBooked)
	assert.False(t, resp.BookedByUser)
}

func TestFromDomainSlot_BookedByViewer(t *testing.T) {
	slot := &domain.TimeSlot{
		ID:       1,
		Category: domain.Category{ID: 2, Name: "consultation"},
		BookedBy: &domain.User{ID: 7, Username: "alice", FirstName: "Alice"},
	}

	viewerID := int64(7)
	resp := FromDomainSlot(slot, &viewerID)

	require.NotNil(t, resp.BookedBy)
	assert.Equal(t, "alice", resp.BookedBy.Username)
	assert.True(t, resp.IsBooked)
	assert.True(t, resp.BookedByUser)
}

func TestFromDomainSlot_BookedByOther(t *testing.T) {
	slot := &domain.TimeSlot{
		ID:       1,
		Category: domain.Category{ID: 2, Name: "consultation"},
		BookedBy: &domain.User{ID: 3, Username: "bob"},
	}

	viewerID := int64(7)
	resp := FromDomainSlot(slot, &viewerID)

	assert.True(t, resp.IsBooked)
	assert.False(t, resp.BookedByUser)
}

func TestFromDomainSlot_AnonymousViewer(t *testing.T) {
	slot := &domain.TimeSlot{
		ID:       1,
		Category: domain.Category{ID: 2, Name: "consultation"},
		BookedBy: &domain.User{ID: 7, Username: "alice"},
	}

	resp := FromDomainSlot(slot, nil)

	assert.True(t, resp.IsBooked)
	// Для анонимного вызывающего booked_by_user всегда false
	assert.False(t, resp.BookedByUser)
}

func TestFromDomainSlotList(t *testing.T) {
	slots := []*domain.TimeSlot{
		{ID: 1, Category: domain.Category{ID: 1, Name: "a"}},
		{ID: 2, Category: domain.Category{ID: 1, Name: "a"}},
	}

	resp := FromDomainSlotList(slots, nil)

	require.Len(t, resp, 2)
	assert.Equal(t, int64(1), resp[0].ID)
	assert.Equal(t, int64(2), resp[1].ID)
}
