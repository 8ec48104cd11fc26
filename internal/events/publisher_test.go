package events

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMockEventPublisher_EnvelopesEvents(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewMockEventPublisher(logger)

	err := publisher.Publish(context.Background(), EventResultRecorded, ResultRecordedEvent{
		ResultID: 1,
		RollNo:   "R-1001",
		Score:    18,
	})
	assert.NoError(t, err)

	published := publisher.GetPublishedEvents()
	assert.Len(t, published, 1)
	assert.Equal(t, EventResultRecorded, published[0].Type)
	assert.Equal(t, Source, published[0].Source)
	assert.NotEmpty(t, published[0].ID)
	assert.False(t, published[0].Timestamp.IsZero())

	data, ok := published[0].Data.(ResultRecordedEvent)
	assert.True(t, ok)
	assert.Equal(t, "R-1001", data.RollNo)
}
