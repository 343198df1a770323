package impl

import (
	"io"
	"log/slog"
	"testing"

	"beacon/internal/domain/service"
	mockSvc "beacon/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAckService() *AckService {
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return NewAckService(logger)
}

func TestAckService_DroppedWithoutConnection(t *testing.T) {
	acks := createTestAckService()

	assert.ErrorIs(t, acks.PublishRead(1), service.ErrNotConnected)
	assert.ErrorIs(t, acks.PublishReadAll(), service.ErrNotConnected)
}

func TestAckService_EmitsOverAttachedConnection(t *testing.T) {
	acks := createTestAckService()
	conn := mockSvc.NewMockConn(t)

	conn.EXPECT().Emit(service.EventRead, int64(5)).Return(nil).Once()
	conn.EXPECT().Emit(service.EventReadAll, nil).Return(nil).Once()

	acks.Attach(conn)

	require.NoError(t, acks.PublishRead(5))
	require.NoError(t, acks.PublishReadAll())
}

func TestAckService_DetachStopsEmission(t *testing.T) {
	acks := createTestAckService()
	conn := mockSvc.NewMockConn(t)

	conn.EXPECT().Emit(service.EventRead, int64(5)).Return(nil).Once()

	acks.Attach(conn)
	require.NoError(t, acks.PublishRead(5))

	acks.Detach()
	assert.ErrorIs(t, acks.PublishRead(6), service.ErrNotConnected)
}
