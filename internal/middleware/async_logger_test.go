package middleware

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/delivery-service/internal/domain/model"
	"github.com/guttosm/delivery-service/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAsyncLogger_NilService(t *testing.T) {
	assert.Nil(t, NewAsyncLogger(nil, DefaultAsyncLoggerConfig()))

	var al *AsyncLogger
	assert.False(t, al.Log(&model.LogEntry{}))
	al.Stop()
}

func TestAsyncLogger_WritesAndFlushes(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 100, NumWorkers: 2, WriteTimeout: time.Second})
	for i := 0; i < 20; i++ {
		require.True(t, al.Log(&model.LogEntry{Message: "entry"}))
	}
	al.Stop()

	enqueued, dropped, written, errs := al.Stats()
	assert.Equal(t, int64(20), enqueued)
	assert.Zero(t, dropped)
	assert.Equal(t, int64(20), written)
	assert.Zero(t, errs)
	svc.AssertNumberOfCalls(t, "CreateLog", 20)
}

func TestAsyncLogger_CountsErrors(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Return(errors.New("store down"))

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 10, NumWorkers: 1, WriteTimeout: time.Second})
	al.Log(&model.LogEntry{ActionType: model.ActionDeliveryCalculate})
	al.Stop()

	_, _, written, errs := al.Stats()
	assert.Zero(t, written)
	assert.Equal(t, int64(1), errs)
}

func TestAsyncLogger_DropsWhenFull(t *testing.T) {
	release := make(chan struct{})
	var once sync.Once
	started := make(chan struct{})

	svc := new(mocks.MockLoggingService)
	svc.On("CreateLog", mock.Anything, mock.Anything).Run(func(mock.Arguments) {
		once.Do(func() { close(started) })
		<-release
	}).Return(nil)

	al := NewAsyncLogger(svc, AsyncLoggerConfig{BufferSize: 1, NumWorkers: 1, WriteTimeout: time.Second})
	require.True(t, al.Log(&model.LogEntry{}))
	<-started

	assert.True(t, al.Log(&model.LogEntry{}), "buffer holds one entry")
	assert.False(t, al.Log(&model.LogEntry{}), "buffer full")

	close(release)
	al.Stop()

	_, dropped, written, _ := al.Stats()
	assert.Equal(t, int64(1), dropped)
	assert.Equal(t, int64(2), written)
}

func TestAsyncLogger_RejectsAfterStop(t *testing.T) {
	svc := new(mocks.MockLoggingService)
	al := NewAsyncLogger(svc, DefaultAsyncLoggerConfig())
	al.Stop()
	al.Stop()

	assert.False(t, al.Log(&model.LogEntry{}))
	svc.AssertNotCalled(t, "CreateLog", mock.Anything, mock.Anything)
}

func TestGlobalAsyncLogger(t *testing.T) {
	svc := new(mocks.MockLoggingService)

	InitAsyncLogger(svc, DefaultAsyncLoggerConfig())
	first := GetAsyncLogger()
	require.NotNil(t, first)

	InitAsyncLogger(svc, DefaultAsyncLoggerConfig())
	assert.NotSame(t, first, GetAsyncLogger())
	assert.False(t, first.Log(&model.LogEntry{}), "replaced logger is stopped")

	StopAsyncLogger()
	assert.Nil(t, GetAsyncLogger())
}
