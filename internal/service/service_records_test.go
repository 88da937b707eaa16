package service

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/siterelay/internal/logger"
	"github.com/MKhiriev/siterelay/internal/mock"
)

func TestRecordsService_Ping_Delegates(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordsClient(ctrl)
	svc := NewRecordsService(records, logger.Nop())

	want := json.RawMessage(`{"records":[]}`)
	records.EXPECT().Ping(gomock.Any()).Return(want, nil)

	got, err := svc.Ping(context.Background())
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRecordsService_Ping_ErrorPassthrough(t *testing.T) {
	ctrl := gomock.NewController(t)
	records := mock.NewMockRecordsClient(ctrl)
	svc := NewRecordsService(records, logger.Nop())

	records.EXPECT().Ping(gomock.Any()).Return(nil, assert.AnError)

	_, err := svc.Ping(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
}
