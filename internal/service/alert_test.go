package service

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/shenikar/hazard_hotspots/internal/models"
	"github.com/shenikar/hazard_hotspots/internal/service/mocks"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAlertService(t *testing.T) (AlertService, *mocks.MockAlertRepository) {
	ctrl := gomock.NewController(t)
	repoMock := mocks.NewMockAlertRepository(ctrl)
	logger := logrus.New()
	logger.SetOutput(&bytes.Buffer{})
	return NewAlertService(repoMock, clockwork.NewFakeClockAt(testNow), logger), repoMock
}

func TestActiveAlerts(t *testing.T) {
	t.Run("filters by current time", func(t *testing.T) {
		svc, repoMock := newTestAlertService(t)
		ctx := context.Background()
		alerts := []models.HotspotAlert{{ID: uuid.New(), CellID: "a", Title: "Tsunami Alert"}}
		repoMock.EXPECT().ListActiveAlerts(ctx, testNow).Return(alerts, nil)

		got, err := svc.ActiveAlerts(ctx)
		require.NoError(t, err)
		assert.Equal(t, alerts, got)
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		svc, repoMock := newTestAlertService(t)
		repoMock.EXPECT().ListActiveAlerts(gomock.Any(), testNow).Return(nil, nil)

		got, err := svc.ActiveAlerts(context.Background())
		require.NoError(t, err)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repoMock := newTestAlertService(t)
		repoMock.EXPECT().ListActiveAlerts(gomock.Any(), gomock.Any()).Return(nil, errors.New("db error"))

		_, err := svc.ActiveAlerts(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "service: could not list alerts")
	})
}
