package syncer_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/mocks"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/providers/coinmarketcap"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/store"
	"github.com/Guaberx/Prueba-Tecnica-igniweb/internal/syncer"
)

func intPtr(v int) *int {
	return &v
}

func TestCatalogSyncSkipsWhenFresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCMCClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	lastSynced := now.Add(-23 * time.Hour)

	st.EXPECT().GetSyncTime(gomock.Any(), store.SourceCatalog).Return(&lastSynced, nil)

	job := syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
		CatalogLimit: 5000,
		Window:       24 * time.Hour,
	}, client, st)

	result, err := job.Run(context.Background(), now, nil)
	require.NoError(t, err)
	assert.True(t, result.Skipped)
	assert.Zero(t, result.Processed)
	assert.Nil(t, result.CoinIDs)
}

func TestCatalogSyncFetchesWhenStale(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCMCClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)
	lastSynced := now.Add(-25 * time.Hour)

	st.EXPECT().GetSyncTime(gomock.Any(), store.SourceCatalog).Return(&lastSynced, nil)
	client.EXPECT().FetchCatalog(gomock.Any(), 5000).Return([]coinmarketcap.CatalogEntry{
		{ID: 1, Symbol: "BTC", Name: "Bitcoin", Slug: "bitcoin", Rank: intPtr(1)},
		{ID: 1027, Symbol: "ETH", Name: "Ethereum", Slug: "ethereum", Rank: intPtr(2)},
	}, nil)
	st.EXPECT().UpsertCatalog(gomock.Any(), []store.CatalogUpsert{
		{CoinID: 1, Symbol: "BTC", Name: "Bitcoin", Slug: "bitcoin", Rank: intPtr(1)},
		{CoinID: 1027, Symbol: "ETH", Name: "Ethereum", Slug: "ethereum", Rank: intPtr(2)},
	}, now).Return(nil)

	job := syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
		CatalogLimit: 5000,
		Window:       24 * time.Hour,
	}, client, st)

	result, err := job.Run(context.Background(), now, nil)
	require.NoError(t, err)
	assert.False(t, result.Skipped)
	assert.Equal(t, 2, result.Processed)
	// The fetched ids are handed over for enrichment in the same cycle
	assert.Equal(t, []int64{1, 1027}, result.CoinIDs)
}

func TestCatalogSyncRunsWhenNeverSynced(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCMCClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	st.EXPECT().GetSyncTime(gomock.Any(), store.SourceCatalog).Return(nil, nil)
	client.EXPECT().FetchCatalog(gomock.Any(), 5000).Return([]coinmarketcap.CatalogEntry{
		{ID: 1, Symbol: "BTC", Name: "Bitcoin", Slug: "bitcoin", Rank: intPtr(1)},
	}, nil)
	st.EXPECT().UpsertCatalog(gomock.Any(), gomock.Any(), now).Return(nil)

	job := syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
		CatalogLimit: 5000,
		Window:       24 * time.Hour,
	}, client, st)

	result, err := job.Run(context.Background(), now, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

func TestCatalogSyncFetchFailureLeavesLedgerUntouched(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCMCClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	st.EXPECT().GetSyncTime(gomock.Any(), store.SourceCatalog).Return(nil, nil)
	client.EXPECT().FetchCatalog(gomock.Any(), 5000).Return(nil, &coinmarketcap.APIError{
		Kind:       coinmarketcap.ErrorKindRateLimited,
		StatusCode: 429,
	})
	// No UpsertCatalog expectation: nothing may be written on failure

	job := syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
		CatalogLimit: 5000,
		Window:       24 * time.Hour,
	}, client, st)

	_, err := job.Run(context.Background(), now, nil)
	require.Error(t, err)

	var apiErr *coinmarketcap.APIError
	assert.ErrorAs(t, err, &apiErr)
}

func TestCatalogSyncUpsertFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	client := mocks.NewMockCMCClient(ctrl)
	st := mocks.NewMockStore(ctrl)

	now := time.Date(2025, 6, 2, 10, 0, 0, 0, time.UTC)

	st.EXPECT().GetSyncTime(gomock.Any(), store.SourceCatalog).Return(nil, nil)
	client.EXPECT().FetchCatalog(gomock.Any(), 5000).Return([]coinmarketcap.CatalogEntry{
		{ID: 1, Symbol: "BTC", Name: "Bitcoin", Slug: "bitcoin", Rank: intPtr(1)},
	}, nil)
	st.EXPECT().UpsertCatalog(gomock.Any(), gomock.Any(), now).Return(errors.New("connection reset"))

	job := syncer.NewCatalogSyncJob(&syncer.CatalogSyncJobConfig{
		CatalogLimit: 5000,
		Window:       24 * time.Hour,
	}, client, st)

	_, err := job.Run(context.Background(), now, nil)
	assert.ErrorContains(t, err, "failed to upsert catalog")
}
