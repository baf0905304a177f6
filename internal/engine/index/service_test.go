package index_test

import (
	"context"
	"errors"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/roslock/internal/adapters/telemetry"
	"go.trai.ch/roslock/internal/core/domain"
	"go.trai.ch/roslock/internal/core/ports/mocks"
	"go.trai.ch/roslock/internal/engine/index"
	"go.uber.org/mock/gomock"
)

func TestService_Catalog(t *testing.T) {
	ctx := context.Background()
	declaration := []byte("repositories: {}\n")
	digest := xxhash.Sum64(declaration)

	cached := map[string]domain.ReleasedPackage{
		"rclcpp": {Name: "rclcpp", ReleaseRepoURL: "https://example.com/rclcpp.git"},
	}

	t.Run("CacheHitSkipsBuild", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFetcher := mocks.NewMockTagFetcher(ctrl)
		mockStore := mocks.NewMockCatalogStore(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)

		mockStore.EXPECT().Load("humble", digest).Return(cached, true, nil)

		s := index.NewService(index.NewBuilder(mockFetcher, mockLogger, telemetry.NewNoOp()), mockStore, mockLogger)
		catalog, err := s.Catalog(ctx, "humble", declaration, map[string]domain.ReleaseRepoInfo{
			"rclcpp": {URL: "https://example.com/rclcpp.git", TagPattern: "release/{package}/{version}"},
		})
		require.NoError(t, err)
		assert.Equal(t, cached, catalog)
	})

	t.Run("CacheMissBuildsAndStores", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFetcher := mocks.NewMockTagFetcher(ctrl)
		mockStore := mocks.NewMockCatalogStore(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)

		repos := map[string]domain.ReleaseRepoInfo{
			"rclcpp": {URL: "https://example.com/rclcpp.git", TagPattern: "release/{package}/{version}"},
		}

		mockStore.EXPECT().Load("humble", digest).Return(nil, false, nil)
		mockFetcher.EXPECT().ListRemoteTags(gomock.Any(), repos["rclcpp"].URL).Return([]domain.TagInfo{
			{Tag: "release/rclcpp/16.0.4-2", Ref: "aaa"},
		}, nil)
		mockStore.EXPECT().Store("humble", digest, gomock.Any()).Return(nil)

		s := index.NewService(index.NewBuilder(mockFetcher, mockLogger, telemetry.NewNoOp()), mockStore, mockLogger)
		catalog, err := s.Catalog(ctx, "humble", declaration, repos)
		require.NoError(t, err)
		require.Contains(t, catalog, "rclcpp")
	})

	t.Run("UnreadableCacheDegradesToRebuild", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFetcher := mocks.NewMockTagFetcher(ctrl)
		mockStore := mocks.NewMockCatalogStore(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)

		mockStore.EXPECT().Load("humble", digest).Return(nil, false, errors.New("corrupt cache file"))
		mockLogger.EXPECT().Warn(gomock.Any())
		mockStore.EXPECT().Store("humble", digest, gomock.Any()).Return(nil)

		s := index.NewService(index.NewBuilder(mockFetcher, mockLogger, telemetry.NewNoOp()), mockStore, mockLogger)
		catalog, err := s.Catalog(ctx, "humble", declaration, nil)
		require.NoError(t, err)
		assert.Empty(t, catalog)
	})

	t.Run("StoreFailureOnlyWarns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockFetcher := mocks.NewMockTagFetcher(ctrl)
		mockStore := mocks.NewMockCatalogStore(ctrl)
		mockLogger := mocks.NewMockLogger(ctrl)

		mockStore.EXPECT().Load("humble", digest).Return(nil, false, nil)
		mockStore.EXPECT().Store("humble", digest, gomock.Any()).Return(errors.New("disk full"))
		mockLogger.EXPECT().Warn(gomock.Any())

		s := index.NewService(index.NewBuilder(mockFetcher, mockLogger, telemetry.NewNoOp()), mockStore, mockLogger)
		catalog, err := s.Catalog(ctx, "humble", declaration, nil)
		require.NoError(t, err)
		assert.Empty(t, catalog)
	})
}
