// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-animal-registry/internal/logger"
	"github.com/MKhiriev/go-animal-registry/internal/mock"
	"github.com/MKhiriev/go-animal-registry/internal/store"
	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	fixedNow   = time.Date(2026, 10, 16, 12, 30, 0, 0, time.UTC)
	errStorage = errors.New("storage error")
)

func strPtr(s string) *string { return &s }

// newTestAnimalSvc returns the bare *animalService with a frozen clock.
func newTestAnimalSvc(t *testing.T) (*animalService, *mock.MockAnimalRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockAnimalRepository(ctrl)

	svc := NewAnimalService(repo, logger.Nop()).(*animalService)
	svc.now = func() time.Time { return fixedNow }

	return svc, repo
}

// ── CreateAnimal ─────────────────────────────────────────────────────────────

func TestAnimalService_CreateAnimal_SetsTimestamps(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)
	ctx := context.Background()

	deletedAt := fixedNow.Add(-time.Hour)
	input := models.Animal{Name: "Rex", Species: "dog", DeletedAt: &deletedAt}

	repo.EXPECT().CreateAnimal(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, a models.Animal) (models.Animal, error) {
			assert.Equal(t, fixedNow, a.CreatedAt)
			assert.Equal(t, fixedNow, a.UpdatedAt)
			assert.Nil(t, a.DeletedAt, "a new animal must never be created deleted")
			a.ID = 1
			return a, nil
		},
	)

	got, err := svc.CreateAnimal(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "Rex", got.Name)
}

func TestAnimalService_CreateAnimal_StorageError(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	repo.EXPECT().CreateAnimal(gomock.Any(), gomock.Any()).Return(models.Animal{}, errStorage)

	_, err := svc.CreateAnimal(context.Background(), models.Animal{Name: "Rex", Species: "dog"})

	require.ErrorIs(t, err, errStorage)
}

// ── GetAnimal ────────────────────────────────────────────────────────────────

func TestAnimalService_GetAnimal_ReturnsDeletedRow(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	deletedAt := fixedNow
	stored := models.Animal{ID: 3, Name: "Tom", Species: "cat", DeletedAt: &deletedAt}
	repo.EXPECT().GetAnimalByID(gomock.Any(), int64(3)).Return(stored, nil)

	got, err := svc.GetAnimal(context.Background(), 3)

	require.NoError(t, err)
	assert.Equal(t, stored, got)
}

func TestAnimalService_GetAnimal_NotFound(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	repo.EXPECT().GetAnimalByID(gomock.Any(), int64(999)).Return(models.Animal{}, store.ErrAnimalNotFound)

	_, err := svc.GetAnimal(context.Background(), 999)

	require.ErrorIs(t, err, store.ErrAnimalNotFound)
}

// ── ListAnimals ──────────────────────────────────────────────────────────────

func TestAnimalService_ListAnimals(t *testing.T) {
	tests := []struct {
		name     string
		stored   []models.Animal
		storeErr error
		want     []models.Animal
		wantErr  error
	}{
		{
			name:   "returns rows as is",
			stored: []models.Animal{{ID: 1}, {ID: 2}},
			want:   []models.Animal{{ID: 1}, {ID: 2}},
		},
		{
			name:   "nil from store becomes empty slice",
			stored: nil,
			want:   []models.Animal{},
		},
		{
			name:     "storage error",
			storeErr: errStorage,
			wantErr:  errStorage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestAnimalSvc(t)
			repo.EXPECT().ListActiveAnimals(gomock.Any()).Return(tt.stored, tt.storeErr)

			got, err := svc.ListAnimals(context.Background())

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

// ── UpdateAnimal ─────────────────────────────────────────────────────────────

func TestAnimalService_UpdateAnimal_NormalizesAndStampsUpdatedAt(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	update := models.AnimalUpdate{
		ID:          5,
		Name:        strPtr("Rex II"),
		Species:     strPtr(""),
		Description: strPtr("good boy"),
	}

	repo.EXPECT().UpdateAnimal(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u models.AnimalUpdate) (models.Animal, error) {
			assert.Equal(t, int64(5), u.ID)
			assert.Equal(t, "Rex II", *u.Name)
			assert.Nil(t, u.Species, "empty species must not overwrite the stored one")
			assert.Equal(t, "good boy", *u.Description)
			assert.Nil(t, u.ImgURL)
			assert.Equal(t, fixedNow, u.UpdatedAt)
			return models.Animal{ID: u.ID, Name: *u.Name, Species: "dog", UpdatedAt: u.UpdatedAt}, nil
		},
	)

	got, err := svc.UpdateAnimal(context.Background(), update)

	require.NoError(t, err)
	assert.Equal(t, "Rex II", got.Name)
	assert.Equal(t, "dog", got.Species)
}

func TestAnimalService_UpdateAnimal_NotFound(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	repo.EXPECT().UpdateAnimal(gomock.Any(), gomock.Any()).Return(models.Animal{}, store.ErrAnimalNotFound)

	_, err := svc.UpdateAnimal(context.Background(), models.AnimalUpdate{ID: 9, Name: strPtr("x")})

	require.ErrorIs(t, err, store.ErrAnimalNotFound)
}

// ── DeleteAnimal ─────────────────────────────────────────────────────────────

func TestAnimalService_DeleteAnimal_UsesCurrentTime(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	deletedAt := fixedNow
	repo.EXPECT().SoftDeleteAnimal(gomock.Any(), int64(4), fixedNow).
		Return(models.Animal{ID: 4, DeletedAt: &deletedAt}, nil)

	got, err := svc.DeleteAnimal(context.Background(), 4)

	require.NoError(t, err)
	assert.True(t, got.IsDeleted())
}

func TestAnimalService_DeleteAnimal_NotFound(t *testing.T) {
	svc, repo := newTestAnimalSvc(t)

	repo.EXPECT().SoftDeleteAnimal(gomock.Any(), int64(4), gomock.Any()).Return(models.Animal{}, store.ErrAnimalNotFound)

	_, err := svc.DeleteAnimal(context.Background(), 4)

	require.ErrorIs(t, err, store.ErrAnimalNotFound)
}
