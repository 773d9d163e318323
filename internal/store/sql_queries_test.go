// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-animal-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func Test_buildInsertAnimalQuery_Postgres(t *testing.T) {
	now := time.Now()
	animal := models.Animal{Name: "Rex", Species: "Dog", CreatedAt: now, UpdatedAt: now}

	query, args, err := buildInsertAnimalQuery(statementBuilder(DialectPostgres), animal)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into animals")
	assert.Contains(t, q, "returning id, name, species, description, img_url, created_at, updated_at, deleted_at")
	assert.Contains(t, query, "$6")
	assert.NotContains(t, query, "?")

	require.Len(t, args, 6)
	assert.Equal(t, "Rex", args[0])
	assert.Equal(t, "Dog", args[1])
	assert.Nil(t, args[2])
	assert.Nil(t, args[3])
}

func Test_buildInsertAnimalQuery_SQLitePlaceholders(t *testing.T) {
	query, _, err := buildInsertAnimalQuery(statementBuilder(DialectSQLite), models.Animal{Name: "a", Species: "b"})
	require.NoError(t, err)

	assert.Contains(t, query, "?")
	assert.NotContains(t, query, "$1")
}

func Test_buildSelectActiveAnimalsQuery(t *testing.T) {
	query, args, err := buildSelectActiveAnimalsQuery(statementBuilder(DialectPostgres))
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "from animals")
	assert.Contains(t, q, "deleted_at is null")
	assert.Contains(t, q, "order by id asc")
	assert.Empty(t, args)
}

func Test_buildSelectAnimalByIDQuery_NoDeletedFilter(t *testing.T) {
	query, args, err := buildSelectAnimalByIDQuery(statementBuilder(DialectPostgres), 7)
	require.NoError(t, err)

	assert.Contains(t, query, "WHERE id = $1")
	assert.NotContains(t, strings.ToLower(query), "deleted_at is null")
	assert.Equal(t, []any{int64(7)}, args)
}

func Test_buildUpdateAnimalQuery(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		update      models.AnimalUpdate
		wantSet     []string
		wantMissing []string
		wantArgs    int
	}{
		{
			name:        "name only",
			update:      models.AnimalUpdate{ID: 1, Name: strPtr("Max"), UpdatedAt: now},
			wantSet:     []string{"name = $1", "updated_at = $2"},
			wantMissing: []string{"species", "description =", "img_url ="},
			wantArgs:    3,
		},
		{
			name: "all fields",
			update: models.AnimalUpdate{
				ID: 2, Name: strPtr("n"), Species: strPtr("s"), Description: strPtr("d"), ImgURL: strPtr("u"), UpdatedAt: now,
			},
			wantSet:  []string{"name = $1", "species = $2", "description = $3", "img_url = $4", "updated_at = $5", "WHERE id = $6"},
			wantArgs: 6,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildUpdateAnimalQuery(statementBuilder(DialectPostgres), tt.update)
			require.NoError(t, err)

			for _, part := range tt.wantSet {
				assert.Contains(t, query, part)
			}
			setClause := query[:strings.Index(query, "WHERE")]
			for _, part := range tt.wantMissing {
				assert.NotContains(t, setClause, part)
			}
			assert.Len(t, args, tt.wantArgs)
			assert.Equal(t, tt.update.ID, args[len(args)-1])
			assert.Contains(t, query, "RETURNING")
		})
	}
}

func Test_buildSoftDeleteAnimalQuery_TouchesDeletedAtOnly(t *testing.T) {
	now := time.Now()

	query, args, err := buildSoftDeleteAnimalQuery(statementBuilder(DialectPostgres), 3, now)
	require.NoError(t, err)

	assert.Contains(t, query, "SET deleted_at = $1")
	assert.NotContains(t, query, "updated_at =")
	assert.Equal(t, []any{now, int64(3)}, args)
}

func Test_buildUserQueries(t *testing.T) {
	query, args, err := buildInsertUserQuery(statementBuilder(DialectPostgres), models.User{Email: "a@b.c", Password: "hash"})
	require.NoError(t, err)
	assert.Contains(t, strings.ToLower(query), "insert into users (email,password,name,created_at)")
	assert.Contains(t, query, "RETURNING id, email, password, name, created_at")
	assert.Len(t, args, 4)

	query, args, err = buildSelectUserByEmailQuery(statementBuilder(DialectSQLite), "a@b.c")
	require.NoError(t, err)
	assert.Contains(t, query, "WHERE email = ?")
	assert.Contains(t, query, "LIMIT 1")
	assert.Equal(t, []any{"a@b.c"}, args)
}
