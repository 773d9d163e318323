// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-animal-registry/models"
)

const (
	animalsTable = "animals"
	usersTable   = "users"
)

// animalColumns is the column order every animal query selects or returns.
// scanAnimal relies on it.
var animalColumns = []string{
	"id",
	"name",
	"species",
	"description",
	"img_url",
	"created_at",
	"updated_at",
	"deleted_at",
}

var userColumns = []string{
	"id",
	"email",
	"password",
	"name",
	"created_at",
}

func returning(columns []string) string {
	return "RETURNING " + strings.Join(columns, ", ")
}

func buildInsertAnimalQuery(b sq.StatementBuilderType, animal models.Animal) (string, []any, error) {
	return b.Insert(animalsTable).
		Columns("name", "species", "description", "img_url", "created_at", "updated_at").
		Values(animal.Name, animal.Species, animal.Description, animal.ImgURL, animal.CreatedAt, animal.UpdatedAt).
		Suffix(returning(animalColumns)).
		ToSql()
}

func buildSelectAnimalByIDQuery(b sq.StatementBuilderType, id int64) (string, []any, error) {
	return b.Select(animalColumns...).
		From(animalsTable).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildSelectActiveAnimalsQuery(b sq.StatementBuilderType) (string, []any, error) {
	return b.Select(animalColumns...).
		From(animalsTable).
		Where(sq.Eq{"deleted_at": nil}).
		OrderBy("id ASC").
		ToSql()
}

// buildUpdateAnimalQuery sets only the non-nil fields of update plus
// updated_at. The row is addressed by id alone.
func buildUpdateAnimalQuery(b sq.StatementBuilderType, update models.AnimalUpdate) (string, []any, error) {
	query := b.Update(animalsTable)

	if update.Name != nil {
		query = query.Set("name", *update.Name)
	}
	if update.Species != nil {
		query = query.Set("species", *update.Species)
	}
	if update.Description != nil {
		query = query.Set("description", *update.Description)
	}
	if update.ImgURL != nil {
		query = query.Set("img_url", *update.ImgURL)
	}

	return query.
		Set("updated_at", update.UpdatedAt).
		Where(sq.Eq{"id": update.ID}).
		Suffix(returning(animalColumns)).
		ToSql()
}

// buildSoftDeleteAnimalQuery touches deleted_at only; updated_at keeps its value.
func buildSoftDeleteAnimalQuery(b sq.StatementBuilderType, id int64, deletedAt time.Time) (string, []any, error) {
	return b.Update(animalsTable).
		Set("deleted_at", deletedAt).
		Where(sq.Eq{"id": id}).
		Suffix(returning(animalColumns)).
		ToSql()
}

func buildInsertUserQuery(b sq.StatementBuilderType, user models.User) (string, []any, error) {
	return b.Insert(usersTable).
		Columns("email", "password", "name", "created_at").
		Values(user.Email, user.Password, user.Name, user.CreatedAt).
		Suffix(returning(userColumns)).
		ToSql()
}

func buildSelectUserByEmailQuery(b sq.StatementBuilderType, email string) (string, []any, error) {
	return b.Select(userColumns...).
		From(usersTable).
		Where(sq.Eq{"email": email}).
		Limit(1).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (models.Animal, error) {
	var animal models.Animal
	err := row.Scan(
		&animal.ID,
		&animal.Name,
		&animal.Species,
		&animal.Description,
		&animal.ImgURL,
		timestamp(&animal.CreatedAt),
		timestamp(&animal.UpdatedAt),
		nullTimestamp(&animal.DeletedAt),
	)
	return animal, err
}

func scanUser(row rowScanner) (models.User, error) {
	var user models.User
	err := row.Scan(&user.UserID, &user.Email, &user.Password, &user.Name, timestamp(&user.CreatedAt))
	return user, err
}
