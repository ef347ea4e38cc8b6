package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupUserPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := tc.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := tc.GenericContainer(context.Background(), tc.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		user_id UUID PRIMARY KEY,
		name VARCHAR(100) NOT NULL,
		email VARCHAR(100) NOT NULL UNIQUE,
		google_id VARCHAR(255),
		password_hash VARCHAR(255),
		created_at TIMESTAMP NOT NULL DEFAULT NOW()
	);
	`
	_, err = db.Exec(schema)
	assert.NoError(t, err)

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func strPtr(v string) *string { return &v }

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.Save(ctx, "Alice", "alice@example.com", strPtr("hash123"), nil)
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "Alice", user.Name)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotNil(t, user.PasswordHash)
	assert.Equal(t, "hash123", *user.PasswordHash)
	assert.Nil(t, user.GoogleID)
	assert.False(t, user.CreatedAt.IsZero())
}

func TestUserWriteRepository_Save_GoogleAccount(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.Save(ctx, "Bob", "bob@example.com", nil, strPtr("google-sub-1"))
	assert.NoError(t, err)
	assert.Nil(t, user.PasswordHash)
	assert.NotNil(t, user.GoogleID)
	assert.Equal(t, "google-sub-1", *user.GoogleID)
}

func TestUserWriteRepository_LinkGoogleID(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	user, err := repo.Save(ctx, "Carol", "carol@example.com", strPtr("hash123"), nil)
	assert.NoError(t, err)

	linked, err := repo.LinkGoogleID(ctx, user.UserID, "google-sub-2", "Carol G")
	assert.NoError(t, err)
	assert.NotNil(t, linked.GoogleID)
	assert.Equal(t, "google-sub-2", *linked.GoogleID)
	assert.Equal(t, "Carol G", linked.Name)
	// password hash survives the link
	assert.NotNil(t, linked.PasswordHash)
}

func TestUserReadRepository_Get(t *testing.T) {
	db, teardown := setupUserPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db, nil)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	saved, err := writeRepo.Save(ctx, "Dave", "dave@example.com", strPtr("hash123"), nil)
	assert.NoError(t, err)
	_, err = writeRepo.Save(ctx, "Eve", "eve@example.com", nil, strPtr("google-sub-3"))
	assert.NoError(t, err)

	t.Run("ByEmail", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "dave@example.com")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Dave", user.Name)
	})

	t.Run("ByGoogleID", func(t *testing.T) {
		user, err := readRepo.GetByGoogleID(ctx, "google-sub-3")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "Eve", user.Name)
	})

	t.Run("ByID", func(t *testing.T) {
		user, err := readRepo.GetByID(ctx, saved.UserID)
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "dave@example.com", user.Email)
	})

	t.Run("NotFound", func(t *testing.T) {
		user, err := readRepo.GetByEmail(ctx, "nobody@example.com")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
