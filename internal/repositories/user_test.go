package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/winetasting-app/backend/internal/logger"
	"github.com/winetasting-app/backend/internal/models"
)

// --- Setup Postgres ---
func setupPostgres(t *testing.T) (*sqlx.DB, func()) {
	logger.Initialize("debug")
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "secret", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp").WithStartupTimeout(30 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, err := container.Host(ctx)
	assert.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	assert.NoError(t, err)

	dsn := fmt.Sprintf("postgres://postgres:secret@%s:%s/testdb?sslmode=disable", host, port.Port())
	db, err := sqlx.Connect("pgx", dsn)
	assert.NoError(t, err)

	migrations := []string{
		`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`,
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			username VARCHAR(50) NOT NULL UNIQUE,
			email VARCHAR(255) NOT NULL UNIQUE,
			password_hash VARCHAR(255) NOT NULL,
			first_name VARCHAR(100),
			last_name VARCHAR(100),
			role VARCHAR(20) NOT NULL DEFAULT 'participant',
			is_active BOOLEAN NOT NULL DEFAULT TRUE,
			needs_password_setup BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP NOT NULL DEFAULT NOW(),
			last_login TIMESTAMP
		);`,
		`CREATE TABLE IF NOT EXISTS password_resets (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id),
			token VARCHAR(64) NOT NULL UNIQUE,
			expires_at TIMESTAMP NOT NULL,
			used BOOLEAN NOT NULL DEFAULT FALSE,
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
		`CREATE TABLE IF NOT EXISTS user_sessions (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL,
			session_id UUID NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'waiting',
			current_bottle INTEGER NOT NULL DEFAULT 1,
			joined_at TIMESTAMP NOT NULL DEFAULT NOW(),
			UNIQUE (user_id, session_id)
		);`,
		`CREATE TABLE IF NOT EXISTS tastings (
			id UUID PRIMARY KEY DEFAULT uuid_generate_v4(),
			user_id UUID NOT NULL REFERENCES users(id),
			bottle_identifier TEXT,
			wine_name VARCHAR(200) NOT NULL,
			wine_type VARCHAR(50),
			vintage INTEGER,
			region VARCHAR(200),
			appearance_score INTEGER,
			aroma_score INTEGER,
			taste_score INTEGER,
			finish_score INTEGER,
			final_score DOUBLE PRECISION NOT NULL,
			notes TEXT,
			tasting_date TIMESTAMP NOT NULL DEFAULT NOW(),
			created_at TIMESTAMP NOT NULL DEFAULT NOW()
		);`,
	}

	for _, m := range migrations {
		_, err = db.Exec(m)
		assert.NoError(t, err)
	}

	return db, func() {
		db.Close()
		container.Terminate(ctx)
	}
}

func TestUserRepository_SaveAndGet(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	first := "Alice"
	user, err := writer.Save(ctx, "alice", "alice@example.com", "hash", &first, nil, models.RoleParticipant, false)
	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, models.RoleParticipant, user.Role)
	assert.True(t, user.IsActive)

	t.Run("get by id", func(t *testing.T) {
		got, err := reader.GetByID(ctx, user.ID)
		assert.NoError(t, err)
		assert.Equal(t, "alice", got.Username)
	})

	t.Run("get by email", func(t *testing.T) {
		got, err := reader.GetByEmail(ctx, "alice@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("unknown user is nil without error", func(t *testing.T) {
		got, err := reader.GetByID(ctx, uuid.New())
		assert.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("exists check", func(t *testing.T) {
		exists, err := reader.ExistsByUsernameOrEmail(ctx, "alice", "other@example.com")
		assert.NoError(t, err)
		assert.True(t, exists)

		exists, err = reader.ExistsByUsernameOrEmail(ctx, "nobody", "nobody@example.com")
		assert.NoError(t, err)
		assert.False(t, exists)
	})
}

func TestUserRepository_SeedArbiter_Idempotent(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)

	inserted, err := writer.SeedArbiter(ctx, "arbiter", "arbiter@winetasting.app", "hash")
	assert.NoError(t, err)
	assert.True(t, inserted)

	inserted, err = writer.SeedArbiter(ctx, "arbiter", "arbiter@winetasting.app", "hash")
	assert.NoError(t, err)
	assert.False(t, inserted)
}

func TestUserRepository_DeleteWithTastings(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)
	reader := NewUserReadRepository(db)

	user, err := writer.Save(ctx, "bob", "bob@example.com", "hash", nil, nil, models.RoleParticipant, false)
	assert.NoError(t, err)

	_, err = db.Exec(`INSERT INTO tastings (user_id, wine_name, final_score) VALUES ($1, 'Merlot', 13.0)`, user.ID)
	assert.NoError(t, err)

	deleted, err := writer.DeleteWithTastings(ctx, user.ID)
	assert.NoError(t, err)
	assert.True(t, deleted)

	got, err := reader.GetByID(ctx, user.ID)
	assert.NoError(t, err)
	assert.Nil(t, got)

	var tastingCount int
	err = db.Get(&tastingCount, `SELECT COUNT(*) FROM tastings WHERE user_id = $1`, user.ID)
	assert.NoError(t, err)
	assert.Equal(t, 0, tastingCount)

	deleted, err = writer.DeleteWithTastings(ctx, user.ID)
	assert.NoError(t, err)
	assert.False(t, deleted)
}

func TestUserRepository_ResetAllData_KeepsArbiter(t *testing.T) {
	db, cleanup := setupPostgres(t)
	defer cleanup()
	ctx := context.Background()

	writer := NewUserWriteRepository(db)

	_, err := writer.SeedArbiter(ctx, "arbiter", "arbiter@winetasting.app", "hash")
	assert.NoError(t, err)
	participant, err := writer.Save(ctx, "carol", "carol@example.com", "hash", nil, nil, models.RoleParticipant, false)
	assert.NoError(t, err)
	_, err = db.Exec(`INSERT INTO tastings (user_id, wine_name, final_score) VALUES ($1, 'Pinot', 15.0)`, participant.ID)
	assert.NoError(t, err)

	err = writer.ResetAllData(ctx)
	assert.NoError(t, err)

	var userCount, tastingCount int
	assert.NoError(t, db.Get(&userCount, `SELECT COUNT(*) FROM users`))
	assert.NoError(t, db.Get(&tastingCount, `SELECT COUNT(*) FROM tastings`))
	assert.Equal(t, 1, userCount)
	assert.Equal(t, 0, tastingCount)

	var role string
	assert.NoError(t, db.Get(&role, `SELECT role FROM users`))
	assert.Equal(t, models.RoleArbiter, role)
}
