package mongo

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/99minutos/todo-service/internal/core/domain"
)

func userDoc(id primitive.ObjectID, email, hash string) bson.D {
	now := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	d := bson.D{
		{Key: "_id", Value: id},
		{Key: "email", Value: email},
		{Key: "created_at", Value: now},
		{Key: "updated_at", Value: now},
	}
	if hash != "" {
		d = append(d, bson.E{Key: "password_hash", Value: hash})
	}
	return d
}

func TestUserRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("create assigns id and normalizes email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		now := time.Now()
		u, err := repo.Create(context.Background(), &domain.User{
			Email:        " Alice@Example.com",
			PasswordHash: "hash",
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		require.NoError(mt, err)
		require.True(mt, IsValidID(u.ID))
		require.Equal(mt, "alice@example.com", u.Email)
	})

	mt.Run("create duplicate email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "E11000 duplicate key error collection: users index: email_1",
		}))

		_, err := repo.Create(context.Background(), &domain.User{Email: "a@example.com", PasswordHash: "hash"})
		require.ErrorIs(mt, err, domain.ErrUserExists)
	})

	mt.Run("find by email", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.users", mtest.FirstBatch,
			userDoc(id, "a@example.com", "hash")))

		u, err := repo.FindByEmail(context.Background(), "A@example.com")
		require.NoError(mt, err)
		require.Equal(mt, id.Hex(), u.ID)
		require.Equal(mt, "hash", u.PasswordHash)
	})

	mt.Run("find by email missing", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.users", mtest.FirstBatch))

		_, err := repo.FindByEmail(context.Background(), "ghost@example.com")
		require.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("find by id omits hash", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.users", mtest.FirstBatch,
			userDoc(id, "a@example.com", "")))

		u, err := repo.FindByID(context.Background(), id.Hex())
		require.NoError(mt, err)
		require.Equal(mt, "a@example.com", u.Email)
		require.Empty(mt, u.PasswordHash)
	})

	mt.Run("find by id rejects malformed id without querying", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)

		_, err := repo.FindByID(context.Background(), "123")
		require.ErrorIs(mt, err, domain.ErrUserNotFound)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewUserRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		require.NoError(mt, repo.EnsureIndexes(context.Background()))

		index := mt.GetStartedEvent().Command.Lookup("indexes", "0").Document()
		require.Equal(mt, int32(1), index.Lookup("key", "email").Int32())
		require.True(mt, index.Lookup("unique").Boolean())
	})
}

func TestIsValidID(t *testing.T) {
	require.True(t, IsValidID(primitive.NewObjectID().Hex()))
	require.False(t, IsValidID("123"))
	require.False(t, IsValidID("zzzzzzzzzzzzzzzzzzzzzzzz"))
	require.False(t, IsValidID(""))
}
