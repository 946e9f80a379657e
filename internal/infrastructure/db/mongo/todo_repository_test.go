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

func todoDoc(id, owner primitive.ObjectID, title, status string, created time.Time) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "title", Value: title},
		{Key: "status", Value: status},
		{Key: "owner_id", Value: owner},
		{Key: "created_at", Value: created},
		{Key: "updated_at", Value: created},
	}
}

// requireOwnerScoped fails unless doc pins owner_id to owner and, when id
// is non-zero, _id to id.
func requireOwnerScoped(mt *mtest.T, doc bson.Raw, id, owner primitive.ObjectID) {
	mt.Helper()
	gotOwner, ok := doc.Lookup("owner_id").ObjectIDOK()
	require.True(mt, ok, "owner_id missing from %s", doc)
	require.Equal(mt, owner, gotOwner)
	if id.IsZero() {
		return
	}
	gotID, ok := doc.Lookup("_id").ObjectIDOK()
	require.True(mt, ok, "_id missing from %s", doc)
	require.Equal(mt, id, gotID)
}

func TestTodoRepository(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	owner := primitive.NewObjectID()
	created := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	mt.Run("create assigns id", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		todo := &domain.Todo{
			Title:     "Buy milk",
			Status:    domain.StatusPending,
			OwnerID:   owner.Hex(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		require.NoError(mt, repo.Create(context.Background(), todo))
		require.True(mt, IsValidID(todo.ID))
		require.Equal(mt, todo.CreatedAt, todo.CreatedAt.Truncate(time.Millisecond))
	})

	mt.Run("create rejects invalid owner", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		err := repo.Create(context.Background(), &domain.Todo{Title: "x", OwnerID: "nope"})
		require.Error(mt, err)
	})

	mt.Run("list decodes documents in order", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		first, second := primitive.NewObjectID(), primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.todos", mtest.FirstBatch,
			todoDoc(second, owner, "newer", "pending", created.Add(time.Hour)),
			todoDoc(first, owner, "older", "completed", created),
		))

		todos, err := repo.List(context.Background(), owner.Hex(), domain.TodoFilter{})
		require.NoError(mt, err)
		require.Len(mt, todos, 2)
		require.Equal(mt, "newer", todos[0].Title)
		require.Equal(mt, domain.StatusCompleted, todos[1].Status)
		require.Equal(mt, owner.Hex(), todos[1].OwnerID)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		requireOwnerScoped(mt, filter, primitive.NilObjectID, owner)
	})

	mt.Run("list empty", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.todos", mtest.FirstBatch))

		todos, err := repo.List(context.Background(), owner.Hex(), domain.TodoFilter{Status: domain.StatusPending})
		require.NoError(mt, err)
		require.NotNil(mt, todos)
		require.Empty(mt, todos)

		filter := mt.GetStartedEvent().Command.Lookup("filter").Document()
		requireOwnerScoped(mt, filter, primitive.NilObjectID, owner)
		require.Equal(mt, "pending", filter.Lookup("status").StringValue())
	})

	mt.Run("find owned", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.todos", mtest.FirstBatch,
			todoDoc(id, owner, "mine", "pending", created)))

		todo, err := repo.FindOwned(context.Background(), id.Hex(), owner.Hex())
		require.NoError(mt, err)
		require.Equal(mt, id.Hex(), todo.ID)
		require.Equal(mt, created, todo.CreatedAt)

		evt := mt.GetStartedEvent()
		require.Equal(mt, "find", evt.CommandName)
		requireOwnerScoped(mt, evt.Command.Lookup("filter").Document(), id, owner)
	})

	mt.Run("find not owned", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "todo.todos", mtest.FirstBatch))

		_, err := repo.FindOwned(context.Background(), primitive.NewObjectID().Hex(), owner.Hex())
		require.ErrorIs(mt, err, domain.ErrTodoNotFound)
	})

	mt.Run("find malformed id", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		_, err := repo.FindOwned(context.Background(), "123", owner.Hex())
		require.ErrorIs(mt, err, domain.ErrTodoNotFound)
	})

	mt.Run("update returns document after", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		id := primitive.NewObjectID()
		doc := todoDoc(id, owner, "draft", "completed", created)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: doc}})

		status := domain.StatusCompleted
		todo, err := repo.UpdateIfOwned(context.Background(), id.Hex(), owner.Hex(), domain.TodoPatch{Status: &status})
		require.NoError(mt, err)
		require.Equal(mt, domain.StatusCompleted, todo.Status)
		require.Equal(mt, "draft", todo.Title)

		cmd := mt.GetStartedEvent().Command
		requireOwnerScoped(mt, cmd.Lookup("query").Document(), id, owner)
		set := cmd.Lookup("update", "$set").Document()
		require.Equal(mt, "completed", set.Lookup("status").StringValue())
		for _, key := range []string{"owner_id", "created_at", "_id"} {
			_, err := set.LookupErr(key)
			require.Error(mt, err, "%s must not be updated", key)
		}
	})

	mt.Run("update not owned", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "value", Value: nil}})

		id := primitive.NewObjectID()
		title := "hijack"
		_, err := repo.UpdateIfOwned(context.Background(), id.Hex(), owner.Hex(), domain.TodoPatch{Title: &title})
		require.ErrorIs(mt, err, domain.ErrTodoNotFound)

		cmd := mt.GetStartedEvent().Command
		requireOwnerScoped(mt, cmd.Lookup("query").Document(), id, owner)
		set := cmd.Lookup("update", "$set").Document()
		require.Equal(mt, "hijack", set.Lookup("title").StringValue())
		_, err = set.LookupErr("owner_id")
		require.Error(mt, err)
	})

	mt.Run("delete owned", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "acknowledged", Value: true}, {Key: "n", Value: 1}})

		id := primitive.NewObjectID()
		ok, err := repo.DeleteIfOwned(context.Background(), id.Hex(), owner.Hex())
		require.NoError(mt, err)
		require.True(mt, ok)

		q := mt.GetStartedEvent().Command.Lookup("deletes", "0", "q").Document()
		requireOwnerScoped(mt, q, id, owner)
	})

	mt.Run("delete missing", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "acknowledged", Value: true}, {Key: "n", Value: 0}})

		id := primitive.NewObjectID()
		ok, err := repo.DeleteIfOwned(context.Background(), id.Hex(), owner.Hex())
		require.NoError(mt, err)
		require.False(mt, ok)

		q := mt.GetStartedEvent().Command.Lookup("deletes", "0", "q").Document()
		requireOwnerScoped(mt, q, id, owner)
	})

	mt.Run("ensure indexes", func(mt *mtest.T) {
		repo := NewTodoRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		require.NoError(mt, repo.EnsureIndexes(context.Background()))

		cmd := mt.GetStartedEvent().Command
		require.Equal(mt, int32(1), cmd.Lookup("indexes", "0", "key", "owner_id").Int32())
		require.Equal(mt, int32(-1), cmd.Lookup("indexes", "0", "key", "created_at").Int32())
		require.Equal(mt, int32(1), cmd.Lookup("indexes", "1", "key", "status").Int32())
	})
}
