package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/99minutos/todo-service/internal/core/domain"
)

const collectionTodos = "todos"

// TodoRepository stores todos. Every single-record operation filters on
// both _id and owner_id in one call.
type TodoRepository struct {
	col *mongo.Collection
	now func() time.Time
}

func NewTodoRepository(db *mongo.Database) *TodoRepository {
	return &TodoRepository{col: db.Collection(collectionTodos), now: time.Now}
}

type mongoTodo struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description,omitempty"`
	Status      string             `bson:"status"`
	OwnerID     primitive.ObjectID `bson:"owner_id"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (mt mongoTodo) toDomain() *domain.Todo {
	return &domain.Todo{
		ID:          mt.ID.Hex(),
		Title:       mt.Title,
		Description: mt.Description,
		Status:      domain.TodoStatus(mt.Status),
		OwnerID:     mt.OwnerID.Hex(),
		CreatedAt:   mt.CreatedAt.UTC(),
		UpdatedAt:   mt.UpdatedAt.UTC(),
	}
}

// ownedFilter returns false when either id is not a valid ObjectID; such a
// record cannot exist.
func ownedFilter(id, ownerID string) (bson.M, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, false
	}
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return nil, false
	}
	return bson.M{"_id": oid, "owner_id": owner}, true
}

// List returns the owner's todos sorted by creation time, newest first.
func (r *TodoRepository) List(ctx context.Context, ownerID string, filter domain.TodoFilter) ([]*domain.Todo, error) {
	owner, err := primitive.ObjectIDFromHex(ownerID)
	if err != nil {
		return []*domain.Todo{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := bson.M{"owner_id": owner}
	if filter.Status != "" {
		q["status"] = string(filter.Status)
	}

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.col.Find(ctx, q, opts)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	defer cur.Close(ctx)

	var docs []mongoTodo
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode todos: %w", err)
	}

	out := make([]*domain.Todo, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toDomain())
	}
	return out, nil
}

func (r *TodoRepository) FindOwned(ctx context.Context, id, ownerID string) (*domain.Todo, error) {
	q, ok := ownedFilter(id, ownerID)
	if !ok {
		return nil, domain.ErrTodoNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc mongoTodo
	if err := r.col.FindOne(ctx, q).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("find todo: %w", err)
	}
	return doc.toDomain(), nil
}

// Create inserts todo and assigns its ID.
func (r *TodoRepository) Create(ctx context.Context, todo *domain.Todo) error {
	owner, err := primitive.ObjectIDFromHex(todo.OwnerID)
	if err != nil {
		return fmt.Errorf("create todo: invalid owner id %q", todo.OwnerID)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoTodo{
		ID:          primitive.NewObjectID(),
		Title:       todo.Title,
		Description: todo.Description,
		Status:      string(todo.Status),
		OwnerID:     owner,
		CreatedAt:   millis(todo.CreatedAt),
		UpdatedAt:   millis(todo.UpdatedAt),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert todo: %w", err)
	}

	todo.ID = doc.ID.Hex()
	todo.CreatedAt = doc.CreatedAt
	todo.UpdatedAt = doc.UpdatedAt
	return nil
}

// UpdateIfOwned applies patch atomically and returns the updated record.
// owner_id and created_at are never part of the update document.
func (r *TodoRepository) UpdateIfOwned(ctx context.Context, id, ownerID string, patch domain.TodoPatch) (*domain.Todo, error) {
	q, ok := ownedFilter(id, ownerID)
	if !ok {
		return nil, domain.ErrTodoNotFound
	}

	set := bson.M{"updated_at": millis(r.now())}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc mongoTodo
	if err := r.col.FindOneAndUpdate(ctx, q, bson.M{"$set": set}, opts).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTodoNotFound
		}
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return doc.toDomain(), nil
}

// DeleteIfOwned removes the record and reports whether anything was deleted.
func (r *TodoRepository) DeleteIfOwned(ctx context.Context, id, ownerID string) (bool, error) {
	q, ok := ownedFilter(id, ownerID)
	if !ok {
		return false, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.col.DeleteOne(ctx, q)
	if err != nil {
		return false, fmt.Errorf("delete todo: %w", err)
	}
	return res.DeletedCount > 0, nil
}

// EnsureIndexes creates necessary indexes on the todos collection.
func (r *TodoRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "owner_id", Value: 1}, {Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
