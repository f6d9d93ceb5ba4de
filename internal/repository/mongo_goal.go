package repository

import (
	"context"
	"errors"
	"time"

	"github.com/templui/goalsetter/internal/db"
	"github.com/templui/goalsetter/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoGoalRepository struct {
	coll *mongo.Collection
}

// NewMongoGoalRepository stores goals as documents in the "goals" collection.
// Document ids are ObjectID hex strings.
func NewMongoGoalRepository(mdb *mongo.Database) GoalRepository {
	return &mongoGoalRepository{coll: mdb.Collection(db.GoalsCollection)}
}

func (r *mongoGoalRepository) Create(ctx context.Context, goal *model.Goal) error {
	now := time.Now().UTC().Truncate(time.Millisecond)
	goal.ID = primitive.NewObjectID().Hex()
	goal.CreatedAt = now
	goal.UpdatedAt = now

	_, err := r.coll.InsertOne(ctx, goal)
	return err
}

func (r *mongoGoalRepository) ByID(ctx context.Context, goalID string) (*model.Goal, error) {
	goal := &model.Goal{}

	err := r.coll.FindOne(ctx, bson.M{"_id": goalID}).Decode(goal)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrGoalNotFound
	}
	if err != nil {
		return nil, err
	}

	return goal, nil
}

func (r *mongoGoalRepository) Goals(ctx context.Context, userID string) ([]*model.Goal, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})

	cursor, err := r.coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	goals := []*model.Goal{}
	err = cursor.All(ctx, &goals)
	if err != nil {
		return nil, err
	}

	return goals, nil
}

func (r *mongoGoalRepository) Update(ctx context.Context, goal *model.Goal) error {
	goal.UpdatedAt = time.Now().UTC().Truncate(time.Millisecond)

	result, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": goal.ID},
		bson.M{"$set": bson.M{
			"text":       goal.Text,
			"updated_at": goal.UpdatedAt,
		}},
	)
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *mongoGoalRepository) Delete(ctx context.Context, goalID string) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": goalID})
	if err != nil {
		return err
	}

	if result.DeletedCount == 0 {
		return ErrGoalNotFound
	}

	return nil
}
