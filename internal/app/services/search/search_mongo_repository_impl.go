package search

import (
	"context"

	"opencrvs-service/internal/app/contracts"
	"opencrvs-service/internal/app/models"
	"opencrvs-service/internal/pkg/constvars"
	"opencrvs-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SearchMongoRepository struct {
	Collection *mongo.Collection
}

func NewSearchMongoRepository(db *mongo.Client, dbName string) contracts.SearchRepository {
	return &SearchMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionEvents),
	}
}

// UpsertEventDocument replaces the projection for a composition, creating it
// on first sight. Reindexing the same composition is idempotent.
func (repo *SearchMongoRepository) UpsertEventDocument(ctx context.Context, doc *models.EventDocument) error {
	opts := options.Replace().SetUpsert(true)
	_, err := repo.Collection.ReplaceOne(ctx, bson.M{"_id": doc.CompositionID}, doc, opts)
	if err != nil {
		return exceptions.ErrMongoDBUpsertDocument(err)
	}
	return nil
}
