package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/researchnexus/nexus/internal/core/domain"
)

const collectionResearch = "research"

// CatalogRepository reads the research catalog from MongoDB. The
// collection's canonical order is the "position" field written by Seed.
type CatalogRepository struct {
	col *mongo.Collection
}

func NewCatalogRepository(db *mongo.Database) *CatalogRepository {
	return &CatalogRepository{col: db.Collection(collectionResearch)}
}

type researchDocument struct {
	domain.Research `bson:",inline"`
	Position        int `bson:"position"`
}

// Load returns every record ordered by position.
func (r *CatalogRepository) Load(ctx context.Context) ([]domain.Research, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "position", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find research: %w", err)
	}
	defer cur.Close(ctx)

	var docs []researchDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode research: %w", err)
	}

	out := make([]domain.Research, len(docs))
	for i, d := range docs {
		out[i] = d.Research
	}
	return out, nil
}

// Seed replaces the collection contents with records, keeping their order.
func (r *CatalogRepository) Seed(ctx context.Context, records []domain.Research) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	if _, err := r.col.DeleteMany(ctx, bson.M{}); err != nil {
		return 0, fmt.Errorf("clear research: %w", err)
	}
	if len(records) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(records))
	for i, rec := range records {
		docs[i] = researchDocument{Research: rec, Position: i}
	}
	res, err := r.col.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert research: %w", err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureIndexes creates the indexes the catalog queries rely on.
func (r *CatalogRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "position", Value: 1}}},
		{Keys: bson.D{{Key: "field", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
