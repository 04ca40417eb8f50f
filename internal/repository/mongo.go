package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/ramonfbmiranda/arquivosmaverick/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// withoutRowID keeps the storage _id out of every read.
var withoutRowID = bson.M{"_id": 0}

// NewMongoStore returns a Store backed by one collection per entity in db.
// Indexes are not created here; call EnsureIndexes once at startup.
func NewMongoStore(db *mongo.Database) *Store {
	return &Store{
		Members:  NewMongoMemberRepo(db.Collection(MembersCollection)),
		Comments: NewMongoCommentRepo(db.Collection(CommentsCollection)),
		Quotes:   NewMongoQuoteRepo(db.Collection(QuotesCollection)),
		Photos:   NewMongoPhotoRepo(db.Collection(PhotosCollection)),
	}
}

// EnsureIndexes creates the id and sort indexes for every collection.
// Repositories that are not Mongo-backed are skipped.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	for _, r := range []any{s.Members, s.Comments, s.Quotes, s.Photos} {
		ix, ok := r.(interface{ EnsureIndexes(context.Context) error })
		if !ok {
			continue
		}
		if err := ix.EnsureIndexes(ctx); err != nil {
			return err
		}
	}
	return nil
}

func uniqueID() mongo.IndexModel {
	return mongo.IndexModel{Keys: bson.D{{Key: "id", Value: 1}}, Options: options.Index().SetUnique(true)}
}

func createIndexes(ctx context.Context, col *mongo.Collection, idx ...mongo.IndexModel) error {
	if _, err := col.Indexes().CreateMany(ctx, idx); err != nil {
		return fmt.Errorf("create indexes on %s: %w", col.Name(), err)
	}
	return nil
}

func findDocuments[D any](ctx context.Context, col *mongo.Collection, filter any, opts *options.FindOptions) ([]D, error) {
	opts.SetProjection(withoutRowID).SetLimit(MaxResults)
	cur, err := col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find %s: %w", col.Name(), err)
	}
	defer cur.Close(ctx)
	docs := []D{}
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode %s: %w", col.Name(), err)
	}
	return docs, nil
}

func deleteByID(ctx context.Context, col *mongo.Collection, id string) (int64, error) {
	res, err := col.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return 0, fmt.Errorf("delete from %s: %w", col.Name(), err)
	}
	return res.DeletedCount, nil
}

func newestFirst(field string) *options.FindOptions {
	return options.Find().SetSort(bson.D{{Key: field, Value: -1}})
}

// MongoMemberRepo stores members. Listing follows store iteration order.
type MongoMemberRepo struct {
	col *mongo.Collection
}

func NewMongoMemberRepo(col *mongo.Collection) *MongoMemberRepo {
	return &MongoMemberRepo{col: col}
}

func (r *MongoMemberRepo) EnsureIndexes(ctx context.Context) error {
	return createIndexes(ctx, r.col, uniqueID())
}

func (r *MongoMemberRepo) Insert(ctx context.Context, m *models.Member) error {
	if _, err := r.col.InsertOne(ctx, newMemberDocument(m)); err != nil {
		return fmt.Errorf("insert member: %w", err)
	}
	return nil
}

func (r *MongoMemberRepo) FindAll(ctx context.Context) ([]models.Member, error) {
	docs, err := findDocuments[memberDocument](ctx, r.col, bson.M{}, options.Find())
	if err != nil {
		return nil, err
	}
	out := make([]models.Member, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *MongoMemberRepo) FindByID(ctx context.Context, id string) (*models.Member, error) {
	var d memberDocument
	err := r.col.FindOne(ctx, bson.M{"id": id}, options.FindOne().SetProjection(withoutRowID)).Decode(&d)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find member: %w", err)
	}
	m := d.model()
	return &m, nil
}

// UpdateByID $sets only the given fields. id and created_at are dropped even
// when a caller passes them.
func (r *MongoMemberRepo) UpdateByID(ctx context.Context, id string, fields map[string]any) (int64, error) {
	set := bson.M{}
	for k, v := range fields {
		if k == "id" || k == "created_at" || k == "_id" {
			continue
		}
		set[k] = v
	}
	res, err := r.col.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": set})
	if err != nil {
		return 0, fmt.Errorf("update member: %w", err)
	}
	return res.MatchedCount, nil
}

func (r *MongoMemberRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, r.col, id)
}

// MongoCommentRepo stores comments, read back per member newest first.
type MongoCommentRepo struct {
	col *mongo.Collection
}

func NewMongoCommentRepo(col *mongo.Collection) *MongoCommentRepo {
	return &MongoCommentRepo{col: col}
}

func (r *MongoCommentRepo) EnsureIndexes(ctx context.Context) error {
	byMember := mongo.IndexModel{Keys: bson.D{{Key: "member_id", Value: 1}, {Key: "timestamp", Value: -1}}}
	return createIndexes(ctx, r.col, uniqueID(), byMember)
}

func (r *MongoCommentRepo) Insert(ctx context.Context, c *models.Comment) error {
	if _, err := r.col.InsertOne(ctx, newCommentDocument(c)); err != nil {
		return fmt.Errorf("insert comment: %w", err)
	}
	return nil
}

func (r *MongoCommentRepo) FindByMember(ctx context.Context, memberID string) ([]models.Comment, error) {
	docs, err := findDocuments[commentDocument](ctx, r.col, bson.M{"member_id": memberID}, newestFirst("timestamp"))
	if err != nil {
		return nil, err
	}
	out := make([]models.Comment, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

type MongoQuoteRepo struct {
	col *mongo.Collection
}

func NewMongoQuoteRepo(col *mongo.Collection) *MongoQuoteRepo {
	return &MongoQuoteRepo{col: col}
}

func (r *MongoQuoteRepo) EnsureIndexes(ctx context.Context) error {
	byTime := mongo.IndexModel{Keys: bson.D{{Key: "created_at", Value: -1}}}
	return createIndexes(ctx, r.col, uniqueID(), byTime)
}

func (r *MongoQuoteRepo) Insert(ctx context.Context, q *models.Quote) error {
	if _, err := r.col.InsertOne(ctx, newQuoteDocument(q)); err != nil {
		return fmt.Errorf("insert quote: %w", err)
	}
	return nil
}

func (r *MongoQuoteRepo) FindAll(ctx context.Context) ([]models.Quote, error) {
	docs, err := findDocuments[quoteDocument](ctx, r.col, bson.M{}, newestFirst("created_at"))
	if err != nil {
		return nil, err
	}
	out := make([]models.Quote, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *MongoQuoteRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, r.col, id)
}

type MongoPhotoRepo struct {
	col *mongo.Collection
}

func NewMongoPhotoRepo(col *mongo.Collection) *MongoPhotoRepo {
	return &MongoPhotoRepo{col: col}
}

func (r *MongoPhotoRepo) EnsureIndexes(ctx context.Context) error {
	byTime := mongo.IndexModel{Keys: bson.D{{Key: "timestamp", Value: -1}}}
	return createIndexes(ctx, r.col, uniqueID(), byTime)
}

func (r *MongoPhotoRepo) Insert(ctx context.Context, p *models.Photo) error {
	if _, err := r.col.InsertOne(ctx, newPhotoDocument(p)); err != nil {
		return fmt.Errorf("insert photo: %w", err)
	}
	return nil
}

func (r *MongoPhotoRepo) FindAll(ctx context.Context) ([]models.Photo, error) {
	docs, err := findDocuments[photoDocument](ctx, r.col, bson.M{}, newestFirst("timestamp"))
	if err != nil {
		return nil, err
	}
	out := make([]models.Photo, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.model())
	}
	return out, nil
}

func (r *MongoPhotoRepo) DeleteByID(ctx context.Context, id string) (int64, error) {
	return deleteByID(ctx, r.col, id)
}
