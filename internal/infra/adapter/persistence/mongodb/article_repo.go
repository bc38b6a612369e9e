// Package mongodb implements the repository interfaces on MongoDB.
package mongodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-cms/internal/domain/entity"
	"marketing-cms/internal/observability/metrics"
	"marketing-cms/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const articleCollection = "blogs"

// articleDoc is the persistence shape of an article. The entity uses a plain
// string ID; the document stores the native ObjectID.
type articleDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Category        string             `bson:"category"`
	Content         string             `bson:"content"`
	Slug            string             `bson:"slug"`
	MetaTitle       string             `bson:"metaTitle"`
	MetaDescription string             `bson:"metaDescription"`
	CreatedAt       time.Time          `bson:"createdAt"`
	UpdatedAt       time.Time          `bson:"updatedAt"`
}

func (d *articleDoc) toEntity() *entity.Article {
	return &entity.Article{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Category:        d.Category,
		Content:         d.Content,
		Slug:            d.Slug,
		MetaTitle:       d.MetaTitle,
		MetaDescription: d.MetaDescription,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
	}
}

func fromEntity(a *entity.Article) *articleDoc {
	doc := &articleDoc{
		Title:           a.Title,
		Category:        a.Category,
		Content:         a.Content,
		Slug:            a.Slug,
		MetaTitle:       a.MetaTitle,
		MetaDescription: a.MetaDescription,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
	if oid, err := primitive.ObjectIDFromHex(a.ID); err == nil {
		doc.ID = oid
	}
	return doc
}

type ArticleRepo struct {
	col *mongo.Collection
}

func NewArticleRepo(db *mongo.Database) repository.ArticleRepository {
	return &ArticleRepo{col: db.Collection(articleCollection)}
}

// EnsureArticleIndexes creates the unique slug index. Uniqueness of slugs is
// also checked in the use case layer; the index closes the race between the
// check and the insert.
func EnsureArticleIndexes(ctx context.Context, db *mongo.Database) error {
	_, err := db.Collection(articleCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("EnsureArticleIndexes: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	defer metrics.ObserveStoreQuery("articles.create", time.Now())

	res, err := repo.col.InsertOne(ctx, fromEntity(article))
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		article.ID = oid.Hex()
	}
	return nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	defer metrics.ObserveStoreQuery("articles.get", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// malformed IDs cannot match any document
		return nil, nil
	}

	var doc articleDoc
	err = repo.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *ArticleRepo) GetBySlug(ctx context.Context, slug string) (*entity.Article, error) {
	defer metrics.ObserveStoreQuery("articles.get_by_slug", time.Now())

	var doc articleDoc
	err := repo.col.FindOne(ctx, bson.M{"slug": slug}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("GetBySlug: %w", err)
	}
	return doc.toEntity(), nil
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	defer metrics.ObserveStoreQuery("articles.list", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	articles, err := repo.find(ctx, "List", bson.M{}, opts)
	if err == nil {
		metrics.UpdateArticlesTotal(len(articles))
	}
	return articles, err
}

func (repo *ArticleRepo) ListByCategory(ctx context.Context, category string) ([]*entity.Article, error) {
	defer metrics.ObserveStoreQuery("articles.list_by_category", time.Now())

	return repo.find(ctx, "ListByCategory", bson.M{"category": category}, options.Find())
}

func (repo *ArticleRepo) ListRecent(ctx context.Context, limit int) ([]*entity.Article, error) {
	defer metrics.ObserveStoreQuery("articles.list_recent", time.Now())

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(limit))
	return repo.find(ctx, "ListRecent", bson.M{}, opts)
}

func (repo *ArticleRepo) find(ctx context.Context, op string, filter bson.M, opts *options.FindOptions) ([]*entity.Article, error) {
	cursor, err := repo.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	articles := make([]*entity.Article, 0, 16)
	for cursor.Next(ctx) {
		var doc articleDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: Decode: %w", op, err)
		}
		articles = append(articles, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Update(ctx context.Context, article *entity.Article) error {
	defer metrics.ObserveStoreQuery("articles.update", time.Now())

	oid, err := primitive.ObjectIDFromHex(article.ID)
	if err != nil {
		return fmt.Errorf("Update: invalid id %q", article.ID)
	}

	update := bson.M{"$set": bson.M{
		"title":           article.Title,
		"category":        article.Category,
		"content":         article.Content,
		"metaTitle":       article.MetaTitle,
		"metaDescription": article.MetaDescription,
		"updatedAt":       article.UpdatedAt,
	}}
	if _, err := repo.col.UpdateOne(ctx, bson.M{"_id": oid}, update); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id string) error {
	defer metrics.ObserveStoreQuery("articles.delete", time.Now())

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		// nothing to delete
		return nil
	}
	if _, err := repo.col.DeleteOne(ctx, bson.M{"_id": oid}); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}
