package mongodb

import (
	"context"
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

const contactCollection = "contact_messages"

type contactDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Phone     string             `bson:"phone"`
	Email     string             `bson:"email,omitempty"`
	Message   string             `bson:"message"`
	CreatedAt time.Time          `bson:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt"`
}

func (d *contactDoc) toEntity() *entity.ContactMessage {
	return &entity.ContactMessage{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Phone:     d.Phone,
		Email:     d.Email,
		Message:   d.Message,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

type ContactRepo struct {
	col *mongo.Collection
}

func NewContactRepo(db *mongo.Database) repository.ContactRepository {
	return &ContactRepo{col: db.Collection(contactCollection)}
}

func (repo *ContactRepo) Create(ctx context.Context, msg *entity.ContactMessage) error {
	defer metrics.ObserveStoreQuery("contact.create", time.Now())

	doc := &contactDoc{
		Name:      msg.Name,
		Phone:     msg.Phone,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: msg.CreatedAt,
		UpdatedAt: msg.UpdatedAt,
	}
	res, err := repo.col.InsertOne(ctx, doc)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		msg.ID = oid.Hex()
	}
	return nil
}

func (repo *ContactRepo) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	defer metrics.ObserveStoreQuery("contact.list", time.Now())

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := repo.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	messages := make([]*entity.ContactMessage, 0, 16)
	for cursor.Next(ctx) {
		var doc contactDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("List: Decode: %w", err)
		}
		messages = append(messages, doc.toEntity())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return messages, nil
}
