package main

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	DbName   = "goods"
	CollName = "goods"
)

// goodsDoc is the catalog document shape. InventoryCount is absent on
// purpose; stock lives in the inventory service.
type goodsDoc struct {
	ID          int32  `bson:"id"`
	Name        string `bson:"name"`
	Image       string `bson:"image"`
	UnitPrice   int32  `bson:"unit_price"`
	Description string `bson:"des"`
}

type store struct {
	collection *mongo.Collection
}

func NewStore(client *mongo.Client) *store {
	return &store{
		collection: client.Database(DbName).Collection(CollName),
	}
}

func (s *store) List(ctx context.Context, page, pageSize int64) ([]GoodsSummary, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "id", Value: 1}}).
		SetSkip(page * pageSize).
		SetLimit(pageSize)

	cursor, err := s.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list goods: %w", err)
	}
	defer cursor.Close(ctx)

	var summaries []GoodsSummary
	for cursor.Next(ctx) {
		var doc goodsDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("failed to decode goods document: %w", err)
		}
		summaries = append(summaries, GoodsSummary{
			ID:    doc.ID,
			Name:  doc.Name,
			Image: doc.Image,
		})
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("cursor error while listing goods: %w", err)
	}

	return summaries, nil
}

func (s *store) GetByID(ctx context.Context, goodsID int32) (*GoodsDetail, error) {
	var doc goodsDoc
	err := s.collection.FindOne(ctx, bson.M{"id": goodsID}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGoodsNotFound
		}
		return nil, fmt.Errorf("failed to get goods %d: %w", goodsID, err)
	}

	return &GoodsDetail{
		ID:          doc.ID,
		Name:        doc.Name,
		Image:       doc.Image,
		UnitPrice:   doc.UnitPrice,
		Description: doc.Description,
	}, nil
}
