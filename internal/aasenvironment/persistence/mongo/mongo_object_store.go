/*******************************************************************************
* Copyright (C) 2025 the Eclipse BaSyx Authors and Fraunhofer IESE
*
* Permission is hereby granted, free of charge, to any person obtaining
* a copy of this software and associated documentation files (the
* "Software"), to deal in the Software without restriction, including
* without limitation the rights to use, copy, modify, merge, publish,
* distribute, sublicense, and/or sell copies of the Software, and to
* permit persons to whom the Software is furnished to do so, subject to
* the following conditions:
*
* The above copyright notice and this permission notice shall be
* included in all copies or substantial portions of the Software.
*
* THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
* EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
* MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND
* NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE
* LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION
* OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION
* WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*
* SPDX-License-Identifier: MIT
******************************************************************************/

// Package mongo provides a MongoDB-backed object store. It is a save/load
// point for a whole environment, not a query backend: Update reloads the
// in-memory state from the collection, Commit writes it back. In-memory
// operations between the two behave exactly like the DictObjectStore.
package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	jsoniter "github.com/json-iterator/go"

	"github.com/eclipse-basyx/basyx-aas-environment/internal/common/model"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// document is the persisted form of one Identifiable: the identifier as
// primary key and the JSON rendering as payload.
type document struct {
	ID      string `bson:"_id"`
	Payload string `bson:"payload"`
}

// ObjectStore is a model.ObjectStore backed by a MongoDB collection.
type ObjectStore struct {
	cache      *model.DictObjectStore
	collection *mongo.Collection
}

// NewObjectStore connects to MongoDB and opens the environment collection.
func NewObjectStore(ctx context.Context, uri, database, collection string) (*ObjectStore, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("ping mongodb: %w", err)
	}
	return &ObjectStore{
		cache:      model.NewDictObjectStore(),
		collection: client.Database(database).Collection(collection),
	}, nil
}

func (s *ObjectStore) GetIdentifiable(id model.Identifier) (model.Identifiable, error) {
	return s.cache.GetIdentifiable(id)
}

func (s *ObjectStore) Add(obj model.Identifiable) error { return s.cache.Add(obj) }

func (s *ObjectStore) Remove(id model.Identifier) error { return s.cache.Remove(id) }

func (s *ObjectStore) Len() int { return s.cache.Len() }

func (s *ObjectStore) Values() []model.Identifiable { return s.cache.Values() }

// Update replaces the in-memory state with the collection's contents.
func (s *ObjectStore) Update(ctx context.Context) error {
	cursor, err := s.collection.Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	defer cursor.Close(ctx)
	loaded := model.NewDictObjectStore()
	for cursor.Next(ctx) {
		var doc document
		if err := cursor.Decode(&doc); err != nil {
			return fmt.Errorf("decode environment document: %w", err)
		}
		obj, err := model.UnmarshalIdentifiable([]byte(doc.Payload))
		if err != nil {
			return fmt.Errorf("rebuild object %s: %w", doc.ID, err)
		}
		if err := loaded.Add(obj); err != nil {
			return err
		}
	}
	if err := cursor.Err(); err != nil {
		return fmt.Errorf("load environment: %w", err)
	}
	s.cache = loaded
	return nil
}

// Commit writes the in-memory state back to the collection, replacing its
// previous contents.
func (s *ObjectStore) Commit(ctx context.Context) error {
	if _, err := s.collection.DeleteMany(ctx, bson.D{}); err != nil {
		return fmt.Errorf("clear environment: %w", err)
	}
	values := s.cache.Values()
	if len(values) == 0 {
		return nil
	}
	docs := make([]interface{}, 0, len(values))
	for _, obj := range values {
		payload, err := json.Marshal(obj)
		if err != nil {
			return fmt.Errorf("serialize object %s: %w", obj.GetIdentification(), err)
		}
		docs = append(docs, document{ID: obj.GetIdentification().String(), Payload: string(payload)})
	}
	if _, err := s.collection.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("save environment: %w", err)
	}
	return nil
}
