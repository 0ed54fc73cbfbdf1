/*
The MIT License (MIT)

Copyright (c) 2018 SavinMax. All rights reserved.

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package publish

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const opTimeout = 5 * time.Second

// BundleStore is the part of a redis client the publisher needs.
type BundleStore interface {
	Set(key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Get(key string) *redis.StringCmd
}

// PublishRedis stores the bundle under key without expiry and reads it back.
func PublishRedis(client BundleStore, key string, bundle []byte) error {
	if _, err := client.Set(key, bundle, 0).Result(); err != nil {
		return err
	}
	stored, err := FetchRedis(client, key)
	if err != nil {
		return err
	}
	if len(stored) != len(bundle) {
		return fmt.Errorf("redis key %s holds %d bytes, wrote %d", key, len(stored), len(bundle))
	}
	return nil
}

// FetchRedis returns the bundle stored under key. A missing key yields
// redis.Nil.
func FetchRedis(client BundleStore, key string) ([]byte, error) {
	return client.Get(key).Bytes()
}

// Upserter is the part of *mongo.Collection the publisher needs.
type Upserter interface {
	UpdateOne(ctx context.Context, filter interface{}, update interface{},
		opts ...*options.UpdateOptions) (*mongo.UpdateResult, error)
}

// PublishMongo upserts one document per table. Documents carry the table
// JSON as text and the version they were written with.
func PublishMongo(ctx context.Context, collection Upserter, tables map[string][]byte, version int64) (int, error) {
	upsert := true
	count := 0
	for name, content := range tables {
		opCtx, cancel := context.WithTimeout(ctx, opTimeout)
		_, err := collection.UpdateOne(opCtx,
			bson.D{{Key: "_id", Value: name}},
			bson.D{
				{Key: "$set", Value: bson.D{
					{Key: "Content", Value: string(content)},
					{Key: "UpdatedAt", Value: version},
				}},
			}, &options.UpdateOptions{Upsert: &upsert})
		cancel()
		if err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func dialRedis(addr, password string, db int) redis.UniversalClient {
	return redis.NewUniversalClient(&redis.UniversalOptions{
		Addrs:    []string{addr},
		Password: password,
		DB:       db,
	})
}

func dialMongo(ctx context.Context, uri string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, opTimeout)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}
