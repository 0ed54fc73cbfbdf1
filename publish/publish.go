package publish

import (
	"context"
	"time"

	"github.com/mafei198/sheetgen/config"
	"github.com/mafei198/sheetgen/logger"
	"github.com/mafei198/sheetgen/misc"
)

type Result struct {
	Tables     int
	BundlePath string
	RedisKey   string
	MongoDocs  int
}

func Enabled(cfg *config.Config) bool {
	return cfg.BundlePath != "" || cfg.RedisAddr != "" || cfg.MongoURI != ""
}

// Run publishes the JSON output of a finished batch to every configured
// target. It does nothing when no target is configured.
func Run(ctx context.Context, cfg *config.Config) (*Result, error) {
	result := &Result{}
	if !Enabled(cfg) {
		return result, nil
	}

	tables, err := CollectTables(cfg.TableOutputPath)
	if err != nil {
		return nil, err
	}
	result.Tables = len(tables)
	bundle, err := MergeJSON(tables, cfg.BundleGzip)
	if err != nil {
		return nil, err
	}

	if cfg.BundlePath != "" {
		if err := misc.WriteFile(cfg.BundlePath, bundle); err != nil {
			return nil, err
		}
		result.BundlePath = cfg.BundlePath
		logger.INFO("wrote table bundle: ", cfg.BundlePath)
	}

	if cfg.RedisAddr != "" {
		client := dialRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		err := PublishRedis(client, cfg.RedisKey, bundle)
		_ = client.Close()
		if err != nil {
			return nil, err
		}
		result.RedisKey = cfg.RedisKey
		logger.INFO("published table bundle to redis key ", cfg.RedisKey)
	}

	if cfg.MongoURI != "" {
		client, err := dialMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, err
		}
		defer client.Disconnect(context.Background())
		collection := client.Database(cfg.MongoDatabase).Collection(cfg.MongoCollection)
		count, err := PublishMongo(ctx, collection, tables, time.Now().Unix())
		result.MongoDocs = count
		if err != nil {
			return result, err
		}
		logger.INFOf("published %d tables to mongo %s.%s", count, cfg.MongoDatabase, cfg.MongoCollection)
	}
	return result, nil
}
