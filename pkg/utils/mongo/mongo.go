package mongo

import (
	"context"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Options struct {
	Addr     string        `json:"addr,omitempty" description:"mongodb address, comma separated for replica sets"`
	Database string        `json:"database,omitempty" description:"mongodb database"`
	Username string        `json:"username,omitempty" description:"mongodb username"`
	Password string        `json:"password,omitempty" description:"mongodb password"`
	Timeout  time.Duration `json:"timeout,omitempty" description:"timeout of connecting to mongodb"`
}

func DefaultOptions() *Options {
	return &Options{
		Addr:     "mongo:27017",
		Database: "mojam",
		Username: "",
		Password: "",
		Timeout:  10 * time.Second,
	}
}

func NewMongoDB(ctx context.Context, opt *Options) (*mongo.Client, *mongo.Database, error) {
	mongoopt := options.Client().SetHosts(strings.Split(opt.Addr, ","))
	if opt.Username != "" && opt.Password != "" {
		mongoopt.SetAuth(options.Credential{
			Username: opt.Username,
			Password: opt.Password,
		})
	}
	if opt.Timeout > 0 {
		mongoopt.SetConnectTimeout(opt.Timeout).SetServerSelectionTimeout(opt.Timeout)
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opt.Timeout)
		defer cancel()
	}
	mongocli, err := mongo.Connect(ctx, mongoopt)
	if err != nil {
		return nil, nil, err
	}
	if err := mongocli.Ping(ctx, nil); err != nil {
		_ = mongocli.Disconnect(context.Background())
		return nil, nil, err
	}
	return mongocli, mongocli.Database(opt.Database), nil
}
