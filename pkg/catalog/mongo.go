package catalog

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/trevorsandy/lpub3dNext/pkg/errors"
)

// MongoStore is an [ElementSource] backed by a MongoDB collection, for
// server deployments that share one element catalog across instances.
// Documents: {part, color, flavor, element}.
type MongoStore struct {
	coll *mongo.Collection
}

// MongoConfig describes the connection.
type MongoConfig struct {
	// URI is the mongodb:// connection string.
	URI string
	// Database and Collection name the storage location; empty values
	// default to "lpub3d" / "elements".
	Database   string
	Collection string
	// ConnectTimeout bounds the initial dial; zero means 10s.
	ConnectTimeout time.Duration
}

// NewMongoStore connects and verifies the deployment with a ping.
func NewMongoStore(ctx context.Context, cfg MongoConfig) (*MongoStore, error) {
	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, err, "connect element store")
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCatalog, err, "ping element store")
	}
	db := cfg.Database
	if db == "" {
		db = "lpub3d"
	}
	coll := cfg.Collection
	if coll == "" {
		coll = "elements"
	}
	return &MongoStore{coll: client.Database(db).Collection(coll)}, nil
}

type elementDoc struct {
	Part    string `bson:"part"`
	Color   string `bson:"color"`
	Flavor  string `bson:"flavor"`
	Element string `bson:"element"`
}

// Element implements [ElementSource].
func (s *MongoStore) Element(ctx context.Context, partID, colorID string, flavor Flavor) (string, error) {
	var doc elementDoc
	err := s.coll.FindOne(ctx, bson.M{
		"part":   elementKey(partID, colorID),
		"flavor": flavor.String(),
	}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return "", errors.New(errors.ErrCodeCatalog,
			"no %s element for part %s color %s", flavor, partID, colorID)
	}
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeCatalog, err, "element lookup")
	}
	return doc.Element, nil
}

// Put upserts one element id.
func (s *MongoStore) Put(ctx context.Context, partID, colorID, element string, flavor Flavor) error {
	key := elementKey(partID, colorID)
	_, err := s.coll.UpdateOne(ctx,
		bson.M{"part": key, "flavor": flavor.String()},
		bson.M{"$set": elementDoc{Part: key, Color: colorID, Flavor: flavor.String(), Element: element}},
		options.Update().SetUpsert(true))
	if err != nil {
		return errors.Wrap(errors.ErrCodeCatalog, err, "element upsert")
	}
	return nil
}

// Import bulk-loads an in-memory table, e.g. after FetchCodes.
func (s *MongoStore) Import(ctx context.Context, t *ElementTable, flavor Flavor) (int, error) {
	m := t.bricklink
	if flavor == FlavorLEGO {
		m = t.lego
	}
	n := 0
	for key, element := range m {
		_, err := s.coll.UpdateOne(ctx,
			bson.M{"part": key, "flavor": flavor.String()},
			bson.M{"$set": bson.M{"element": element}},
			options.Update().SetUpsert(true))
		if err != nil {
			return n, errors.Wrap(errors.ErrCodeCatalog, err, "element import")
		}
		n++
	}
	return n, nil
}

// Close disconnects the underlying client.
func (s *MongoStore) Close(ctx context.Context) error {
	return s.coll.Database().Client().Disconnect(ctx)
}
