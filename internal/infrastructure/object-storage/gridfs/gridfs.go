package gridfs

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func CreateBucket(db *mongo.Database) (*gridfs.Bucket, error) {
	return gridfs.NewBucket(db, options.GridFSBucket().SetName("uploads"))
}
