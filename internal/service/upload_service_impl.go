package service

import (
	"context"
	"io"
	"path"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/iwootapp/iwoot/pkg/errs"
)

// maxUploadSize caps stored objects at 5 MiB.
const maxUploadSize = 5 << 20

type UploadServiceImpl struct {
	bucket *gridfs.Bucket
}

func CreateUploadService(bucket *gridfs.Bucket) UploadService {
	return &UploadServiceImpl{bucket: bucket}
}

type storedFile struct {
	ID       primitive.ObjectID `bson:"_id"`
	Filename string             `bson:"filename"`
	Metadata struct {
		OwnerID     string `bson:"owner_id"`
		ContentType string `bson:"content_type"`
	} `bson:"metadata"`
}

// Upload stores an image object under a per-owner key and returns that key as
// the public reference. Size and content-type restrictions live here, at the
// storage layer, not in the record validators.
func (s *UploadServiceImpl) Upload(ctx context.Context, ownerID string, filename string, contentType string, size int64, source io.Reader) (ref string, err error) {
	if size > maxUploadSize {
		return "", errs.ErrFileTooLarge
	}
	if !strings.HasPrefix(contentType, "image/") {
		return "", errs.ErrNotAnImage
	}

	key := ownerID + "/" + ulid.Make().String() + path.Ext(filename)

	opts := options.GridFSUpload().SetMetadata(bson.M{
		"owner_id":     ownerID,
		"content_type": contentType,
	})

	// LimitReader backs up the client-declared size against the actual stream.
	if _, err = s.bucket.UploadFromStream(key, io.LimitReader(source, maxUploadSize+1), opts); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Upload").Msg("")
		return "", err
	}

	return key, nil
}

func (s *UploadServiceImpl) Download(ctx context.Context, ownerID string, ref string, target io.Writer) (contentType string, err error) {
	file, err := s.findFile(ctx, ownerID, ref)
	if err != nil {
		return "", err
	}

	if _, err = s.bucket.DownloadToStream(file.ID, target); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Download").Msg("")
		return "", err
	}

	return file.Metadata.ContentType, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, ownerID string, ref string) (err error) {
	file, err := s.findFile(ctx, ownerID, ref)
	if err != nil {
		return err
	}

	if err = s.bucket.Delete(file.ID); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Delete").Msg("")
		return err
	}

	return nil
}

// findFile resolves a reference within the caller's folder; a reference owned
// by someone else resolves to not-found rather than a permission error.
func (s *UploadServiceImpl) findFile(ctx context.Context, ownerID string, ref string) (file storedFile, err error) {
	filter := bson.D{
		{Key: "filename", Value: ref},
		{Key: "metadata.owner_id", Value: ownerID},
	}

	cursor, err := s.bucket.Find(filter)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findFile").Msg("")
		return file, err
	}
	defer cursor.Close(ctx)

	if !cursor.Next(ctx) {
		return file, errs.ErrNotFound
	}

	if err = cursor.Decode(&file); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "findFile").Msg("")
		return file, err
	}

	return file, nil
}
