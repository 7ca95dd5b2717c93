// internal/store/store.go
package store

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/agarwalaashrut/JobAppREST/internal/common/errors"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// applicationDoc is the persistence shape of an application record. The
// ObjectID lives here rather than on the model so that the web layer only
// ever sees string ids.
type applicationDoc struct {
	OID                      bson.ObjectID `bson:"_id,omitempty"`
	models.ApplicationRecord `bson:",inline"`
}

// collection is the slice of the MongoDB collection API the store needs.
// Production uses mongoCollection; tests plug in an in-memory fake.
type collection interface {
	insert(ctx context.Context, doc applicationDoc) (bson.ObjectID, error)
	findAll(ctx context.Context) ([]applicationDoc, error)
	updateStatus(ctx context.Context, id bson.ObjectID, status string) (int64, error)
}

// ApplicationStore persists application records in a MongoDB collection.
type ApplicationStore struct {
	coll   collection
	logger logger.Logger
}

func NewApplicationStore(coll *mongo.Collection, log logger.Logger) *ApplicationStore {
	return newStore(&mongoCollection{coll: coll}, log)
}

func newStore(coll collection, log logger.Logger) *ApplicationStore {
	return &ApplicationStore{
		coll:   coll,
		logger: log,
	}
}

// Create inserts a new record and returns it with the database-assigned id
// set to the ObjectID hex string. CreatedAt is stamped at insert time unless
// the caller already supplied one.
func (s *ApplicationStore) Create(ctx context.Context, rec models.ApplicationRecord) (models.ApplicationRecord, error) {
	if rec.CreatedAt == "" {
		rec.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	oid, err := s.coll.insert(ctx, applicationDoc{ApplicationRecord: rec})
	if err != nil {
		return models.ApplicationRecord{}, errors.NewDatabaseInsertFailedError(err)
	}

	rec.ID = oid.Hex()
	s.logger.Info("Application record created", map[string]interface{}{
		"id":      rec.ID,
		"title":   rec.Title,
		"company": rec.Company,
		"status":  rec.Status,
	})
	return rec, nil
}

// ListAll returns every stored record, ids rendered as hex strings. The
// result is never nil.
func (s *ApplicationStore) ListAll(ctx context.Context) ([]models.ApplicationRecord, error) {
	docs, err := s.coll.findAll(ctx)
	if err != nil {
		return nil, errors.NewDatabaseQueryFailedError(err)
	}

	records := make([]models.ApplicationRecord, 0, len(docs))
	for _, doc := range docs {
		rec := doc.ApplicationRecord
		rec.ID = doc.OID.Hex()
		records = append(records, rec)
	}
	return records, nil
}

// UpdateStatus sets the status of the record with the given hex id. It
// returns false without error when the id is malformed or matches nothing.
func (s *ApplicationStore) UpdateStatus(ctx context.Context, id, status string) (bool, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		s.logger.Debug("Rejected malformed application id", map[string]interface{}{
			"id": id,
		})
		return false, nil
	}

	matched, err := s.coll.updateStatus(ctx, oid, status)
	if err != nil {
		return false, errors.NewDatabaseUpdateFailedError(err)
	}
	if matched == 0 {
		return false, nil
	}

	s.logger.Info("Application status updated", map[string]interface{}{
		"id":     id,
		"status": status,
	})
	return true, nil
}
