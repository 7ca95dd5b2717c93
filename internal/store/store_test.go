// internal/store/store_test.go
package store

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	stderrors "github.com/agarwalaashrut/JobAppREST/internal/common/errors"
	"github.com/agarwalaashrut/JobAppREST/internal/common/logger"
	"github.com/agarwalaashrut/JobAppREST/internal/models"
)

// ==========================
// In-Memory Collection Fake
// ==========================

type fakeCollection struct {
	docs []applicationDoc

	insertErr error
	findErr   error
	updateErr error
}

func (f *fakeCollection) insert(_ context.Context, doc applicationDoc) (bson.ObjectID, error) {
	if f.insertErr != nil {
		return bson.ObjectID{}, f.insertErr
	}
	doc.OID = bson.NewObjectID()
	f.docs = append(f.docs, doc)
	return doc.OID, nil
}

func (f *fakeCollection) findAll(_ context.Context) ([]applicationDoc, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	return f.docs, nil
}

func (f *fakeCollection) updateStatus(_ context.Context, id bson.ObjectID, status string) (int64, error) {
	if f.updateErr != nil {
		return 0, f.updateErr
	}
	for i := range f.docs {
		if f.docs[i].OID == id {
			f.docs[i].Status = status
			return 1, nil
		}
	}
	return 0, nil
}

func newTestStore(t *testing.T) (*ApplicationStore, *fakeCollection) {
	t.Helper()
	coll := &fakeCollection{}
	return newStore(coll, logger.NewTestLogger(t)), coll
}

// ==========================
// Create Tests
// ==========================

func TestStore_Create_AssignsIDAndTimestamp(t *testing.T) {
	store, coll := newTestStore(t)

	rec, err := store.Create(context.Background(), models.ApplicationRecord{
		Title:   "Platform Engineer",
		Company: "Initech",
		Status:  "applied",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, rec.ID)
	assert.NotEmpty(t, rec.CreatedAt)
	assert.Len(t, coll.docs, 1)
	assert.Equal(t, rec.ID, coll.docs[0].OID.Hex())
}

func TestStore_Create_KeepsCallerTimestamp(t *testing.T) {
	store, _ := newTestStore(t)

	rec, err := store.Create(context.Background(), models.ApplicationRecord{
		Title:     "Platform Engineer",
		Company:   "Initech",
		Status:    "applied",
		CreatedAt: "2026-01-15T09:30:00Z",
	})

	assert.NoError(t, err)
	assert.Equal(t, "2026-01-15T09:30:00Z", rec.CreatedAt)
}

func TestStore_Create_InsertFailure(t *testing.T) {
	store, coll := newTestStore(t)
	coll.insertErr = errors.New("server selection timeout")

	_, err := store.Create(context.Background(), models.ApplicationRecord{
		Title: "Platform Engineer",
	})

	assert.Error(t, err)
	var stdErr *stderrors.StandardError
	assert.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeDatabaseInsertFailed, stdErr.Code)
	assert.True(t, stdErr.Retryable)
}

// ==========================
// ListAll Tests
// ==========================

func TestStore_ListAll_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	records, err := store.ListAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestStore_ListAll_ReturnsHexIDs(t *testing.T) {
	store, _ := newTestStore(t)

	first, _ := store.Create(context.Background(), models.ApplicationRecord{
		Title: "Platform Engineer", Company: "Initech", Status: "applied",
	})
	second, _ := store.Create(context.Background(), models.ApplicationRecord{
		Title: "SRE", Company: "Globex", Status: "wishlist",
	})

	records, err := store.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, first.ID, records[0].ID)
	assert.Equal(t, second.ID, records[1].ID)
	assert.Equal(t, "Initech", records[0].Company)
}

func TestStore_ListAll_QueryFailure(t *testing.T) {
	store, coll := newTestStore(t)
	coll.findErr = errors.New("cursor error")

	_, err := store.ListAll(context.Background())

	assert.Error(t, err)
	var stdErr *stderrors.StandardError
	assert.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeDatabaseQueryFailed, stdErr.Code)
}

// ==========================
// UpdateStatus Tests
// ==========================

func TestStore_UpdateStatus_Success(t *testing.T) {
	store, coll := newTestStore(t)
	rec, _ := store.Create(context.Background(), models.ApplicationRecord{
		Title: "Platform Engineer", Status: "applied",
	})

	ok, err := store.UpdateStatus(context.Background(), rec.ID, "interview")

	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "interview", coll.docs[0].Status)
}

func TestStore_UpdateStatus_UnknownID(t *testing.T) {
	store, _ := newTestStore(t)

	ok, err := store.UpdateStatus(context.Background(), bson.NewObjectID().Hex(), "interview")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UpdateStatus_MalformedID(t *testing.T) {
	store, _ := newTestStore(t)

	ok, err := store.UpdateStatus(context.Background(), "not-a-hex-id", "interview")

	assert.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_UpdateStatus_DatabaseFailure(t *testing.T) {
	store, coll := newTestStore(t)
	coll.updateErr = errors.New("write concern error")

	ok, err := store.UpdateStatus(context.Background(), bson.NewObjectID().Hex(), "interview")

	assert.False(t, ok)
	assert.Error(t, err)
	var stdErr *stderrors.StandardError
	assert.True(t, errors.As(err, &stdErr))
	assert.Equal(t, stderrors.ErrCodeDatabaseUpdateFailed, stdErr.Code)
}
