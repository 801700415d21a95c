package imageflow

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	entity "kyuna.GO/model/entity"
)

func persisted(publicID string) entity.ItemImage {
	return entity.ItemImage{
		PublicID: publicID,
		URL:      "https://img.example.com/" + publicID + ".jpg",
	}
}

func pending(uid, name string) entity.ItemImage {
	return entity.ItemImage{UID: uid, Name: name, LocalData: []byte("fake-bytes-" + uid)}
}

func TestFormSession_RemovePersistedImage(t *testing.T) {
	f := NewFormSession([]entity.ItemImage{persisted("a"), persisted("b")})

	f.ApplyFileList([]entity.ItemImage{persisted("b")})

	dels := f.PendingDeletes()
	require.Len(t, dels, 1)
	require.Equal(t, "a", dels[0].PublicID)
	require.Len(t, f.Images(), 1)
}

func TestFormSession_ReAddCancelsDelete(t *testing.T) {
	f := NewFormSession([]entity.ItemImage{persisted("a"), persisted("b")})

	f.ApplyFileList([]entity.ItemImage{persisted("b")})
	require.Len(t, f.PendingDeletes(), 1)

	f.ApplyFileList([]entity.ItemImage{persisted("a"), persisted("b")})
	require.Empty(t, f.PendingDeletes())
	require.Len(t, f.Images(), 2)
}

func TestFormSession_RemovedPendingFileNeverQueuesDelete(t *testing.T) {
	f := NewFormSession(nil)

	f.ApplyFileList([]entity.ItemImage{pending("u1", "new.jpg")})
	f.ApplyFileList(nil)

	require.Empty(t, f.PendingDeletes(), "a never-uploaded file has nothing to delete server-side")
	require.Empty(t, f.Images())
}

func TestFormSession_DeleteDedupedByPublicID(t *testing.T) {
	f := NewFormSession([]entity.ItemImage{persisted("a")})

	f.ApplyFileList(nil)
	f.ApplyFileList([]entity.ItemImage{persisted("a")})
	f.ApplyFileList(nil)

	require.Len(t, f.PendingDeletes(), 1)
}

// fakeUploader records calls and can be told to fail.
type fakeUploader struct {
	uploads    []string
	deletes    []string
	failUpload string
	failDelete map[string]bool
	seq        int
}

func (u *fakeUploader) UploadImage(ctx context.Context, filename string, data []byte) (entity.ItemImage, error) {
	if filename == u.failUpload {
		return entity.ItemImage{}, errors.New("storage rejected " + filename)
	}
	u.seq++
	u.uploads = append(u.uploads, filename)
	id := fmt.Sprintf("up-%d", u.seq)
	return entity.ItemImage{URL: "https://img.example.com/" + id + ".jpg", PublicID: id}, nil
}

func (u *fakeUploader) DeleteImage(ctx context.Context, publicID string) error {
	u.deletes = append(u.deletes, publicID)
	if u.failDelete[publicID] {
		return errors.New("delete failed")
	}
	return nil
}

// fakeMutator records the committed payload.
type fakeMutator struct {
	created *entity.Item
	updated *entity.Item
	fail    bool
}

func (m *fakeMutator) Create(ctx context.Context, payload entity.Item) (entity.Item, error) {
	if m.fail {
		return entity.Item{}, errors.New("create failed")
	}
	payload.ID = "created-1"
	m.created = &payload
	return payload, nil
}

func (m *fakeMutator) Update(ctx context.Context, id string, payload entity.Item) (entity.Item, error) {
	if m.fail {
		return entity.Item{}, errors.New("update failed")
	}
	payload.ID = id
	m.updated = &payload
	return payload, nil
}

func TestSaver_UploadsInListOrderThenCommits(t *testing.T) {
	up := &fakeUploader{}
	mut := &fakeMutator{}
	saver := &Saver{Uploads: up, Items: mut}

	f := NewFormSession([]entity.ItemImage{persisted("keep")})
	f.ApplyFileList([]entity.ItemImage{
		persisted("keep"),
		pending("u1", "first.jpg"),
		pending("u2", "second.jpg"),
	})

	outcome, err := saver.Save(context.Background(), f, entity.Item{Name: "Ring"}, "")
	require.NoError(t, err)
	require.Equal(t, []string{"first.jpg", "second.jpg"}, up.uploads)
	require.NotNil(t, mut.created)
	require.Len(t, mut.created.Images, 3)
	require.Equal(t, "keep", mut.created.Images[0].PublicID)
	require.Equal(t, "up-1", mut.created.Images[1].PublicID)
	require.Empty(t, outcome.FailedDeletes)
}

func TestSaver_UploadFailureAbortsBeforeCommit(t *testing.T) {
	up := &fakeUploader{failUpload: "bad.jpg"}
	mut := &fakeMutator{}
	saver := &Saver{Uploads: up, Items: mut}

	f := NewFormSession(nil)
	f.ApplyFileList([]entity.ItemImage{pending("u1", "bad.jpg")})

	_, err := saver.Save(context.Background(), f, entity.Item{}, "")
	require.Error(t, err)
	require.Nil(t, mut.created)
	require.Nil(t, mut.updated)
}

func TestSaver_NoDeletesWhenCommitFails(t *testing.T) {
	up := &fakeUploader{}
	mut := &fakeMutator{fail: true}
	saver := &Saver{Uploads: up, Items: mut}

	f := NewFormSession([]entity.ItemImage{persisted("a")})
	f.ApplyFileList(nil)
	require.Len(t, f.PendingDeletes(), 1)

	_, err := saver.Save(context.Background(), f, entity.Item{}, "item-1")
	require.Error(t, err)
	require.Empty(t, up.deletes, "deletes must only run after a successful commit")
	require.Len(t, f.PendingDeletes(), 1, "pending deletes survive a failed save")
}

func TestSaver_DeletesRunAfterCommitBestEffort(t *testing.T) {
	up := &fakeUploader{failDelete: map[string]bool{"b": true}}
	mut := &fakeMutator{}
	saver := &Saver{Uploads: up, Items: mut}

	f := NewFormSession([]entity.ItemImage{persisted("a"), persisted("b"), persisted("c")})
	f.ApplyFileList([]entity.ItemImage{persisted("c")})

	outcome, err := saver.Save(context.Background(), f, entity.Item{Name: "Ring"}, "item-1")
	require.NoError(t, err, "a failed storage delete never fails the save")
	require.NotNil(t, mut.updated)
	require.Equal(t, []string{"a", "b"}, up.deletes)
	require.Equal(t, []string{"b"}, outcome.FailedDeletes)
	require.Empty(t, f.PendingDeletes(), "the queue is cleared once processed")
}

func TestSaver_DeleteTargetUsesLastPathSegment(t *testing.T) {
	up := &fakeUploader{}
	mut := &fakeMutator{}
	saver := &Saver{Uploads: up, Items: mut}

	f := NewFormSession([]entity.ItemImage{persisted("kyuna/items/abc123")})
	f.ApplyFileList(nil)

	_, err := saver.Save(context.Background(), f, entity.Item{}, "item-1")
	require.NoError(t, err)
	require.Equal(t, []string{"abc123"}, up.deletes)
}
