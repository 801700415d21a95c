// Package imageflow implements the item form's image handling: tracking
// which persisted images the operator removed while the form is open, and
// the save sequence of upload, item commit, then best-effort storage
// deletes.
package imageflow

import (
	"context"
	"log"
	"strings"

	entity "kyuna.GO/model/entity"
)

// Uploader is the image-storage side of the items module.
type Uploader interface {
	UploadImage(ctx context.Context, filename string, data []byte) (entity.ItemImage, error)
	DeleteImage(ctx context.Context, publicID string) error
}

// Mutator is the item-record side of the items module.
type Mutator interface {
	Create(ctx context.Context, payload entity.Item) (entity.Item, error)
	Update(ctx context.Context, id string, payload entity.Item) (entity.Item, error)
}

// FormSession tracks the image list for one open item form. The visible
// list mixes persisted images (stable publicId) with freshly attached files
// (locally generated uid, bytes not yet uploaded); deletions are only
// accumulated here and executed at save time.
type FormSession struct {
	images  []entity.ItemImage
	deleted []entity.ItemImage
}

// NewFormSession starts from the item's last-loaded server image list.
func NewFormSession(current []entity.ItemImage) *FormSession {
	images := make([]entity.ItemImage, len(current))
	copy(images, current)
	return &FormSession{images: images}
}

// ApplyFileList reconciles the visible list against a new file list from the
// operator:
//
//  1. an image is removed when no entry of the new list shares its identity
//     (publicId for persisted images, uid for pending ones);
//  2. removed images enter the pending-delete set only when persisted
//     (publicId plus an http(s) URL), de-duplicated by publicId;
//  3. a pending-delete image that reappears in the new list is un-deleted;
//  4. the visible list is replaced wholesale with the new list.
func (f *FormSession) ApplyFileList(files []entity.ItemImage) {
	for _, prev := range f.images {
		if containsImage(files, prev) {
			continue
		}
		if !prev.Persisted() {
			continue
		}
		if !hasPendingDelete(f.deleted, prev.PublicID) {
			f.deleted = append(f.deleted, prev)
		}
	}

	kept := f.deleted[:0]
	for _, del := range f.deleted {
		if !containsImage(files, del) {
			kept = append(kept, del)
		}
	}
	f.deleted = kept

	f.images = make([]entity.ItemImage, len(files))
	copy(f.images, files)
}

func containsImage(files []entity.ItemImage, img entity.ItemImage) bool {
	for _, fl := range files {
		if img.PublicID != "" && (fl.PublicID == img.PublicID || fl.UID == img.PublicID) {
			return true
		}
		if img.UID != "" && fl.UID == img.UID {
			return true
		}
	}
	return false
}

func hasPendingDelete(deleted []entity.ItemImage, publicID string) bool {
	for _, d := range deleted {
		if d.PublicID == publicID {
			return true
		}
	}
	return false
}

// Images returns the visible image list.
func (f *FormSession) Images() []entity.ItemImage {
	out := make([]entity.ItemImage, len(f.images))
	copy(out, f.images)
	return out
}

// PendingDeletes returns the persisted images removed during this session
// and not yet deleted server-side.
func (f *FormSession) PendingDeletes() []entity.ItemImage {
	out := make([]entity.ItemImage, len(f.deleted))
	copy(out, f.deleted)
	return out
}

// SaveOutcome reports a completed save. FailedDeletes lists the publicIds of
// storage objects that could not be removed after the item committed; the
// save itself still succeeded and those objects are orphaned on purpose
// rather than rolling back a committed item.
type SaveOutcome struct {
	Item          entity.Item
	FailedDeletes []string
}

// Saver runs the save sequence for an item form.
type Saver struct {
	Uploads Uploader
	Items   Mutator
}

// Save resolves the visible image list (uploading pending files in list
// order, sequentially; any upload failure aborts the save), commits the item
// as create or update, then deletes the pending-delete images best-effort.
// Deletions run strictly after a successful commit so the item record never
// references an already-deleted image.
func (s *Saver) Save(ctx context.Context, form *FormSession, payload entity.Item, id string) (SaveOutcome, error) {
	resolved := make([]entity.ItemImage, 0, len(form.images))
	for _, img := range form.images {
		if img.Persisted() {
			resolved = append(resolved, entity.ItemImage{URL: img.URL, PublicID: img.PublicID})
			continue
		}
		if len(img.LocalData) == 0 {
			log.Printf("imageflow: image %q has no file and no url, skipping", img.Name)
			continue
		}
		uploaded, err := s.Uploads.UploadImage(ctx, img.Name, img.LocalData)
		if err != nil {
			return SaveOutcome{}, err
		}
		resolved = append(resolved, entity.ItemImage{URL: uploaded.URL, PublicID: uploaded.PublicID})
	}

	payload.Images = resolved

	var (
		saved entity.Item
		err   error
	)
	if id == "" {
		saved, err = s.Items.Create(ctx, payload)
	} else {
		saved, err = s.Items.Update(ctx, id, payload)
	}
	if err != nil {
		return SaveOutcome{}, err
	}

	outcome := SaveOutcome{Item: saved}
	for _, del := range form.deleted {
		if del.PublicID == "" {
			continue
		}
		filename := deleteTarget(del.PublicID)
		if derr := s.Uploads.DeleteImage(ctx, filename); derr != nil {
			log.Printf("imageflow: failed to delete image %s: %v", del.PublicID, derr)
			outcome.FailedDeletes = append(outcome.FailedDeletes, del.PublicID)
		}
	}
	form.deleted = nil
	return outcome, nil
}

// deleteTarget reduces a publicId like "kyuna/items/abc123" to the filename
// segment the delete endpoint expects.
func deleteTarget(publicID string) string {
	parts := strings.Split(publicID, "/")
	return parts[len(parts)-1]
}
