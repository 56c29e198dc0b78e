// file: internals/features/registration/visitor_groups/service/qr_issuance_test.go
package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"wisataku_backend/internals/features/registration/visitor_groups/model"
)

type fakeUploader struct {
	uploads  int
	lastKey  string
	lastCT   string
	lastData []byte
	failWith error
}

func (f *fakeUploader) UploadBytes(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if f.failWith != nil {
		return "", f.failWith
	}
	f.uploads++
	f.lastKey = key
	f.lastCT = contentType
	f.lastData = data
	return "https://cdn.example.com/" + key, nil
}

type fakeQRStore struct {
	groups   map[uuid.UUID]*model.VisitorGroupModel
	setCalls int
	loseRace bool // SetQRAssetOnce selalu kalah (baris sudah terisi)
}

func newFakeQRStore() *fakeQRStore {
	return &fakeQRStore{groups: map[uuid.UUID]*model.VisitorGroupModel{}}
}

func (f *fakeQRStore) SetQRAssetOnce(ctx context.Context, groupID uuid.UUID, url, objectKey string) (bool, error) {
	f.setCalls++
	g, ok := f.groups[groupID]
	if !ok {
		return false, errors.New("grup tidak ada")
	}
	if f.loseRace || g.VisitorGroupQRCodeURL != nil {
		return false, nil
	}
	g.VisitorGroupQRCodeURL = &url
	g.VisitorGroupQRObjectKey = &objectKey
	return true, nil
}

func (f *fakeQRStore) FindByID(ctx context.Context, groupID uuid.UUID) (*model.VisitorGroupModel, error) {
	g, ok := f.groups[groupID]
	if !ok {
		return nil, ErrGroupNotFound
	}
	return g, nil
}

func newTestGroup(store *fakeQRStore) *model.VisitorGroupModel {
	g := &model.VisitorGroupModel{
		VisitorGroupID:         uuid.New(),
		VisitorGroupUniqueCode: "AB12CD34",
	}
	store.groups[g.VisitorGroupID] = g
	return g
}

func TestQRIssuerEnsureIssuesOnce(t *testing.T) {
	store := newFakeQRStore()
	up := &fakeUploader{}
	g := newTestGroup(store)
	issuer := NewQRIssuer(store, up)

	url, err := issuer.Ensure(context.Background(), g)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if url == "" {
		t.Fatal("URL kosong")
	}
	wantKey := "qr/" + g.VisitorGroupID.String() + ".png"
	if up.lastKey != wantKey {
		t.Fatalf("object key = %q, mau %q", up.lastKey, wantKey)
	}
	if up.lastCT != "image/png" {
		t.Fatalf("content type = %q", up.lastCT)
	}
	if len(up.lastData) == 0 {
		t.Fatal("payload PNG kosong")
	}

	// panggilan kedua: URL sama, tanpa upload ulang
	again, err := issuer.Ensure(context.Background(), g)
	if err != nil {
		t.Fatalf("Ensure kedua: %v", err)
	}
	if again != url {
		t.Fatalf("URL berubah: %q → %q", url, again)
	}
	if up.uploads != 1 {
		t.Fatalf("uploads = %d, mau 1", up.uploads)
	}
}

func TestQRIssuerEnsureRaceLoserUsesStoredURL(t *testing.T) {
	store := newFakeQRStore()
	up := &fakeUploader{}
	g := newTestGroup(store)

	// baris di store sudah terisi oleh "pemenang" lain
	stored := "https://cdn.example.com/qr/existing.png"
	storedKey := "qr/existing.png"
	winner := *g
	winner.VisitorGroupQRCodeURL = &stored
	winner.VisitorGroupQRObjectKey = &storedKey
	store.groups[g.VisitorGroupID] = &winner

	// kopi lokal si "kalah" belum tahu URL itu
	loser := &model.VisitorGroupModel{
		VisitorGroupID:         g.VisitorGroupID,
		VisitorGroupUniqueCode: g.VisitorGroupUniqueCode,
	}

	issuer := NewQRIssuer(store, up)
	url, err := issuer.Ensure(context.Background(), loser)
	if err != nil {
		t.Fatalf("Ensure: %v", err)
	}
	if url != stored {
		t.Fatalf("URL = %q, mau URL tersimpan %q", url, stored)
	}
	if loser.VisitorGroupQRCodeURL == nil || *loser.VisitorGroupQRCodeURL != stored {
		t.Fatal("kopi lokal tidak di-refresh dari store")
	}
}

func TestQRIssuerEnsureUploadFailure(t *testing.T) {
	store := newFakeQRStore()
	boom := errors.New("oss down")
	up := &fakeUploader{failWith: boom}
	g := newTestGroup(store)

	issuer := NewQRIssuer(store, up)
	_, err := issuer.Ensure(context.Background(), g)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, mau wrap dari %v", err, boom)
	}
	if store.setCalls != 0 {
		t.Fatal("upload gagal tidak boleh menyentuh store")
	}
	if g.VisitorGroupQRCodeURL != nil {
		t.Fatal("URL grup tidak boleh terisi saat gagal")
	}
}
