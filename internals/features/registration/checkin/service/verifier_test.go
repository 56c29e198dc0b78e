// file: internals/features/registration/checkin/service/verifier_test.go
package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"wisataku_backend/internals/features/registration/checkin/model"
	vgModel "wisataku_backend/internals/features/registration/visitor_groups/model"
	vgService "wisataku_backend/internals/features/registration/visitor_groups/service"
)

// fakeStore meniru kontrak RegistrationStore: lookup by kode ternormalisasi
// dan insert visit log dengan index unik parsial per (grup, entry point).
type fakeStore struct {
	mu     sync.Mutex
	groups map[string]*vgModel.VisitorGroupModel // key = unique code

	accepted map[string]bool // key = groupID|entryKey
	logs     []*model.VisitLogModel

	findErr   error
	recordErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		groups:   map[string]*vgModel.VisitorGroupModel{},
		accepted: map[string]bool{},
	}
}

func (f *fakeStore) addGroup(code string) *vgModel.VisitorGroupModel {
	g := &vgModel.VisitorGroupModel{
		VisitorGroupID:         uuid.New(),
		VisitorGroupUniqueCode: code,
	}
	f.groups[code] = g
	return g
}

func (f *fakeStore) FindByCode(ctx context.Context, code string) (*vgModel.VisitorGroupModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	g, ok := f.groups[code]
	if !ok {
		return nil, vgService.ErrGroupNotFound
	}
	return g, nil
}

func (f *fakeStore) RecordVisit(ctx context.Context, rec *model.VisitLogModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.recordErr != nil {
		return f.recordErr
	}
	if rec.VisitLogStatus == model.VisitStatusAccepted {
		key := rec.VisitLogGroupID.String() + "|" + rec.VisitLogEntryPoint
		if f.accepted[key] {
			return vgService.ErrDuplicateVisit
		}
		f.accepted[key] = true
	}
	f.logs = append(f.logs, rec)
	return nil
}

func (f *fakeStore) acceptedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, l := range f.logs {
		if l.VisitLogStatus == model.VisitStatusAccepted {
			n++
		}
	}
	return n
}

var testStaff = uuid.New()

func TestRedeemAcceptsThenDuplicates(t *testing.T) {
	store := newFakeStore()
	store.addGroup("AB12CD34")
	v := NewVerifier(store)

	res, err := v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
	if err != nil {
		t.Fatalf("Redeem pertama: %v", err)
	}
	if res.Outcome != OutcomeAccepted {
		t.Fatalf("outcome pertama = %s, mau accepted", res.Outcome)
	}
	if res.Group == nil || res.Log == nil {
		t.Fatal("hasil accepted harus membawa grup dan log")
	}

	res, err = v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
	if err != nil {
		t.Fatalf("Redeem kedua: %v", err)
	}
	if res.Outcome != OutcomeDuplicate {
		t.Fatalf("outcome kedua = %s, mau duplicate", res.Outcome)
	}
	if store.acceptedCount() != 1 {
		t.Fatalf("accepted rows = %d, mau 1", store.acceptedCount())
	}
}

func TestRedeemNormalizesInputVariants(t *testing.T) {
	// semua varian di bawah harus menunjuk kode yang sama
	variants := []string{"ab12cd34", "AB12CD34", "  AB12CD34  ", "ab12-cd34", "AB 12 CD 34"}

	for _, first := range variants {
		store := newFakeStore()
		store.addGroup("AB12CD34")
		v := NewVerifier(store)

		res, err := v.Redeem(context.Background(), first, IslandEntry(), testStaff, nil)
		if err != nil {
			t.Fatalf("Redeem(%q): %v", first, err)
		}
		if res.Outcome != OutcomeAccepted {
			t.Fatalf("Redeem(%q) = %s, mau accepted", first, res.Outcome)
		}

		// varian lain setelahnya selalu duplicate, bukan invalid
		for _, second := range variants {
			res, err := v.Redeem(context.Background(), second, IslandEntry(), testStaff, nil)
			if err != nil {
				t.Fatalf("Redeem(%q) setelah accept: %v", second, err)
			}
			if res.Outcome != OutcomeDuplicate {
				t.Fatalf("Redeem(%q) setelah accept = %s, mau duplicate", second, res.Outcome)
			}
		}
	}
}

func TestRedeemMalformedCodeSkipsStore(t *testing.T) {
	store := newFakeStore()
	v := NewVerifier(store)

	for _, raw := range []string{"", "   ", "---", "!!??"} {
		res, err := v.Redeem(context.Background(), raw, IslandEntry(), testStaff, nil)
		if err != nil {
			t.Fatalf("Redeem(%q): %v", raw, err)
		}
		if res.Outcome != OutcomeInvalid || res.Reason != ReasonMalformed {
			t.Fatalf("Redeem(%q) = %s/%s, mau invalid/malformed", raw, res.Outcome, res.Reason)
		}
	}
	if len(store.logs) != 0 {
		t.Fatalf("kode malformed tidak boleh menulis log, dapat %d baris", len(store.logs))
	}
}

func TestRedeemUnknownCodeAuditsWithoutGroup(t *testing.T) {
	store := newFakeStore()
	v := NewVerifier(store)

	res, err := v.Redeem(context.Background(), "ZZZZZZZZ", IslandEntry(), testStaff, nil)
	if err != nil {
		t.Fatalf("Redeem: %v", err)
	}
	if res.Outcome != OutcomeInvalid || res.Reason != ReasonUnknownCode {
		t.Fatalf("outcome = %s/%s, mau invalid/unknown_code", res.Outcome, res.Reason)
	}
	if len(store.logs) != 1 {
		t.Fatalf("log rows = %d, mau 1 baris audit", len(store.logs))
	}
	if store.logs[0].VisitLogGroupID != nil {
		t.Fatal("audit kode tak dikenal tidak boleh menunjuk grup")
	}
	if store.logs[0].VisitLogStatus != model.VisitStatusInvalid {
		t.Fatalf("status audit = %s, mau invalid", store.logs[0].VisitLogStatus)
	}
}

func TestRedeemEntryPointsAreIndependent(t *testing.T) {
	store := newFakeStore()
	store.addGroup("AB12CD34")
	v := NewVerifier(store)

	spotID := uuid.New()

	res, err := v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
	if err != nil || res.Outcome != OutcomeAccepted {
		t.Fatalf("accept di pulau: res=%v err=%v", res, err)
	}

	// gerbang spot berbeda → tetap accepted
	res, err = v.Redeem(context.Background(), "AB12CD34", SpotEntry(spotID), testStaff, nil)
	if err != nil || res.Outcome != OutcomeAccepted {
		t.Fatalf("accept di spot: res=%v err=%v", res, err)
	}

	// ulangi di spot yang sama → duplicate
	res, err = v.Redeem(context.Background(), "AB12CD34", SpotEntry(spotID), testStaff, nil)
	if err != nil || res.Outcome != OutcomeDuplicate {
		t.Fatalf("redeem ulang di spot: res=%v err=%v", res, err)
	}
}

func TestRedeemTransientStoreFailure(t *testing.T) {
	store := newFakeStore()
	store.addGroup("AB12CD34")
	store.findErr = errors.New("timeout")
	v := NewVerifier(store)

	_, err := v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
	if !errors.Is(err, ErrTransient) {
		t.Fatalf("err = %v, mau ErrTransient", err)
	}

	// setelah store pulih, kode yang sama tetap bisa accepted
	store.findErr = nil
	res, err := v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
	if err != nil || res.Outcome != OutcomeAccepted {
		t.Fatalf("redeem setelah pulih: res=%v err=%v", res, err)
	}
}

func TestRedeemConcurrentSameCodeSingleAccept(t *testing.T) {
	store := newFakeStore()
	store.addGroup("AB12CD34")
	v := NewVerifier(store)

	const n = 16
	results := make(chan Outcome, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			res, err := v.Redeem(context.Background(), "AB12CD34", IslandEntry(), testStaff, nil)
			if err != nil {
				t.Errorf("Redeem konkuren: %v", err)
				return
			}
			results <- res.Outcome
		}()
	}
	wg.Wait()
	close(results)

	acceptedN, duplicateN := 0, 0
	for out := range results {
		switch out {
		case OutcomeAccepted:
			acceptedN++
		case OutcomeDuplicate:
			duplicateN++
		default:
			t.Errorf("outcome tak terduga: %s", out)
		}
	}
	if acceptedN != 1 {
		t.Fatalf("accepted = %d, mau tepat 1", acceptedN)
	}
	if duplicateN != n-1 {
		t.Fatalf("duplicate = %d, mau %d", duplicateN, n-1)
	}
	if store.acceptedCount() != 1 {
		t.Fatalf("accepted rows di store = %d, mau 1", store.acceptedCount())
	}
}

// Alur lapangan lengkap: daftar → scan di pulau → scan ulang → scan di spot →
// kode ngawur.
func TestRedeemGateDayScenario(t *testing.T) {
	store := newFakeStore()
	store.addGroup("AB12CD34")
	v := NewVerifier(store)
	ctx := context.Background()
	spotID := uuid.New()

	steps := []struct {
		raw   string
		entry EntryPoint
		want  Outcome
	}{
		{"ab12cd34", IslandEntry(), OutcomeAccepted},       // tiba di pelabuhan
		{"AB12CD34", IslandEntry(), OutcomeDuplicate},      // petugas scan dua kali
		{" AB12CD34 ", SpotEntry(spotID), OutcomeAccepted}, // masuk spot
		{"AB12CD34", SpotEntry(spotID), OutcomeDuplicate},  // scan ulang di spot
		{"XXXXXXXX", IslandEntry(), OutcomeInvalid},        // kode ngawur
	}
	for i, st := range steps {
		res, err := v.Redeem(ctx, st.raw, st.entry, testStaff, nil)
		if err != nil {
			t.Fatalf("step %d Redeem(%q): %v", i, st.raw, err)
		}
		if res.Outcome != st.want {
			t.Fatalf("step %d Redeem(%q) = %s, mau %s", i, st.raw, res.Outcome, st.want)
		}
	}
	if store.acceptedCount() != 2 {
		t.Fatalf("accepted rows = %d, mau 2 (pulau + satu spot)", store.acceptedCount())
	}
}

func TestNormalizeCode(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"ab12cd34", "AB12CD34"},
		{"  AB12CD34  ", "AB12CD34"},
		{"ab12-cd34", "AB12CD34"},
		{"AB 12 CD 34", "AB12CD34"},
		{"", ""},
		{"---", ""},
	}
	for _, tc := range cases {
		if got := NormalizeCode(tc.in); got != tc.want {
			t.Errorf("NormalizeCode(%q) = %q, mau %q", tc.in, got, tc.want)
		}
	}
}

func TestEntryPointKey(t *testing.T) {
	if got := IslandEntry().Key(); got != "island" {
		t.Errorf("island key = %q", got)
	}
	id := uuid.MustParse("5dc1edd9-6a9b-44ae-9cf2-1a47e5a4cfb3")
	if got := SpotEntry(id).Key(); got != "spot:5dc1edd9-6a9b-44ae-9cf2-1a47e5a4cfb3" {
		t.Errorf("spot key = %q", got)
	}
}
