// file: internals/features/registration/visitor_groups/service/code_generator_test.go
package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
)

type fakeChecker struct {
	existing map[string]bool
	failWith error
	calls    int
	allTaken bool
}

func (f *fakeChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	f.calls++
	if f.failWith != nil {
		return false, f.failWith
	}
	if f.allTaken {
		return true, nil
	}
	return f.existing[code], nil
}

func TestCodeAlphabetHasNoAmbiguousSymbols(t *testing.T) {
	for _, bad := range []string{"0", "O", "1", "I"} {
		if strings.Contains(CodeAlphabet, bad) {
			t.Errorf("alfabet mengandung karakter ambigu %q", bad)
		}
	}
	// 256 harus habis dibagi panjang alfabet agar pemetaan byte bebas bias
	if 256%len(CodeAlphabet) != 0 {
		t.Errorf("panjang alfabet %d tidak membagi 256", len(CodeAlphabet))
	}
	seen := map[rune]bool{}
	for _, r := range CodeAlphabet {
		if seen[r] {
			t.Errorf("simbol duplikat %q di alfabet", r)
		}
		seen[r] = true
	}
}

func TestGenerateUniqueCodeShape(t *testing.T) {
	checker := &fakeChecker{}
	for i := 0; i < 50; i++ {
		code, err := GenerateUniqueCode(context.Background(), checker)
		if err != nil {
			t.Fatalf("GenerateUniqueCode: %v", err)
		}
		if len(code) != CodeLength {
			t.Fatalf("panjang kode = %d, mau %d (%q)", len(code), CodeLength, code)
		}
		for _, r := range code {
			if !strings.ContainsRune(CodeAlphabet, r) {
				t.Fatalf("kode %q mengandung simbol di luar alfabet: %q", code, r)
			}
		}
	}
}

func TestGenerateUniqueCodeConcurrentIssuance(t *testing.T) {
	// checker yang "mengklaim" kode saat dicek, meniru insert paralel
	claim := &claimingChecker{taken: map[string]bool{}}

	const n = 64
	codes := make(chan string, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := GenerateUniqueCode(context.Background(), claim)
			if err != nil {
				t.Errorf("GenerateUniqueCode: %v", err)
				return
			}
			codes <- code
		}()
	}
	wg.Wait()
	close(codes)

	seen := map[string]bool{}
	for code := range codes {
		if seen[code] {
			t.Fatalf("kode duplikat terbit: %q", code)
		}
		seen[code] = true
	}
	if len(seen) != n {
		t.Fatalf("kode terbit = %d, mau %d", len(seen), n)
	}
}

// claimingChecker menandai kode sebagai terpakai pada lookup pertama.
type claimingChecker struct {
	mu    sync.Mutex
	taken map[string]bool
}

func (c *claimingChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.taken[code] {
		return true, nil
	}
	c.taken[code] = true
	return false, nil
}

func TestGenerateUniqueCodeRetriesOnCollision(t *testing.T) {
	// dua kandidat pertama dianggap tabrakan, ketiga lolos
	checker := &rejectNChecker{n: 2}
	code, err := GenerateUniqueCode(context.Background(), checker)
	if err != nil {
		t.Fatalf("GenerateUniqueCode: %v", err)
	}
	if len(code) != CodeLength {
		t.Fatalf("panjang kode = %d, mau %d", len(code), CodeLength)
	}
	if checker.calls != 3 {
		t.Fatalf("jumlah lookup = %d, mau 3", checker.calls)
	}
}

type rejectNChecker struct {
	n     int
	calls int
}

func (r *rejectNChecker) CodeExists(ctx context.Context, code string) (bool, error) {
	r.calls++
	return r.calls <= r.n, nil
}

func TestGenerateUniqueCodeGivesUpAfterMaxAttempts(t *testing.T) {
	checker := &fakeChecker{allTaken: true}
	_, err := GenerateUniqueCode(context.Background(), checker)
	if err == nil {
		t.Fatal("mau error setelah semua percobaan tabrakan")
	}
	if checker.calls != maxCodeAttempts {
		t.Fatalf("jumlah percobaan = %d, mau %d", checker.calls, maxCodeAttempts)
	}
}

func TestGenerateUniqueCodePropagatesStoreError(t *testing.T) {
	boom := errors.New("koneksi putus")
	checker := &fakeChecker{failWith: boom}
	_, err := GenerateUniqueCode(context.Background(), checker)
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, mau wrap dari %v", err, boom)
	}
	if checker.calls != 1 {
		t.Fatalf("error store harus menghentikan retry, calls = %d", checker.calls)
	}
}
