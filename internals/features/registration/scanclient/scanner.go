// file: internals/features/registration/scanclient/scanner.go
//
// State machine sisi klien untuk loop scan kamera. Menjamin maksimal SATU
// request verifikasi in-flight per scan event: scan yang datang saat masih
// in-flight diabaikan total (tanpa antrean, tanpa cancel).
package scanclient

import (
	"context"
	"sync"

	checkinService "wisataku_backend/internals/features/registration/checkin/service"
)

type State int

const (
	StateIdle State = iota
	StateInFlight
	StateTerminal
)

// Outcome: empat hasil terminal sebuah redemption attempt dari sisi klien.
type Outcome string

const (
	OutcomeAccepted  Outcome = "accepted"
	OutcomeDuplicate Outcome = "duplicate"
	OutcomeInvalid   Outcome = "invalid"
	OutcomeTransient Outcome = "transient"
)

// Verifier men-submit satu kode ternormalisasi dan mengembalikan hasil
// terminalnya. Error non-nil diperlakukan sebagai transient.
type Verifier interface {
	Verify(ctx context.Context, code string) (Outcome, error)
}

type ScanResult struct {
	Handled bool // false = scan diabaikan (gate tertutup)
	Outcome Outcome
	Err     error // terisi hanya untuk OutcomeTransient
}

// Scanner memegang gate boolean sederhana — bukan queue.
//
// Aturan re-arm:
//   - Accepted/Duplicate/Invalid: butuh Acknowledge() eksplisit ("scan
//     berikutnya") supaya QR yang masih di frame tidak ke-scan ulang.
//   - Transient: langsung Idle lagi supaya kode yang sama bisa di-retry.
type Scanner struct {
	verifier Verifier

	mu    sync.Mutex
	state State
	last  Outcome
}

func NewScanner(v Verifier) *Scanner {
	return &Scanner{verifier: v}
}

func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// LastOutcome: hasil terminal yang sedang menunggu Acknowledge.
func (s *Scanner) LastOutcome() (Outcome, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateTerminal {
		return "", false
	}
	return s.last, true
}

// HandleScan memproses satu scan event secara sinkron.
func (s *Scanner) HandleScan(ctx context.Context, raw string) ScanResult {
	s.mu.Lock()
	if s.state != StateIdle {
		s.mu.Unlock()
		return ScanResult{Handled: false}
	}

	code := checkinService.NormalizeCode(raw)
	if code == "" {
		// tidak perlu round-trip server untuk frame kosong/sampah
		s.state = StateTerminal
		s.last = OutcomeInvalid
		s.mu.Unlock()
		return ScanResult{Handled: true, Outcome: OutcomeInvalid}
	}

	s.state = StateInFlight
	s.mu.Unlock()

	out, err := s.verifier.Verify(ctx, code)

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil || out == OutcomeTransient {
		s.state = StateIdle
		return ScanResult{Handled: true, Outcome: OutcomeTransient, Err: err}
	}
	s.state = StateTerminal
	s.last = out
	return ScanResult{Handled: true, Outcome: out}
}

// Acknowledge membuka kembali gate setelah hasil terminal ditampilkan.
func (s *Scanner) Acknowledge() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateTerminal {
		s.state = StateIdle
		s.last = ""
	}
}
