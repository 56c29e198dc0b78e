// file: internals/features/registration/scanclient/scanner_test.go
package scanclient

import (
	"context"
	"errors"
	"testing"
	"time"
)

type scriptVerifier struct {
	outcome Outcome
	err     error
	calls   int

	// untuk uji in-flight: Verify menunggu release
	block   chan struct{}
	started chan struct{}
}

func (s *scriptVerifier) Verify(ctx context.Context, code string) (Outcome, error) {
	s.calls++
	if s.started != nil {
		close(s.started)
		s.started = nil
	}
	if s.block != nil {
		<-s.block
	}
	return s.outcome, s.err
}

func TestHandleScanTerminalNeedsAcknowledge(t *testing.T) {
	for _, out := range []Outcome{OutcomeAccepted, OutcomeDuplicate, OutcomeInvalid} {
		v := &scriptVerifier{outcome: out}
		s := NewScanner(v)

		res := s.HandleScan(context.Background(), "AB12CD34")
		if !res.Handled || res.Outcome != out {
			t.Fatalf("[%s] res = %+v", out, res)
		}
		if s.State() != StateTerminal {
			t.Fatalf("[%s] state = %v, mau terminal", out, s.State())
		}
		if last, ok := s.LastOutcome(); !ok || last != out {
			t.Fatalf("[%s] LastOutcome = %v/%v", out, last, ok)
		}

		// tanpa Acknowledge: scan berikutnya diabaikan
		res = s.HandleScan(context.Background(), "AB12CD34")
		if res.Handled {
			t.Fatalf("[%s] scan saat terminal harus diabaikan", out)
		}
		if v.calls != 1 {
			t.Fatalf("[%s] verifier dipanggil %d kali, mau 1", out, v.calls)
		}

		// setelah Acknowledge: gate terbuka lagi
		s.Acknowledge()
		if s.State() != StateIdle {
			t.Fatalf("[%s] state setelah ack = %v, mau idle", out, s.State())
		}
		res = s.HandleScan(context.Background(), "AB12CD34")
		if !res.Handled {
			t.Fatalf("[%s] scan setelah ack harus diproses", out)
		}
	}
}

func TestHandleScanTransientAutoRearms(t *testing.T) {
	v := &scriptVerifier{outcome: OutcomeTransient}
	s := NewScanner(v)

	res := s.HandleScan(context.Background(), "AB12CD34")
	if !res.Handled || res.Outcome != OutcomeTransient {
		t.Fatalf("res = %+v", res)
	}
	// tanpa Acknowledge pun gate langsung terbuka untuk retry
	if s.State() != StateIdle {
		t.Fatalf("state = %v, mau idle", s.State())
	}

	v.outcome = OutcomeAccepted
	res = s.HandleScan(context.Background(), "AB12CD34")
	if !res.Handled || res.Outcome != OutcomeAccepted {
		t.Fatalf("retry setelah transient: %+v", res)
	}
}

func TestHandleScanVerifierErrorTreatedAsTransient(t *testing.T) {
	boom := errors.New("jaringan putus")
	v := &scriptVerifier{outcome: OutcomeAccepted, err: boom}
	s := NewScanner(v)

	res := s.HandleScan(context.Background(), "AB12CD34")
	if !res.Handled || res.Outcome != OutcomeTransient {
		t.Fatalf("res = %+v", res)
	}
	if !errors.Is(res.Err, boom) {
		t.Fatalf("res.Err = %v", res.Err)
	}
	if s.State() != StateIdle {
		t.Fatalf("state = %v, mau idle", s.State())
	}
}

func TestHandleScanEmptyFrameSkipsVerifier(t *testing.T) {
	v := &scriptVerifier{outcome: OutcomeAccepted}
	s := NewScanner(v)

	res := s.HandleScan(context.Background(), "  --- ")
	if !res.Handled || res.Outcome != OutcomeInvalid {
		t.Fatalf("res = %+v", res)
	}
	if v.calls != 0 {
		t.Fatalf("frame sampah tidak boleh round-trip, calls = %d", v.calls)
	}
	if s.State() != StateTerminal {
		t.Fatalf("state = %v, mau terminal", s.State())
	}
}

func TestHandleScanIgnoresWhileInFlight(t *testing.T) {
	v := &scriptVerifier{
		outcome: OutcomeAccepted,
		block:   make(chan struct{}),
		started: make(chan struct{}),
	}
	s := NewScanner(v)

	done := make(chan ScanResult, 1)
	go func() {
		done <- s.HandleScan(context.Background(), "AB12CD34")
	}()

	// tunggu request pertama benar-benar in-flight
	select {
	case <-v.started:
	case <-time.After(2 * time.Second):
		t.Fatal("verifier tidak pernah dipanggil")
	}
	if s.State() != StateInFlight {
		t.Fatalf("state = %v, mau in-flight", s.State())
	}

	// scan kedua saat in-flight: diabaikan total
	res := s.HandleScan(context.Background(), "ZZ99YY88")
	if res.Handled {
		t.Fatal("scan saat in-flight harus diabaikan")
	}

	close(v.block)
	first := <-done
	if !first.Handled || first.Outcome != OutcomeAccepted {
		t.Fatalf("hasil scan pertama: %+v", first)
	}
	if v.calls != 1 {
		t.Fatalf("verifier dipanggil %d kali, mau 1", v.calls)
	}
}
