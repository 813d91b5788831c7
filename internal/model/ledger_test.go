package model_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/mxinitup/six-minute-walk-calculator/internal/model"
)

func TestLapLedgerRecord(t *testing.T) {

	t.Run("records strictly increasing times", func(t *testing.T) {
		ledger := model.NewLapLedger()
		for _, lap := range []model.Duration{65, 130, 205} {
			if err := ledger.Record(lap); err != nil {
				t.Errorf("recording %v unexpectedly errored: %s", lap, err.Error())
			}
		}
		if !reflect.DeepEqual(ledger.Times(), []model.Duration{65, 130, 205}) {
			t.Errorf("ledger contains %v", ledger.Times())
		}
	})

	t.Run("rejects a non-increasing time and keeps the ledger", func(t *testing.T) {
		ledger := model.NewLapLedger()
		if err := ledger.Record(40); err != nil {
			t.Fatalf("recording first lap errored: %s", err.Error())
		}

		// e.g. a double-tap of the lap control sampling slightly earlier
		if err := ledger.Record(39.9); err == nil {
			t.Error("recording 39.9 after 40 should give an advisory error")
		}
		if !reflect.DeepEqual(ledger.Times(), []model.Duration{40}) {
			t.Errorf("rejection changed the ledger to %v", ledger.Times())
		}
	})

	t.Run("rejects an equal time", func(t *testing.T) {
		ledger := model.NewLapLedger()
		_ = ledger.Record(40)
		if err := ledger.Record(40); err == nil {
			t.Error("recording 40 after 40 should give an advisory error")
		}
	})
}

func TestLapLedgerClear(t *testing.T) {
	ledger := model.NewLapLedger()
	_ = ledger.Record(10)
	_ = ledger.Record(20)
	ledger.Clear()
	if ledger.Len() != 0 {
		t.Errorf("cleared ledger still has %d entries", ledger.Len())
	}
	if _, ok := ledger.Last(); ok {
		t.Error("cleared ledger still reports a last entry")
	}
}

func TestParseLapTable(t *testing.T) {

	t.Run("parses filled cells with trailing blanks", func(t *testing.T) {
		times, err := model.ParseLapTable([]string{"0:30", "1:05", ":95", "", "", ""})
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if !reflect.DeepEqual(times, []model.Duration{30, 65, 95}) {
			t.Errorf("parsed %v", times)
		}
	})

	t.Run("empty table parses to no laps", func(t *testing.T) {
		times, err := model.ParseLapTable([]string{"", "", ""})
		if err != nil {
			t.Fatalf("unexpected error: %s", err.Error())
		}
		if len(times) != 0 {
			t.Errorf("parsed %v from blank cells", times)
		}
	})

	t.Run("rejects a gap naming the offending cell", func(t *testing.T) {
		_, err := model.ParseLapTable([]string{"0:30", "", "1:45"})
		var cellErr *model.CellError
		if !errors.As(err, &cellErr) {
			t.Fatalf("expected a cell error, got %v", err)
		}
		if cellErr.Cell != 3 {
			t.Errorf("gap error names cell %d, expected 3", cellErr.Cell)
		}
	})

	t.Run("rejects a non-increasing cell", func(t *testing.T) {
		_, err := model.ParseLapTable([]string{"1:00", "0:45"})
		var cellErr *model.CellError
		if !errors.As(err, &cellErr) {
			t.Fatalf("expected a cell error, got %v", err)
		}
		if cellErr.Cell != 2 {
			t.Errorf("ordering error names cell %d, expected 2", cellErr.Cell)
		}
	})

	t.Run("rejects an unparseable cell", func(t *testing.T) {
		_, err := model.ParseLapTable([]string{"0:30", "a minute-ish"})
		var cellErr *model.CellError
		if !errors.As(err, &cellErr) {
			t.Fatalf("expected a cell error, got %v", err)
		}
		if cellErr.Cell != 2 {
			t.Errorf("parse error names cell %d, expected 2", cellErr.Cell)
		}
	})
}
