package gldtax

import (
	"encoding/csv"
	"fmt"
	"io"
)

// ProceedRecord is one day of the trust's published data: the ounces of gold
// backing a single share, and, on days the trust sold bullion to cover its
// expenses, the ounces sold and the dollars realized, both per share.
type ProceedRecord struct {
	Date           Date
	GoldOunces     Quantity // ounces backing one share that day
	GoldOuncesSold Quantity // ounces sold fund-wide that day, per share
	Proceeds       Money    // dollars per share realized by that sale
}

// Validate checks the per-field rules of a single record.
func (r ProceedRecord) Validate() error {
	if r.Date.IsZero() {
		return dataErrorf("proceeds record has no date")
	}
	if !r.GoldOunces.IsPositive() {
		return dataErrorf("proceeds record on %s: gold ounces %s must be strictly positive", r.Date, r.GoldOunces)
	}
	if r.GoldOuncesSold.IsNegative() {
		return dataErrorf("proceeds record on %s: gold ounces sold %s must not be negative", r.Date, r.GoldOuncesSold)
	}
	if r.Proceeds.IsNegative() {
		return dataErrorf("proceeds record on %s: proceeds %s must not be negative", r.Date, r.Proceeds)
	}
	return nil
}

// ProceedsLedger is the validated daily series of ProceedRecords. Dates form
// a contiguous sequence with no gaps, so looking a record up by date is a
// constant-time offset from the first record.
type ProceedsLedger struct {
	records []ProceedRecord
}

// NewProceedsLedger validates the given records and returns the ledger, or a
// DataError on the first rule violation. Successive dates must be exactly
// one calendar day apart.
func NewProceedsLedger(records []ProceedRecord) (*ProceedsLedger, error) {
	for i, r := range records {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("proceeds record %d: %w", i+1, err)
		}
		if i > 0 {
			if want := records[i-1].Date.Add(1); r.Date != want {
				return nil, dataErrorf("proceeds record %d on %s breaks the daily sequence, want %s", i+1, r.Date, want)
			}
		}
	}
	return &ProceedsLedger{records: records}, nil
}

// DecodeProceeds reads proceeds rows in the form
// "date,gold_ounces[,gold_ounces_sold,proceeds]" and returns the validated
// ledger. The two sale fields default to zero when absent. Blank lines are
// ignored.
func DecodeProceeds(r io.Reader) (*ProceedsLedger, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	var records []ProceedRecord
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("proceeds file: %w", dataErrorf("%v", err))
		}
		line, _ := cr.FieldPos(0)
		if len(rec) != 2 && len(rec) != 4 {
			return nil, fmt.Errorf("proceeds line %d: %w", line, dataErrorf("want 2 fields (date,gold_ounces) or 4 (date,gold_ounces,gold_ounces_sold,proceeds), got %d", len(rec)))
		}
		on, err := ParseDate(rec[0])
		if err != nil {
			return nil, fmt.Errorf("proceeds line %d: %w", line, dataErrorf("%v", err))
		}
		ounces, err := ParseQuantity(rec[1])
		if err != nil {
			return nil, fmt.Errorf("proceeds line %d: %w", line, dataErrorf("%v", err))
		}
		record := ProceedRecord{Date: on, GoldOunces: ounces, Proceeds: M(0)}
		if len(rec) == 4 {
			if record.GoldOuncesSold, err = ParseQuantity(rec[2]); err != nil {
				return nil, fmt.Errorf("proceeds line %d: %w", line, dataErrorf("%v", err))
			}
			if record.Proceeds, err = ParseMoney(rec[3]); err != nil {
				return nil, fmt.Errorf("proceeds line %d: %w", line, dataErrorf("%v", err))
			}
		}
		records = append(records, record)
	}
	return NewProceedsLedger(records)
}

// Len returns the number of records in the ledger.
func (l *ProceedsLedger) Len() int { return len(l.records) }

// Start returns the first covered date, or the zero Date when empty.
func (l *ProceedsLedger) Start() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[0].Date
}

// End returns the last covered date, or the zero Date when empty.
func (l *ProceedsLedger) End() Date {
	if len(l.records) == 0 {
		return Date{}
	}
	return l.records[len(l.records)-1].Date
}

// Record returns the record for the given date, with false when the date
// falls outside the covered range.
func (l *ProceedsLedger) Record(on Date) (ProceedRecord, bool) {
	if len(l.records) == 0 {
		return ProceedRecord{}, false
	}
	i := on.Sub(l.Start())
	if i < 0 || i >= len(l.records) {
		return ProceedRecord{}, false
	}
	return l.records[i], true
}

// Between returns the records from 'from' through 'to' inclusive, clipped to
// the covered range. The slice shares the ledger's backing array and must be
// treated as read-only.
func (l *ProceedsLedger) Between(from, to Date) []ProceedRecord {
	if len(l.records) == 0 {
		return nil
	}
	i := from.Sub(l.Start())
	j := to.Sub(l.Start())
	if i < 0 {
		i = 0
	}
	if j > len(l.records)-1 {
		j = len(l.records) - 1
	}
	if i > j {
		return nil
	}
	return l.records[i : j+1]
}
