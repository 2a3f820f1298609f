package gldtax

import "sort"

// TermTotals accumulates proceeds and cost on one side of the short/long
// split of a tax year. The two sums stay independent, they are never netted.
type TermTotals struct {
	Proceeds Money
	Cost     Money
}

// Net returns proceeds minus cost, the bucket's overall gain or loss.
func (t TermTotals) Net() Money { return t.Proceeds.Sub(t.Cost) }

// YearTotals splits one tax year into its short and long term buckets.
type YearTotals struct {
	Short TermTotals
	Long  TermTotals
}

// TaxYears maps each tax year to its totals. Years appear only once a
// capital change lands in them; absent years read as all-zero.
type TaxYears struct {
	years map[int]*YearTotals
}

// AggregateYears buckets every capital change by the calendar year of its
// sell date and by term, summing proceeds and cost per bucket.
func AggregateYears(changes []CapitalChange) *TaxYears {
	t := &TaxYears{years: make(map[int]*YearTotals)}
	for _, c := range changes {
		bucket := &t.year(c.SellDate.Year()).Long
		if c.ShortTerm() {
			bucket = &t.year(c.SellDate.Year()).Short
		}
		bucket.Proceeds = bucket.Proceeds.Add(c.SellPrice)
		bucket.Cost = bucket.Cost.Add(c.BuyPrice)
	}
	return t
}

// year returns the totals for y, inserting a zeroed bucket on first access.
func (t *TaxYears) year(y int) *YearTotals {
	b, ok := t.years[y]
	if !ok {
		b = &YearTotals{}
		t.years[y] = b
	}
	return b
}

// Years returns every year holding at least one capital change, ascending.
func (t *TaxYears) Years() []int {
	years := make([]int, 0, len(t.years))
	for y := range t.years {
		years = append(years, y)
	}
	sort.Ints(years)
	return years
}

// Totals returns the totals for the given year, all-zero when the year holds
// no capital change.
func (t *TaxYears) Totals(year int) YearTotals {
	if b, ok := t.years[year]; ok {
		return *b
	}
	return YearTotals{}
}
