package services

import (
	"finman/internal/core"
	"finman/internal/ledger"
)

// Report bundles what the renderers need: the range, its rows and their aggregate.
type Report struct {
	Period       core.Period
	Transactions []core.Transaction
	Result       *AggregateResult
}

// Empty reports whether the period matched no transactions. Result is nil then.
func (r Report) Empty() bool {
	return len(r.Transactions) == 0
}

// ReportService resolves periods against the ledger.
type ReportService struct {
	ledger *ledger.Ledger
}

func NewReportService(l *ledger.Ledger) *ReportService {
	return &ReportService{ledger: l}
}

// Yearly builds the report for the calendar year.
func (s *ReportService) Yearly(year int) (Report, error) {
	p, err := core.ResolveYearly(year)
	if err != nil {
		return Report{}, err
	}
	return s.Build(p)
}

// Monthly builds the report for month of year.
func (s *ReportService) Monthly(year, month int) (Report, error) {
	p, err := core.ResolveMonthly(year, month)
	if err != nil {
		return Report{}, err
	}
	return s.Build(p)
}

// Range builds an unlabelled report over [start, end].
func (s *ReportService) Range(start, end core.Date) (Report, error) {
	return s.Build(core.Period{Start: start, End: end})
}

// Build queries the ledger for p and aggregates the rows. An empty range is
// not aggregated.
func (s *ReportService) Build(p core.Period) (Report, error) {
	txs, err := s.ledger.Query(p.Start, p.End)
	if err != nil {
		return Report{}, err
	}
	r := Report{Period: p, Transactions: txs}
	if !r.Empty() {
		r.Result = Aggregate(txs)
	}
	return r, nil
}
