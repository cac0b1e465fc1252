package http

import (
	"net/http"

	"finman/internal/core"
	"finman/internal/log"
	"finman/internal/report"
	"finman/internal/services"
)

type transactionJSON struct {
	Date        string `json:"date"`
	Amount      string `json:"amount"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func toTransactionJSON(t core.Transaction) transactionJSON {
	return transactionJSON{
		Date:        t.Date.String(),
		Amount:      core.FormatAmount(t.Amount),
		Category:    string(t.Category),
		Description: t.Description,
	}
}

type insightJSON struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type summaryJSON struct {
	TotalIncome  string            `json:"total_income"`
	TotalExpense string            `json:"total_expense"`
	NetSavings   string            `json:"net_savings"`
	SavingsRate  string            `json:"savings_rate"`
	ByCategory   map[string]string `json:"by_category"`
	Insights     []insightJSON     `json:"insights"`
}

func toSummaryJSON(res *services.AggregateResult) *summaryJSON {
	if res == nil {
		return nil
	}
	out := &summaryJSON{
		TotalIncome:  core.FormatAmount(res.TotalIncome),
		TotalExpense: core.FormatAmount(res.TotalExpense),
		NetSavings:   core.FormatAmount(res.NetSavings),
		SavingsRate:  res.SavingsRate.StringFixed(4),
		ByCategory:   make(map[string]string, len(res.ByCategory)),
		Insights:     make([]insightJSON, 0, len(res.Insights)),
	}
	for _, c := range res.Breakdown() {
		out.ByCategory[string(c.Category)] = core.FormatAmount(c.Amount)
	}
	for _, in := range res.Insights {
		out.Insights = append(out.Insights, insightJSON{Kind: string(in.Kind), Message: in.Message})
	}
	return out
}

type dailyJSON struct {
	Date    string `json:"date"`
	Income  string `json:"income"`
	Expense string `json:"expense"`
}

type reportJSON struct {
	Title        string            `json:"title,omitempty"`
	Start        string            `json:"start"`
	End          string            `json:"end"`
	Transactions []transactionJSON `json:"transactions"`
	Summary      *summaryJSON      `json:"summary"`
	Daily        []dailyJSON       `json:"daily,omitempty"`
}

func toReportJSON(r services.Report, withSeries bool) reportJSON {
	out := reportJSON{
		Start:        r.Period.Start.String(),
		End:          r.Period.End.String(),
		Transactions: make([]transactionJSON, 0, len(r.Transactions)),
		Summary:      toSummaryJSON(r.Result),
	}
	if r.Period.Label != "" {
		out.Title = r.Period.Title()
	}
	for _, t := range r.Transactions {
		out.Transactions = append(out.Transactions, toTransactionJSON(t))
	}
	if withSeries {
		for _, d := range report.DailySeries(r.Transactions) {
			out.Daily = append(out.Daily, dailyJSON{
				Date:    d.Date.String(),
				Income:  core.FormatAmount(d.Income),
				Expense: core.FormatAmount(d.Expense),
			})
		}
	}
	return out
}

type goalJSON struct {
	Name            string `json:"name"`
	ProgressPercent string `json:"progress_percent"`
	CurrentAmount   string `json:"current_amount"`
	TargetAmount    string `json:"target_amount"`
	TargetDate      string `json:"target_date"`
}

func toGoalJSON(g services.GoalProgress) goalJSON {
	return goalJSON{
		Name:            g.Name,
		ProgressPercent: g.ProgressPercent.StringFixed(2),
		CurrentAmount:   core.FormatAmount(g.CurrentAmount),
		TargetAmount:    core.FormatAmount(g.TargetAmount),
		TargetDate:      g.TargetDate.String(),
	}
}

func (s *Server) handleTransactions(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.handleListTransactions(w, r)
	case http.MethodPost:
		s.handleCreateTransaction(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := log.FromContext(ctx)

	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		BadRequestError("malformed request body").Write(w)
		return
	}
	t, err := ParseTransaction(p)
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	s.mu.Lock()
	err = s.tx.Record(ctx, t)
	s.mu.Unlock()
	if err != nil {
		if StatusFor(err) == http.StatusInternalServerError {
			logger.Failure(ctx, "Transaction record failed", err, log.FieldOperation, log.OpRecord)
		}
		ErrorFromDomain(err).Write(w)
		return
	}

	logger.InfoContext(ctx, "Transaction recorded",
		log.FieldDate, t.Date.String(),
		log.FieldAmount, core.FormatAmount(t.Amount),
		log.FieldCategory, t.Category)
	NewJSONResponse().Status(http.StatusCreated).Payload(toTransactionJSON(t)).Write(w)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	start, end, err := ParseDateRange(r.URL.Query())
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	s.mu.Lock()
	rep, err := s.reports.Range(start, end)
	s.mu.Unlock()
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}
	NewJSONResponse().Payload(toReportJSON(rep, false)).Write(w)
}

func (s *Server) handleYearlyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	year, err := ParseYearParam(r.URL.Query())
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	s.mu.Lock()
	rep, err := s.reports.Yearly(year)
	s.mu.Unlock()
	s.writeReport(w, r, rep, err)
}

func (s *Server) handleMonthlyReport(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		MethodNotAllowedError("GET").Write(w)
		return
	}
	params, err := ParseMonthParams(r.URL.Query())
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	s.mu.Lock()
	rep, err := s.reports.Monthly(params.Year, params.Month)
	s.mu.Unlock()
	s.writeReport(w, r, rep, err)
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, rep services.Report, err error) {
	if err != nil {
		log.FromContext(r.Context()).WarnContext(r.Context(), "Report rejected",
			log.FieldOperation, log.OpReport, log.FieldError, err)
		ErrorFromDomain(err).Write(w)
		return
	}
	NewJSONResponse().Payload(toReportJSON(rep, true)).Write(w)
}

func (s *Server) handleGoals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.mu.Lock()
		goals := make([]goalJSON, 0, s.goals.Len())
		for g := range s.goals.ListGoals() {
			goals = append(goals, toGoalJSON(g))
		}
		s.mu.Unlock()
		NewJSONResponse().Payload(goals).Write(w)
	case http.MethodPost:
		s.handleCreateGoal(w, r)
	default:
		MethodNotAllowedError("GET, POST").Write(w)
	}
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	p := NewRequestBodyParser(r)
	if err := p.Parse(); err != nil {
		BadRequestError("malformed request body").Write(w)
		return
	}
	target, err := core.ParseAmount(p.Get("target_amount"))
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}
	date, err := core.ParseDate(p.Get("target_date"))
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	s.mu.Lock()
	goal, err := s.goals.AddGoal(p.Get("name"), target, date)
	s.mu.Unlock()
	if err != nil {
		ErrorFromDomain(err).Write(w)
		return
	}

	log.FromContext(r.Context()).InfoContext(r.Context(), "Goal added",
		log.FieldOperation, log.OpGoal, "name", goal.Name)
	NewJSONResponse().Status(http.StatusCreated).Payload(toGoalJSON(services.GoalProgress{
		Name:            goal.Name,
		ProgressPercent: goal.Progress(),
		CurrentAmount:   goal.CurrentAmount,
		TargetAmount:    goal.TargetAmount,
		TargetDate:      goal.TargetDate,
	})).Write(w)
}
