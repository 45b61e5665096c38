package api

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rustyeddy/tradebook/calc"
	"github.com/rustyeddy/tradebook/config"
	"github.com/rustyeddy/tradebook/journal"
)

var errNoTrades = errors.New("no trades match the filter")

// calcRequest mirrors the calculation panel's form fields. Optional
// numbers arrive as JSON nulls or are omitted entirely; either way
// they stay nil through to the calculator.
type calcRequest struct {
	Side               string   `json:"side"`
	Contracts          float64  `json:"contracts"`
	Entry              *float64 `json:"entry"`
	Exit               *float64 `json:"exit"`
	StopLoss           *float64 `json:"stopLoss"`
	ProfitTarget       *float64 `json:"profitTarget"`
	AccountEquity      *float64 `json:"accountEquity"`
	HighestInTrade     *float64 `json:"highestInTrade"`
	LowestInTrade      *float64 `json:"lowestInTrade"`
	FeesPerContract    *float64 `json:"feesPerContract"`
	InstrumentSymbol   string   `json:"instrumentSymbol"`
	TickSize           *float64 `json:"tickSize"`
	TickValue          *float64 `json:"tickValue"`
	ContractMultiplier *float64 `json:"contractMultiplier"`
}

func (r calcRequest) toInputs(cfg *config.Config) (calc.Inputs, error) {
	side := calc.Side(r.Side)
	if side != calc.Long && side != calc.Short {
		return calc.Inputs{}, fmt.Errorf("side must be LONG or SHORT, got %q", r.Side)
	}
	if r.Entry == nil {
		return calc.Inputs{}, errors.New("entry price is required")
	}

	fees := cfg.Trading.FeesPerContract
	if r.FeesPerContract != nil {
		fees = *r.FeesPerContract
	}

	symbol := r.InstrumentSymbol
	if symbol == "" {
		symbol = cfg.Trading.Instrument
	}

	equity := r.AccountEquity
	if equity == nil && cfg.Trading.AccountEquity > 0 {
		e := cfg.Trading.AccountEquity
		equity = &e
	}

	return calc.Inputs{
		Side:               side,
		Contracts:          r.Contracts,
		Entry:              *r.Entry,
		Exit:               r.Exit,
		StopLoss:           r.StopLoss,
		ProfitTarget:       r.ProfitTarget,
		AccountEquity:      equity,
		HighestInTrade:     r.HighestInTrade,
		LowestInTrade:      r.LowestInTrade,
		FeesPerContract:    fees,
		InstrumentSymbol:   symbol,
		TickSize:           r.TickSize,
		TickValue:          r.TickValue,
		ContractMultiplier: r.ContractMultiplier,
	}, nil
}

// newTradeRequest is the journal form's "save as trade" payload.
// Prices stay display strings per the journal's convention.
type newTradeRequest struct {
	Date        string   `json:"date"`
	SetupType   string   `json:"setupType"`
	Side        string   `json:"side"`
	Entry       string   `json:"entry"`
	StopLoss    string   `json:"stopLoss"`
	TakeProfit1 string   `json:"takeProfit1"`
	TakeProfit2 string   `json:"takeProfit2"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
}

func (r newTradeRequest) validate() error {
	if r.Date == "" {
		return errors.New("date is required")
	}
	if r.SetupType == "" {
		return errors.New("setupType is required")
	}
	if r.Side != string(calc.Long) && r.Side != string(calc.Short) {
		return fmt.Errorf("side must be LONG or SHORT, got %q", r.Side)
	}
	if r.Entry == "" {
		return errors.New("entry is required")
	}
	return nil
}

func (r newTradeRequest) toTrade(id string, now time.Time) journal.Trade {
	tags := r.Tags
	if tags == nil {
		tags = []string{}
	}
	return journal.Trade{
		ID:          id,
		Date:        r.Date,
		SetupType:   r.SetupType,
		Side:        r.Side,
		Entry:       r.Entry,
		StopLoss:    r.StopLoss,
		TakeProfit1: r.TakeProfit1,
		TakeProfit2: r.TakeProfit2,
		Outcome:     journal.Pending,
		RRRatio:     0,
		Tags:        tags,
		Notes:       r.Notes,
		CreatedAt:   now.UTC().Format(time.RFC3339),
	}
}

func validateUpdate(upd journal.Update) error {
	if upd.Outcome == nil && upd.RRRatio == nil && upd.Notes == nil {
		return errors.New("update must set at least one of outcome, rrRatio, notes")
	}
	if upd.Outcome != nil {
		switch *upd.Outcome {
		case journal.Win, journal.Loss, journal.Breakeven, journal.Pending:
		default:
			return fmt.Errorf("invalid outcome %q", *upd.Outcome)
		}
	}
	return nil
}

// filtersFromQuery reads the filter params the history view sends:
// ?setupType=...&outcome=...&tags=a,b&dateFrom=...&dateTo=...
func filtersFromQuery(c *gin.Context) journal.Filters {
	f := journal.Filters{
		SetupType: c.Query("setupType"),
		Outcome:   c.Query("outcome"),
		DateFrom:  c.Query("dateFrom"),
		DateTo:    c.Query("dateTo"),
	}
	if tags := c.Query("tags"); tags != "" {
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				f.Tags = append(f.Tags, t)
			}
		}
	}
	return f
}
