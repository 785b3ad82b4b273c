package models

import (
	"encoding/json"
	"time"
)

// DateLayout is the wire format for trading-day dates.
const DateLayout = "2006-01-02"

// PricePoint is one daily close for a symbol. Immutable once fetched.
type PricePoint struct {
	Date  time.Time
	Close float64
}

type pricePointJSON struct {
	Date  string  `json:"date"`
	Close float64 `json:"close"`
}

func (p PricePoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(pricePointJSON{Date: p.Date.Format(DateLayout), Close: p.Close})
}

func (p *PricePoint) UnmarshalJSON(b []byte) error {
	var raw pricePointJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	t, err := time.Parse(DateLayout, raw.Date)
	if err != nil {
		return err
	}
	p.Date = t
	p.Close = raw.Close
	return nil
}

// PriceSeries is an ordered (ascending by date) sequence of close prices
// for one symbol over one window.
type PriceSeries []PricePoint

// Closes returns the close prices in series order.
func (s PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s))
	for i, p := range s {
		closes[i] = p.Close
	}
	return closes
}

// First returns the earliest point. Callers must check len > 0.
func (s PriceSeries) First() PricePoint { return s[0] }

// Last returns the most recent point. Callers must check len > 0.
func (s PriceSeries) Last() PricePoint { return s[len(s)-1] }

// Tail returns the last n points, or the whole series when it is shorter.
func (s PriceSeries) Tail(n int) PriceSeries {
	if n <= 0 {
		return PriceSeries{}
	}
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
