package eventmodels

import "strings"

type StockSymbol string

func NewStockSymbol(symbol string) StockSymbol {
	return StockSymbol(strings.ToUpper(symbol))
}

func (s StockSymbol) String() string {
	return string(s)
}
