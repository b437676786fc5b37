package eventmodels

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type OptionSymbol string

func (s OptionSymbol) NoPrefix() string {
	if strings.HasPrefix(string(s), "O:") {
		return string(s)[2:]
	}

	return string(s)
}

// WithPrefix returns the symbol in the "O:" ticker form expected by the
// market data feed.
func (s OptionSymbol) WithPrefix() string {
	return fmt.Sprintf("O:%s", s.NoPrefix())
}

func (s OptionSymbol) String() string {
	return string(s)
}

func (s OptionSymbol) Description() string {
	components := ParseOptionSymbol(s)

	if components.IsUnknown() {
		return fmt.Sprintf("UNKNOWN (%s)", s.NoPrefix())
	}

	optionType := "Call"
	if components.OptionType == "P" {
		optionType = "Put"
	}

	return fmt.Sprintf("%s %s $%.2f %s", components.Underlying, components.ExpirationLabel(), components.StrikePrice, optionType)
}

// NewOptionSymbol constructs the fixed-width option ticker
// <UNDERLYING><YYMMDD><C|P><8-digit strike*1000>.
func NewOptionSymbol(option OptionSymbolComponents) (OptionSymbol, error) {
	if option.OptionType != "C" && option.OptionType != "P" {
		return "", fmt.Errorf("NewOptionSymbol: %w: %s", ErrInvalidOptionType, option.OptionType)
	}

	year := option.Expiration.Year() % 100
	month := int(option.Expiration.Month())
	day := option.Expiration.Day()

	strikePrice := fmt.Sprintf("%08d", int(math.Round(option.StrikePrice*1000)))

	ticker := fmt.Sprintf("%s%02d%02d%02d%s%s",
		strings.ToUpper(option.Underlying), year, month, day, option.OptionType, strikePrice)

	return OptionSymbol(ticker), nil
}

// NextExpiry returns the contract expiration used for a run starting at now:
// two days out, pushed past the weekend when it lands on one.
func NextExpiry(now time.Time) time.Time {
	expiry := now.AddDate(0, 0, 2)

	switch expiry.Weekday() {
	case time.Saturday:
		expiry = expiry.AddDate(0, 0, 2)
	case time.Sunday:
		expiry = expiry.AddDate(0, 0, 1)
	}

	return time.Date(expiry.Year(), expiry.Month(), expiry.Day(), 0, 0, 0, 0, time.UTC)
}
