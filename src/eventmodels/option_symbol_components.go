package eventmodels

import (
	"fmt"
	"strconv"
	"time"
	"unicode"
)

// OptionSymbolComponents holds the parsed pieces of an option ticker.
type OptionSymbolComponents struct {
	Underlying  string
	Expiration  time.Time
	OptionType  string
	StrikePrice float64
	Symbol      OptionSymbol
}

const unknownLabel = "UNKNOWN"

func (c *OptionSymbolComponents) IsUnknown() bool {
	return c.Underlying == unknownLabel
}

// ExpirationLabel formats the expiration date, or UNKNOWN when the symbol
// failed to parse.
func (c *OptionSymbolComponents) ExpirationLabel() string {
	if c.Expiration.IsZero() {
		return unknownLabel
	}

	return c.Expiration.Format("2006-01-02")
}

// NewOptionSymbolComponents parses <UNDERLYING><YYMMDD><C|P><8-digit strike>
// and inverts NewOptionSymbol exactly for valid inputs.
func NewOptionSymbolComponents(symbol OptionSymbol) (*OptionSymbolComponents, error) {
	ticker := symbol.NoPrefix()

	underlyingEnd := 0
	for underlyingEnd < len(ticker) && unicode.IsLetter(rune(ticker[underlyingEnd])) {
		underlyingEnd++
	}

	if underlyingEnd == 0 || len(ticker) != underlyingEnd+15 {
		return nil, fmt.Errorf("NewOptionSymbolComponents: %w: %s", ErrMalformedOptionSymbol, ticker)
	}

	underlying := ticker[:underlyingEnd]
	dateStr := ticker[underlyingEnd : underlyingEnd+6]
	optionType := string(ticker[underlyingEnd+6])
	strikeStr := ticker[underlyingEnd+7:]

	expiration, err := time.Parse("060102", dateStr)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse expiration %q: %w", dateStr, ErrMalformedOptionSymbol)
	}

	if optionType != "C" && optionType != "P" {
		return nil, fmt.Errorf("NewOptionSymbolComponents: %w: invalid option type %s", ErrMalformedOptionSymbol, optionType)
	}

	strikeThousandths, err := strconv.Atoi(strikeStr)
	if err != nil {
		return nil, fmt.Errorf("NewOptionSymbolComponents: failed to parse strike %q: %w", strikeStr, ErrMalformedOptionSymbol)
	}

	return &OptionSymbolComponents{
		Underlying:  underlying,
		Expiration:  expiration,
		OptionType:  optionType,
		StrikePrice: float64(strikeThousandths) / 1000.0,
		Symbol:      symbol,
	}, nil
}

// ParseOptionSymbol never fails: malformed input yields the UNKNOWN sentinel
// so a bad ticker degrades a notification instead of aborting a cycle.
func ParseOptionSymbol(symbol OptionSymbol) *OptionSymbolComponents {
	components, err := NewOptionSymbolComponents(symbol)
	if err != nil {
		return &OptionSymbolComponents{
			Underlying:  unknownLabel,
			OptionType:  unknownLabel,
			StrikePrice: 0,
			Symbol:      symbol,
		}
	}

	return components
}
