package aiservice

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"

	"github.com/skynet2/whatsapp-finance-worker/pkg/common"
	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
	"02-01-2006",
}

var (
	thousandsDots   = regexp.MustCompile(`^\d{1,3}(\.\d{3})+(,\d+)?$`)
	thousandsCommas = regexp.MustCompile(`^\d{1,3}(,\d{3})+(\.\d+)?$`)
	decimalComma    = regexp.MustCompile(`^\d+,\d{1,2}$`)
	plainNumber     = regexp.MustCompile(`^\d+(\.\d+)?$`)
	amountSuffix    = regexp.MustCompile(`^(.+?)\s*(rb|ribu|k|jt|juta)$`)
)

var suffixMultipliers = map[string]decimal.Decimal{
	"rb":   decimal.NewFromInt(1_000),
	"ribu": decimal.NewFromInt(1_000),
	"k":    decimal.NewFromInt(1_000),
	"jt":   decimal.NewFromInt(1_000_000),
	"juta": decimal.NewFromInt(1_000_000),
}

func parseExtraction(res extractionResponse, loc *time.Location) (*database.Extraction, error) {
	out := &database.Extraction{
		Message: strings.TrimSpace(res.Message),
	}

	data := bytes.TrimSpace(res.Data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return out, nil
	}

	var raws []rawRecord

	switch data[0] {
	case '[':
		if err := json.Unmarshal(data, &raws); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid extraction list"), common.ErrBadRequest)
		}
	case '{':
		var single rawRecord
		if err := json.Unmarshal(data, &single); err != nil {
			return nil, errors.Mark(errors.Wrap(err, "invalid extraction object"), common.ErrBadRequest)
		}

		raws = append(raws, single)
	default:
		return nil, errors.Mark(errors.Newf("unexpected extraction payload %v", spew.Sdump(string(data))),
			common.ErrBadRequest)
	}

	for _, raw := range raws {
		out.Records = append(out.Records, raw.toRecord(loc))
	}

	return out, nil
}

func (r rawRecord) toRecord(loc *time.Location) database.TransactionRecord {
	txType := r.Type
	if txType == "" {
		txType = r.TransactionType
	}

	rec := database.TransactionRecord{
		Date:        parseDate(r.Date, loc),
		Type:        database.ParseTransactionType(txType),
		Category:    strings.TrimSpace(r.Category),
		Amount:      ParseAmount(r.Amount),
		Description: strings.TrimSpace(r.Description),
	}

	if r.Merchant != nil {
		rec.Merchant = strings.TrimSpace(*r.Merchant)
	}

	return rec
}

func parseDate(raw string, loc *time.Location) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}

	for _, layout := range dateLayouts {
		if parsed, err := time.ParseInLocation(layout, raw, loc); err == nil {
			return parsed
		}
	}

	return time.Time{}
}

// ParseAmount accepts JSON numbers, numeric strings and rupiah-formatted strings like "Rp20.000,50" or "20rb".
// Anything unreadable is zero.
func ParseAmount(raw json.RawMessage) decimal.Decimal {
	value := strings.TrimSpace(string(raw))
	if value == "" || value == "null" {
		return decimal.Zero
	}

	if !strings.HasPrefix(value, `"`) {
		parsed, err := decimal.NewFromString(value)
		if err != nil {
			return decimal.Zero
		}

		return parsed.Abs()
	}

	var str string
	if err := json.Unmarshal(raw, &str); err != nil {
		return decimal.Zero
	}

	str = strings.ToLower(strings.TrimSpace(str))
	str = strings.TrimSpace(strings.TrimPrefix(str, "rp"))
	str = strings.TrimSpace(strings.TrimPrefix(str, "."))
	str = strings.TrimPrefix(str, "-")

	multiplier := decimal.NewFromInt(1)
	if match := amountSuffix.FindStringSubmatch(str); match != nil {
		str = match[1]
		multiplier = suffixMultipliers[match[2]]
	}

	parsed, ok := parseNumber(str)
	if !ok {
		return decimal.Zero
	}

	return parsed.Mul(multiplier).Abs()
}

// parseNumber reads id-ID ("1.250.000,50", "20000,5") and en-US ("1,250,000.50") notations.
func parseNumber(str string) (decimal.Decimal, bool) {
	switch {
	case thousandsDots.MatchString(str):
		str = strings.ReplaceAll(str, ".", "")
		str = strings.ReplaceAll(str, ",", ".")
	case decimalComma.MatchString(str):
		str = strings.ReplaceAll(str, ",", ".")
	case thousandsCommas.MatchString(str):
		str = strings.ReplaceAll(str, ",", "")
	case plainNumber.MatchString(str):
	default:
		return decimal.Zero, false
	}

	parsed, err := decimal.NewFromString(str)
	if err != nil {
		return decimal.Zero, false
	}

	return parsed, true
}
