package printer

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/skynet2/whatsapp-finance-worker/pkg/database"
	"github.com/skynet2/whatsapp-finance-worker/pkg/intent"
)

type Printer struct {
	location *time.Location
}

func NewPrinter(location *time.Location) *Printer {
	if location == nil {
		location = time.UTC
	}

	return &Printer{
		location: location,
	}
}

// FormatRupiah renders amounts the id-ID way: Rp20.000,00.
func FormatRupiah(amount decimal.Decimal) string {
	sign := ""
	if amount.IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}

	fixed := amount.StringFixed(2)
	whole, fraction, _ := strings.Cut(fixed, ".")

	var sb strings.Builder
	for i, r := range whole {
		if i > 0 && (len(whole)-i)%3 == 0 {
			sb.WriteByte('.')
		}
		sb.WriteRune(r)
	}

	return fmt.Sprintf("%sRp%s,%s", sign, sb.String(), fraction)
}

func (p *Printer) FormatDate(t time.Time) string {
	local := t.In(p.location)

	return fmt.Sprintf("%d %s %d", local.Day(), intent.MonthNames[local.Month()-1], local.Year())
}

func (p *Printer) shortDate(t time.Time) string {
	local := t.In(p.location)

	return fmt.Sprintf("%d/%d/%d", local.Day(), int(local.Month()), local.Year())
}

func (p *Printer) TransactionSaved(records []database.TransactionRecord, pendingRetry bool) string {
	var sb strings.Builder

	sb.WriteString("✅ Transaksi dicatat!")

	for _, rec := range records {
		sb.WriteString("\n\n")
		sb.WriteString(fmt.Sprintf("📅 Tanggal: %s", p.FormatDate(rec.Date)))
		sb.WriteString(fmt.Sprintf("\n📋 Kategori: %s", rec.Category))
		sb.WriteString(fmt.Sprintf("\n💰 Nominal: %s", FormatRupiah(rec.Amount)))
		sb.WriteString(fmt.Sprintf("\n📝 Keterangan: %s", rec.Description))

		if rec.Merchant != "" {
			sb.WriteString(fmt.Sprintf("\n🏪 Merchant: %s", rec.Merchant))
		}
	}

	if pendingRetry {
		sb.WriteString("\n\n" + MsgPersistPending)
	}

	return sb.String()
}

func (p *Printer) TransactionHistory(txs []*database.Transaction) string {
	if len(txs) == 0 {
		return MsgNoTransactions
	}

	lines := lo.Map(txs, func(tx *database.Transaction, i int) string {
		return fmt.Sprintf("%d. %s - %s\n📅 %s\n📝 %s",
			i+1, tx.Category, FormatRupiah(tx.Amount), tx.Date.In(p.location).Format(time.DateOnly), tx.Description)
	})

	return "📊 Riwayat Transaksi Bulan Ini:\n\n" + strings.Join(lines, "\n\n")
}

func (p *Printer) Report(query intent.ReportQuery, txs []*database.Transaction) string {
	switch query.Kind {
	case intent.ReportTotal:
		return p.totalReport(query.Period, txs)
	case intent.ReportLargest:
		return p.largestReport(query.Period, txs)
	case intent.ReportAll:
		return p.allReport(query.Period, txs)
	default:
		return MsgReportUnknown
	}
}

func sumOf(txs []*database.Transaction, txType database.TransactionType) decimal.Decimal {
	return lo.Reduce(txs, func(acc decimal.Decimal, tx *database.Transaction, _ int) decimal.Decimal {
		if tx.Type != txType {
			return acc
		}

		return acc.Add(tx.Amount)
	}, decimal.Zero)
}

func summary(txs []*database.Transaction) string {
	income := sumOf(txs, database.TransactionTypeIncome)
	expense := sumOf(txs, database.TransactionTypeExpense)

	return fmt.Sprintf("💰 Total Pemasukan: %s\n💸 Total Pengeluaran: %s\n💵 Saldo: %s",
		FormatRupiah(income), FormatRupiah(expense), FormatRupiah(income.Sub(expense)))
}

func (p *Printer) totalReport(period intent.Period, txs []*database.Transaction) string {
	return fmt.Sprintf("📊 Laporan Keuangan %s\n\n%s", period.Label, summary(txs))
}

func (p *Printer) largestReport(period intent.Period, txs []*database.Transaction) string {
	expenses := lo.Filter(txs, func(tx *database.Transaction, _ int) bool {
		return tx.Type == database.TransactionTypeExpense
	})

	if len(expenses) == 0 {
		return fmt.Sprintf("📊 Tidak ada pengeluaran %s.", period.Label)
	}

	largest := lo.MaxBy(expenses, func(a, b *database.Transaction) bool {
		return a.Amount.GreaterThan(b.Amount)
	})

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 Pengeluaran Terbesar %s\n\n", period.Label))
	sb.WriteString(fmt.Sprintf("💸 %s\n", largest.Description))
	sb.WriteString(fmt.Sprintf("💵 %s\n", FormatRupiah(largest.Amount)))
	sb.WriteString(fmt.Sprintf("🏷️ Kategori: %s\n", largest.Category))

	if largest.Merchant != "" {
		sb.WriteString(fmt.Sprintf("🏪 Merchant: %s\n", largest.Merchant))
	}

	sb.WriteString(fmt.Sprintf("📅 %s", p.FormatDate(largest.Date)))

	return sb.String()
}

func (p *Printer) allReport(period intent.Period, txs []*database.Transaction) string {
	if len(txs) == 0 {
		return fmt.Sprintf("📊 Tidak ada transaksi %s.", period.Label)
	}

	sorted := append([]*database.Transaction(nil), txs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	dayOf := func(tx *database.Transaction) string {
		return p.shortDate(tx.Date)
	}

	byDay := lo.GroupBy(sorted, dayOf)
	days := lo.Uniq(lo.Map(sorted, func(tx *database.Transaction, _ int) string {
		return dayOf(tx)
	}))

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("📊 Semua Transaksi %s\n\n", period.Label))

	for _, day := range days {
		sb.WriteString(fmt.Sprintf("📅 %s\n", day))

		for _, tx := range byDay[day] {
			emoji := "💸"
			if tx.Type == database.TransactionTypeIncome {
				emoji = "💰"
			}

			sb.WriteString(fmt.Sprintf("%s %s\n", emoji, tx.Description))
			sb.WriteString(fmt.Sprintf("   %s\n", FormatRupiah(tx.Amount)))

			if tx.Category != "" && tx.Category != database.DefaultCategory {
				sb.WriteString(fmt.Sprintf("   🏷️ %s\n", tx.Category))
			}
			if tx.Merchant != "" {
				sb.WriteString(fmt.Sprintf("   🏪 %s\n", tx.Merchant))
			}

			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n📈 Ringkasan:\n")
	sb.WriteString(summary(txs))

	return sb.String()
}
