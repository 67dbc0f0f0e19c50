package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	apiclient "github.com/donaldgifford/dealer-appraisal/internal/api/client"
	"github.com/donaldgifford/dealer-appraisal/pkg/appraise"
	domain "github.com/donaldgifford/dealer-appraisal/pkg/types"
)

// tabWriter wraps tabwriter with error tracking.
type tabWriter struct {
	*tabwriter.Writer
	err error
}

func newTabWriter(w io.Writer) *tabWriter {
	return &tabWriter{Writer: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}
}

func (tw *tabWriter) writef(format string, args ...any) {
	if tw.err != nil {
		return
	}
	_, tw.err = fmt.Fprintf(tw.Writer, format, args...)
}

func (tw *tabWriter) finish() error {
	if tw.err != nil {
		return tw.err
	}
	return tw.Flush()
}

func printAppraisal(w io.Writer, r *appraise.Result) error {
	tw := newTabWriter(w)
	tw.writef("Decision:\t%s\n", strings.ToUpper(string(r.Decision)))
	for _, reason := range r.DecisionReasons {
		tw.writef("\t- %s\n", reason)
	}
	tw.writef("Trade-in offer:\t%s\t(%s - %s)\n",
		money(r.TradeInOffer), money(r.TradeInLow), money(r.TradeInHigh))
	tw.writef("Retail value:\t%s\n", money(r.RetailValue))
	tw.writef("Wholesale value:\t%s\n", money(r.WholesaleValue))
	tw.writef("Base value:\t%s\t(%s)\n", money(r.BaseValue), r.ValuationMethod)
	tw.writef("Reconditioning:\t%s\n", money(r.Reconditioning))
	tw.writef("Profit margin:\t%s\n", money(r.ProfitMargin))
	tw.writef("Confidence:\t%.0f%%\n", r.Confidence)

	mi := &r.MarketIntelligence
	tw.writef("Comparables:\t%d\t(%d exact, market %s)\n",
		mi.TotalComparables, mi.ExactMatches, mi.PricePosition)

	if len(r.Adjustments) > 0 {
		tw.writef("\nADJUSTMENT\tAMOUNT\n")
		for i := range r.Adjustments {
			tw.writef("%s\t%s\n", r.Adjustments[i].Label, signedMoney(r.Adjustments[i].Amount))
		}
	}

	if len(r.TopComparables) > 0 {
		tw.writef("\nSCORE\tVEHICLE\tKM\tPRICE\tADJUSTED\tDEALER\n")
		for i := range r.TopComparables {
			c := &r.TopComparables[i]
			tw.writef("%d\t%s\t%d\t%s\t%s\t%s\n",
				c.MatchScore,
				truncate(comparableTitle(&c.Comparable), 40),
				c.Kilometers,
				money(c.Price),
				money(c.PriceAdjusted),
				c.DealershipName,
			)
		}
	}
	return tw.finish()
}

func printVehicleTable(w io.Writer, vehicles []domain.Vehicle) error {
	tw := newTabWriter(w)
	tw.writef("ID\tVEHICLE\tKM\tPRICE\tSTATUS\tSTOCK\n")
	for i := range vehicles {
		tw.writef("%s\t%s\t%d\t%s\t%s\t%s\n",
			vehicles[i].ID,
			truncate(vehicles[i].Title(), 40),
			vehicles[i].Kilometers,
			money(vehicles[i].Price),
			vehicles[i].Status,
			vehicles[i].StockNumber,
		)
	}
	return tw.finish()
}

func printVehicleDetail(w io.Writer, v *domain.Vehicle) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", v.ID)
	tw.writef("Vehicle:\t%s\n", v.Title())
	tw.writef("VIN:\t%s\n", v.VIN)
	tw.writef("Stock:\t%s\n", v.StockNumber)
	tw.writef("Dealership:\t%s\n", v.DealershipID)
	tw.writef("Price:\t%s\n", money(v.Price))
	tw.writef("Kilometers:\t%d\n", v.Kilometers)
	tw.writef("Body:\t%s\n", v.BodyType)
	tw.writef("Transmission:\t%s\n", v.Transmission)
	tw.writef("Fuel:\t%s\n", v.FuelType)
	if v.Drivetrain != "" {
		tw.writef("Drivetrain:\t%s\n", v.Drivetrain)
	}
	tw.writef("Color:\t%s\n", v.Color)
	tw.writef("Condition:\t%s\n", v.Condition)
	tw.writef("Status:\t%s\n", v.Status)
	if len(v.Features) > 0 {
		tw.writef("Features:\t%s\n", strings.Join(v.Features, ", "))
	}
	if v.ListingLink != "" {
		tw.writef("Listing:\t%s\n", v.ListingLink)
	}
	return tw.finish()
}

func printImportResult(w io.Writer, r *apiclient.BulkResult) error {
	tw := newTabWriter(w)
	tw.writef("Created:\t%d\n", r.Created)
	tw.writef("Failed:\t%d\n", r.Failed)
	if len(r.Errors) > 0 {
		tw.writef("\nROW\tVIN\tERROR\n")
		for _, e := range r.Errors {
			tw.writef("%d\t%s\t%s\n", e.Index, e.VIN, e.Error)
		}
	}
	return tw.finish()
}

func printDealershipTable(w io.Writer, ds []domain.Dealership) error {
	tw := newTabWriter(w)
	tw.writef("ID\tNAME\tLOCATION\tPROVINCE\tPHONE\n")
	for i := range ds {
		tw.writef("%s\t%s\t%s\t%s\t%s\n",
			ds[i].ID,
			truncate(ds[i].Name, 40),
			ds[i].Location,
			ds[i].Province,
			ds[i].Phone,
		)
	}
	return tw.finish()
}

func printDealershipDetail(w io.Writer, d *domain.Dealership) error {
	tw := newTabWriter(w)
	tw.writef("ID:\t%s\n", d.ID)
	tw.writef("Name:\t%s\n", d.Name)
	tw.writef("Location:\t%s\n", d.Location)
	tw.writef("Province:\t%s\n", d.Province)
	tw.writef("Address:\t%s\n", d.Address)
	tw.writef("Postal code:\t%s\n", d.PostalCode)
	tw.writef("Phone:\t%s\n", d.Phone)
	return tw.finish()
}

func outputJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func comparableTitle(c *appraise.Comparable) string {
	s := fmt.Sprintf("%d %s %s", c.Year, c.Make, c.Model)
	if c.Trim != "" {
		s += " " + c.Trim
	}
	return s
}

// en groups thousands the way the showroom prints prices.
var en = message.NewPrinter(language.English)

func money(v float64) string {
	if v < 0 {
		return "-" + money(-v)
	}
	return en.Sprintf("$%d", int64(math.Round(v)))
}

func signedMoney(v float64) string {
	if v > 0 {
		return "+" + money(v)
	}
	return money(v)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
