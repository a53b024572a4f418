package booking

import (
	"strconv"
	"strings"

	"passgate-backend/internal/domain/models"
	"passgate-backend/internal/utils"
)

// Column order is a stable contract: exported spreadsheets must keep
// the same headers across exports so operators can diff them.
var exportColumns = []string{
	"Booking ID",
	"Buyer Name",
	"Phone",
	"Pass Type",
	"Amount",
	"Payment Mode",
	"Payment Status",
	"Total People",
	"People Entered",
	"Checked In",
	"Date",
	"Time",
}

const passTypeJoin = " + "

// ExportHeader returns the spreadsheet header row (a fresh copy).
func ExportHeader() []string {
	out := make([]string, len(exportColumns))
	copy(out, exportColumns)
	return out
}

// ExportRows projects list into flat rows matching ExportHeader, one
// row per booking in input order. Bundled pass types are joined into a
// single cell; none are dropped. No I/O happens here; the caller
// serializes the rows.
func ExportRows(list []models.Booking) [][]string {
	rows := make([][]string, 0, len(list))
	for _, b := range list {
		rows = append(rows, exportRow(b))
	}
	return rows
}

func exportRow(b models.Booking) []string {
	checked := "No"
	if b.CheckedIn {
		checked = "Yes"
	}
	return []string{
		b.ID,
		b.BuyerName,
		b.BuyerPhone,
		joinPassTypeNames(b),
		strconv.FormatInt(ResolvedAmount(b), 10),
		b.PaymentMode,
		b.PaymentStatus,
		strconv.Itoa(b.TotalPeople),
		strconv.Itoa(b.PeopleEntered),
		checked,
		utils.FormatDate(b.CreatedAt),
		utils.FormatTime(b.CreatedAt),
	}
}

func joinPassTypeNames(b models.Booking) string {
	names := make([]string, 0, len(b.PassTypes))
	for _, ref := range b.PassTypes {
		if name := ref.Name(); name != "" {
			names = append(names, name)
		}
	}
	return strings.Join(names, passTypeJoin)
}
