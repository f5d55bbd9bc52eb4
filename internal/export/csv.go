// Package export turns order collections into downloadable files. The CSV
// layout mirrors the spreadsheet the production floor already works with,
// so the column set and labels are fixed.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"production/internal/core/application/usecases/queries"
)

// utf8BOM makes Excel detect the encoding; without it Indonesian labels
// render garbled.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

var csvHeader = []string{
	"No. Pesanan",
	"Marketplace",
	"Ekspedisi",
	"No. Resi",
	"Produk",
	"Nama Punggung",
	"Nomor Punggung",
	"Ukuran",
	"Jumlah",
	"Tanggal Order",
	"Jenis",
	"Status",
	"Tanggal Retur",
}

// WriteOrdersCSV writes the order collection as a CSV document, one row per
// order, preceded by a UTF-8 BOM and the header row.
func WriteOrdersCSV(w io.Writer, orders []queries.OrderResponse) error {
	if _, err := w.Write(utf8BOM); err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, o := range orders {
		record := []string{
			o.ExternalID,
			o.Marketplace,
			o.Expedition,
			o.TrackingNumber,
			o.ProductName,
			o.BackName,
			o.BackNumber,
			o.Size,
			strconv.Itoa(o.Quantity),
			o.OrderDate,
			o.TypeLabel,
			o.StatusLabel,
			o.ReturnDate,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
