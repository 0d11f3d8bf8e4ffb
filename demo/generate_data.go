//go:build ignore

// Emits a demo catalog export in CSV form, suitable for the importer:
//
//	go run demo/generate_data.go > demo/documents.csv
package main

import (
	"encoding/csv"
	"fmt"
	"os"
)

type doc struct {
	name           string
	parentPath     string
	size           int64
	modTime        int64
	dupKey         string
	classification string
	permissionSet  string
}

func main() {
	docs := []doc{
		// reports
		{name: "annual_report_2024.pdf", parentPath: "reports/2024", size: 2457600, modTime: 1706695200, classification: "Internal", permissionSet: "finance"},
		{name: "quarterly_q1.pdf", parentPath: "reports/2024", size: 1048576, modTime: 1680307200, classification: "Internal", permissionSet: "finance"},
		{name: "quarterly_q2.pdf", parentPath: "reports/2024", size: 1153434, modTime: 1688169600, classification: "Internal", permissionSet: "finance"},
		{name: "quarterly_q3.pdf", parentPath: "reports/2024", size: 1258291, modTime: 1696118400, classification: "Internal", permissionSet: "finance"},
		{name: "quarterly_q4.pdf", parentPath: "reports/2024", size: 1363148, modTime: 1704067200, classification: "Internal", permissionSet: "finance"},
		{name: "sales_summary.xlsx", parentPath: "reports/2024", size: 524288, modTime: 1706695200, classification: "Confidential", permissionSet: "finance"},
		{name: "budget_forecast.xlsx", parentPath: "reports/2025", size: 786432, modTime: 1706695200, classification: "Confidential", permissionSet: "finance"},
		{name: "january_report.pdf", parentPath: "reports/2025", size: 943718, modTime: 1706695200, classification: "Internal", permissionSet: "finance"},

		// contracts
		{name: "supplier_agreement.docx", parentPath: "contracts", size: 348160, modTime: 1698796800, classification: "Confidential", permissionSet: "legal"},
		{name: "nda_template.docx", parentPath: "contracts", size: 92160, modTime: 1672531200, classification: "Public", permissionSet: "legal"},
		{name: "lease_2023.pdf", parentPath: "contracts", size: 1572864, modTime: 1640995200, classification: "Confidential", permissionSet: "legal"},

		// invoices
		{name: "inv_0001.pdf", parentPath: "invoices/clients", size: 204800, modTime: 1706000000, classification: "Internal", permissionSet: "accounting"},
		{name: "inv_0002.pdf", parentPath: "invoices/clients", size: 215040, modTime: 1706100000, classification: "Internal", permissionSet: "accounting"},
		{name: "inv_0003.pdf", parentPath: "invoices/clients", size: 198656, modTime: 1706200000, classification: "Internal", permissionSet: "accounting"},
		{name: "acme_invoice.pdf", parentPath: "invoices/suppliers", size: 312320, modTime: 1705000000, classification: "Internal", permissionSet: "accounting"},

		// presentations, including duplicates of the same deck
		{name: "company_overview.pptx", parentPath: "presentations", size: 15728640, modTime: 1689000000, dupKey: "d41d8cd98f", classification: "Public", permissionSet: "everyone"},
		{name: "company_overview_final.pptx", parentPath: "presentations/archive", size: 15728640, modTime: 1689100000, dupKey: "d41d8cd98f", classification: "Public", permissionSet: "everyone"},
		{name: "company_overview_v2.pptx", parentPath: "presentations/archive", size: 15728640, modTime: 1689200000, dupKey: "d41d8cd98f", classification: "Public", permissionSet: "everyone"},

		// media
		{name: "office_tour.mp4", parentPath: "media/video", size: 524288000, modTime: 1656633600, classification: "Public", permissionSet: "everyone"},
		{name: "logo.png", parentPath: "media/images", size: 81920, modTime: 1609459200, classification: "Public", permissionSet: "everyone"},
		{name: "team_photo.jpg", parentPath: "media/images", size: 4194304, modTime: 1622505600, classification: "Internal", permissionSet: "everyone"},

		// loose file with no folder
		{name: "readme.txt", parentPath: "", size: 2048, modTime: 1706695200, classification: "Public", permissionSet: "everyone"},
	}

	w := csv.NewWriter(os.Stdout)
	w.Write([]string{"name", "parent_path", "size", "modify_time", "dup_key", "classification", "permission_set"})

	for _, d := range docs {
		w.Write([]string{
			d.name,
			d.parentPath,
			fmt.Sprintf("%d", d.size),
			fmt.Sprintf("%d", d.modTime),
			d.dupKey,
			d.classification,
			d.permissionSet,
		})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		fmt.Fprintf(os.Stderr, "write error: %v\n", err)
		os.Exit(1)
	}
}
