// exportmsg dumps stored contact messages to CSV or XLSX from the
// shell, applying the same search/window filtering as the dashboard.
//
//	go run ./cmd/exportmsg -format xlsx -filter month -out messages.xlsx
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"Portfolio/models"
	"Portfolio/pkg/config"
	"Portfolio/pkg/report"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func main() {
	format := flag.String("format", "csv", "csv or xlsx")
	search := flag.String("search", "", "search term (name, email or body)")
	filter := flag.String("filter", "all", "all, today, week or month")
	out := flag.String("out", "", "output file (default: messages-<date>.<ext>)")
	flag.Parse()

	if *format != "csv" && *format != "xlsx" {
		log.Fatalf("unknown format %q", *format)
	}
	window, ok := report.ParseWindow(*filter)
	if !ok {
		log.Fatalf("unknown filter %q", *filter)
	}

	var db *gorm.DB
	var err error
	if config.DBDriver == "mysql" {
		db, err = gorm.Open(mysql.Open(config.DBDSN), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(config.DBPath), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	var msgs []models.Message
	if err := db.Order("created_at DESC").Find(&msgs).Error; err != nil {
		log.Fatalf("failed to load messages: %v", err)
	}

	now := time.Now()
	filtered := report.Filter(msgs, *search, window, now)

	name := *out
	if name == "" {
		name = report.ExportFilename(*format, now)
	}
	f, err := os.Create(name)
	if err != nil {
		log.Fatalf("failed to create %s: %v", name, err)
	}
	defer f.Close()

	if *format == "xlsx" {
		err = report.WriteXLSX(f, filtered)
	} else {
		err = report.WriteCSV(f, filtered)
	}
	if err != nil {
		log.Fatalf("export failed: %v", err)
	}
	log.Printf("wrote %d of %d messages to %s", len(filtered), len(msgs), name)
}
