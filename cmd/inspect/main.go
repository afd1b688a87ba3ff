package main

import (
	"aptiq-relay/repositories"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

// Config of the inspector. The ledger cannot be opened while the relay is running.
type Config struct {
	BadgerFilepath string `envconfig:"BADGER_FILEPATH"`
	Colours        bool   `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		log.Fatal("config error: ", err)
	}
	dbPath := flag.String("db", config.BadgerFilepath, "Path to the relay badger DB")
	flag.Parse()

	if *dbPath == "" {
		log.Fatal("no ledger path: set BADGER_FILEPATH or -db")
	}

	db, err := badger.Open(badger.DefaultOptions(*dbPath).WithReadOnly(true).WithLogger(nil))
	if err != nil {
		log.Fatal("Error while opening Badger: ", err)
	}
	defer db.Close()

	threads, err := repositories.NewThreadRepository(db).List()
	if err != nil {
		log.Fatal(err)
	}

	header := fmt.Sprintf(" %d conversation threads in %s ", len(threads), *dbPath)
	if config.Colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Println(header)

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Thread ID", "Name", "Channel", "Requested By", "Created", "Follow-ups"})
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	for _, t := range threads {
		table.Append([]string{
			t.ID,
			t.Name,
			t.ParentChannelID,
			t.RequestedBy,
			t.CreatedAt.Format("2006-01-02 15:04:05"),
			strconv.Itoa(t.FollowUps),
		})
	}
	table.Render()
}
