package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/dustin/go-humanize"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
}

// Local shapes of the stored JSON records; the viewer is read-only and only
// cares about a few display fields.
type userRow struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Subscriptions []string `json:"subscriptions"`
	LastNoteID    *string  `json:"last_note_id"`
	CreatedAt     int64    `json:"created_at"`
}

type noteRow struct {
	ID         string  `json:"id"`
	OwnerID    string  `json:"owner_id"`
	Title      string  `json:"title"`
	CreatedAt  int64   `json:"created_at"`
	AnalysisID *string `json:"analysis_id"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in read-only mode.
	// BypassLockGuard allows peeking while the server holds the lock.
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.WARNING)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := renderUsers(db); err != nil {
		log.Fatalf("Failed to list users: %v", err)
	}
	if err := renderNotes(db); err != nil {
		log.Fatalf("Failed to list notes: %v", err)
	}
}

func renderUsers(db *badger.DB) error {
	color.Cyan.Println("\nUsers")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Username", "Subscriptions", "Last Note", "Created"})

	err := forEachValue(db, "user:id:", func(val []byte) error {
		var row userRow
		if err := json.Unmarshal(val, &row); err != nil {
			return err
		}
		lastNote := "-"
		if row.LastNoteID != nil {
			lastNote = *row.LastNoteID
		}
		table.Append([]string{
			row.ID,
			row.Username,
			fmt.Sprintf("%d", len(row.Subscriptions)),
			lastNote,
			humanize.Time(time.Unix(0, row.CreatedAt)),
		})
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	return nil
}

func renderNotes(db *badger.DB) error {
	color.Cyan.Println("\nNotes")

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"ID", "Owner", "Title", "Analyzed", "Created"})

	err := forEachValue(db, "note:id:", func(val []byte) error {
		var row noteRow
		if err := json.Unmarshal(val, &row); err != nil {
			return err
		}
		analyzed := "no"
		if row.AnalysisID != nil {
			analyzed = "yes"
		}
		table.Append([]string{
			row.ID,
			row.OwnerID,
			row.Title,
			analyzed,
			humanize.Time(time.Unix(0, row.CreatedAt)),
		})
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	return nil
}

func forEachValue(db *badger.DB, prefix string, fn func(val []byte) error) error {
	return db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			if err := it.Item().Value(fn); err != nil {
				return err
			}
		}
		return nil
	})
}
