package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/OpenRCT2/OpenRCT2-sub002/design"
	"github.com/google/uuid"
)

var dbPath string
var designID string
var mode string

func main() {
	flag.StringVar(&dbPath, "db-path", "./designs.db", "path to database")
	flag.StringVar(&designID, "design", "", "design ID to use")
	flag.StringVar(&mode, "mode", "", "read, write, or list")
	flag.Parse()

	if mode != "read" && mode != "write" && mode != "list" {
		log.Fatal("mode must be read, write, or list")
	}

	err := main2(os.Stdin, os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// main2 runs mode against the database at dbPath. Designs are read from in
// and written to out as JSON.
func main2(in io.Reader, out io.Writer) error {
	store, err := design.OpenStore(dbPath)
	if err != nil {
		return err
	}
	defer store.Close()
	switch mode {
	case "read":
		id, err := uuid.Parse(designID)
		if err != nil {
			return fmt.Errorf("design %s: %w", designID, err)
		}
		d, err := store.Get(id)
		if err != nil {
			return err
		}
		log.Printf("found %s", id)
		return json.NewEncoder(out).Encode(d)
	case "write":
		var d design.Design
		err = json.NewDecoder(in).Decode(&d)
		if err != nil {
			return fmt.Errorf("unmarshalling failed: %w", err)
		}
		if designID != "" {
			d.ID, err = uuid.Parse(designID)
			if err != nil {
				return fmt.Errorf("design %s: %w", designID, err)
			}
		}
		if d.ID == (uuid.UUID{}) {
			d.ID = uuid.New()
		}
		_, err = store.Get(d.ID)
		replaced := err == nil
		err = store.Put(&d)
		if err != nil {
			return err
		}
		if replaced {
			log.Printf("replaced %s", d.ID)
		} else {
			log.Printf("saved new design %s", d.ID)
		}
		return nil
	case "list":
		designs, err := store.List()
		if err != nil {
			return err
		}
		for _, d := range designs {
			fmt.Fprintf(out, "%s\t%s\t%d pieces\n", d.ID, d.Name, len(d.Pieces))
		}
		return nil
	default:
		return fmt.Errorf("unknown mode %q", mode)
	}
}
