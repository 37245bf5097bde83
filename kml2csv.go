package main

import (
	"flag"
	"log"
	"os"

	"github.com/syndtr/goleveldb/leveldb"
)

type Settings struct {
	FolderPath  string
	OutPath     string
	LeveldbPath string
	Viewer      bool
}

func getSettings() Settings {

	// command line flags
	outPath := flag.String("out", "", "path to the output CSV file, written to stdout when empty")
	leveldbPath := flag.String("leveldb", "", "path to leveldb cache directory, caching disabled when empty")
	viewer := flag.Bool("tui", false, "browse the results in an interactive terminal viewer")

	flag.Parse()
	args := flag.Args()

	if len(args) < 1 {
		log.Fatal("invalid args, you must specify a folder of KML files")
	}

	info, err := os.Stat(args[0])
	if err != nil || !info.IsDir() {
		log.Fatal("input folder not found: ", args[0])
	}

	return Settings{args[0], *outPath, *leveldbPath, *viewer}
}

func main() {

	// configuration
	config := getSettings()

	// optional summary cache
	var db *leveldb.DB
	if config.LeveldbPath != "" {
		db = openLevelDB(config.LeveldbPath)
		defer db.Close()
	}

	rows, err := SummarizeFolder(config.FolderPath, db)
	if err != nil {
		log.Fatal(err)
	}
	if len(rows) == 0 {
		log.Println("[warn] no polygons found in KML files")
	}

	if config.OutPath != "" {
		writeCSVFile(config.OutPath, rows)
	}

	switch {
	case config.Viewer:
		if err := RunViewer(rows); err != nil {
			log.Fatal(err)
		}
	case config.OutPath == "":
		if err := WriteCSV(os.Stdout, rows); err != nil {
			log.Fatal(err)
		}
	}
}

func writeCSVFile(path string, rows []SummaryRow) {
	file, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	if err := WriteCSV(file, rows); err != nil {
		log.Fatal(err)
	}
	log.Println("wrote", len(rows), "rows to", path)
}
