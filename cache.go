package main

import (
	"io/fs"
	"log"
	"strconv"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
)

// fileKey - cache key for a source file: the relative path plus a
// size/mtime fingerprint, so any change to the file misses the cache
func fileKey(rel string, info fs.FileInfo) []byte {
	key := "F" + rel +
		"|" + strconv.FormatInt(info.Size(), 10) +
		"|" + strconv.FormatInt(info.ModTime().UnixNano(), 10)
	return []byte(key)
}

// CacheQueueRows - queue a leveldb write in a batch
func CacheQueueRows(batch *leveldb.Batch, key []byte, rows []SummaryRow) {
	batch.Put(key, rowsToBytes(rows))
}

// CacheFlush - flush a leveldb batch to database and reset batch to 0
func CacheFlush(db *leveldb.DB, batch *leveldb.Batch, sync bool) {
	var writeOpts = &opt.WriteOptions{
		NoWriteMerge: true,
		Sync:         sync,
	}

	err := db.Write(batch, writeOpts)
	if err != nil {
		log.Fatal(err)
	}
	batch.Reset()
}

// CacheLookupRows - fetch the previously computed rows for a source file;
// misses cover both absent keys and entries that fail to decode
func CacheLookupRows(db *leveldb.DB, key []byte, source string) ([]SummaryRow, bool) {
	data, err := db.Get(key, nil)
	if err != nil {
		return nil, false
	}

	rows, err := bytesToRows(data, source)
	if err != nil {
		log.Println("[warn] discarding corrupt cache entry for:", source)
		return nil, false
	}
	return rows, true
}

func openLevelDB(path string) *leveldb.DB {
	// try to open the db
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		log.Fatal(err)
	}
	return db
}
