// Package datarecording stores flat records of a run in an SQLite database.
package datarecording

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/xid"
	"github.com/tebeka/atexit"
)

// ErrInvalidEntry is returned when an entry has a field that cannot be stored
// in a column.
var ErrInvalidEntry = errors.New("entry is invalid")

// ErrFileExists is returned when a recording would overwrite a file.
var ErrFileExists = errors.New("recording file already exists")

// DataRecorder is a backend that can record and store data
type DataRecorder interface {
	// CreateTable creates a table whose columns are the fields of the sample
	// entry.
	CreateTable(tableName string, sampleEntry any) error

	// InsertData buffers an entry for a table that already exists.
	InsertData(tableName string, entry any) error

	// ListTables returns the names of all tables, sorted.
	ListTables() []string

	// Flush writes all the buffered entries into the database.
	Flush() error

	// Close flushes and closes the database.
	Close() error
}

// DefaultBatchSize is how many entries are buffered before a flush.
const DefaultBatchSize = 10000

// New creates a DataRecorder that writes to path.sqlite3. An empty path picks
// a unique name.
func New(path string) (DataRecorder, error) {
	if path == "" {
		path = "floorbot_recording_" + xid.New().String()
	}

	filename := path + ".sqlite3"

	if _, err := os.Stat(filename); err == nil {
		return nil, fmt.Errorf("%w: %s", ErrFileExists, filename)
	}

	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", filename, err)
	}

	return newWriter(db), nil
}

// NewWithDB creates a new DataRecorder with a given database.
func NewWithDB(db *sql.DB) DataRecorder {
	return newWriter(db)
}

func newWriter(db *sql.DB) *sqliteWriter {
	w := &sqliteWriter{
		DB:        db,
		batchSize: DefaultBatchSize,
		tables:    make(map[string]*table),
	}

	atexit.Register(func() { _ = w.Flush() })

	return w
}

type table struct {
	structType reflect.Type
	insertSQL  string
	entries    []any
}

type sqliteWriter struct {
	*sql.DB

	lock       sync.Mutex
	tables     map[string]*table
	batchSize  int
	entryCount int
	closed     bool
}

func isAllowedKind(kind reflect.Kind) bool {
	switch kind {
	case
		reflect.Bool,
		reflect.Int,
		reflect.Int8,
		reflect.Int16,
		reflect.Int32,
		reflect.Int64,
		reflect.Uint,
		reflect.Uint8,
		reflect.Uint16,
		reflect.Uint32,
		reflect.Uint64,
		reflect.Float32,
		reflect.Float64,
		reflect.String:
		return true
	default:
		return false
	}
}

func checkStructFields(entry any) error {
	t := reflect.TypeOf(entry)
	if t == nil || t.Kind() != reflect.Struct {
		return fmt.Errorf("%w: %v is not a struct", ErrInvalidEntry, t)
	}

	if t.NumField() == 0 {
		return fmt.Errorf("%w: %v has no fields", ErrInvalidEntry, t)
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if !field.IsExported() {
			return fmt.Errorf("%w: field %s is not exported",
				ErrInvalidEntry, field.Name)
		}

		if !isAllowedKind(field.Type.Kind()) {
			return fmt.Errorf("%w: field %s has kind %s",
				ErrInvalidEntry, field.Name, field.Type.Kind())
		}
	}

	return nil
}

func (w *sqliteWriter) CreateTable(tableName string, sampleEntry any) error {
	if err := checkStructFields(sampleEntry); err != nil {
		return err
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if _, exists := w.tables[tableName]; exists {
		return fmt.Errorf("table %s already exists", tableName)
	}

	names := structs.Names(sampleEntry)
	fields := strings.Join(names, ", \n\t")

	createTableSQL := `CREATE TABLE ` + tableName +
		` (` + "\n\t" + fields + "\n" + `);`
	if _, err := w.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating table %s: %w", tableName, err)
	}

	placeholders := make([]string, len(names))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	w.tables[tableName] = &table{
		structType: reflect.TypeOf(sampleEntry),
		insertSQL: "INSERT INTO " + tableName +
			" VALUES (" + strings.Join(placeholders, ", ") + ")",
	}

	return nil
}

func (w *sqliteWriter) InsertData(tableName string, entry any) error {
	w.lock.Lock()

	t, exists := w.tables[tableName]
	if !exists {
		w.lock.Unlock()
		return fmt.Errorf("table %s does not exist", tableName)
	}

	if reflect.TypeOf(entry) != t.structType {
		w.lock.Unlock()
		return fmt.Errorf("%w: table %s stores %s, got %T",
			ErrInvalidEntry, tableName, t.structType, entry)
	}

	t.entries = append(t.entries, entry)
	w.entryCount++
	full := w.entryCount >= w.batchSize

	w.lock.Unlock()

	if full {
		return w.Flush()
	}

	return nil
}

func (w *sqliteWriter) ListTables() []string {
	w.lock.Lock()
	defer w.lock.Unlock()

	tables := make([]string, 0, len(w.tables))
	for name := range w.tables {
		tables = append(tables, name)
	}

	sort.Strings(tables)

	return tables
}

func (w *sqliteWriter) Flush() error {
	w.lock.Lock()
	defer w.lock.Unlock()

	if w.entryCount == 0 || w.closed {
		return nil
	}

	tx, err := w.Begin()
	if err != nil {
		return fmt.Errorf("starting flush: %w", err)
	}

	for tableName, t := range w.tables {
		if err := insertAll(tx, t); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("flushing table %s: %w", tableName, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing flush: %w", err)
	}

	for _, t := range w.tables {
		t.entries = nil
	}

	w.entryCount = 0

	return nil
}

func insertAll(tx *sql.Tx, t *table) error {
	if len(t.entries) == 0 {
		return nil
	}

	stmt, err := tx.Prepare(t.insertSQL)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, entry := range t.entries {
		v := reflect.ValueOf(entry)

		values := make([]any, v.NumField())
		for i := range values {
			values[i] = v.Field(i).Interface()
		}

		if _, err := stmt.Exec(values...); err != nil {
			return err
		}
	}

	return nil
}

func (w *sqliteWriter) Close() error {
	if err := w.Flush(); err != nil {
		return err
	}

	w.lock.Lock()
	defer w.lock.Unlock()

	if w.closed {
		return nil
	}

	w.closed = true

	return w.DB.Close()
}
