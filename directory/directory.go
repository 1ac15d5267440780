// Package directory keeps registered people in an in-memory go-memdb table.
//
// A Directory owns its sequence counter: every successful Register takes the
// next number, starting at 1, and a fresh uuid. Nothing is process-global, so
// two directories number their people independently.
package directory

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"
	memdb "github.com/hashicorp/go-memdb"
	"go.uber.org/zap"

	"github.com/on-the-ground/pure_ive_go/log"
	"github.com/on-the-ground/pure_ive_go/person"
)

var (
	ErrNotFound       = errors.New("person not found")
	ErrDuplicateEmail = errors.New("email already registered")
)

const (
	table      = "person"
	indexID    = "id"
	indexEmail = "email"
)

// record is the row stored in memdb. Email is the lower-cased address, empty
// when the person has none.
type record struct {
	ID     string
	Email  string
	Person person.Person
}

func newRecord(p person.Person) *record {
	return &record{
		ID:     p.ID.String(),
		Email:  strings.ToLower(p.EmailOr("")),
		Person: p.Clone(),
	}
}

func schema() *memdb.DBSchema {
	return &memdb.DBSchema{
		Tables: map[string]*memdb.TableSchema{
			table: {
				Name: table,
				Indexes: map[string]*memdb.IndexSchema{
					indexID: {
						Name:    indexID,
						Unique:  true,
						Indexer: &memdb.StringFieldIndex{Field: "ID"},
					},
					indexEmail: {
						Name:         indexEmail,
						AllowMissing: true,
						Indexer:      &memdb.StringFieldIndex{Field: "Email", Lowercase: true},
					},
				},
			},
		},
	}
}

type Directory struct {
	db     *memdb.MemDB
	logger *zap.Logger
	newID  func() uuid.UUID

	// mu serializes writers and guards seq.
	mu  sync.Mutex
	seq uint64
}

type Option func(*Directory)

// WithIDGenerator replaces uuid.New, mostly for deterministic tests.
func WithIDGenerator(fn func() uuid.UUID) Option {
	return func(d *Directory) { d.newID = fn }
}

func New(logger *zap.Logger, opts ...Option) (*Directory, error) {
	db, err := memdb.NewMemDB(schema())
	if err != nil {
		return nil, fmt.Errorf("create person table: %w", err)
	}
	d := &Directory{
		db:     db,
		logger: log.OrNop(logger),
		newID:  uuid.New,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Register validates and stores a new person. Email addresses are unique
// regardless of case.
func (d *Directory) Register(name string, age int, email *string) (person.Person, error) {
	p, err := person.New(name, age, email)
	if err != nil {
		d.logger.Debug("rejected registration", zap.String("name", name), zap.Error(err))
		return person.Person{}, err
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	txn := d.db.Txn(true)
	defer txn.Abort()

	if err := d.checkEmailFree(txn, p, ""); err != nil {
		return person.Person{}, err
	}

	p.ID = d.newID()
	p.Seq = d.seq + 1
	if err := txn.Insert(table, newRecord(p)); err != nil {
		return person.Person{}, fmt.Errorf("insert person: %w", err)
	}
	txn.Commit()
	d.seq = p.Seq

	d.logger.Info("registered person",
		zap.Uint64("seq", p.Seq),
		zap.Stringer("id", p.ID),
		zap.String("name", p.Name),
	)
	return p, nil
}

func (d *Directory) Get(id uuid.UUID) (person.Person, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()
	return first(txn, indexID, id.String())
}

func (d *Directory) FindByEmail(email string) (person.Person, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()
	return first(txn, indexEmail, email)
}

// Update applies fn to a copy of the stored person and writes it back if the
// result is still valid. ID and Seq cannot be changed.
func (d *Directory) Update(id uuid.UUID, fn func(*person.Person) error) (person.Person, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	txn := d.db.Txn(true)
	defer txn.Abort()

	current, err := first(txn, indexID, id.String())
	if err != nil {
		return person.Person{}, err
	}

	next := current
	if err := fn(&next); err != nil {
		return person.Person{}, err
	}
	next.ID, next.Seq = current.ID, current.Seq
	if err := next.Validate(); err != nil {
		return person.Person{}, err
	}
	if err := d.checkEmailFree(txn, next, current.ID.String()); err != nil {
		return person.Person{}, err
	}

	if err := txn.Insert(table, newRecord(next)); err != nil {
		return person.Person{}, fmt.Errorf("update person: %w", err)
	}
	txn.Commit()

	d.logger.Debug("updated person", zap.Uint64("seq", next.Seq), zap.Stringer("id", next.ID))
	return next, nil
}

// Delete removes the person with id.
func (d *Directory) Delete(id uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	txn := d.db.Txn(true)
	defer txn.Abort()

	raw, err := txn.First(table, indexID, id.String())
	if err != nil {
		return fmt.Errorf("lookup person: %w", err)
	}
	if raw == nil {
		return ErrNotFound
	}
	if err := txn.Delete(table, raw); err != nil {
		return fmt.Errorf("delete person: %w", err)
	}
	txn.Commit()
	return nil
}

// All returns every stored person ordered by Seq.
func (d *Directory) All() ([]person.Person, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, indexID)
	if err != nil {
		return nil, fmt.Errorf("scan people: %w", err)
	}
	var people []person.Person
	for raw := it.Next(); raw != nil; raw = it.Next() {
		people = append(people, raw.(*record).Person.Clone())
	}
	slices.SortFunc(people, func(a, b person.Person) int {
		switch {
		case a.Seq < b.Seq:
			return -1
		case a.Seq > b.Seq:
			return 1
		}
		return 0
	})
	return people, nil
}

// Len counts stored people.
func (d *Directory) Len() (int, error) {
	txn := d.db.Txn(false)
	defer txn.Abort()

	it, err := txn.Get(table, indexID)
	if err != nil {
		return 0, fmt.Errorf("count people: %w", err)
	}
	n := 0
	for raw := it.Next(); raw != nil; raw = it.Next() {
		n++
	}
	return n, nil
}

// Registered reports the last sequence number handed out. Deleting a
// person does not lower it.
func (d *Directory) Registered() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.seq
}

func (d *Directory) checkEmailFree(txn *memdb.Txn, p person.Person, selfID string) error {
	if p.Email == nil {
		return nil
	}
	raw, err := txn.First(table, indexEmail, *p.Email)
	if err != nil {
		return fmt.Errorf("lookup email: %w", err)
	}
	if raw != nil && raw.(*record).ID != selfID {
		return fmt.Errorf("%w: %s", ErrDuplicateEmail, *p.Email)
	}
	return nil
}

func first(txn *memdb.Txn, index, value string) (person.Person, error) {
	raw, err := txn.First(table, index, value)
	if err != nil {
		return person.Person{}, fmt.Errorf("lookup person: %w", err)
	}
	if raw == nil {
		return person.Person{}, ErrNotFound
	}
	return raw.(*record).Person.Clone(), nil
}
