package journal

import (
	"database/sql"
	"fmt"
	"time"

	"git.lost.host/meutraa/lanes/internal/game"
	_ "github.com/mattn/go-sqlite3"
)

type Kind string

const (
	KindPress   Kind = "press"
	KindRelease Kind = "release"
	KindExpire  Kind = "expire"
)

// Entry is one judgment made during a session.
type Entry struct {
	At      time.Duration
	Lane    int
	Kind    Kind
	Quality game.Quality
	Offset  time.Duration // Signed timing error, positive when early
	Seq     int           // Chart position of the judged note
}

// Journal keeps the judgments and raw inputs of one session in a private
// in-memory database. Nothing is written to disk.
type Journal struct {
	db *sql.DB
}

const schema = `
create table if not exists judgements
  (
	  id integer not null primary key,
	  at_ns integer,
	  lane integer,
	  kind text,
	  quality integer,
	  error_ns integer,
	  seq integer
  );
create table if not exists inputs
  (
	  id integer not null primary key,
	  at_ns integer,
	  lane integer,
	  kind integer
  );
`

func Open() (*Journal, error) {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("unable to open journal: %w", err)
	}
	// Every connection to :memory: is its own database
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); nil != err {
		db.Close()
		return nil, fmt.Errorf("unable to create journal tables: %w", err)
	}
	return &Journal{db: db}, nil
}

func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) Record(e Entry) error {
	_, err := j.db.Exec(
		"insert into judgements(at_ns, lane, kind, quality, error_ns, seq) values(?, ?, ?, ?, ?, ?)",
		int64(e.At), e.Lane, string(e.Kind), int(e.Quality), int64(e.Offset), e.Seq,
	)
	if nil != err {
		return fmt.Errorf("unable to record judgement: %w", err)
	}
	return nil
}

func (j *Journal) RecordInput(in game.Input) error {
	_, err := j.db.Exec(
		"insert into inputs(at_ns, lane, kind) values(?, ?, ?)",
		int64(in.Time), in.Lane, int(in.Kind),
	)
	if nil != err {
		return fmt.Errorf("unable to record input: %w", err)
	}
	return nil
}

// Counts returns the number of judgments per quality.
func (j *Journal) Counts() (map[game.Quality]int, error) {
	rows, err := j.db.Query("select quality, count(*) from judgements group by quality")
	if nil != err {
		return nil, fmt.Errorf("unable to count judgements: %w", err)
	}
	defer rows.Close()

	counts := map[game.Quality]int{}
	for rows.Next() {
		var q, n int
		if err := rows.Scan(&q, &n); nil != err {
			return nil, err
		}
		counts[game.Quality(q)] = n
	}
	return counts, rows.Err()
}

// Entries returns every judgment in the order it was recorded.
func (j *Journal) Entries() ([]Entry, error) {
	rows, err := j.db.Query("select at_ns, lane, kind, quality, error_ns, seq from judgements order by id")
	if nil != err {
		return nil, fmt.Errorf("unable to load judgements: %w", err)
	}
	defer rows.Close()

	entries := []Entry{}
	for rows.Next() {
		var at, offset int64
		var kind string
		var q int
		var e Entry
		if err := rows.Scan(&at, &e.Lane, &kind, &q, &offset, &e.Seq); nil != err {
			return nil, err
		}
		e.At = time.Duration(at)
		e.Offset = time.Duration(offset)
		e.Kind = Kind(kind)
		e.Quality = game.Quality(q)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Inputs returns the raw inputs in arrival order.
func (j *Journal) Inputs() ([]game.Input, error) {
	rows, err := j.db.Query("select at_ns, lane, kind from inputs order by id")
	if nil != err {
		return nil, fmt.Errorf("unable to load inputs: %w", err)
	}
	defer rows.Close()

	inputs := []game.Input{}
	for rows.Next() {
		var at int64
		var kind int
		var in game.Input
		if err := rows.Scan(&at, &in.Lane, &kind); nil != err {
			return nil, err
		}
		in.Time = time.Duration(at)
		in.Kind = game.InputKind(kind)
		inputs = append(inputs, in)
	}
	return inputs, rows.Err()
}
