package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/jelopf/cs-game-project-2024/internal/game"
	"github.com/jelopf/cs-game-project-2024/internal/parser"
	_ "github.com/mattn/go-sqlite3"
)

var ErrNotFound = errors.New("replay not found")

type DefaultStore struct {
	db *sql.DB
}

// FramesCompact is a run of identical frames. Frames with keys are never merged.
type FramesCompact struct {
	Delta float64  `json:"d"`
	Count int      `json:"n,omitempty"`
	Keys  []string `json:"k,omitempty"`
}

func compactFrames(frames []game.Frame) []FramesCompact {
	fs := []FramesCompact{}
	for _, f := range frames {
		last := len(fs) - 1
		if len(f.Keys) == 0 && last >= 0 && len(fs[last].Keys) == 0 && fs[last].Delta == f.Delta {
			fs[last].Count++
			continue
		}
		fs = append(fs, FramesCompact{Delta: f.Delta, Count: 1, Keys: f.Keys})
	}
	return fs
}

func uncompactFrames(compact []FramesCompact) []game.Frame {
	frames := []game.Frame{}
	for _, c := range compact {
		count := c.Count
		if count < 1 {
			count = 1
		}
		for i := 0; i < count; i++ {
			frames = append(frames, game.Frame{Delta: c.Delta, Keys: c.Keys})
		}
	}
	return frames
}

func (s *DefaultStore) Init(file string) error {
	db, err := sql.Open("sqlite3", file)
	if err != nil {
		return err
	}

	initStatement := `
	create table if not exists replays
	  (
		  id integer not null primary key,
		  sum text,
		  song text,
		  options blob,
		  frames blob
	  );
	`
	_, err = db.Exec(initStatement)
	if nil != err {
		db.Close()
		return fmt.Errorf("unable to create replay table: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultStore) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// HashLevel keys replays by the canonical encoding of the level, so the same
// chart matches however its file was formatted.
func HashLevel(level *game.Level) (string, error) {
	data, err := parser.Encode(level)
	if nil != err {
		return "", fmt.Errorf("unable to hash level: %w", err)
	}
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:]), nil
}

func (s *DefaultStore) Save(level *game.Level, opts game.Options, frames []game.Frame) (int64, error) {
	sum, err := HashLevel(level)
	if nil != err {
		return 0, err
	}
	options, err := json.Marshal(opts)
	if nil != err {
		return 0, fmt.Errorf("unable to marshal options: %w", err)
	}
	data, err := json.Marshal(compactFrames(frames))
	if nil != err {
		return 0, fmt.Errorf("unable to marshal frames: %w", err)
	}
	res, err := s.db.Exec("insert into replays(sum, song, options, frames) values(?, ?, ?, ?)", sum, level.Song, options, data)
	if nil != err {
		return 0, fmt.Errorf("unable to save replay: %w", err)
	}
	return res.LastInsertId()
}

func (s *DefaultStore) Load(id int64) (*Replay, error) {
	row := s.db.QueryRow("select id, sum, song, options, frames from replays where id = ?", id)
	replay, err := scanReplay(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	return replay, err
}

func (s *DefaultStore) List(level *game.Level) ([]Replay, error) {
	sum, err := HashLevel(level)
	if nil != err {
		return nil, err
	}
	replays := []Replay{}
	rows, err := s.db.Query("select id, sum, song, options, frames from replays where sum = ? order by id", sum)
	if nil != err {
		return nil, fmt.Errorf("unable to load replays: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		replay, err := scanReplay(rows)
		if nil != err {
			log.Println("skipping replay", err)
			continue
		}
		replays = append(replays, *replay)
	}
	return replays, rows.Err()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanReplay(row scanner) (*Replay, error) {
	var r Replay
	var options, frames []byte
	if err := row.Scan(&r.ID, &r.Sum, &r.Song, &options, &frames); nil != err {
		return nil, err
	}
	if err := json.Unmarshal(options, &r.Options); nil != err {
		return nil, fmt.Errorf("unable to unmarshal options of replay %d: %w", r.ID, err)
	}
	var fs []FramesCompact
	if err := json.Unmarshal(frames, &fs); nil != err {
		return nil, fmt.Errorf("unable to unmarshal replay %d: %w", r.ID, err)
	}
	r.Frames = uncompactFrames(fs)
	return &r, nil
}
