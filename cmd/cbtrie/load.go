package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

const maxLineSize = 4 << 20

// loadStats sums up a loadKeys run.
type loadStats struct {
	Lines int
	Added int
	Dups  int
}

// loadKeys inserts every non-blank line of r into tr, storing its 1-based line
// number as the value. A repeated key keeps its first line.
func loadKeys(tr *trie.Trie, r io.Reader, name string, log *zap.Logger) (loadStats, error) {
	var st loadStats

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	for sc.Scan() {
		st.Lines++
		line := sc.Bytes()
		if len(line) == 0 {
			continue
		}
		// the scanner reuses its buffer and the trie keeps the key slice
		key := bytes.Clone(line)

		_, err := tr.Insert(key, st.Lines, false)
		switch {
		case errors.Is(err, trie.ErrAlreadyExists):
			st.Dups++
			log.Debug("duplicate key", zap.String("file", name), zap.Int("line", st.Lines), zap.ByteString("key", key))
		case err != nil:
			return st, fmt.Errorf("%s:%d: %w", name, st.Lines, err)
		default:
			st.Added++
		}
	}
	if err := sc.Err(); err != nil {
		return st, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return st, nil
}

// session is the state every command works with.
type session struct {
	log  *zap.Logger
	cfg  Config
	pool *trie.NodePool
	tr   *trie.Trie
}

// newSession reads the configuration and loads the keys.
func newSession(cctx *cli.Context) (*session, error) {
	cfg, err := configFromContext(cctx)
	if err != nil {
		return nil, err
	}
	log, err := newLogger(cfg.LogLevel, cctx.Bool("debug"))
	if err != nil {
		return nil, err
	}
	pool := trie.NewNodePool(cfg.SlabSize, cfg.PoolLimit)
	s := &session{
		log:  log,
		cfg:  cfg,
		pool: pool,
		tr:   trie.New(pool),
	}
	if err := s.load(cctx.App.Reader); err != nil {
		_ = log.Sync()
		return nil, err
	}
	return s, nil
}

func (s *session) load(stdin io.Reader) error {
	start := time.Now()

	if len(s.cfg.Keys) == 0 {
		st, err := loadKeys(s.tr, stdin, "stdin", s.log)
		if err != nil {
			return err
		}
		s.log.Debug("keys read", zap.String("file", "stdin"), zap.Int("lines", st.Lines),
			zap.Int("added", st.Added), zap.Int("duplicates", st.Dups))
	}
	for _, name := range s.cfg.Keys {
		f, err := os.Open(name)
		if err != nil {
			return fmt.Errorf("failed to open keys: %w", err)
		}
		st, err := loadKeys(s.tr, f, name, s.log)
		f.Close()
		if err != nil {
			return err
		}
		s.log.Debug("keys read", zap.String("file", name), zap.Int("lines", st.Lines),
			zap.Int("added", st.Added), zap.Int("duplicates", st.Dups))
	}
	s.log.Info("trie loaded",
		zap.Int("keys", s.tr.Len()),
		zap.Int("nodes", s.pool.Stats().InUse),
		zap.Duration("took", time.Since(start)))
	return nil
}

// close drains the trie back into the pool and flushes the log.
func (s *session) close() {
	s.tr.Clear(nil)
	_ = s.log.Sync()
}

// withSession wraps a command action with session setup and teardown.
func withSession(action func(cctx *cli.Context, s *session) error) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		s, err := newSession(cctx)
		if err != nil {
			return err
		}
		defer s.close()

		if err := action(cctx, s); err != nil {
			s.log.Debug("command failed", zap.String("command", cctx.Command.Name), zap.Error(err))
			return err
		}
		return nil
	}
}
