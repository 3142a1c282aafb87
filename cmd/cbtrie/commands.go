package main

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/aglyzov/go-critbit/critbit/trie"
)

var (
	errNoArgs   = errors.New("at least one argument is required")
	errNotFound = errors.New("keys not found")
)

var cmdLookup = &cli.Command{
	Name:      "lookup",
	Usage:     "print the line number of every given key",
	ArgsUsage: "KEY...",
	Action: withSession(func(cctx *cli.Context, s *session) error {
		if cctx.NArg() == 0 {
			return errNoArgs
		}
		var missing int
		for _, key := range cctx.Args().Slice() {
			if val, ok := s.tr.LookupString(key); ok {
				fmt.Fprintf(cctx.App.Writer, "%s\t%v\n", key, val)
				continue
			}
			missing++
			fmt.Fprintf(cctx.App.Writer, "%s\tnot found\n", key)
		}
		if missing > 0 {
			return fmt.Errorf("%w: %d of %d", errNotFound, missing, cctx.NArg())
		}
		return nil
	}),
}

var cmdPrefix = &cli.Command{
	Name:      "prefix",
	Usage:     "print every key starting with the given prefixes",
	ArgsUsage: "PREFIX...",
	Action: withSession(func(cctx *cli.Context, s *session) error {
		if cctx.NArg() == 0 {
			return errNoArgs
		}
		var werr error
		for _, prefix := range cctx.Args().Slice() {
			var matched int
			s.tr.VisitString(prefix, func(e *trie.Entry) {
				matched++
				if werr == nil {
					_, werr = fmt.Fprintf(cctx.App.Writer, "%s\t%v\n", e.Key, e.Val)
				}
			})
			if werr != nil {
				return fmt.Errorf("failed to write keys: %w", werr)
			}
			s.log.Debug("prefix visited", zap.String("prefix", prefix), zap.Int("keys", matched))
		}
		return nil
	}),
}

var cmdDump = &cli.Command{
	Name:      "dump",
	Usage:     "print the trie structure, optionally limited to a prefix",
	ArgsUsage: "[PREFIX]",
	Action: withSession(func(cctx *cli.Context, s *session) error {
		if err := s.tr.Dump(cctx.App.Writer, []byte(cctx.Args().First())); err != nil {
			return fmt.Errorf("failed to dump trie: %w", err)
		}
		return nil
	}),
}

var cmdStats = &cli.Command{
	Name:  "stats",
	Usage: "print key and node counts",
	Action: withSession(func(cctx *cli.Context, s *session) error {
		st := s.pool.Stats()
		fmt.Fprintf(cctx.App.Writer, "keys:\t%d\nnodes:\t%d\nslabs:\t%d\nfree:\t%d\n",
			s.tr.Len(), st.InUse, st.Slabs, st.Free)
		return nil
	}),
}

var cmdCheck = &cli.Command{
	Name:  "check",
	Usage: "verify the trie invariants",
	Action: withSession(func(cctx *cli.Context, s *session) error {
		if err := s.tr.Check(); err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		s.log.Info("trie is consistent", zap.Int("keys", s.tr.Len()))
		fmt.Fprintln(cctx.App.Writer, "ok")
		return nil
	}),
}
