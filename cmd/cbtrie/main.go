package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"

	"github.com/carlmjohnson/versioninfo"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to a YAML config file",
			EnvVars: []string{"CBTRIE_CONFIG"},
		},
		&cli.StringSliceFlag{
			Name:    "keys",
			Aliases: []string{"k"},
			Usage:   "file with one key per line (stdin if none given)",
			EnvVars: []string{"CBTRIE_KEYS"},
		},
		&cli.StringFlag{
			Name:    "log-level",
			Usage:   "log level (debug, info, warn, error)",
			EnvVars: []string{"CBTRIE_LOG_LEVEL"},
		},
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
			Usage:   "enable debug logging (overrides --log-level)",
		},
		&cli.IntFlag{
			Name:    "pool-limit",
			Usage:   "maximum number of trie nodes (0 means unlimited)",
			EnvVars: []string{"CBTRIE_POOL_LIMIT"},
		},
		&cli.IntFlag{
			Name:    "slab-size",
			Usage:   "number of trie nodes allocated at once",
			EnvVars: []string{"CBTRIE_SLAB_SIZE"},
		},
	}
}

func newApp() *cli.App {
	app := &cli.App{
		Name:    "cbtrie",
		Usage:   "load keys into a crit-bit trie and query them",
		Version: versioninfo.Short(),
		Flags:   globalFlags(),
	}
	app.Commands = []*cli.Command{
		cmdLookup,
		cmdPrefix,
		cmdDump,
		cmdStats,
		cmdCheck,
	}
	return app
}

func run(args []string) error {
	return newApp().Run(args)
}
