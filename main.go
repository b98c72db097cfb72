package main

import (
	"os"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/riobard/go-blowfish/core"
	"github.com/riobard/go-blowfish/internal/log"
)

// Version is set at build time.
var Version = "dev"

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Error().Err(err).Msg("bfcrypt failed")
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "bfcrypt",
		Usage:   "encrypt and decrypt files with Blowfish in ECB, CBC or CFB mode",
		Version: Version,
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Usage: "verbose mode"},
			&cli.StringFlag{Name: "config", Usage: "path to a YAML config file (default: search for bfcrypt.yaml)"},
		},
		Before: func(c *cli.Context) error {
			log.SetVerbose(c.Bool("verbose"))
			return nil
		},
		Commands: []*cli.Command{
			{
				Name:      "encrypt",
				Aliases:   []string{"e"},
				Usage:     "encrypt IN into OUT",
				ArgsUsage: "[IN OUT]",
				Flags:     transformFlags(),
				Action:    func(c *cli.Context) error { return transform(c, false) },
			},
			{
				Name:      "decrypt",
				Aliases:   []string{"d"},
				Usage:     "decrypt IN into OUT",
				ArgsUsage: "[IN OUT]",
				Flags:     transformFlags(),
				Action:    func(c *cli.Context) error { return transform(c, true) },
			},
			{
				Name:   "modes",
				Usage:  "list available modes",
				Action: listModes,
			},
			{
				Name:  "keygen",
				Usage: "print a random hex-encoded key",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "size", Aliases: []string{"n"}, Value: 16, Usage: "key length in bytes (1-72)"},
				},
				Action: keygen,
			},
			{
				Name:      "inspect",
				Usage:     "report block structure of a ciphertext",
				ArgsUsage: "[IN]",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "input path, - for stdin"},
				},
				Action: inspectFile,
			},
		},
	}
}

func transformFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "in", Aliases: []string{"i"}, Usage: "input path, - for stdin"},
		&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output path, - for stdout"},
		&cli.StringFlag{Name: "mode", Aliases: []string{"m"}, Usage: "chaining mode: " + strings.Join(core.ListModes(), ", ")},
		&cli.StringFlag{Name: "key", Aliases: []string{"k"}, Usage: "hex-encoded key, 1-72 bytes"},
		&cli.StringFlag{Name: "iv", Usage: "hex-encoded 8-byte IV (cbc and cfb only)"},
	}
}

