package main

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/riobard/go-blowfish/blowfish"
	"github.com/riobard/go-blowfish/core"
	"github.com/riobard/go-blowfish/inspect"
	"github.com/riobard/go-blowfish/internal/log"
)

func transform(c *cli.Context, decrypt bool) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log.SetVerbose(cfg.Verbose)
	if cfg.source != "" {
		log.Debug().Str("file", cfg.source).Msg("using config file")
	}

	inPath, outPath := c.String("in"), c.String("out")
	if inPath == "" {
		inPath = c.Args().Get(0)
	}
	if outPath == "" {
		outPath = c.Args().Get(1)
	}
	if inPath == "" || outPath == "" {
		return errors.New("input and output paths are required")
	}

	// stdin cannot carry both the data and the answers to prompts
	var p *prompter
	if inPath != "-" {
		p = newPrompter(c.App.Reader, c.App.ErrWriter)
	}
	ps, err := resolveParams(cfg, p)
	if err != nil {
		return err
	}
	ciph, err := core.NewCipher(ps.mode, ps.key, ps.iv)
	if err != nil {
		return err
	}
	log.Debug().Stringer("mode", ps.mode).Int("key_bytes", len(ps.key)).Bool("decrypt", decrypt).Msg("cipher ready")

	in, err := openInput(inPath, c.App.Reader)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := openOutput(outPath, c.App.Writer)
	if err != nil {
		return err
	}
	if err := run(ciph, decrypt, out, bufio.NewReader(in)); err != nil {
		return fmt.Errorf("%s %s: %w", direction(decrypt), inPath, err)
	}
	log.Debug().Str("in", inPath).Str("out", outPath).Msg("transform complete")
	fmt.Fprintln(c.App.ErrWriter, "Done.")
	return nil
}

// run transforms in into out and closes out. The buffered output is flushed
// even when the transform fails.
func run(ciph *core.Cipher, decrypt bool, out io.WriteCloser, in io.Reader) (err error) {
	w := bufio.NewWriter(out)
	defer func() {
		if ferr := w.Flush(); err == nil {
			err = ferr
		}
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()

	if decrypt {
		return ciph.Decrypt(w, in)
	}
	return ciph.Encrypt(w, in)
}

func direction(decrypt bool) string {
	if decrypt {
		return "decrypt"
	}
	return "encrypt"
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	return f, nil
}

func openOutput(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == "-" {
		return nopWriteCloser{stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	return f, nil
}

func listModes(c *cli.Context) error {
	for _, m := range core.ListModes() {
		fmt.Fprintln(c.App.Writer, m)
	}
	return nil
}

func keygen(c *cli.Context) error {
	n := c.Int("size")
	if n < blowfish.MinKeySize || n > blowfish.MaxKeySize {
		return blowfish.KeySizeError(n)
	}
	key := make([]byte, n)
	if _, err := io.ReadFull(rand.Reader, key); err != nil {
		return err
	}
	fmt.Fprintln(c.App.Writer, hex.EncodeToString(key))
	return nil
}

func inspectFile(c *cli.Context) error {
	path := c.String("in")
	if path == "" {
		path = c.Args().First()
	}
	if path == "" {
		path = "-"
	}
	in, err := openInput(path, c.App.Reader)
	if err != nil {
		return err
	}
	defer in.Close()

	rep, err := inspect.Scan(in, blowfish.BlockSize)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", path, err)
	}
	fmt.Fprintf(c.App.Writer, "blocks: %d\nrepeated blocks: %d\ntrailing bytes: %d\n", rep.Blocks, rep.Repeated, rep.Trailing)
	if rep.LikelyECB() {
		log.Warn().Int("repeated", rep.Repeated).Msg("repeated ciphertext blocks, likely ECB mode")
	}
	if !rep.Aligned() {
		log.Warn().Int("trailing", rep.Trailing).Msg("length is not a multiple of the block size: CFB output or truncated")
	}
	return nil
}
