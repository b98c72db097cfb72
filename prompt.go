package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/riobard/go-blowfish/core"
)

var errNoAnswer = errors.New("prompt: no answer")

// prompter asks for missing settings on an interactive terminal, repeating
// each question until the answer is valid.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter(r io.Reader, w io.Writer) *prompter {
	return &prompter{in: bufio.NewReader(r), out: w}
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	line, err := p.in.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		if errors.Is(err, io.EOF) {
			return "", errNoAnswer
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func (p *prompter) mode() (core.Mode, error) {
	for {
		answer, err := p.ask("Enter mode(" + strings.Join(core.ListModes(), ",") + "): ")
		if err != nil {
			return 0, err
		}
		if m, err := core.ParseMode(answer); err == nil {
			return m, nil
		}
	}
}

func (p *prompter) iv() ([]byte, error) {
	for {
		answer, err := p.ask("Enter iv (8 bytes, hex): ")
		if err != nil {
			return nil, err
		}
		iv, err := parseIV(answer)
		if err == nil {
			return iv, nil
		}
		fmt.Fprintln(p.out, "Incorrect iv.")
	}
}

func (p *prompter) key() ([]byte, error) {
	for {
		answer, err := p.ask("Enter key (1-72 bytes, hex): ")
		if err != nil {
			return nil, err
		}
		key, err := parseKey(answer)
		if err == nil {
			return key, nil
		}
		fmt.Fprintln(p.out, "Incorrect key.")
	}
}

type params struct {
	mode core.Mode
	key  []byte
	iv   []byte
}

// resolveParams takes each setting from cfg, or from p when cfg lacks it.
// A nil p means no interactive input is available.
func resolveParams(cfg *Config, p *prompter) (*params, error) {
	var (
		ps  params
		err error
	)

	switch {
	case cfg.Mode != "":
		if ps.mode, err = core.ParseMode(cfg.Mode); err != nil {
			return nil, fmt.Errorf("%w: %q", err, cfg.Mode)
		}
	case p != nil:
		if ps.mode, err = p.mode(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("mode is required")
	}

	if ps.mode.RequiresIV() {
		switch {
		case cfg.IV != "":
			if ps.iv, err = parseIV(cfg.IV); err != nil {
				return nil, err
			}
		case p != nil:
			if ps.iv, err = p.iv(); err != nil {
				return nil, err
			}
		default:
			return nil, fmt.Errorf("iv is required for mode %s", ps.mode)
		}
	}

	switch {
	case cfg.Key != "":
		if ps.key, err = parseKey(cfg.Key); err != nil {
			return nil, fmt.Errorf("key: %w", err)
		}
	case p != nil:
		if ps.key, err = p.key(); err != nil {
			return nil, err
		}
	default:
		return nil, errors.New("key is required")
	}
	return &ps, nil
}
