// Command aacdump walks an ADTS file, printing every frame header and
// the result of decoding it.
//
// Settings come from the environment, optionally loaded from a .env
// file:
//
//	AACDUMP_INPUT   ADTS file to read (or the first argument)
//	AACDUMP_OUTPUT  optional file receiving the 16-bit PCM
//	AACDUMP_FRAMES  stop after this many frames (0 for all)
//	LOG_LEVEL       debug, info, warn or error
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	aac "github.com/llehouerou/go-aacdec"
)

type settings struct {
	input  string
	output string
	frames int
}

func loadSettings(envFile string, args []string) (settings, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return settings{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	s := settings{
		input:  os.Getenv("AACDUMP_INPUT"),
		output: os.Getenv("AACDUMP_OUTPUT"),
	}
	if len(args) > 0 {
		s.input = args[0]
	}
	if s.input == "" {
		return settings{}, errors.New("no input: set AACDUMP_INPUT or pass a file")
	}
	if v := os.Getenv("AACDUMP_FRAMES"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return settings{}, fmt.Errorf("AACDUMP_FRAMES: invalid value %q", v)
		}
		s.frames = n
	}
	return s, nil
}

func initLogger() {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}

func main() {
	s, err := loadSettings(".env", os.Args[1:])
	initLogger()
	if err == nil {
		err = run(s)
	}
	if err != nil {
		log.Error().Err(err).Msg("aacdump failed")
		os.Exit(1)
	}
}

// run decodes the input described by s. Files it opens are closed
// before it returns.
func run(s settings) (err error) {
	data, err := os.ReadFile(s.input)
	if err != nil {
		return fmt.Errorf("read input: %w", err)
	}

	var pcm io.Writer = io.Discard
	if s.output != "" {
		f, ferr := os.Create(s.output)
		if ferr != nil {
			return fmt.Errorf("create output: %w", ferr)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = fmt.Errorf("close output: %w", cerr)
			}
		}()
		pcm = f
	}

	dec := aac.NewDecoder(aac.WithLogger(log.Logger))
	defer dec.Close()

	stats, err := dump(dec, data, s.frames, pcm, log.Logger)
	log.Info().
		Int("frames", stats.frames).
		Int("decoded", stats.decoded).
		Int("failed", stats.failed).
		Int("pcm_bytes", stats.pcmBytes).
		Msg("done")
	return err
}
