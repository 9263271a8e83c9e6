package main

import (
	"bufio"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"

	"github.com/erlware-deprecated/ecrypt"
	"github.com/erlware-deprecated/ecrypt/config"
	"github.com/erlware-deprecated/ecrypt/keystore"
	"github.com/erlware-deprecated/ecrypt/prime"
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Logger().Level(zerolog.InfoLevel)

var commands = []*cli.Command{
	{
		Name:  "keygen",
		Usage: "Generate an RSA key pair",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "digits",
				Aliases: []string{"d"},
				Usage:   "Magnitude of each prime in decimal digits",
			},
			&cli.StringFlag{
				Name:    "name",
				Aliases: []string{"n"},
				Usage:   "Store the pair under this name",
			},
			&cli.StringFlag{
				Name:  "store",
				Usage: "Path to the key store database",
			},
		},
		Action: generateKey,
	},
	{
		Name:  "prime",
		Usage: "Generate a random prime",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "digits",
				Aliases: []string{"d"},
				Usage:   "Magnitude in decimal digits",
			},
			&cli.IntFlag{
				Name:    "bytes",
				Aliases: []string{"b"},
				Usage:   "Magnitude in bytes",
			},
		},
		Action: generatePrime,
	},
	{
		Name:      "encrypt",
		Usage:     "Encrypt decimal messages read line by line",
		ArgsUsage: "[file ...]",
		Flags:     cipherFlags,
		Action:    encrypt,
	},
	{
		Name:      "decrypt",
		Usage:     "Decrypt decimal messages read line by line",
		ArgsUsage: "[file ...]",
		Flags:     cipherFlags,
		Action:    decrypt,
	},
	{
		Name:  "list",
		Usage: "List stored key names",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "store",
				Usage: "Path to the key store database",
			},
		},
		Action: listKeys,
	},
}

var cipherFlags = []cli.Flag{
	&cli.StringFlag{
		Name:     "key",
		Aliases:  []string{"k"},
		Usage:    "Name of the stored key pair",
		Required: true,
	},
	&cli.StringFlag{
		Name:  "store",
		Usage: "Path to the key store database",
	},
	&cli.BoolFlag{
		Name:  "pad",
		Usage: "Apply the two-digit numeric pad",
	},
}

func main() {
	app := &cli.App{
		Name:  "ecrypt",
		Usage: "textbook RSA key generation and encryption",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "Path to a YAML config file",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log key generation progress",
			},
		},
		Commands: commands,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("ecrypt")
	}
}

// setup loads the config file and adjusts the log level from it and the
// verbose flag.
func setup(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if c.Bool("verbose") {
		level = zerolog.DebugLevel
	}
	log = log.Level(level)
	return cfg, nil
}

// storePath prefers the command's store flag over the config value.
func storePath(c *cli.Context, cfg *config.Config) string {
	if c.IsSet("store") {
		return c.String("store")
	}
	return cfg.Store
}

func generateKey(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	digits := cfg.Digits
	if c.IsSet("digits") {
		digits = c.Int("digits")
	}

	g := ecrypt.NewGenerator()
	g.Log = log
	log.Debug().Int("digits", digits).Msg("generating key pair")
	kp, err := g.GenerateKey(digits)
	if err != nil {
		return err
	}

	fmt.Printf("N: %v\nE: %v\nD: %v\nmax message: %v\n",
		kp.Public.N, kp.Public.E, kp.Private.D, kp.MaxMessageSize)

	name := c.String("name")
	if name == "" {
		return nil
	}
	s, err := keystore.Open(storePath(c, cfg))
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.Put(name, kp); err != nil {
		return err
	}
	log.Info().Str("name", name).Msg("key pair stored")
	return nil
}

func generatePrime(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	magnitude, unit := cfg.Digits, prime.Digits
	switch {
	case c.IsSet("bytes"):
		magnitude, unit = c.Int("bytes"), prime.Bytes
	case c.IsSet("digits"):
		magnitude = c.Int("digits")
	}
	fmt.Println(prime.PrimeIn(magnitude, unit))
	return nil
}

func encrypt(c *cli.Context) error {
	kp, err := loadKey(c)
	if err != nil {
		return err
	}
	n, e := kp.Public.N, kp.Public.E
	return forEachInput(c, func(z *big.Int) (*big.Int, error) {
		if c.Bool("pad") {
			return ecrypt.PaddedEncrypt(z, n, e)
		}
		return ecrypt.Encrypt(z, n, e)
	})
}

func decrypt(c *cli.Context) error {
	kp, err := loadKey(c)
	if err != nil {
		return err
	}
	n, d := kp.Private.N, kp.Private.D
	return forEachInput(c, func(z *big.Int) (*big.Int, error) {
		if c.Bool("pad") {
			return ecrypt.PaddedDecrypt(z, n, d)
		}
		return ecrypt.Decrypt(z, n, d)
	})
}

func listKeys(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	s, err := keystore.Open(storePath(c, cfg))
	if err != nil {
		return err
	}
	defer s.Close()
	names, err := s.List()
	if err != nil {
		return err
	}
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}

// loadKey fetches the named key pair from the store.
func loadKey(c *cli.Context) (*ecrypt.KeyPair, error) {
	cfg, err := setup(c)
	if err != nil {
		return nil, err
	}
	s, err := keystore.Open(storePath(c, cfg))
	if err != nil {
		return nil, err
	}
	defer s.Close()
	return s.Get(c.String("key"))
}

// forEachInput applies f to every decimal message in the argument files,
// or standard input when no files are given.
func forEachInput(c *cli.Context, f func(*big.Int) (*big.Int, error)) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return processLines(os.Stdin, f)
	}
	for _, name := range files {
		fh, err := os.Open(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		if err := processLines(fh, f); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		fh.Close()
	}
	return nil
}

// processLines reads decimal integers line by line and prints the result
// of f for each.
func processLines(in io.Reader, f func(*big.Int) (*big.Int, error)) error {
	input := bufio.NewScanner(in)
	for input.Scan() {
		line := strings.TrimSpace(input.Text())
		if line == "" {
			continue
		}
		z, ok := new(big.Int).SetString(line, 10)
		if !ok {
			fmt.Fprintf(os.Stderr, "not a decimal integer: %q\n", line)
			continue
		}
		res, err := f(z)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		fmt.Println(res)
	}
	return input.Err()
}
