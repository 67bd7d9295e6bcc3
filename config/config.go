package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	ConfigDataPath         = "data-path"
	ConfigWordsFile        = "words-file"
	ConfigHandSize         = "hand-size"
	ConfigNumHands         = "num-hands"
	ConfigRNGSeed          = "rng-seed"
	ConfigIndexByInitial   = "index-by-initial"
	ConfigComputerWildcard = "computer-wildcard"
	ConfigDebug            = "debug"
	ConfigCPUProfile       = "cpu-profile"
)

// EnvPrefix is prepended to every key to find its environment variable:
// hand-size is read from WORDHAND_HAND_SIZE.
const EnvPrefix = "wordhand"

// DotEnvFile is loaded into the environment, if it exists, before the
// environment is read.
var DotEnvFile = ".env"

type Config struct {
	*viper.Viper
	args []string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(ConfigDataPath, "./data")
	v.SetDefault(ConfigWordsFile, "words.json")
	v.SetDefault(ConfigHandSize, 7)
	v.SetDefault(ConfigNumHands, 3)
	v.SetDefault(ConfigRNGSeed, 0)
	v.SetDefault(ConfigIndexByInitial, false)
	v.SetDefault(ConfigComputerWildcard, false)
	v.SetDefault(ConfigDebug, false)
	v.SetDefault(ConfigCPUProfile, "")
}

// DefaultConfig returns a config holding only the defaults.
func DefaultConfig() *Config {
	v := viper.New()
	setDefaults(v)
	return &Config{Viper: v}
}

func newFlagSet() *pflag.FlagSet {
	fs := pflag.NewFlagSet("wordhand", pflag.ContinueOnError)
	fs.String(ConfigDataPath, "./data", "directory holding word lists")
	fs.String(ConfigWordsFile, "words.json", "word list to play with, relative to the data path")
	fs.Int(ConfigHandSize, 7, "number of tiles dealt into a hand")
	fs.Int(ConfigNumHands, 3, "number of hands in a series")
	fs.Uint64(ConfigRNGSeed, 0, "seed for dealing; 0 picks a random seed")
	fs.Bool(ConfigIndexByInitial, false, "key the word index by length and first letter")
	fs.Bool(ConfigComputerWildcard, false, "let the computer play the wildcard")
	fs.Bool(ConfigDebug, false, "debug logging on")
	fs.String(ConfigCPUProfile, "", "write a CPU profile to this file")
	return fs
}

// Load reads settings from, in increasing order of precedence: defaults,
// the environment (after loading DotEnvFile into it), and flags in args.
// Arguments after the flags are kept and returned by Args.
func (c *Config) Load(args []string) error {
	if err := godotenv.Load(DotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	c.Viper = viper.New()
	setDefaults(c.Viper)

	flags := newFlagSet()
	if err := flags.Parse(args); err != nil {
		return err
	}
	if err := c.BindPFlags(flags); err != nil {
		return err
	}
	c.args = flags.Args()

	c.SetEnvPrefix(EnvPrefix)
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()
	return nil
}

// Args are the non-flag arguments Load was given.
func (c *Config) Args() []string {
	return c.args
}

// AdjustRelativePaths makes a relative data path absolute. A path that
// exists relative to the working directory is kept there; otherwise it is
// taken as relative to basepath, usually the executable's directory.
func (c *Config) AdjustRelativePaths(basepath string) {
	dataPath := c.GetString(ConfigDataPath)
	if filepath.IsAbs(dataPath) {
		return
	}
	if _, err := os.Stat(dataPath); err == nil {
		if abs, err := filepath.Abs(dataPath); err == nil {
			c.Set(ConfigDataPath, abs)
			return
		}
	}
	adjusted := filepath.Join(basepath, dataPath)
	log.Debug().Str("from", dataPath).Str("to", adjusted).Msg("adjusted-data-path")
	c.Set(ConfigDataPath, adjusted)
}

// WordsPath is the full path of the word list.
func (c *Config) WordsPath() string {
	words := c.GetString(ConfigWordsFile)
	if filepath.IsAbs(words) {
		return words
	}
	return filepath.Join(c.GetString(ConfigDataPath), words)
}

// SanitizedSettings returns the settings that are set to something, for
// logging.
func (c *Config) SanitizedSettings() map[string]any {
	return lo.OmitBy(c.AllSettings(), func(_ string, v any) bool {
		return v == "" || v == nil
	})
}
