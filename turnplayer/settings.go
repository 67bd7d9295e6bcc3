package turnplayer

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/domino14/wordhand/config"
)

// GameOptions are the settings a series is played with. The shell changes
// them with its set command.
type GameOptions struct {
	HandSize         int
	NumHands         int
	ComputerWildcard bool
}

func (opts *GameOptions) SetDefaults(cfg *config.Config) {
	if opts.HandSize == 0 {
		opts.HandSize = cfg.GetInt(config.ConfigHandSize)
		log.Info().Msgf("using default hand size %v", opts.HandSize)
	}
	if opts.NumHands == 0 {
		opts.NumHands = cfg.GetInt(config.ConfigNumHands)
		log.Info().Msgf("using default number of hands %v", opts.NumHands)
	}
	if !opts.ComputerWildcard {
		opts.ComputerWildcard = cfg.GetBool(config.ConfigComputerWildcard)
	}
}

func parsePositive(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%v must be a number: %w", name, err)
	}
	if n < 1 {
		return 0, fmt.Errorf("%v must be at least 1", name)
	}
	return n, nil
}

func (opts *GameOptions) SetHandSize(value string) error {
	n, err := parsePositive("hand size", value)
	if err != nil {
		return err
	}
	opts.HandSize = n
	return nil
}

func (opts *GameOptions) SetNumHands(value string) error {
	n, err := parsePositive("number of hands", value)
	if err != nil {
		return err
	}
	opts.NumHands = n
	return nil
}

func (opts *GameOptions) SetComputerWildcard(value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("%v is not true or false", value)
	}
	opts.ComputerWildcard = b
	return nil
}

// Set changes the named option.
func (opts *GameOptions) Set(name, value string) error {
	switch name {
	case "handsize":
		return opts.SetHandSize(value)
	case "hands":
		return opts.SetNumHands(value)
	case "wildcard":
		return opts.SetComputerWildcard(value)
	}
	return fmt.Errorf("%v is not a supported option", name)
}

func (opts *GameOptions) String() string {
	return fmt.Sprintf("handsize: %d hands: %d wildcard: %v",
		opts.HandSize, opts.NumHands, opts.ComputerWildcard)
}
