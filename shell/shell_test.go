package shell

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/stretchr/testify/assert"

	"github.com/domino14/wordhand/alphabet"
	"github.com/domino14/wordhand/config"
	"github.com/domino14/wordhand/game"
	"github.com/domino14/wordhand/testhelpers"
)

func TestExtractFields(t *testing.T) {
	is := is.New(t)
	type testdata struct {
		line   string
		expCmd *shellcmd
		expErr error
	}
	cases := []testdata{
		{"", nil, errNoData},
		{"autoplay -log /path/to/log.txt",
			&shellcmd{"autoplay", nil, map[string]string{"log": "/path/to/log.txt"}},
			nil},
		{"series 3",
			&shellcmd{"series", []string{"3"}, map[string]string{}},
			nil},
		{"autoplay -hands 10 -log foo.txt ",
			&shellcmd{"autoplay", nil, map[string]string{"hands": "10", "log": "foo.txt"}},
			nil,
		},
		{`script "my script.lua"`,
			&shellcmd{"script", []string{"my script.lua"}, map[string]string{}},
			nil,
		},
		{"autoplay -hands",
			nil, errWrongOptionSyntax},
	}
	for _, t := range cases {
		cmd, err := extractFields(t.line)
		is.Equal(cmd, t.expCmd)
		is.Equal(err, t.expErr)
	}
}

func newTestController(t *testing.T) (*ShellController, *bytes.Buffer) {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Set(config.ConfigRNGSeed, 17)
	var out bytes.Buffer
	return newController(cfg, testhelpers.EnglishLexicon(), &out), &out
}

// run executes line and returns its output, or fails the test.
func run(t *testing.T, sc *ShellController, line string) string {
	t.Helper()
	resp, err := sc.standardModeSwitch(line, nil)
	if err != nil {
		t.Fatalf("%v: %v", line, err)
	}
	return resp.message
}

func withHand(t *testing.T, sc *ShellController, tiles string) {
	t.Helper()
	run(t, sc, "series 1")
	run(t, sc, "deal")
	sc.curHand = game.NewHandRecord(alphabet.HandFromString(tiles), sc.lex)
}

func TestNeedsSeriesAndHand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	_, err := sc.standardModeSwitch("deal", nil)
	is.Equal(err, errNoSeries)
	_, err = sc.standardModeSwitch("play honey", nil)
	is.Equal(err, errNoHand)
	_, err = sc.standardModeSwitch("summary", nil)
	is.Equal(err, errNoSeries)

	is.True(strings.HasPrefix(run(t, sc, "series 2"), "New series of 2 hands of 7 tiles."))
	is.True(strings.HasPrefix(run(t, sc, "deal"), "Hand 1 of 2\nCurrent hand: "))
	run(t, sc, "deal")
	_, err = sc.standardModeSwitch("deal", nil)
	is.Equal(err, game.ErrSeriesOver)
}

func TestPlayAndReplay(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	withHand(t, sc, "honeyw*")

	is.Equal(run(t, sc, "play honey"),
		"\"honey\" earned 319 points. Total: 319 points.\nCurrent hand: w * ")
	is.Equal(run(t, sc, "."), "Hand ended. Total score: 319 points.")

	_, err := sc.standardModeSwitch("play we", nil)
	is.True(err != nil)

	is.Equal(run(t, sc, "replay"), "Replaying. Current hand: h o n e y w * ")
	_, err = sc.standardModeSwitch("replay", nil)
	is.Equal(err, game.ErrTurnInProgress)
	is.Equal(run(t, sc, "play hoe"),
		"Invalid word (word is not in the lexicon), please try again.\nCurrent hand: n y w * ")
	run(t, sc, ".")
	_, err = sc.standardModeSwitch("replay", nil)
	is.Equal(err, game.ErrNoReplay)

	is.True(strings.Contains(run(t, sc, "hand"), "Hand score: 319"))
	// the series keeps the hand it dealt, not the one swapped in above
	is.True(strings.Contains(run(t, sc, "summary"), "num_hands: 1"))
}

func TestExhaustingHand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	withHand(t, sc, "it")
	is.Equal(run(t, sc, "play it"),
		"\"it\" earned 28 points. Total: 28 points.\nRan out of letters. Total score: 28 points.")
}

func TestComputerClaimsWords(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	withHand(t, sc, "honeyw*")
	is.Equal(run(t, sc, "cpu"),
		"Computer plays honey (319)\nComputer plays (Pass)\nComputer total: 319 points.")
	out := run(t, sc, "play honey")
	is.True(strings.HasPrefix(out, "Invalid word (word was already played by the computer"))
	_, err := sc.standardModeSwitch("cpu", nil)
	is.Equal(err, game.ErrTurnInProgress)
}

func TestGen(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	withHand(t, sc, "cowsa*t")
	out := run(t, sc, "gen 3")
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	is.Equal(len(lines), 4)
	is.Equal(lines[0], moveTableHeader())
	is.True(strings.HasPrefix(lines[1], "  1: caws "))
	is.True(strings.HasPrefix(lines[2], "  2: cows "))
	is.Equal(len(sc.curGenPlays), 3)

	withHand(t, sc, "zzqx*")
	is.Equal(run(t, sc, "gen"), "No plays found for z z q x * ")
}

func TestSetWildcard(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.Equal(run(t, sc, "set"), "handsize: 7 hands: 3 wildcard: false")
	withHand(t, sc, "nh*ydwee")
	is.True(strings.Contains(run(t, sc, "gen 1"), "  1: when "))
	is.Equal(run(t, sc, "set wildcard true"), "set wildcard to true")
	is.True(strings.Contains(run(t, sc, "gen 1"), "  1: h*ney "))

	_, err := sc.standardModeSwitch("set handsize", nil)
	is.True(err != nil)
	_, err = sc.standardModeSwitch("set handsize zero", nil)
	is.True(err != nil)
}

func TestSubstitute(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	withHand(t, sc, "honeyw*")
	_, err := sc.standardModeSwitch("sub *", nil)
	is.Equal(err, alphabet.ErrNotALetter)
	out := run(t, sc, "sub h")
	is.True(strings.HasPrefix(out, "Current hand: "))
	is.True(!sc.curHand.Start().Has('h'))
	_, err = sc.standardModeSwitch("sub o", nil)
	is.Equal(err, game.ErrHandInPlay)
	_, err = sc.standardModeSwitch("sub", nil)
	is.True(err != nil)
}

func TestHelp(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.True(strings.HasPrefix(run(t, sc, "help"), "Commands:"))
	is.True(strings.HasPrefix(run(t, sc, "help play"), "play <word>"))
	_, err := sc.standardModeSwitch("help nothing", nil)
	is.True(err != nil)
}

func TestAutoplayCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	logfile := filepath.Join(t.TempDir(), "auto.csv")
	out := run(t, sc, "autoplay -hands 5 -log "+logfile)
	is.True(strings.HasPrefix(out, "Hands played: 5\n"))
	dat, err := os.ReadFile(logfile)
	is.NoErr(err)
	is.Equal(len(strings.Split(strings.TrimSpace(string(dat)), "\n")), 6)
}

func TestLexiconCommand(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	is.True(strings.HasPrefix(run(t, sc, "lexicon"), "english: "))

	run(t, sc, "series 1")
	path, err := filepath.Abs("../lexicon/testdata/words.json")
	is.NoErr(err)
	is.True(strings.HasPrefix(run(t, sc, "lexicon "+path), "words: 17 words\n"))
	is.Equal(sc.lex.NumWords(), 17)
	is.True(sc.series == nil)

	_, err = sc.standardModeSwitch("lexicon nope.json", nil)
	is.True(err != nil)
	is.Equal(sc.lex.NumWords(), 17)
}

func TestScript(t *testing.T) {
	is := is.New(t)
	sc, _ := newTestController(t)
	dir := t.TempDir()
	script := filepath.Join(dir, "cpu.lua")
	err := os.WriteFile(script, []byte(`
wordhand_series("1")
wordhand_deal("")
local out = wordhand_cpu("")
if string.sub(out, 1, 6) == "ERROR:" then
  error(out)
end
local again = wordhand_deal("")
if string.sub(again, 1, 6) ~= "ERROR:" then
  error("dealt past the end of the series")
end
`), 0o644)
	is.NoErr(err)
	is.Equal(run(t, sc, "script "+script), "ran "+script)
	is.Equal(len(sc.series.Hands()), 1)
	is.True(sc.series.Current().Computer() != nil)

	jsonScript := filepath.Join(dir, "json.lua")
	is.NoErr(os.WriteFile(jsonScript, []byte(`
local json = require("json")
local opts = json.decode('{"handsize": 5}')
wordhand_set("handsize " .. opts.handsize)
`), 0o644))
	is.Equal(run(t, sc, "script "+jsonScript), "ran "+jsonScript)
	is.Equal(sc.options.HandSize, 5)

	bad := filepath.Join(dir, "bad.lua")
	is.NoErr(os.WriteFile(bad, []byte("this is not lua"), 0o644))
	_, err = sc.standardModeSwitch("script "+bad, nil)
	is.True(err != nil)
}

func TestExecuteAndExit(t *testing.T) {
	is := is.New(t)
	sc, out := newTestController(t)
	sc.Execute(nil, "bogus")
	is.Equal(out.String(), "Error: unrecognized command: bogus\n")

	sig := make(chan os.Signal, 1)
	_, err := sc.standardModeSwitch("exit", sig)
	is.Equal(err, errQuit)
	is.Equal(len(sig), 1)
}

func TestCompleter(t *testing.T) {
	sc, _ := newTestController(t)
	c := NewShellCompleter(sc)

	matches, n := c.Do([]rune("se"), 2)
	assert.Equal(t, [][]rune{[]rune("ries"), []rune("t")}, matches)
	assert.Equal(t, 2, n)

	matches, _ = c.Do([]rune("set wi"), 6)
	assert.Equal(t, [][]rune{[]rune("ldcard")}, matches)

	matches, _ = c.Do([]rune("set wildcard "), 13)
	assert.Equal(t, [][]rune{[]rune("true"), []rune("false")}, matches)

	matches, _ = c.Do([]rune("autoplay -h"), 11)
	assert.Equal(t, [][]rune{[]rune("ands")}, matches)

	withHand(t, sc, "honeyw*")
	turn, err := sc.curHand.NewTurn()
	assert.NoError(t, err)
	sc.curTurn = turn
	matches, _ = c.Do([]rune("play ho"), 7)
	assert.Equal(t, [][]rune{[]rune("ney")}, matches)
}
