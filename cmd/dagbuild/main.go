// Command dagbuild builds a DFA or prefix-closed DFA from labeled samples
// listed in a confl config file, prints lookups for the configured queries
// and optionally writes the automaton as Graphviz DOT.
//
//	dagbuild -config samples.conf
//
// Example config:
//
//	log_level = info
//	variant   = dfa
//	alphabet  = "abc"
//	table     = true
//	dot_out   = "/tmp/samples.dot"
//	samples : [
//	  { word : "abc", accept : true },
//	  { word : "ac",  accept : false },
//	]
//	queries : [ "abc", "ab", "" ]
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	u "github.com/araddon/gou"
	"github.com/olekukonko/tablewriter"

	"github.com/katalvlaran/automata/acceptance"
	"github.com/katalvlaran/automata/alphabet"
	"github.com/katalvlaran/automata/dag"
	"github.com/katalvlaran/automata/dot"
	"github.com/katalvlaran/automata/word"
)

var (
	configFile string
	logLevel   string
	dotOut     string
)

func init() {
	flag.StringVar(&configFile, "config", "dagbuild.conf", "path to the confl config file")
	flag.StringVar(&logLevel, "loglevel", "", "overrides log_level from the config")
	flag.StringVar(&dotOut, "dot", "", "overrides dot_out from the config")
}

func main() {
	flag.Parse()

	conf, err := LoadConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "dagbuild: %v\n", err)
		os.Exit(1)
	}
	if logLevel != "" {
		conf.LogLevel = logLevel
	}
	if dotOut != "" {
		conf.DotOut = dotOut
	}
	u.SetupLogging(conf.LogLevel)
	u.SetColorOutput()

	if err := run(conf, os.Stdout); err != nil {
		u.Errorf("dagbuild: %v", err)
		os.Exit(1)
	}
}

// session is the part of the builder API the command needs; both builder
// variants provide it.
type session interface {
	Insert(w word.Word[rune], accepting bool) error
	Lookup(w word.Word[rune]) acceptance.Acceptance
	Alphabet() alphabet.Alphabet[rune]
	Stats() dag.Stats
	View() dag.View[rune]
}

func newSession(conf *Config) (session, error) {
	alpha, err := alphabet.New([]rune(conf.Alphabet)...)
	if err != nil {
		return nil, err
	}
	if conf.Variant == VariantPC {
		return dag.NewPCDFA[rune](alpha)
	}

	return dag.NewDFA[rune](alpha)
}

// run builds the automaton described by conf and reports to out.
func run(conf *Config, out io.Writer) error {
	// 1. Build
	s, err := newSession(conf)
	if err != nil {
		return err
	}
	conflicts := 0
	for _, sample := range conf.Samples {
		err := s.Insert(word.FromString(sample.Word), sample.Accept)
		switch {
		case errors.Is(err, dag.ErrConflict):
			conflicts++
			u.Warnf("skipping sample: %v", err)
		case err != nil:
			return fmt.Errorf("sample %q: %w", sample.Word, err)
		}
	}
	st := s.Stats()
	u.Infof("built %s automaton: %d states, %d transitions, %d confluence states",
		conf.Variant, st.Reachable, st.Transitions, st.Confluence)

	// 2. Query results
	if len(conf.Queries) > 0 {
		table := tablewriter.NewWriter(out)
		table.Header([]string{"Word", "Result"})
		for _, q := range conf.Queries {
			w := word.FromString(q)
			table.Append([]string{w.String(), s.Lookup(w).String()})
		}
		table.Render()
	}

	// 3. Transition table
	if conf.Table {
		writeTransitions(out, s)
	}
	fmt.Fprintf(out, "samples: %d, conflicts: %d, states: %d, transitions: %d\n",
		len(conf.Samples), conflicts, st.Reachable, st.Transitions)

	// 4. DOT
	if conf.DotOut == "" {
		return nil
	}
	f, err := os.Create(conf.DotOut)
	if err != nil {
		return err
	}
	if err := dot.Write[dag.StateID, rune](f, s.View(), dot.WithTitle(conf.Title)); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

func writeTransitions(out io.Writer, s session) {
	syms := s.Alphabet().Symbols()
	header := []string{"State", "Accept"}
	for _, sym := range syms {
		header = append(header, string(sym))
	}
	table := tablewriter.NewWriter(out)
	table.Header(header)

	v := s.View()
	for _, id := range v.States() {
		row := []string{strconv.Itoa(int(id)), v.Acceptance(id).String()}
		next := make(map[rune]dag.StateID, len(syms))
		for _, e := range v.OutEdges(id) {
			next[e.Label] = e.To
		}
		for _, sym := range syms {
			if t, ok := next[sym]; ok {
				row = append(row, strconv.Itoa(int(t)))
			} else {
				row = append(row, "-")
			}
		}
		table.Append(row)
	}
	table.Render()
}
