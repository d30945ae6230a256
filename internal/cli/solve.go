package cli

import (
	"github.com/spf13/cobra"

	"github.com/robalobadob/wordle/apps/wordleaid/internal/aid"
)

// CompareResult is the output of the compare command.
type CompareResult struct {
	Guess    string       `json:"guess"`
	Target   string       `json:"target"`
	Feedback aid.Feedback `json:"feedback"`
	Tiles    string       `json:"tiles"`
	Solved   bool         `json:"solved"`
}

// CandidatesResult is the output of the candidates command.
type CandidatesResult struct {
	Count      int      `json:"count"`
	Candidates []string `json:"candidates"`
	Truncated  bool     `json:"truncated,omitempty"`
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:     "compare GUESS TARGET",
		Short:   "Score a guess against a target word",
		Example: "  wordleaid compare SLOSH SHUNT\n  wordleaid compare --tiles alpha EERIE THEME",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			acfg := a.cfg.AidConfig()
			acfg.LoadDefaultWordList = false
			wa, err := aid.New(acfg, nil)
			if err != nil {
				return err
			}

			fb, err := wa.Compare(args[0], args[1])
			if err != nil {
				return err
			}
			return NewOutput(cmd.OutOrStdout(), a.output).Print(CompareResult{
				Guess:    args[0],
				Target:   args[1],
				Feedback: fb,
				Tiles:    wa.Render(fb),
				Solved:   fb.AllHit(),
			})
		},
	}
}

func newCandidatesCmd(a *app) *cobra.Command {
	var (
		poolFile string
		limit    int
	)

	cmd := &cobra.Command{
		Use:   "candidates [WORD=TILES ...]",
		Short: "List the words consistent with the guesses so far",
		Long: `Filter a word list by guess records.

Each record is WORD=TILES where TILES uses Y ? _ or 🟩 🟨 ⬛.
Without --pool the default word list is used.`,
		Example: "  wordleaid candidates SLOSH=Y___? --ignore-case\n  wordleaid candidates --pool words.txt CRANE=__?__",
		RunE: func(cmd *cobra.Command, args []string) error {
			history := make([]aid.GuessRecord, 0, len(args))
			for _, arg := range args {
				rec, err := aid.ParseRecord(arg)
				if err != nil {
					return err
				}
				history = append(history, rec)
			}

			acfg := a.cfg.AidConfig()
			var pool []string
			if poolFile != "" {
				words, err := a.cfg.Loader().Load(poolFile)
				if err != nil {
					return err
				}
				pool = words
				acfg.LoadDefaultWordList = false
			} else {
				acfg.LoadDefaultWordList = true
			}

			wa, err := aid.New(acfg, a.cfg.Loader())
			if err != nil {
				return err
			}
			out, err := wa.FindCandidates(history, pool)
			if err != nil {
				return err
			}

			res := CandidatesResult{Count: len(out), Candidates: out}
			if limit > 0 && len(out) > limit {
				res.Candidates = out[:limit]
				res.Truncated = true
			}
			return NewOutput(cmd.OutOrStdout(), a.output).Print(res)
		},
	}

	cmd.Flags().StringVar(&poolFile, "pool", "", "Word list file to filter instead of the default list")
	cmd.Flags().IntVar(&limit, "limit", 0, "Print at most this many candidates (0 prints all)")
	cmd.Flags().Int("workers", 0, "Filter workers for large pools (default GOMAXPROCS)")
	bind(a.v, cmd.Flags(), map[string]string{"aid.workers": "workers"})

	return cmd
}
