package cmd

import (
	"flag"

	"github.com/etnz/tracker/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the application.
//
// Commands flags are discovered from their SetFlags method, some of them get a
// dedicated predictor.
func Completion() *complete.Command {
	granularities := predict.Set{"day", "week", "month", "year"}
	investments := complete.PredictFunc(predictInvestments)
	special := map[string]map[string]complete.Predictor{
		"chart":  {"g": granularities, "i": investments},
		"add":    {"i": investments},
		"import": {"investments": predict.Nothing, "records": predict.Nothing},
	}
	args := map[string]complete.Predictor{
		"drop":   investments,
		"import": predict.Files("*.json"),
		"topic":  predict.Set(topicNames()),
	}

	root := &complete.Command{
		Sub: map[string]*complete.Command{},
		Flags: map[string]complete.Predictor{
			"config":     predict.Files("*.yaml"),
			"store":      predict.Files("*"),
			"store-kind": predict.Set{"jsonl", "sqlite"},
			"plain":      predict.Nothing,
		},
	}
	for _, group := range Commands() {
		for _, c := range group {
			f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(f)
			sub := &complete.Command{Flags: map[string]complete.Predictor{}, Args: args[c.Name()]}
			f.VisitAll(func(fl *flag.Flag) {
				p, ok := special[c.Name()][fl.Name]
				switch {
				case ok:
				case isBool(fl):
					p = predict.Nothing
				default:
					p = predict.Something
				}
				sub.Flags[fl.Name] = p
			})
			root.Sub[c.Name()] = sub
		}
	}
	return root
}

func isBool(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}

// predictInvestments suggests the names of the tracked investments.
func predictInvestments(prefix string) []string {
	a, err := openApp()
	if err != nil {
		return nil
	}
	defer a.Close()
	snap, err := a.load()
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(snap.Investments))
	for _, inv := range snap.Investments {
		names = append(names, inv.Name)
	}
	return names
}

func topicNames() []string {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(topics, "readme", "*")
}
