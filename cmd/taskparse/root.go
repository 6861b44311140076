package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nl-task-parser/internal/model"
	"nl-task-parser/internal/nlparser"
	"nl-task-parser/pkg/datemath"
)

const envPrefix = "TASKPARSE"

// vocabulary is the optional user vocabulary file (YAML or JSON).
type vocabulary struct {
	Statuses   []model.StatusConfig   `mapstructure:"statuses"`
	Priorities []model.PriorityConfig `mapstructure:"priorities"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "taskparse [text...]",
		Short: "Parse a natural-language task line into structured fields.",
		Long: `taskparse splits a free-text task line into title, priority, status,
dates, recurrence, estimate, tags, contexts and projects.

Without arguments every line of stdin is parsed and printed as one JSON object per line.`,
		Example: `  taskparse "Practice guitar 30 minutes every day high priority tomorrow"
  taskparse -l de "Bericht schreiben dringend morgen #arbeit"
  cat tasks.txt | taskparse --vocabulary vocab.yaml`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, v, args)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringP("language", "l", "en", "language code of the built-in vocabulary")
	flags.String("timezone", "UTC", "IANA timezone used to resolve relative dates")
	flags.String("now", "", "reference date YYYY-MM-DD (default today)")
	flags.String("vocabulary", "", "YAML or JSON file with user statuses and priorities")
	cmd.Flags().String("placeholder", nlparser.DefaultPlaceholder, "title used when nothing is left")
	cmd.Flags().Bool("suggest", false, "also suggest completions for the last word")
	cmd.Flags().Bool("pretty", false, "indent the JSON output")

	_ = v.BindPFlags(flags)
	_ = v.BindPFlags(cmd.Flags())
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd.AddCommand(newLanguagesCmd(), newSuggestCmd(v))
	return cmd
}

func runParse(cmd *cobra.Command, v *viper.Viper, args []string) error {
	dates, err := datemath.NewParser(v.GetString("timezone"))
	if err != nil {
		return err
	}
	now, err := referenceTime(v, dates)
	if err != nil {
		return err
	}
	vocab, err := loadVocabulary(v.GetString("vocabulary"))
	if err != nil {
		return err
	}

	parser := nlparser.New(dates, nlparser.WithPlaceholder(v.GetString("placeholder")))
	parse := func(text string) nlparser.ParsedTask {
		return parser.Parse(nlparser.Input{
			Text:            text,
			Language:        v.GetString("language"),
			StatusConfigs:   vocab.Statuses,
			PriorityConfigs: vocab.Priorities,
			AutoSuggest:     v.GetBool("suggest"),
			Now:             now,
		})
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}

	if len(args) > 0 {
		return enc.Encode(parse(strings.Join(args, " ")))
	}
	return eachLine(cmd.InOrStdin(), func(line string) error {
		return enc.Encode(parse(line))
	})
}

func eachLine(r io.Reader, fn func(string) error) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := fn(line); err != nil {
			return err
		}
	}
	return sc.Err()
}

func referenceTime(v *viper.Viper, dates *datemath.Parser) (time.Time, error) {
	raw := v.GetString("now")
	if raw == "" {
		return time.Now(), nil
	}
	t, err := dates.Parse(raw, time.Now())
	if err != nil {
		return time.Time{}, fmt.Errorf("--now: %w", err)
	}
	return t, nil
}

func loadVocabulary(path string) (vocabulary, error) {
	var vocab vocabulary
	if path == "" {
		return vocab, nil
	}

	fv := viper.New()
	fv.SetConfigFile(path)
	if err := fv.ReadInConfig(); err != nil {
		return vocab, fmt.Errorf("read vocabulary: %w", err)
	}
	if err := fv.Unmarshal(&vocab); err != nil {
		return vocab, fmt.Errorf("decode vocabulary: %w", err)
	}
	return vocab, nil
}

func newLanguagesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "languages",
		Short: "List the supported languages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, l := range nlparser.Languages() {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", l.Code(), l.Name())
			}
			return nil
		},
	}
}

func newSuggestCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "suggest <prefix>",
		Short: "Complete a priority or status keyword.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := loadVocabulary(v.GetString("vocabulary"))
			if err != nil {
				return err
			}
			for _, s := range nlparser.Suggest(nlparser.SuggestInput{
				Prefix:          args[0],
				Language:        v.GetString("language"),
				StatusConfigs:   vocab.Statuses,
				PriorityConfigs: vocab.Priorities,
			}) {
				fmt.Fprintln(cmd.OutOrStdout(), s)
			}
			return nil
		},
	}
}
