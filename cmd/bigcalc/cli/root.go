// Copyright 2020 Aleksandr Demakin. All rights reserved.

// Package cli implements the bigcalc command.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/avdva/bignum/calc"
)

const (
	keyPrecision = "precision"
	keyNoCache   = "no-cache"
	keyConfig    = "config"

	envPrefix = "BIGCALC"
)

// ErrFailed is returned when at least one expression could not be evaluated.
var ErrFailed = errors.New("evaluation failed")

// NewRootCommand returns the bigcalc command.
// Settings are taken from flags, BIGCALC_* environment variables and an optional config file,
// in that order of priority.
func NewRootCommand() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:   "bigcalc [expression...]",
		Short: "Evaluates arbitrary-precision decimal expressions.",
		Long: `Evaluates arbitrary-precision decimal expressions.

Expressions are taken from arguments, or read from stdin line by line if there are none.
Supported operators are + - * / ^ and postfix !, functions are
sin cos tan ln log exp factorial sqrt, constants are pi and e.`,
		Example: `  bigcalc -p 100 'pi' 'sqrt(2)'
  echo '2^0.5 * e' | bigcalc --precision 20`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(v, cmd.Flags())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			e := calc.New(calc.Config{DisableCache: v.GetBool(keyNoCache)})
			e.SetPrecision(v.GetInt(keyPrecision))
			glog.V(1).Infof("precision: %d, cache disabled: %v", e.Precision(), v.GetBool(keyNoCache))
			if len(args) > 0 {
				return evaluate(cmd.OutOrStdout(), e, args)
			}
			exprs, err := readLines(cmd.InOrStdin())
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), e, exprs)
		},
	}
	flags := cmd.Flags()
	flags.IntP(keyPrecision, "p", calc.DefaultPrecision, "number of digits after the decimal point")
	flags.Bool(keyNoCache, false, "disable memoization of sub-expressions")
	flags.String(keyConfig, "", "path to a config file (yaml, json or toml)")
	return cmd
}

func loadConfig(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range []string{keyPrecision, keyNoCache} {
		if err := v.BindPFlag(key, flags.Lookup(key)); err != nil {
			return err
		}
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	path, err := flags.GetString(keyConfig)
	if err != nil {
		return err
	}
	if len(path) == 0 {
		return nil
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	glog.V(1).Infof("using config file %s", v.ConfigFileUsed())
	return nil
}

// evaluate prints the result of every expression, or an error message for failed ones.
func evaluate(w io.Writer, e *calc.Evaluator, exprs []string) error {
	failed := 0
	for _, expr := range exprs {
		res, err := e.Evaluate(expr)
		if err != nil {
			failed++
			glog.Errorf("%q: %v", expr, err)
			fmt.Fprintf(w, "Error: %v\n", err)
			continue
		}
		fmt.Fprintln(w, res.String())
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d expressions: %w", failed, len(exprs), ErrFailed)
	}
	return nil
}

// readLines returns non-empty lines of r.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); len(line) > 0 {
			lines = append(lines, line)
		}
	}
	return lines, scanner.Err()
}
