// Command logforms computes multi-logarithmic differential forms, vector
// fields and freeness of polynomial singularities from the command line.
//
// Run: go run ./cmd/logforms omegalog --vars x,y,z,t --ideal "x*y, z*t" --degree 2
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/njchilds90/logforms"
	"github.com/njchilds90/logforms/ring"
)

var (
	varsFlag       string
	idealFlag      string
	complementFlag string
	degreeFlag     int
	codimFlag      int
	formsFlag      bool
)

func buildRing() (*ring.Ring, error) {
	var names []string
	seen := map[string]bool{}
	for _, part := range strings.Split(varsFlag, ",") {
		name := strings.TrimSpace(part)
		if name == "" {
			return nil, fmt.Errorf("empty variable name in --vars %q", varsFlag)
		}
		if seen[name] {
			return nil, fmt.Errorf("duplicate variable name %q in --vars", name)
		}
		seen[name] = true
		names = append(names, name)
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("--vars is required")
	}
	return ring.New(names...), nil
}

func buildIdeal(r *ring.Ring, src, flag string) (ring.Ideal, error) {
	if strings.TrimSpace(src) == "" {
		return nil, fmt.Errorf("--%s is required", flag)
	}
	I, err := ring.ParseIdeal(r, src)
	if err != nil {
		return nil, err
	}
	if len(I) == 0 {
		return nil, fmt.Errorf("--%s names no generators", flag)
	}
	return I, nil
}

func runOmegalog(cmd *cobra.Command, args []string) error {
	r, err := buildRing()
	if err != nil {
		return err
	}
	IX, err := buildIdeal(r, idealFlag, "ideal")
	if err != nil {
		return err
	}
	opts := logforms.Options{Forms: formsFlag}
	if complementFlag != "" {
		opts.Complement, err = buildIdeal(r, complementFlag, "complement")
		if err != nil {
			return err
		}
	}
	res, err := logforms.Omegalog(degreeFlag, IX, opts)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if res.Complement != nil {
		fmt.Fprintf(out, "complement: %s\n", res.Complement)
	}
	fmt.Fprintf(out, "module (%dx%d): %s\n", res.Module.Rows(), res.Module.Cols(), res.Module)
	for i, w := range res.Forms {
		fmt.Fprintf(out, "form %d: %s\n", i, w)
	}
	return nil
}

func runDerlog(cmd *cobra.Command, args []string) error {
	r, err := buildRing()
	if err != nil {
		return err
	}
	IX, err := buildIdeal(r, idealFlag, "ideal")
	if err != nil {
		return err
	}
	DD, err := logforms.Derlog(IX, codimFlag)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "module (%dx%d): %s\n", DD.Rows(), DD.Cols(), DD)
	return nil
}

func runFree(cmd *cobra.Command, args []string) error {
	r, err := buildRing()
	if err != nil {
		return err
	}
	IX, err := buildIdeal(r, idealFlag, "ideal")
	if err != nil {
		return err
	}
	free, err := logforms.IsFreeSingularity(IX, codimFlag)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), free)
	return nil
}

func main() {
	root := &cobra.Command{
		Use:           "logforms",
		Short:         "Multi-logarithmic differential forms and vector fields",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&varsFlag, "vars", "", "comma-separated ring variable names")
	root.PersistentFlags().StringVar(&idealFlag, "ideal", "", "comma-separated generators of the input ideal")

	omegalogCmd := &cobra.Command{
		Use:   "omegalog",
		Short: "Compute the module of multi-logarithmic q-forms",
		RunE:  runOmegalog,
	}
	omegalogCmd.Flags().IntVar(&degreeFlag, "degree", 1, "form degree q")
	omegalogCmd.Flags().StringVar(&complementFlag, "complement", "", "generators of a complete intersection complement")
	omegalogCmd.Flags().BoolVar(&formsFlag, "forms", false, "print explicit differential forms")

	derlogCmd := &cobra.Command{
		Use:   "derlog",
		Short: "Compute the module of multi-logarithmic vector fields",
		RunE:  runDerlog,
	}
	derlogCmd.Flags().IntVar(&codimFlag, "codim", 0, "codimension (0 = infer)")

	freeCmd := &cobra.Command{
		Use:   "free",
		Short: "Decide whether the singularity is free",
		RunE:  runFree,
	}
	freeCmd.Flags().IntVar(&codimFlag, "codim", 0, "codimension (0 = infer)")

	root.AddCommand(omegalogCmd, derlogCmd, freeCmd)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
