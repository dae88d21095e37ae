package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/katalvlaran/detrace/determinant"
	"github.com/katalvlaran/detrace/internal/input"
	"github.com/katalvlaran/detrace/internal/render"
	"github.com/katalvlaran/detrace/matrix"
	"github.com/spf13/cobra"
)

// verifyTolerance is the relative tolerance of --verify.
const verifyTolerance = 1e-9

// errNoMatrix is returned when neither --file nor --matrix is given.
var errNoMatrix = errors.New("a matrix is required: use --file or --matrix")

// job is one resolved computation request.
type job struct {
	rows   [][]float64
	method string
	legacy bool
	policy string
	verify bool
}

func newComputeCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Compute a determinant and print the worked steps",
		Long: `Reads a matrix from a YAML/JSON document (--file, "-" for stdin) or an inline
grid (--matrix "1,2;3,4") and prints the narration of the selected method.`,
		Example: `  detrace compute --method sarrus --matrix "1,2;3,4"
  detrace compute -f request.yaml --verify -o markdown`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, _ := cmd.Flags().GetString("file")
			inline, _ := cmd.Flags().GetString("matrix")

			j, err := a.loadJob(cmd, file, inline)
			if err != nil {
				return err
			}

			return a.run(j)
		},
	}

	cmd.Flags().StringP("method", "m", string(determinant.Laplace), "Method: sarrus, laplace, chio")
	cmd.Flags().StringP("file", "f", "", "YAML or JSON request document (- for stdin)")
	cmd.Flags().String("matrix", "", `Inline matrix, rows separated by ";" and cells by "," or blanks`)
	cmd.Flags().Bool("verify", false, "Cross-check the result against an LU reference")
	cmd.Flags().Bool("legacy", false, "Return an empty result instead of an error for unknown methods")
	cmd.Flags().String("chio-policy", "", "Chiò policy: normalized (default) or scaled")
	cmd.MarkFlagsMutuallyExclusive("file", "matrix")

	return cmd
}

// loadJob merges the request document (if any) with the flags. Flags that
// were set explicitly win over document fields.
func (a *app) loadJob(cmd *cobra.Command, file, inline string) (job, error) {
	j := job{}
	j.method, _ = cmd.Flags().GetString("method")
	j.legacy, _ = cmd.Flags().GetBool("legacy")
	j.policy, _ = cmd.Flags().GetString("chio-policy")
	j.verify, _ = cmd.Flags().GetBool("verify")

	switch {
	case file != "":
		req, err := decodeFile(cmd.InOrStdin(), file)
		if err != nil {
			return j, err
		}
		j.rows = req.Matrix
		if req.Method != "" && !cmd.Flags().Changed("method") {
			j.method = req.Method
		}
		if req.ChioPolicy != "" && !cmd.Flags().Changed("chio-policy") {
			j.policy = req.ChioPolicy
		}
		j.legacy = j.legacy || req.Legacy
	case inline != "":
		rows, err := input.ParseInline(inline)
		if err != nil {
			return j, err
		}
		j.rows = rows
	default:
		return j, errNoMatrix
	}

	return j, nil
}

func decodeFile(stdin io.Reader, path string) (input.Request, error) {
	if path == "-" {
		return input.Decode(stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return input.Request{}, err
	}
	defer f.Close()

	return input.Decode(f)
}

// run computes, optionally verifies and renders one job.
func (a *app) run(j job) error {
	method, err := determinant.ParseMethod(j.method)
	if err != nil && !j.legacy {
		return err
	}
	policy, err := determinant.ParseChioPolicy(j.policy)
	if err != nil {
		return err
	}

	opts := []determinant.Option{
		determinant.WithOrderBounds(determinant.MinOrder, determinant.MaxOrder),
		determinant.WithChioPolicy(policy),
		determinant.WithLogger(a.logger),
	}
	if j.legacy {
		opts = append(opts, determinant.WithLegacyFallback())
	}

	res, err := determinant.Compute(j.rows, method, opts...)
	if err != nil {
		return err
	}

	rep := render.Report{Result: res}
	if j.verify && res.Method.Valid() {
		v, err := verify(j.rows, res.Determinant)
		if err != nil {
			return err
		}
		rep.Verification = v
		if !v.Agrees {
			a.logger.Warn("result differs from LU reference",
				"method", res.Method.String(),
				"determinant", res.Determinant,
				"reference", v.Reference,
			)
		}
	}

	return render.Write(a.out, rep, render.Options{Format: a.format, Color: a.color})
}

// verify compares det against the LU determinant of rows.
func verify(rows [][]float64, det float64) (*render.Verification, error) {
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, err
	}
	ref, err := matrix.Determinant(m)
	if err != nil {
		return nil, fmt.Errorf("verify: %w", err)
	}

	return &render.Verification{
		Reference: ref,
		Agrees:    math.Abs(det-ref) <= verifyTolerance*math.Max(1, math.Abs(ref)),
	}, nil
}
