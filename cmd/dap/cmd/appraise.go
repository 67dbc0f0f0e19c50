package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/donaldgifford/dealer-appraisal/internal/engine"
)

func appraiseCmd() *cobra.Command {
	var (
		file         string
		vehicleMake  string
		model        string
		trim         string
		year         int
		km           int
		bodyType     string
		transmission string
		province     string
		condition    string
	)

	cmd := &cobra.Command{
		Use:   "appraise",
		Short: "Appraise a trade-in",
		Long: "Appraise a trade-in from a JSON request file, or from flags for a\n" +
			"quick appraisal using the simple condition scale.",
		Example: `  # Full request from a file
  dap appraise -f trade-in.json

  # Read the request from stdin
  cat trade-in.json | dap appraise -f -

  # Quick appraisal
  dap appraise --make Toyota --model Camry --year 2020 --km 60000 \
    --body sedan --transmission automatic --condition good`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var (
				req *engine.Request
				err error
			)
			if file != "" {
				req, err = readRequest(cmd.InOrStdin(), file)
				if err != nil {
					return err
				}
			} else {
				req = quickRequest(vehicleMake, model, trim, year, bodyType, transmission, province, condition)
				if cmd.Flags().Changed("km") {
					req.Vehicle.Kilometers = &km
				}
			}

			res, err := newClient().Appraise(cmd.Context(), req)
			if err != nil {
				return err
			}

			if jsonOutput() {
				return outputJSON(cmd.OutOrStdout(), res)
			}
			return printAppraisal(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "JSON request file, or - for stdin")
	cmd.Flags().StringVar(&vehicleMake, "make", "", "vehicle make")
	cmd.Flags().StringVar(&model, "model", "", "vehicle model")
	cmd.Flags().StringVar(&trim, "trim", "", "vehicle trim")
	cmd.Flags().IntVar(&year, "year", 0, "model year")
	cmd.Flags().IntVar(&km, "km", 0, "odometer in kilometers")
	cmd.Flags().StringVar(&bodyType, "body", "", "body type")
	cmd.Flags().StringVar(&transmission, "transmission", "", "transmission")
	cmd.Flags().StringVar(&province, "province", "", "two-letter province code")
	cmd.Flags().StringVar(&condition, "condition", "good", "simple condition (excellent, good, fair, poor)")
	cmd.MarkFlagsMutuallyExclusive("file", "make")

	return cmd
}

// readRequest decodes an appraisal request from path, or from stdin when
// path is "-".
func readRequest(stdin io.Reader, path string) (*engine.Request, error) {
	r := stdin
	if path != "-" {
		f, err := os.Open(path) //nolint:gosec // path supplied by the operator
		if err != nil {
			return nil, fmt.Errorf("opening request file: %w", err)
		}
		defer f.Close()
		r = f
	}

	var req engine.Request
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("request file is empty")
		}
		return nil, fmt.Errorf("decoding request: %w", err)
	}
	return &req, nil
}

func quickRequest(
	vehicleMake, model, trim string,
	year int,
	bodyType, transmission, province, condition string,
) *engine.Request {
	req := &engine.Request{
		Vehicle: engine.VehicleFields{
			Make:         vehicleMake,
			Model:        model,
			Trim:         trim,
			BodyType:     bodyType,
			Transmission: transmission,
			Province:     province,
		},
		Condition: engine.ConditionFields{Simple: condition},
	}
	if year != 0 {
		req.Vehicle.Year = &year
	}
	return req
}
