package main

import (
	"fmt"
	"os"

	"github.com/epeers/gardenfeed/internal/nutrients"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

type calcFlags struct {
	input      string
	stage      string
	scale      int
	volume     float64
	unit       string
	source     float64
	symptoms   []string
	enrichment bool
	rootBall   string
	luxury     float64
	target     int
	lastFeed   float64
	firstWater bool
}

func calcCommand() *cobra.Command {
	f := &calcFlags{}

	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculate a feed",
		Long: `Calculate one feed and print the result as JSON.
Parameters come from flags, from a YAML file given with --input, or both;
flags set on the command line override the file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := f.resolve(cmd)
			if err != nil {
				return err
			}
			if err := in.Validate(); err != nil {
				return err
			}
			log.WithFields(log.Fields{"stage": in.Stage, "volume": in.Volume}).Debug("Calculating feed")
			return writeJSON(cmd.OutOrStdout(), nutrients.Compute(in))
		},
	}

	cmd.Flags().StringVarP(&f.input, "input", "i", "", "YAML file with the feed parameters")
	cmd.Flags().StringVarP(&f.stage, "stage", "s", "", "Grow stage: propagation, vegetative, bud_set, flower, late_flower, flush")
	cmd.Flags().IntVar(&f.scale, "scale", 500, "Meter scale: 500 or 700")
	cmd.Flags().Float64Var(&f.volume, "volume", 0, "Reservoir volume")
	cmd.Flags().StringVar(&f.unit, "unit", "gal", "Volume unit: gal or l")
	cmd.Flags().Float64Var(&f.source, "source", 0, "Source water PPM")
	cmd.Flags().StringSliceVar(&f.symptoms, "symptom", nil, "Observed symptom, repeatable (e.g. n_deficiency)")
	cmd.Flags().BoolVar(&f.enrichment, "enrichment", false, "Enable CO2 enrichment")
	cmd.Flags().StringVar(&f.rootBall, "root-ball", "normal", "Root ball size: normal or small")
	cmd.Flags().Float64Var(&f.luxury, "luxury", 0, "Luxury uptake multiplier, 0 to disable")
	cmd.Flags().IntVar(&f.target, "target", 0, "Override the resolved target PPM")
	cmd.Flags().Float64Var(&f.lastFeed, "last-feed", 0, "Last feed PPM, enables the transition advisor")
	cmd.Flags().BoolVar(&f.firstWater, "first-water", false, "First water of a new stage")

	return cmd
}

// resolve builds the engine input from the optional YAML file and the flags
// set on the command line.
func (f *calcFlags) resolve(cmd *cobra.Command) (nutrients.Input, error) {
	var in nutrients.Input
	if f.input != "" {
		data, err := os.ReadFile(f.input)
		if err != nil {
			return in, fmt.Errorf("failed to read input: %w", err)
		}
		if err := yaml.Unmarshal(data, &in); err != nil {
			return in, fmt.Errorf("failed to parse input %s: %w", f.input, err)
		}
	}

	flags := cmd.Flags()
	set := func(name string) bool {
		// Without an input file every flag applies, defaults included.
		return f.input == "" || flags.Changed(name)
	}

	if set("stage") {
		in.Stage = nutrients.GrowStage(f.stage)
	}
	if set("scale") {
		in.Scale = nutrients.Scale(f.scale)
	}
	if set("volume") {
		in.Volume = f.volume
	}
	if set("unit") {
		in.VolumeUnit = nutrients.VolumeUnit(f.unit)
	}
	if set("source") {
		in.SourcePPM = f.source
	}
	if set("symptom") {
		in.Symptoms = in.Symptoms[:0]
		for _, s := range f.symptoms {
			in.Symptoms = append(in.Symptoms, nutrients.Symptom(s))
		}
	}
	if set("enrichment") {
		in.EnrichmentEnabled = f.enrichment
	}
	if set("root-ball") {
		in.RootBall = nutrients.RootBallSize(f.rootBall)
	}
	if set("luxury") {
		in.Luxury = nutrients.LuxuryUptake{Enabled: f.luxury > 0, Multiplier: f.luxury}
	}
	if flags.Changed("target") {
		target := f.target
		in.TargetOverride = &target
	}
	if flags.Changed("last-feed") {
		last := f.lastFeed
		in.LastFeedPPM = &last
	}
	if set("first-water") {
		in.FirstWaterOfStage = f.firstWater
	}

	if in.Stage == "" {
		return in, fmt.Errorf("a grow stage is required (--stage or stage: in the input file)")
	}
	return in, nil
}
