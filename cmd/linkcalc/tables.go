package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/bandwidth"
	"github.com/spf13/cobra"
)

func presetsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List link presets",
		Run: func(*cobra.Command, []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "id\tlabel\trate\tlanes\tcoding\tpayload Gbps\n")
			for _, p := range models.LinkPresets {
				if p.ID == models.PresetCustom {
					fmt.Fprintf(w, "%s\t%s\t-\t-\t-\t-\n", p.ID, p.Label)
					continue
				}
				c := bandwidth.PayloadCapacity(p.Config())
				fmt.Fprintf(w, "%s\t%s\t%g\t%d\t%s\t%.3f\n", p.ID, p.Label, p.Rate, p.Lanes, p.Coding, c.Payload)
			}
			w.Flush()
		},
	}
}

func modesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "modes",
		Short: "List video modes",
		Run: func(*cobra.Command, []string) {
			w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "index\tlabel\tactive\treference\n")
			for i, m := range models.VideoModes {
				ref := "-"
				if m.Reference != nil {
					ref = fmt.Sprintf("%.3f MHz", m.Reference.Spec().PixelClock)
				}
				fmt.Fprintf(w, "%d\t%s\t%dx%d@%g\t%s\n", i, m.Label, m.H, m.V, m.Hz, ref)
			}
			w.Flush()
		},
	}
}
