package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/ReconfigureIO/linkbudget/models"
	"github.com/ReconfigureIO/linkbudget/service/timing"
	"github.com/spf13/cobra"
)

func timingCmd() *cobra.Command {
	var (
		p       timing.Params
		profile string
	)
	cmd := &cobra.Command{
		Use:   "timing",
		Short: "Generate a CVT timing",
		RunE: func(cmd *cobra.Command, args []string) error {
			p.Profile = models.Profile(profile)
			d, err := timing.Generate(p)
			if err != nil {
				return err
			}
			dump(d)
			printDescriptor(os.Stdout, d)
			return nil
		},
	}
	cmd.Flags().IntVar(&p.H, "h", 1920, "active pixels per line")
	cmd.Flags().IntVar(&p.V, "v", 1080, "active lines per frame")
	cmd.Flags().Float64Var(&p.Hz, "hz", 60, "refresh rate")
	cmd.Flags().StringVar(&profile, "profile", string(models.ProfileCVTRB), "cvt, cvt_rb or cvt_rb2")
	cmd.Flags().BoolVar(&p.Margins, "margins", false, "add 1.8% margins")
	cmd.Flags().BoolVar(&p.Interlaced, "interlaced", false, "interlaced scan")
	cmd.Flags().BoolVar(&p.VideoOptimized, "video-optimized", false, "apply the 1000/1001 clock multiplier (cvt_rb2 only)")
	return cmd
}

func printDescriptor(out io.Writer, d timing.Descriptor) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "profile\t%s\taspect\t%s\n", d.Profile, d.Aspect)
	fmt.Fprintf(w, "\tactive\tfront\tsync\tback\ttotal\n")
	fmt.Fprintf(w, "horizontal\t%d\t%d\t%d\t%d\t%d\n", d.HActive, d.HFront, d.HSync, d.HBack, d.HTotal)
	fmt.Fprintf(w, "vertical\t%d\t%d\t%d\t%d\t%d\n", d.VActive, d.VFront, d.VSync, d.VBack, d.VTotal)
	fmt.Fprintf(w, "pixel clock\t%.3f MHz\n", d.PixelClock)
	fmt.Fprintf(w, "line rate\t%.3f kHz\n", d.HFreq)
	fmt.Fprintf(w, "field rate\t%.3f Hz\n", d.FieldRate)
	w.Flush()
}
