package main

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"text/tabwriter"

	"github.com/ReconfigureIO/linkbudget/service/aggregate"
	"github.com/ReconfigureIO/linkbudget/service/layout"
	"github.com/ReconfigureIO/linkbudget/service/planner"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var errOverCapacity = errors.New("layout does not fit the link")

func checkCmd() *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "check <layout.json>",
		Short: "Report whether a saved layout fits its link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := ioutil.ReadFile(args[0])
			if err != nil {
				return err
			}
			st, err := layout.Import(data, thresholds)
			if err != nil {
				return err
			}
			report := st.Recompute()
			log.WithFields(log.Fields{"file": args[0], "streams": len(st.Slots)}).Debug("imported layout")
			dump(st)
			dump(report)
			printReport(os.Stdout, st, report)
			if strict && report.Status == aggregate.StatusOverCapacity {
				cmd.SilenceUsage = true
				return errOverCapacity
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when the layout is over capacity")
	return cmd
}

func printReport(out io.Writer, st *planner.State, r aggregate.Report) {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "stream\tprofile\tactive\tclock MHz\tbpp\traw Gbps\tdsc Gbps\tshare\n")
	for i, s := range st.Slots {
		t := s.Timing
		dsc := "-"
		if s.Compression.Active {
			dsc = fmt.Sprintf("%.3f", s.Rate.Compressed)
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d@%g\t%.3f\t%g\t%.3f\t%s\t%.1f%%\n",
			label(s, i), t.Profile, t.H, t.V, t.Hz, t.PixelClock,
			s.Rate.BitsPerPixel, s.Rate.Raw, dsc, r.Streams[i].Pct)
	}
	w.Flush()

	capacity := st.Capacity()
	fmt.Fprintf(out, "\nlink %s: %g Gbps x %d lanes %s, payload %.3f Gbps\n",
		st.PresetID, st.Link.Rate, st.Link.Lanes, st.Link.Coding, capacity.Payload)
	fmt.Fprintf(out, "required %.3f Gbps, margin %.3f Gbps (%.1f%%), utilization %.1f%%\n",
		r.TotalRequired, r.Margin, r.MarginPct, r.UtilizationPct)
	fmt.Fprintf(out, "status: %s\n", r.Status)
}

func label(s *planner.Slot, i int) string {
	if s.Label != "" {
		return s.Label
	}
	return fmt.Sprintf("#%d", i+1)
}
