package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/df07/go-raycaster/pkg/raycaster"
	"github.com/df07/go-raycaster/pkg/renderer"
)

func displayFrameStats(frames []renderer.RenderStats, casts raycaster.Stats, total time.Duration) {
	logger.Noticef("frame statistics\n%s", formatFrameStats(frames, casts, total))
}

func formatFrameStats(frames []renderer.RenderStats, casts raycaster.Stats, total time.Duration) string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Frame", "Pixels", "Tiles", "Samples/px", "Min", "Max", "Recovered", "Render time"})

	var samples int
	for i, s := range frames {
		samples += s.TotalSamples
		table.Append([]string{
			fmt.Sprintf("%d", i),
			fmt.Sprintf("%d", s.TotalPixels),
			fmt.Sprintf("%d", s.Tiles),
			fmt.Sprintf("%.1f", s.AverageSamples),
			fmt.Sprintf("%d", s.MinSamples),
			fmt.Sprintf("%d", s.MaxSamplesUsed),
			fmt.Sprintf("%d", s.Recovered),
			s.Duration.Round(time.Millisecond).String(),
		})
	}
	table.SetFooter([]string{
		"TOTAL", "", "",
		fmt.Sprintf("%d samples", samples),
		fmt.Sprintf("%d casts", casts.Casts),
		fmt.Sprintf("%d hits", casts.Hits),
		fmt.Sprintf("%d shadow", casts.ShadowRays),
		total.Round(time.Millisecond).String(),
	})

	table.Render()
	return buf.String()
}
