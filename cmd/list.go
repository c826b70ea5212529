package cmd

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"

	"github.com/df07/go-raycaster/pkg/renderer"
	"github.com/df07/go-raycaster/pkg/scene"
)

// ListOptions prints the available scenes, strategies, kernels, filters and tile orders
func ListOptions(ctx *cli.Context) error {
	setupLogging(ctx)

	kernels := make([]string, 0, len(renderer.Kernels()))
	for _, k := range renderer.Kernels() {
		kernels = append(kernels, k.Name())
	}

	table := tablewriter.NewWriter(ctx.App.Writer)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Option", "Values"})
	table.Append([]string{"strategy", strings.Join(renderer.Strategies(), ", ")})
	table.Append([]string{"kernel", strings.Join(kernels, ", ")})
	table.Append([]string{"filter", strings.Join(renderer.Filters(), ", ")})
	table.Append([]string{"sequence", strings.Join(renderer.Sequencers(), ", ")})
	table.Render()

	scenes := tablewriter.NewWriter(ctx.App.Writer)
	scenes.SetAutoFormatHeaders(false)
	scenes.SetAutoWrapText(false)
	scenes.SetHeader([]string{"Scene", "Animated", "Description"})
	for _, info := range scene.List() {
		scenes.Append([]string{info.Name, fmt.Sprintf("%t", info.Animated), info.Description})
	}
	scenes.Render()
	return nil
}
