package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"archdraw/config"
	"archdraw/diagram"
	"archdraw/export"
	"archdraw/geometry"
	"archdraw/hittest"
	"archdraw/render"
	"archdraw/terminal"
)

func main() {
	if err := execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "archdraw",
		Short:        "Archdraw lays out and renders architecture diagrams",
		Long:         `Archdraw computes element bounds, boundary nesting and relationship routes for architecture diagram views, and renders the result to SVG or an interactive terminal viewer.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				log.Default().SetLevel(log.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newViewCmd())
	root.AddCommand(newHitCmd())

	return root.Execute()
}

// loadInputs reads the view and theme and returns a renderer configured for
// them, with per-tag theme styles folded into the view's style map.
func loadInputs(viewPath, themePath string) (*diagram.View, *render.Renderer, error) {
	view, err := diagram.LoadView(viewPath)
	if err != nil {
		return nil, nil, err
	}
	theme, err := config.Load(themePath)
	if err != nil {
		return nil, nil, err
	}

	if view.Styles == nil {
		view.Styles = make(map[string]diagram.Style)
	}
	for _, el := range view.Elements {
		view.Styles[el.ID] = theme.Resolve(el).Merge(view.Styles[el.ID])
	}

	renderer := render.NewRenderer(log.Default())
	renderer.DefaultStyle = theme.Element
	renderer.Padding = theme.Padding
	return view, renderer, nil
}

func newRenderCmd() *cobra.Command {
	var input, themePath, output string

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a diagram view to SVG",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, renderer, err := loadInputs(input, themePath)
			if err != nil {
				return err
			}

			svg := export.NewSVG()
			frame, err := renderer.Render(view, svg)
			if err != nil {
				return err
			}
			log.Default().Debug("rendered view",
				"elements", len(frame.Elements), "paths", len(frame.Paths))

			if output == "" || output == "-" {
				_, err = os.Stdout.Write(svg.Bytes())
				return err
			}
			return os.WriteFile(output, svg.Bytes(), 0o644)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "view file (JSON)")
	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "theme file (TOML)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file, - for stdout")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newViewCmd() *cobra.Command {
	var input, themePath string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Open a diagram view in the interactive terminal viewer",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, renderer, err := loadInputs(input, themePath)
			if err != nil {
				return err
			}

			// The viewer only needs the frame geometry, so render into a
			// recorder and discard the draw calls.
			frame, err := renderer.Render(view, &render.Recorder{})
			if err != nil {
				return err
			}
			return terminal.NewViewer(frame).Run()
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "view file (JSON)")
	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "theme file (TOML)")
	cmd.MarkFlagRequired("input")
	return cmd
}

func newHitCmd() *cobra.Command {
	var input, themePath string
	var x, y, tolerance float64

	cmd := &cobra.Command{
		Use:   "hit",
		Short: "Report what lies at a point in a rendered view",
		RunE: func(cmd *cobra.Command, args []string) error {
			view, renderer, err := loadInputs(input, themePath)
			if err != nil {
				return err
			}

			frame, err := renderer.Render(view, &render.Recorder{})
			if err != nil {
				return err
			}

			result := frame.HitPoint(geometry.Point{X: x, Y: y}, tolerance)
			if result.Kind == hittest.KindNone {
				fmt.Println("none")
				return nil
			}
			fmt.Printf("%s %s\n", result.Kind, result.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "view file (JSON)")
	cmd.Flags().StringVarP(&themePath, "theme", "t", "", "theme file (TOML)")
	cmd.Flags().Float64VarP(&x, "x", "x", 0, "x coordinate")
	cmd.Flags().Float64VarP(&y, "y", "y", 0, "y coordinate")
	cmd.Flags().Float64Var(&tolerance, "tolerance", 8, "path hit tolerance")
	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("x")
	cmd.MarkFlagRequired("y")
	return cmd
}
