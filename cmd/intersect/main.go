package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/intersect"
)

type Find struct {
	Output  string `short:"o" desc:"Output filename"`
	Verbose bool   `short:"v" desc:"Print the segments participating in each intersection"`
	Input   string `index:"0" desc:"Input file with one 'x1 y1 x2 y2' segment per line, - is stdin"`
}

func main() {
	root := argp.NewCmd(&Find{}, "Find all intersections between 2D line segments by Taco de Wolff")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Find) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	r := os.Stdin
	if cmd.Input != "-" {
		f, err := os.Open(cmd.Input)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	sweeper := intersect.New()
	sweeper.Error = func(msg string) {
		fmt.Fprintln(os.Stderr, "warning:", msg)
	}
	if err := readSegments(sweeper, r); err != nil {
		return err
	}

	w := io.Writer(os.Stdout)
	if cmd.Output != "" && cmd.Output != "-" {
		f, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		defer f.Close()
		w = f
	}

	for _, z := range sweeper.Run() {
		fmt.Fprintf(w, "%g %g\n", z.X, z.Y)
		if cmd.Verbose {
			for _, seg := range z.Segments {
				fmt.Fprintf(w, "  %g %g %g %g\n", seg.From.X, seg.From.Y, seg.To.X, seg.To.Y)
			}
		}
	}
	return nil
}

func readSegments(sweeper *intersect.Sweeper, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		} else if len(fields) != 4 {
			return fmt.Errorf("line %d: expected 4 coordinates, got %d", line, len(fields))
		}

		var coords [4]float64
		for i, field := range fields {
			f, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return fmt.Errorf("line %d: %v", line, err)
			}
			coords[i] = f
		}
		sweeper.AddSegment(intersect.Point{X: coords[0], Y: coords[1]}, intersect.Point{X: coords[2], Y: coords[3]})
	}
	return scanner.Err()
}
