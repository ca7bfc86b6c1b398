package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/dashboard"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
)

const shellHelp = `commands:
  add <name>, <age>, <condition>
  filter [text]     empty text clears the filter
  next | prev
  delete <row>      row number from the first column
  chart
  help
  quit
`

const shellChartWidth = 30

// runShell reads one command per line from in and redraws the page after
// every command that changes the list, the filter or the page.
func runShell(ctx context.Context, dash *dashboard.Dashboard, in io.Reader, out io.Writer) error {
	draw(ctx, dash, out)
	fmt.Fprint(out, "> ")

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		verb, rest, _ := strings.Cut(line, " ")
		rest = strings.TrimSpace(rest)

		redraw := true
		switch strings.ToLower(verb) {
		case "":
			redraw = false
		case "quit", "exit":
			return nil
		case "help":
			fmt.Fprint(out, shellHelp)
			redraw = false
		case "add":
			req, err := parseAdd(rest)
			if err == nil {
				_, err = dash.Add(ctx, req)
			}
			if err != nil {
				printError(out, err)
				redraw = false
			}
		case "filter", "search":
			dash.SetFilter(rest)
		case "next":
			redraw = dash.NextPage(ctx)
		case "prev", "previous":
			redraw = dash.PreviousPage()
		case "delete", "del":
			pos, err := strconv.Atoi(rest)
			if err == nil {
				_, err = dash.DeleteRow(ctx, pos)
			} else {
				err = fmt.Errorf("row must be a number: %q", rest)
			}
			if err != nil {
				printError(out, err)
				redraw = false
			}
		case "chart":
			fmt.Fprint(out, chart.RenderText(dash.Render(ctx).Histogram, shellChartWidth))
			redraw = false
		default:
			printError(out, fmt.Errorf("unknown command %q, try help", verb))
			redraw = false
		}

		if redraw {
			draw(ctx, dash, out)
		}
		fmt.Fprint(out, "> ")
	}
	return scanner.Err()
}

func draw(ctx context.Context, dash *dashboard.Dashboard, out io.Writer) {
	view := dash.Render(ctx)
	if view.Search != "" {
		fmt.Fprintf(out, "filter: %q\n", view.Search)
	}
	fmt.Fprint(out, renderRows(view.Rows, view.Label))
}

func parseAdd(s string) (patient.CreatePatientRequest, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return patient.CreatePatientRequest{}, errors.New("usage: add <name>, <age>, <condition>")
	}
	return patient.CreatePatientRequest{
		Name:      parts[0],
		Age:       patient.AgeInput(strings.TrimSpace(parts[1])),
		Condition: parts[2],
	}, nil
}

func printError(out io.Writer, err error) {
	fmt.Fprintln(out, errorStyle.Render("error: "+err.Error()))
}
