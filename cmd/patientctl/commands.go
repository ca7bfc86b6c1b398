package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/chart"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/pagination"
	"github.com/WailSalutem-Health-Care/patient-dashboard/internal/patient"
	"github.com/spf13/cobra"
)

func addCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a patient",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			age, _ := cmd.Flags().GetString("age")
			condition, _ := cmd.Flags().GetString("condition")

			ctx := cmd.Context()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			p, err := a.Service.CreatePatient(ctx, patient.CreatePatientRequest{
				Name:      name,
				Age:       patient.AgeInput(age),
				Condition: condition,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%s)\n", p.Name, p.ID)
			return nil
		},
	}
	cmd.Flags().String("name", "", "patient name")
	cmd.Flags().String("age", "", "patient age in years")
	cmd.Flags().String("condition", "", "diagnosed condition")
	return cmd
}

func listCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show one page of patients",
		RunE: func(cmd *cobra.Command, args []string) error {
			search, _ := cmd.Flags().GetString("search")
			page, _ := cmd.Flags().GetInt("page")
			limit, _ := cmd.Flags().GetInt("limit")

			ctx := cmd.Context()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			params := pagination.Params{Page: page, Limit: limit}
			params.Validate()
			resp := a.Service.ListPatientsWithPagination(ctx, params, search)
			fmt.Fprint(cmd.OutOrStdout(), renderRows(resp.Patients, resp.Label))
			return nil
		},
	}
	cmd.Flags().String("search", "", "case-insensitive filter on name or condition")
	cmd.Flags().Int("page", pagination.DefaultPage, "page number")
	cmd.Flags().Int("limit", pagination.DefaultLimit, "rows per page")
	return cmd
}

func deleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a patient by ID or by list index",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, _ := cmd.Flags().GetInt("index")
			if (len(args) == 0) == (index < 0) {
				return fmt.Errorf("give either an id or --index")
			}

			ctx := cmd.Context()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			if len(args) == 1 {
				if err := a.Service.DeletePatient(ctx, args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s\n", args[0])
				return nil
			}
			p, err := a.Service.DeletePatientAt(ctx, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s (%s) at index %d\n", p.Name, p.ID, index)
			return nil
		},
	}
	cmd.Flags().Int("index", -1, "0-based position in the full list")
	return cmd
}

func chartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Print the patients-per-condition histogram",
		RunE: func(cmd *cobra.Command, args []string) error {
			width, _ := cmd.Flags().GetInt("width")

			ctx := cmd.Context()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())

			fmt.Fprint(cmd.OutOrStdout(), chart.RenderText(a.Service.ConditionHistogram(ctx), width))
			return nil
		},
	}
	cmd.Flags().Int("width", 40, "width of the longest bar")
	return cmd
}

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			a, err := openApp(ctx, true)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())
			return a.Serve(ctx)
		},
	}
}

func shellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive dashboard session",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := openApp(ctx, false)
			if err != nil {
				return err
			}
			defer a.Close(context.Background())
			return runShell(ctx, a.Dashboard, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
