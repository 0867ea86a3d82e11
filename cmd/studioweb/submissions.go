package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/gcstudio/studioweb"
)

func newSubmissionsCommand() *cobra.Command {
	var dbPath, output string

	cmd := &cobra.Command{
		Use:   "submissions",
		Short: "Inspect contact form submissions",
	}
	cmd.PersistentFlags().StringVar(&dbPath, "database", "", "SQLite path (overrides DATABASE_PATH)")
	cmd.PersistentFlags().StringVarP(&output, "output", "o", "table", "output format (table, json, yaml)")

	openStore := func(cmd *cobra.Command) (*studioweb.Store, error) {
		path := dbPath
		if path == "" {
			envFile, _ := cmd.Flags().GetString("env-file")
			cfg, err := studioweb.LoadSiteConfig(envFile)
			if err != nil {
				return nil, err
			}
			path = cfg.DatabasePath
			if path == "" {
				path = "data/studioweb.db"
			}
		}
		return studioweb.NewStore(path)
	}

	var limit int
	list := &cobra.Command{
		Use:   "list",
		Short: "List the newest submissions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			subs, err := store.ListSubmissions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			return printSubmissions(cmd.OutOrStdout(), output, subs)
		},
	}
	list.Flags().IntVarP(&limit, "limit", "n", 20, "maximum rows; 0 lists everything")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			sub, err := store.GetSubmission(cmd.Context(), id)
			if err != nil {
				return err
			}
			if output == "table" {
				printSubmission(cmd.OutOrStdout(), sub)
				return nil
			}
			return printSubmissions(cmd.OutOrStdout(), output, []studioweb.ContactSubmission{sub})
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid id %q", args[0])
			}
			store, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer store.Close()

			if err := store.DeleteSubmission(cmd.Context(), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted submission %d\n", id)
			return nil
		},
	}

	cmd.AddCommand(list, show, remove)
	return cmd
}

// submissionView is the serialized shape used by the json and yaml outputs.
type submissionView struct {
	ID        int64  `json:"id" yaml:"id"`
	Name      string `json:"name" yaml:"name"`
	Email     string `json:"email" yaml:"email"`
	Message   string `json:"message" yaml:"message"`
	Page      string `json:"page,omitempty" yaml:"page,omitempty"`
	IP        string `json:"ip,omitempty" yaml:"ip,omitempty"`
	CreatedAt string `json:"created_at" yaml:"created_at"`
}

func toView(s studioweb.ContactSubmission) submissionView {
	return submissionView{
		ID:        s.ID,
		Name:      fullName(s),
		Email:     s.Email,
		Message:   s.Message,
		Page:      s.Page,
		IP:        s.IP,
		CreatedAt: s.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func fullName(s studioweb.ContactSubmission) string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

func printSubmissions(w io.Writer, format string, subs []studioweb.ContactSubmission) error {
	views := make([]submissionView, 0, len(subs))
	for _, s := range subs {
		views = append(views, toView(s))
	}

	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(views)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(views)
	case "table":
		if len(views) == 0 {
			fmt.Fprintln(w, "No submissions.")
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDATE\tNAME\tEMAIL\tMESSAGE")
		for _, v := range views {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n", v.ID, v.CreatedAt, v.Name, v.Email, truncate(v.Message, 48))
		}
		return tw.Flush()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func printSubmission(w io.Writer, s studioweb.ContactSubmission) {
	fmt.Fprintf(w, "ID:       %d\n", s.ID)
	fmt.Fprintf(w, "Date:     %s\n", s.CreatedAt.UTC().Format(time.RFC3339))
	fmt.Fprintf(w, "Name:     %s\n", fullName(s))
	fmt.Fprintf(w, "Email:    %s\n", s.Email)
	fmt.Fprintf(w, "Page:     %s\n", s.Page)
	fmt.Fprintf(w, "IP:       %s\n", s.IP)
	fmt.Fprintf(w, "\n%s\n", s.Message)
}

func truncate(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
