package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"clientrec/internal/client/domain/record"
	"clientrec/internal/client/input"
)

func newShortCmd(a *app) *cobra.Command {
	return newParseCmd(a, record.KindShort, &cobra.Command{
		Use:   "short [record | client_id last_name initials phone]",
		Short: "Validate a short client record",
		Example: `  clientrec short '123;Иванов;И.И.;+7-123'
  clientrec short '{"client_id":"123","last_name":"Иванов","initials":"И.И.","phone":"+7-123"}'
  clientrec short 123 Иванов И.И. +7-123
  clientrec short --file client.json`,
	})
}

func newFullCmd(a *app) *cobra.Command {
	return newParseCmd(a, record.KindFull, &cobra.Command{
		Use:   "full [record | client_id last_name first_name middle_name address phone]",
		Short: "Validate a full client record and derive its initials",
		Example: `  clientrec full '1;Иванов;Иван;Петрович;Москва;+7-1'
  clientrec full 1 Иванов Иван Петрович Москва +7-1
  clientrec full --file client.json --json`,
	})
}

func newParseCmd(a *app, kind record.Kind, cmd *cobra.Command) *cobra.Command {
	var file string
	cmd.Flags().StringVarP(&file, "file", "f", "", "read the record from a JSON file")
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		in, err := inputFor(kind, file, args)
		if err != nil {
			return err
		}
		rec, err := a.svc.Parse(cmd.Context(), kind, in)
		if err != nil {
			return err
		}
		return a.print(cmd.OutOrStdout(), rec)
	}
	return cmd
}

func newMergeCmd(a *app) *cobra.Command {
	var left, right string
	cmd := &cobra.Command{
		Use:   "merge --left <file> --right <file>",
		Short: "Merge two full client records read from JSON files",
		Long: `merge reads two full records and combines them field by field. The
result keeps the left identifier; surnames are joined with "-", names with a
space, addresses with "; " and phones with " / ".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			l, err := a.svc.ParseFull(ctx, input.File{Path: left})
			if err != nil {
				return fmt.Errorf("left: %w", err)
			}
			r, err := a.svc.ParseFull(ctx, input.File{Path: right})
			if err != nil {
				return fmt.Errorf("right: %w", err)
			}
			merged, err := a.svc.Merge(ctx, l, r)
			if err != nil {
				return err
			}
			return a.print(cmd.OutOrStdout(), merged)
		},
	}
	cmd.Flags().StringVar(&left, "left", "", "JSON file with the left full record")
	cmd.Flags().StringVar(&right, "right", "", "JSON file with the right full record")
	_ = cmd.MarkFlagRequired("left")
	_ = cmd.MarkFlagRequired("right")
	return cmd
}

// inputFor maps command-line arguments onto a construction input: a file, a
// single text argument, or one argument per field.
func inputFor(kind record.Kind, file string, args []string) (input.Input, error) {
	if file != "" {
		if len(args) > 0 {
			return nil, errors.New("--file cannot be combined with record arguments")
		}
		return input.File{Path: file}, nil
	}
	values := make([]any, len(args))
	for i, arg := range args {
		values[i] = arg
	}
	return input.FromArgs(len(record.Layout(kind)), values...)
}

func (a *app) print(w io.Writer, rec record.Record) error {
	if a.asJSON {
		data, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", rec.String(), rec.Display())
	return err
}
