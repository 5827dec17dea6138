package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/dhamidi/saidoc/doclet/config"
	"github.com/dhamidi/saidoc/doclet/visible"
	"github.com/dhamidi/saidoc/java"
)

func newMembersCmd() *cobra.Command {
	opts := &docOptions{}
	var constructors bool
	cmd := &cobra.Command{
		Use:   "members [type...]",
		Short: "List the members documented for each type",
		Long: `List the members documented on the page of each type, followed by the
members inherited from each documented supertype.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.configuration(cmd)
			if err != nil {
				return err
			}
			_, types, err := opts.types(args)
			if err != nil {
				return err
			}
			kind := visible.Methods
			if constructors {
				kind = visible.Constructors
			}
			for _, t := range types {
				if err := printMembers(cmd.OutOrStdout(), visible.New(t, kind, cfg), cfg); err != nil {
					return err
				}
			}
			return nil
		},
	}
	opts.addFlags(cmd)
	cmd.Flags().BoolVar(&constructors, "constructors", false, "list constructors instead of methods")
	return cmd
}

func printMembers(w io.Writer, mm *visible.MemberMap, cfg *config.Configuration) error {
	if _, err := fmt.Fprintf(w, "%s (%s)\n", mm.Type().Name(), mm.Kind()); err != nil {
		return err
	}
	if err := printList(w, "  ", mm.Members(cfg.SortedMethodDetails)); err != nil {
		return err
	}
	for _, g := range mm.Inherited() {
		if _, err := fmt.Fprintf(w, "  inherited from %s\n", g.Type.Name()); err != nil {
			return err
		}
		if err := printList(w, "    ", g.Members); err != nil {
			return err
		}
	}
	return nil
}

func printList(w io.Writer, indent string, members []*java.Method) error {
	for _, m := range members {
		if _, err := fmt.Fprintf(w, "%s%s\n", indent, m.Signature()); err != nil {
			return err
		}
	}
	return nil
}
