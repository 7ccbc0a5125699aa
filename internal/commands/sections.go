package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/finansije-dev/finansije/internal/nav"
)

func newSectionsCommand(a *app) *cobra.Command {
	var fragment string

	cmd := &cobra.Command{
		Use:   "sections",
		Short: "Show which page section a URL fragment selects",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			r := nav.New(a.cfg.Navigation.Sections, a.cfg.Navigation.DefaultSection)
			printSections(cmd.OutOrStdout(), r.Show(fragment))
			return nil
		},
	}

	cmd.Flags().StringVar(&fragment, "fragment", "", "URL fragment, e.g. #racun")

	return cmd
}

func printSections(w io.Writer, vs []nav.Visibility) {
	for _, v := range vs {
		mark := " "
		if v.Active {
			mark = "x"
		}
		fmt.Fprintf(w, "[%s] %s\n", mark, v.ID)
	}
}
