package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/meghashyamc/advocates/client"
	"github.com/meghashyamc/advocates/logger"
	"github.com/meghashyamc/advocates/render"
	"github.com/meghashyamc/advocates/validation"
	"github.com/spf13/cobra"
)

type searchFlags struct {
	View       string `json:"view" validate:"oneof=cards table"`
	Degree     string `json:"degree"`
	Experience string `json:"experience" validate:"valid_bracket"`
	City       string `json:"city"`
	APIURL     string `json:"apiUrl"`
}

func newSearchCmd(opts *rootOptions) *cobra.Command {
	flags := &searchFlags{}

	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search advocates once and print the results",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.APIURL != "" {
				opts.cfg.Set("API_URL", flags.APIURL)
			}
			log := logger.New(opts.cfg.GetLogLevel())

			validator, err := validation.New(log)
			if err != nil {
				return err
			}
			if err := validator.Validate(flags); err != nil {
				if !errors.Is(err, validation.ErrInvalidBracket) {
					return err
				}
				log.Warn("ignoring experience filter", "bracket", flags.Experience)
				flags.Experience = ""
				if err := validator.Validate(flags); err != nil {
					return err
				}
			}

			term := ""
			if len(args) > 0 {
				term = args[0]
			}

			apiClient := client.NewAPIClient(log, opts.cfg.GetAPIURL())
			defer apiClient.Close()

			response, err := apiClient.Search(cmd.Context(), term)
			if err != nil {
				return err
			}

			facets := client.Facets{Degree: flags.Degree, Experience: flags.Experience, City: flags.City}
			displayed := client.ApplyFacets(response.Data, facets)

			out := cmd.OutOrStdout()
			styles := render.DefaultStyles()
			fmt.Fprintln(out, styles.Summary(len(displayed), response.Total, strings.TrimSpace(term)))

			if len(displayed) == 0 {
				color.New(color.FgYellow).Fprintln(out, "No advocates found.")
				return nil
			}

			if flags.View == client.ViewTable.String() {
				return render.Table(out, displayed)
			}
			_, err = fmt.Fprintln(out, styles.Cards(displayed, 2))
			return err
		},
	}

	cmd.Flags().StringVar(&flags.View, "view", client.ViewCards.String(), "result layout: cards or table")
	cmd.Flags().StringVar(&flags.Degree, "degree", "", "only advocates with this degree")
	cmd.Flags().StringVar(&flags.Experience, "experience", "", "experience bracket such as 0-2, 6-10 or 10+")
	cmd.Flags().StringVar(&flags.City, "city", "", "only advocates in this city")
	cmd.Flags().StringVar(&flags.APIURL, "api-url", "", "advocates API base URL (overrides API_URL)")

	return cmd
}
