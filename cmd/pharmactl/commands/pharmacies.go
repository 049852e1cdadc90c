package commands

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/pkg/utils"
)

// pharmacies [id] [--sw lat,lng --ne lat,lng]: список аптек области или одна аптека из общего списка
func pharmaciesCmd() *cobra.Command {
	var sw, ne string

	cmd := &cobra.Command{
		Use:   "pharmacies [id]",
		Short: "List pharmacies or show a single pharmacy",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				pharmacies, err := api.pharmacies.GetPharmacies(cmd.Context(), nil)
				if err != nil {
					return describe(err)
				}
				pharmacy := domain.FindPharmacy(pharmacies, id)
				if pharmacy == nil {
					return fmt.Errorf("pharmacy %d not found", id)
				}
				return printJSON(cmd.OutOrStdout(), pharmacy)
			}

			bounds, err := utils.ParseBounds(sw, ne)
			if err != nil {
				return err
			}
			pharmacies, err := api.pharmacies.GetPharmacies(cmd.Context(), bounds)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), pharmacies)
		},
	}
	cmd.Flags().StringVar(&sw, "sw", "", "south-west corner 'lat,lng'")
	cmd.Flags().StringVar(&ne, "ne", "", "north-east corner 'lat,lng'")
	return cmd
}

// ratings <id>: оценки одной аптеки
func ratingsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ratings <pharmacy-id>",
		Short: "Show ratings of a pharmacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ratings, err := api.ratings.ReadPharmacyRatings(cmd.Context(), id)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), ratings)
		},
	}
}

// tiers [--sw --ne]: tier-лист области, по умолчанию весь земной шар
func tiersCmd() *cobra.Command {
	var sw, ne string

	cmd := &cobra.Command{
		Use:   "tiers",
		Short: "Show the pharmacy tier list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bounds, err := utils.ParseBounds(sw, ne)
			if err != nil {
				return err
			}

			var tiers []domain.PharmacyTierRating
			if bounds != nil {
				tiers, err = api.ratings.ReadPharmacyTierRatings(cmd.Context(), &bounds.SW, &bounds.NE)
			} else {
				tiers, err = api.ratings.ReadPharmacyTierRatings(cmd.Context(), nil, nil)
			}
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), tiers)
		},
	}
	cmd.Flags().StringVar(&sw, "sw", "", "south-west corner 'lat,lng'")
	cmd.Flags().StringVar(&ne, "ne", "", "north-east corner 'lat,lng'")
	return cmd
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return id, nil
}
