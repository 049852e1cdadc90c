package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pharmafinder-client/internal/domain"
	"github.com/pharmafinder-client/internal/infrastructure/pharmaapi"
	"github.com/pharmafinder-client/internal/pkg/validator"
)

// reviews <id> [--k --uk | --all]: одна страница отзывов или все страницы подряд
func reviewsCmd() *cobra.Command {
	var (
		key, uniqueKey int64
		all            bool
	)

	cmd := &cobra.Command{
		Use:   "reviews <pharmacy-id>",
		Short: "List reviews of a pharmacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}

			keySet, ukSet := cmd.Flags().Changed("k"), cmd.Flags().Changed("uk")
			if keySet != ukSet {
				return fmt.Errorf("--k and --uk must be given together")
			}
			var cursor *domain.ReviewCursor
			if keySet {
				cursor = &domain.ReviewCursor{Key: key, UniqueKey: uniqueKey}
			}

			pager := api.reviewUC.NewPagerAt(id, cursor)
			for {
				if _, err := pager.Next(cmd.Context()); err != nil {
					return describe(err)
				}
				if !all || pager.Done() {
					break
				}
			}
			return printJSON(cmd.OutOrStdout(), pager.Loaded())
		},
	}
	cmd.Flags().Int64Var(&key, "k", 0, "cursor: updatedAt of the last seen review (unix ms)")
	cmd.Flags().Int64Var(&uniqueKey, "uk", 0, "cursor: id of the last seen review")
	cmd.Flags().BoolVar(&all, "all", false, "follow the cursor until the last page")
	return cmd
}

// review create|update|delete: запись одного отзыва
func reviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review",
		Short: "Create, update or delete a review",
	}
	cmd.AddCommand(reviewCreateCmd(), reviewUpdateCmd(), reviewDeleteCmd())
	return cmd
}

type reviewFlags struct {
	prescriptionType string
	stars            int
	hrtKind          string
	nationality      string
	text             string
}

func (f *reviewFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.prescriptionType, "prescription", "", "prescription type")
	cmd.Flags().IntVar(&f.stars, "stars", 0, "stars, 1..5")
	cmd.Flags().StringVar(&f.hrtKind, "hrt", "", "HRT kind")
	cmd.Flags().StringVar(&f.nationality, "nationality", "", "ISO 3166-1 alpha-2 country code")
	cmd.Flags().StringVar(&f.text, "text", "", "review text")
	_ = cmd.MarkFlagRequired("prescription")
	_ = cmd.MarkFlagRequired("stars")
	_ = cmd.MarkFlagRequired("hrt")
}

func (f *reviewFlags) review() (domain.PharmacyReview, error) {
	review := domain.PharmacyReview{
		PrescriptionType: f.prescriptionType,
		Stars:            f.stars,
		HRTKind:          f.hrtKind,
	}
	if f.nationality != "" {
		review.Nationality = &f.nationality
	}
	if f.text != "" {
		review.Review = &f.text
	}

	if err := validator.Validate(&review); err != nil {
		return domain.PharmacyReview{}, fmt.Errorf("invalid review: %w", err)
	}
	return review, nil
}

func reviewCreateCmd() *cobra.Command {
	var flags reviewFlags

	cmd := &cobra.Command{
		Use:   "create <pharmacy-id>",
		Short: "Submit a new review; prints the modification code",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			review, err := flags.review()
			if err != nil {
				return err
			}

			created, err := api.reviews.CreateReview(cmd.Context(), id, review)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), created)
		},
	}
	flags.bind(cmd)
	return cmd
}

func reviewUpdateCmd() *cobra.Command {
	var (
		flags   reviewFlags
		modCode string
	)

	cmd := &cobra.Command{
		Use:   "update <pharmacy-id> <review-id>",
		Short: "Modify a review with its modification code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pharmacyID, err := parseID(args[0])
			if err != nil {
				return err
			}
			reviewID, err := parseID(args[1])
			if err != nil {
				return err
			}
			review, err := flags.review()
			if err != nil {
				return err
			}
			review.ID = &reviewID
			review.ModCode = &modCode

			updated, err := api.reviews.UpdateReview(cmd.Context(), pharmacyID, review)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), updated)
		},
	}
	flags.bind(cmd)
	cmd.Flags().StringVar(&modCode, "mod-code", "", "modification code returned on create")
	_ = cmd.MarkFlagRequired("mod-code")
	return cmd
}

func reviewDeleteCmd() *cobra.Command {
	var modCode string

	cmd := &cobra.Command{
		Use:   "delete <pharmacy-id> <review-id>",
		Short: "Delete a review with its modification code",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			pharmacyID, err := parseID(args[0])
			if err != nil {
				return err
			}
			reviewID, err := parseID(args[1])
			if err != nil {
				return err
			}

			deleted, err := api.reviews.DeleteReview(cmd.Context(), pharmacyID, reviewID, modCode)
			if err != nil {
				return describe(err)
			}
			return printJSON(cmd.OutOrStdout(), deleted)
		},
	}
	cmd.Flags().StringVar(&modCode, "mod-code", "", "modification code returned on create")
	_ = cmd.MarkFlagRequired("mod-code")
	return cmd
}

// describe добавляет к ошибке API тип сбоя и сообщение сервера
func describe(err error) error {
	switch pharmaapi.KindOf(err) {
	case pharmaapi.KindApplication:
		return fmt.Errorf("api rejected request (status %d): %w", pharmaapi.StatusOf(err), err)
	case pharmaapi.KindTransport:
		return fmt.Errorf("api unreachable: %w", err)
	case pharmaapi.KindDecode:
		return fmt.Errorf("unexpected api response: %w", err)
	}
	return err
}
