package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paykit/client"
)

var (
	cardName   string
	cardNumber string
	cardMonth  int
	cardYear   int
	cardCVV    string
	cardCity   string
	cardPostal string
)

func newTokenCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Work with card tokens",
	}
	cmd.AddCommand(newTokenCreateCommand())
	return cmd
}

func newTokenCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Tokenize a card against the vault",
		RunE:  runTokenCreate,
	}

	cmd.Flags().StringVar(&cardName, "name", "", "Card holder name")
	cmd.Flags().StringVar(&cardNumber, "number", "", "Card number")
	cmd.Flags().IntVar(&cardMonth, "month", 0, "Expiration month (1-12)")
	cmd.Flags().IntVar(&cardYear, "year", 0, "Expiration year")
	cmd.Flags().StringVar(&cardCVV, "cvv", "", "Security code")
	cmd.Flags().StringVar(&cardCity, "city", "", "Issuing city")
	cmd.Flags().StringVar(&cardPostal, "postal", "", "Postal code")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("number")
	cmd.MarkFlagRequired("month")
	cmd.MarkFlagRequired("year")
	cmd.MarkFlagRequired("cvv")

	return cmd
}

func runTokenCreate(cmd *cobra.Command, args []string) error {
	c, _, err := setup()
	if err != nil {
		return err
	}

	token, err := c.CreateToken(cmd.Context(), client.CardParams{
		Name:            cardName,
		Number:          cardNumber,
		ExpirationMonth: cardMonth,
		ExpirationYear:  cardYear,
		SecurityCode:    cardCVV,
		City:            cardCity,
		PostalCode:      cardPostal,
	})
	if err != nil {
		return err
	}

	fmt.Printf("created %s (%s ending %s)\n", token.ID, token.Card.Brand, token.Card.LastDigits)
	return printJSON(map[string]any{
		"id":            token.ID,
		"used":          token.Used,
		"charge_status": token.ChargeStatus,
		"card_brand":    token.Card.Brand,
		"last_digits":   token.Card.LastDigits,
	})
}
