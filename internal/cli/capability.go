package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"paykit/capability"
	"paykit/catalog"
	"paykit/currency"
	"paykit/payment"
)

var (
	checkType     string
	checkAmount   int64
	checkCurrency string
	checkTerms    int
)

func newCapabilityCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "capability",
		Short: "Inspect the merchant capability document",
		RunE:  runCapabilityShow,
	}

	cmd.AddCommand(
		newCapabilityCatalogCommand(),
		newCapabilityCheckCommand(),
	)

	return cmd
}

func newCapabilityCatalogCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the selectable payment options in presentation order",
		RunE:  runCapabilityCatalog,
	}
}

func newCapabilityCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check whether a payment would be admissible",
		RunE:  runCapabilityCheck,
	}

	cmd.Flags().StringVar(&checkType, "type", "", "Payment method type tag")
	cmd.Flags().Int64Var(&checkAmount, "amount", 0, "Amount in currency subunits")
	cmd.Flags().StringVar(&checkCurrency, "currency", "THB", "Currency code")
	cmd.Flags().IntVar(&checkTerms, "terms", 0, "Installment terms, for installment types")
	cmd.MarkFlagRequired("type")
	cmd.MarkFlagRequired("amount")

	return cmd
}

func runCapabilityShow(cmd *cobra.Command, args []string) error {
	c, _, err := setup()
	if err != nil {
		return err
	}
	doc, err := c.Capability(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Printf("location:       %s\n", doc.Location)
	fmt.Printf("charge limit:   %d..%d\n", doc.ChargeLimit.Min, doc.ChargeLimit.Max)
	fmt.Printf("transfer limit: %d..%d\n", doc.TransferLimit.Min, doc.TransferLimit.Max)
	fmt.Printf("backends:\n")
	for _, backend := range doc.Backends {
		fmt.Printf("  %s\n", backend.Key)
	}
	return nil
}

func runCapabilityCatalog(cmd *cobra.Command, args []string) error {
	c, _, err := setup()
	if err != nil {
		return err
	}
	doc, err := c.Capability(cmd.Context())
	if err != nil {
		return err
	}

	for _, option := range catalog.FromCapability(doc) {
		marker := " "
		if option.RequiresAdditionalDetails {
			marker = ">"
		}
		fmt.Printf("%s %-24s %s\n", marker, option.Key, option.Title)
	}
	return nil
}

func runCapabilityCheck(cmd *cobra.Command, args []string) error {
	c, _, err := setup()
	if err != nil {
		return err
	}
	doc, err := c.Capability(cmd.Context())
	if err != nil {
		return err
	}

	method, err := methodFromFlags(checkType)
	if err != nil {
		return err
	}

	admissible := capability.Admissible(doc, capability.Request{
		Method:   method,
		Amount:   checkAmount,
		Currency: currency.New(checkCurrency),
	})
	if !admissible {
		return fmt.Errorf("%s %d %s: not admissible", checkType, checkAmount, checkCurrency)
	}
	fmt.Printf("%s %d %s: admissible\n", checkType, checkAmount, checkCurrency)
	return nil
}

// methodFromFlags assembles a payload from the flag values and runs it
// through the wire decoder, so flag handling stays in lockstep with decoding.
func methodFromFlags(typeTag string) (payment.Method, error) {
	fields := map[string]any{"type": typeTag}
	if checkTerms > 0 {
		fields["installment_term"] = checkTerms
	}
	return decodeMethodFields(fields)
}
