package commands

import (
	"fmt"

	"github.com/perchworks/restock/pkg/engine"
	"github.com/perchworks/restock/pkg/report"
	"github.com/spf13/cobra"
)

var (
	inventoryPath string
	exportCSV     string
	exportJSON    string
	pickPolicy    bool
)

var PlanCmd = &cobra.Command{
	Use:   "plan",
	Short: "Compute the next replenishment order",
	Long: `Simulate future demand from the inventory snapshot and build a
replenishment order with the selected policy (or all of them side by side).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if pickPolicy && !cmd.Flags().Changed("policy") {
			chosen, err := PromptForPolicy()
			if err == nil && chosen != "" {
				plan.Policy = chosen
			}
		}

		eng, err := engine.New(cmd.Context(),
			engine.WithLogger(newLogger()),
			engine.WithConfig(engine.Config{
				Plan:          plan,
				InventoryPath: inventoryPath,
			}),
		)
		if err != nil {
			return err
		}

		res, err := eng.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Println(report.Render(res))

		if exportCSV != "" {
			if err := report.WriteCSV(res, exportCSV); err != nil {
				return err
			}
			fmt.Printf("CSV written to %s\n", exportCSV)
		}
		if exportJSON != "" {
			if err := report.WriteJSON(res, exportJSON); err != nil {
				return err
			}
			fmt.Printf("JSON written to %s\n", exportJSON)
		}
		return nil
	},
}

func init() {
	PlanCmd.Flags().StringVarP(&inventoryPath, "inventory", "i", "inventory.csv", "Inventory snapshot CSV")
	PlanCmd.Flags().StringVar(&plan.Policy, "policy", plan.Policy, "Policy: worstcase, industry, heuristic, optimized, or all")
	PlanCmd.Flags().IntVar(&plan.OrderSize, "order-size", plan.OrderSize, "Total units in the order")
	PlanCmd.Flags().Int64Var(&plan.Seed, "seed", plan.Seed, "RNG seed for reproducible runs")
	PlanCmd.Flags().IntVar(&plan.SimSize, "sim-size", plan.SimSize, "Number of simulated demand worlds")
	PlanCmd.Flags().Float64Var(&plan.Pseudocount, "pseudocount", plan.Pseudocount, "Prior concentration pseudocount")
	PlanCmd.Flags().IntVar(&plan.MaxDist, "max-dist", plan.MaxDist, "Optimized search radius in unit transfers")
	PlanCmd.Flags().BoolVar(&pickPolicy, "pick", false, "Choose the policy interactively")
	PlanCmd.Flags().StringVar(&exportCSV, "csv", "", "Also write the order table to this CSV file")
	PlanCmd.Flags().StringVar(&exportJSON, "json", "", "Also write the order table to this JSON file")
}
