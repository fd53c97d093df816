package cmd

import (
	"fmt"
	"strings"

	"github.com/edupath/pathfinder/internal/catalog"
	"github.com/spf13/cobra"
)

var domainsCmd = &cobra.Command{
	Use:   "domains",
	Short: "Browse the career catalog",
}

var domainsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all career domains",
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Printf("%-34s  %-8s  %-12s  %-14s  %s\n",
			"Role", "Trend", "Avg Salary", "Openings", "Difficulty")
		fmt.Println(strings.Repeat("─", 90))
		for _, d := range catalog.Domains {
			fmt.Printf("%-34s  %-8s  %-12s  %-14s  %s\n",
				d.Role, d.Trend, d.AvgSalary, d.Openings, d.Difficulty)
		}
		return nil
	},
}

var domainsShowCmd = &cobra.Command{
	Use:   "show <role>",
	Short: "Show one domain's market card",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		role := strings.Join(args, " ")
		d := catalog.DomainByRole(catalog.CareerRole(role))
		if d == nil {
			return fmt.Errorf("unknown role %q (try: pathfinder domains list)", role)
		}

		fmt.Println(d.Role)
		fmt.Println(strings.Repeat("─", len(d.Role)))
		fmt.Println(d.Description)
		fmt.Println()
		fmt.Printf("Average salary:  %s\n", d.AvgSalary)
		fmt.Printf("Open positions:  %s\n", d.Openings)
		fmt.Printf("Hiring trend:    %s\n", d.Trend)
		fmt.Printf("Difficulty:      %s\n", d.Difficulty)
		fmt.Println()
		fmt.Println("Demand by year:")
		for _, s := range d.MarketStats {
			fmt.Printf("  %s  demand %3d  salary %d\n", s.Year, s.Demand, s.Salary)
		}
		return nil
	},
}

var domainsCoursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "List courses, optionally filtered by search query",
	RunE: func(cmd *cobra.Command, args []string) error {
		query, _ := cmd.Flags().GetString("search")

		results := catalog.SearchCourses(query)
		if len(results) == 0 {
			fmt.Println("No courses match.")
			return nil
		}

		fmt.Printf("%-12s  %-44s  %-10s  %-5s  %s\n",
			"ID", "Title", "Provider", "Free", "Rating")
		fmt.Println(strings.Repeat("─", 90))
		for _, c := range results {
			free := "no"
			if c.IsFree {
				free = "yes"
			}
			fmt.Printf("%-12s  %-44s  %-10s  %-5s  %.2f\n",
				c.ID, truncate(c.Title, 44), c.Provider, free, c.Rating)
		}
		return nil
	},
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}

func init() {
	domainsCoursesCmd.Flags().StringP("search", "s", "", "Filter by title, provider, or domain substring")

	domainsCmd.AddCommand(domainsListCmd)
	domainsCmd.AddCommand(domainsShowCmd)
	domainsCmd.AddCommand(domainsCoursesCmd)
}
