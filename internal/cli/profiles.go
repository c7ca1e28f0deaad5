package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/layoutrail/pkg/platform"
	"github.com/matzehuels/layoutrail/pkg/rules"
)

// profilesCommand creates the profiles command listing the rules in effect.
func (c *CLI) profilesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "Show platform safe zones and thresholds",
		Long: `Show the platform profiles and thresholds layouts are checked against.

Profiles from a rules file (--rules, or the rules file in the config
directory) are listed next to the built-in ones.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rs, err := c.loadRules()
			if err != nil {
				return fmt.Errorf("load rules: %w", err)
			}
			c.printRuleset(rs)
			return nil
		},
	}
}

// printRuleset writes the profile table and thresholds to the output stream.
func (c *CLI) printRuleset(rs *rules.Ruleset) {
	ui := c.ui()

	ui.title("Platform profiles")
	profiles := rs.Profiles()
	for _, id := range rs.ProfileIDs() {
		p := profiles[id]
		var tags []string
		if id == platform.DefaultFormatID {
			tags = append(tags, "default")
		}
		if id == platform.FallbackFormatID {
			tags = append(tags, "fallback")
		}
		if _, builtin := platform.Lookup(id); !builtin {
			tags = append(tags, "custom")
		}
		ui.profile(id, p, tags)
	}
	ui.newline()

	ui.title("Thresholds")
	ui.keyValue("CTA minimum", fmt.Sprintf("%gx%gpx", rs.CTAMinWidthPx, rs.CTAMinHeightPx))
	ui.keyValue("Legal scale", fmt.Sprintf("%g", rs.LegalMinScale))
}
