// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/affilscan/internal/classify"
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a single author without contacting the API",
	Long: `Classify applies the same rules as scan to one author: any affiliation
matching a known Chinese institution wins, otherwise the name is checked for
Han characters or a common pinyin surname prefix.`,
	Example: `  affilscan classify --name "Zhang Wei"
  affilscan classify --name "Smith John" --affiliation "Beijing Forestry University"`,
	PreRunE: bindReference,
	RunE:    runClassify,
}

func init() {
	classifyCmd.Flags().String("name", "", "author name as family + space + given")
	classifyCmd.Flags().StringArray("affiliation", nil, "affiliation string (repeatable)")
	classifyCmd.Flags().String("reference", "", "YAML file replacing the built-in lists")
	classifyCmd.Flags().Bool("json", false, "output the decision as JSON")

	rootCmd.AddCommand(classifyCmd)
}

func runClassify(cmd *cobra.Command, args []string) error {
	name, _ := cmd.Flags().GetString("name")
	affs, _ := cmd.Flags().GetStringArray("affiliation")
	if name == "" && len(affs) == 0 {
		return fmt.Errorf("provide --name, --affiliation, or both")
	}

	rs, err := loadReference(viper.GetString("reference"))
	if err != nil {
		return &configError{err: err}
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return writeDecision(cmd.OutOrStdout(), classify.New(rs), name, affs, jsonOutput)
}

// bindReference points the shared "reference" key at the running command's
// flag, so the config file and AFFILSCAN_REFERENCE apply as they do for scan.
func bindReference(cmd *cobra.Command, args []string) error {
	return viper.BindPFlag("reference", cmd.Flags().Lookup("reference"))
}

// decisionOutput is the JSON shape printed by classify --json.
type decisionOutput struct {
	Name         string   `json:"name"`
	Affiliations []string `json:"affiliations"`
	IsChinese    bool     `json:"is_chinese"`
	Evidence     string   `json:"evidence"`
	HanScript    bool     `json:"han_script"`
	PinyinPrefix bool     `json:"pinyin_prefix"`
}

func writeDecision(w io.Writer, c *classify.Classifier, name string, affs []string, jsonOutput bool) error {
	d := c.Author(name, affs)
	out := decisionOutput{
		Name:         name,
		Affiliations: affs,
		IsChinese:    d.IsChinese,
		Evidence:     string(d.Evidence),
		HanScript:    c.ContainsHanScript(name),
		PinyinPrefix: c.HasChinesePinyinPrefix(name),
	}
	if out.Affiliations == nil {
		out.Affiliations = []string{}
	}

	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	evidence := out.Evidence
	if evidence == "" {
		evidence = "none"
	}
	fmt.Fprintf(w, "chinese: %t (evidence: %s)\n", out.IsChinese, evidence)
	return nil
}

var refdataCmd = &cobra.Command{
	Use:   "refdata",
	Short: "Print the effective reference lists as YAML",
	Long: `Refdata prints the surname and institution lists in the format accepted by
--reference. Use it as a starting point for a custom reference file.`,
	PreRunE: bindReference,
	RunE: func(cmd *cobra.Command, args []string) error {
		rs, err := loadReference(viper.GetString("reference"))
		if err != nil {
			return &configError{err: err}
		}
		return rs.WriteYAML(cmd.OutOrStdout())
	},
}

func init() {
	refdataCmd.Flags().String("reference", "", "YAML file to load instead of the built-in lists")
	rootCmd.AddCommand(refdataCmd)
}

