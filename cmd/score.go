package cmd

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/config"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/llm"
	"github.com/tailorcv/tailorcv/pkg/scorer"
)

//nolint:gochecknoglobals // Cobra boilerplate
var scoreData string

//nolint:gochecknoglobals // Cobra boilerplate
var scoreCmd = &cobra.Command{
	Use:   "score <jd-file-or-url>",
	Short: "Show relevance scores for a job description",
	Long: `Analyze a job description and print how each experience and project
scores against it, in selection order.

Useful for checking why particular records were picked before running a
full generation.

Example:
  tailorcv score jd.txt
  tailorcv score https://example.com/jobs/123`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().StringVar(&scoreData, "data", "", "Career data file (default from config)")
}

func runScore(_ *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	if !getVerbose() {
		logrus.SetLevel(logrus.WarnLevel)
	}

	// Load configuration
	var cfg config.Config
	cfg, err = config.Load(getConfigFile())
	if err != nil {
		err = errors.Wrap(err, "failed to load config")
		return err
	}

	// Fetch job description
	var jobDescription string
	jobDescription, err = fetchAndLogJD(args[0])
	if err != nil {
		return err
	}

	// Load career data
	dataPath := scoreData
	if dataPath == "" {
		dataPath = cfg.DataPath
	}
	data := career.LoadOrSample(dataPath)

	// Analyze
	gateway := llm.NewGateway(cfg.AnthropicAPIKey, cfg.Model)
	analyzer := jd.NewAnalyzer(gateway)
	profile := analyzer.Analyze(ctx, jobDescription)

	printProfile(profile)
	printExperienceScores(data.Experiences, profile)
	printProjectScores(data.Projects, profile)

	return err
}

func printProfile(profile jd.Profile) {
	fmt.Printf("Role type:      %s\n", profile.RoleType)
	fmt.Printf("Seniority:      %s\n", profile.SeniorityLevel)
	fmt.Printf("Industry:       %s\n", profile.IndustryContext)
	fmt.Printf("Primary skills: %s\n", strings.Join(profile.PrimarySkills, ", "))
	fmt.Printf("Technologies:   %s\n", strings.Join(profile.KeyTechnologies, ", "))
}

type scoredRow struct {
	name  string
	score int
}

// rankRows orders rows by score, keeping document order for ties the same
// way the selector does.
func rankRows(rows []scoredRow) (ranked []scoredRow) {
	ranked = rows
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	return ranked
}

func printExperienceScores(experiences []career.Experience, profile jd.Profile) {
	rows := make([]scoredRow, 0, len(experiences))
	for _, exp := range experiences {
		rows = append(rows, scoredRow{name: exp.Company, score: scorer.ScoreExperience(exp, profile)})
	}
	rows = rankRows(rows)

	fmt.Println("\nExperiences:")
	for i, row := range rows {
		marker := " "
		if i < scorer.ExperienceLimit {
			marker = "*"
		}
		fmt.Printf("  %s %2d. %-45.45s %3d\n", marker, i+1, row.name, row.score)
	}
	fmt.Printf("  (* = selected, top %d)\n", scorer.ExperienceLimit)
}

func printProjectScores(projects []career.Project, profile jd.Profile) {
	rows := make([]scoredRow, 0, len(projects))
	for _, project := range projects {
		rows = append(rows, scoredRow{name: project.Name, score: scorer.ScoreProject(project, profile)})
	}
	rows = rankRows(rows)

	fmt.Println("\nProjects:")
	for i, row := range rows {
		marker := " "
		if i < scorer.ProjectLimit {
			marker = "*"
		}
		fmt.Printf("  %s %2d. %-45.45s %3d\n", marker, i+1, row.name, row.score)
	}
	fmt.Printf("  (* = selected, top %d)\n", scorer.ProjectLimit)
}
