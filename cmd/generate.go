package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/config"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/llm"
	"github.com/tailorcv/tailorcv/pkg/renderer"
	"github.com/tailorcv/tailorcv/pkg/tailor"
)

//nolint:gochecknoglobals // Cobra boilerplate
var company string

//nolint:gochecknoglobals // Cobra boilerplate
var generateData string

//nolint:gochecknoglobals // Cobra boilerplate
var outputDir string

//nolint:gochecknoglobals // Cobra boilerplate
var generateCmd = &cobra.Command{
	Use:   "generate <jd-file-or-url>",
	Short: "Generate a tailored CV from a job description",
	Long: `Generate a tailored LaTeX CV based on a job description.

The job description can be provided as:
- A file path (e.g., jd.txt)
- A URL (e.g., https://example.com/jobs/123)

Example:
  tailorcv generate jd.txt
  tailorcv generate https://example.com/jobs/123 --company "Acme Corp"
  tailorcv generate jd.txt --output-dir ~/Documents/Applications`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&company, "company", "", "Company name, used for the output filename")
	generateCmd.Flags().StringVar(&generateData, "data", "", "Career data file (default from config)")
	generateCmd.Flags().StringVar(&outputDir, "output-dir", "", "Output directory (default from config)")
}

func runGenerate(_ *cobra.Command, args []string) (err error) {
	ctx := context.Background()
	ctx, cancel := context.WithTimeout(ctx, 5*time.Minute)
	defer cancel()

	// Keep component diagnostics off the spinner line unless asked for
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
	dataPath := generateData
	if dataPath == "" {
		dataPath = cfg.DataPath
	}
	data := career.LoadOrSample(dataPath)

	// Run the pipeline
	gateway := llm.NewGateway(cfg.AnthropicAPIKey, cfg.Model)
	engine := tailor.NewEngine(gateway, data, renderer.NewLaTeX())

	var result tailor.Result
	result, err = runPipeline(ctx, engine, jobDescription)
	if err != nil {
		return err
	}

	// Write outputs
	outDir := outputDir
	if outDir == "" {
		outDir = cfg.OutputDir
	}

	var texPath string
	texPath, err = writeOutputs(outDir, jobDescription, result)
	if err != nil {
		return err
	}

	printSelectionSummary(result, texPath)

	return err
}

// runPipeline runs the tailoring engine with a progress indicator.
func runPipeline(ctx context.Context, engine *tailor.Engine, jobDescription string) (result tailor.Result, err error) {
	var genSpinner *spinner
	if !getVerbose() {
		genSpinner = newSpinner("Analyzing job description and tailoring CV...")
		genSpinner.start()
	} else {
		fmt.Println("Analyzing job description and tailoring CV...")
	}

	result, err = engine.Run(ctx, jobDescription)

	if genSpinner != nil {
		genSpinner.stopSpinner()
	}

	if err != nil {
		err = errors.Wrap(err, "CV generation failed")
		return result, err
	}

	if !getVerbose() {
		fmt.Println("✓ Generation complete")
	}

	return result, err
}

// writeOutputs writes the LaTeX document and the job description text next
// to each other in the output directory.
func writeOutputs(outDir, jobDescription string, result tailor.Result) (texPath string, err error) {
	base := buildBaseFilename(company, result.Analysis.RoleType)
	texPath = filepath.Join(outDir, base+"-cv.tex")
	jdPath := filepath.Join(outDir, base+"-jd.txt")

	err = renderer.WriteDocument(result.LaTeX, texPath)
	if err != nil {
		err = errors.Wrap(err, "failed to write CV document")
		return texPath, err
	}

	err = os.WriteFile(jdPath, []byte(jobDescription), 0600)
	if err != nil {
		err = errors.Wrap(err, "failed to write job description file")
		return texPath, err
	}

	return texPath, err
}

// buildBaseFilename derives the output filename stem from the company flag,
// falling back to the analyzed role type.
func buildBaseFilename(company, roleType string) (base string) {
	base = sanitizeFilename(company)
	if base == "" {
		base = sanitizeFilename(roleType)
	}
	if base == "" {
		base = "tailored"
	}
	return base
}

func printSelectionSummary(result tailor.Result, texPath string) {
	fmt.Printf("\nRole type: %s (%s, %s)\n",
		result.Analysis.RoleType, result.Analysis.SeniorityLevel, result.Analysis.IndustryContext)
	fmt.Printf("Experiences: selected %d/%d\n",
		result.SelectionInfo.SelectedExperiences, result.SelectionInfo.TotalExperiences)
	fmt.Printf("Projects: selected %d/%d\n",
		result.SelectionInfo.SelectedProjects, result.SelectionInfo.TotalProjects)
	fmt.Printf("\nCV written to: %s\n", texPath)
}

func fetchAndLogJD(jdInput string) (jobDescription string, err error) {
	if getVerbose() {
		fmt.Printf("Loading job description from: %s\n", jdInput)
	}

	jobDescription, err = jd.Fetch(jdInput)
	if err != nil {
		// If fetching failed, offer to accept manual input
		fmt.Printf("\nWarning: Failed to fetch job description: %v\n", err)
		fmt.Println("This often happens with JavaScript-rendered pages (Lever, Workable, etc.)")
		fmt.Println("\nPlease paste the job description text below.")
		fmt.Println("When finished, press Ctrl+D (Unix/Mac) or Ctrl+Z then Enter (Windows):")
		fmt.Println()

		scanner := bufio.NewScanner(os.Stdin)
		var lines []string
		for scanner.Scan() {
			lines = append(lines, scanner.Text())
		}

		if scanner.Err() != nil {
			err = errors.Wrap(scanner.Err(), "failed to read job description from stdin")
			return jobDescription, err
		}

		jobDescription = strings.Join(lines, "\n")
		jobDescription = strings.TrimSpace(jobDescription)

		if jobDescription == "" {
			err = errors.New("no job description provided")
			return jobDescription, err
		}

		fmt.Printf("\nJob description received (%d characters)\n", len(jobDescription))
		err = nil
		return jobDescription, err
	}

	if getVerbose() {
		fmt.Printf("Job description loaded (%d characters)\n", len(jobDescription))
	}

	return jobDescription, err
}

// spinner provides a simple text-based progress indicator.
type spinner struct {
	message string
	stop    chan bool
	done    chan bool
	mu      sync.Mutex
	active  bool
}

func newSpinner(message string) (s *spinner) {
	s = &spinner{
		message: message,
		stop:    make(chan bool),
		done:    make(chan bool),
	}
	return s
}

func (s *spinner) start() {
	s.mu.Lock()
	if s.active {
		s.mu.Unlock()
		return
	}
	s.active = true
	s.mu.Unlock()

	go func() {
		chars := []string{"|", "/", "-", "\\"}
		i := 0
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()

		fmt.Printf("%s ", s.message)
		for {
			select {
			case <-s.stop:
				// Clear the line and ensure cursor is at start of new line
				fmt.Printf("\r%s\r", strings.Repeat(" ", len(s.message)+2))
				s.done <- true
				return
			case <-ticker.C:
				fmt.Printf("\r%s %s", s.message, chars[i%len(chars)])
				i++
			}
		}
	}()
}

func (s *spinner) stopSpinner() {
	s.mu.Lock()
	if !s.active {
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()

	s.stop <- true
	<-s.done

	s.mu.Lock()
	s.active = false
	s.mu.Unlock()
}

func sanitizeFilename(name string) (sanitized string) {
	// Remove common company suffixes
	suffixes := []string{
		" LLC", " llc",
		" Inc.", " inc.",
		" Inc", " inc",
		" Corporation", " corporation",
		" Corp.", " corp.",
		" Corp", " corp",
		" Limited", " limited",
		" Ltd.", " ltd.",
		" Ltd", " ltd",
		" Co.", " co.",
		" Co", " co",
		", LLC", ", llc",
		", Inc.", ", inc.",
		", Inc", ", inc",
	}

	sanitized = name
	for _, suffix := range suffixes {
		sanitized = strings.TrimSuffix(sanitized, suffix)
	}

	// Convert to lowercase
	sanitized = strings.ToLower(sanitized)

	// Replace spaces and special chars with hyphens
	sanitized = strings.Map(func(r rune) (result rune) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			result = r
			return result
		}
		result = '-'
		return result
	}, sanitized)

	// Remove consecutive hyphens
	for strings.Contains(sanitized, "--") {
		sanitized = strings.ReplaceAll(sanitized, "--", "-")
	}

	// Trim hyphens from ends
	sanitized = strings.Trim(sanitized, "-")

	return sanitized
}
