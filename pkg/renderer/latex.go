package renderer

import (
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/pkg/errors"

	"github.com/tailorcv/tailorcv/pkg/career"
	"github.com/tailorcv/tailorcv/pkg/jd"
	"github.com/tailorcv/tailorcv/pkg/tailor"
)

const maxSkillsPerLine = 6

// Template delimiters are << >> because the document source itself is full
// of braces.
const latexTemplate = `\documentclass[letterpaper,11pt]{article}

\usepackage{latexsym}
\usepackage[empty]{fullpage}
\usepackage{titlesec}
\usepackage{marvosym}
\usepackage[usenames,dvipsnames]{color}
\usepackage{verbatim}
\usepackage{enumitem}
\usepackage[hidelinks]{hyperref}
\usepackage{fancyhdr}
\usepackage[english]{babel}
\usepackage{tabularx}
\usepackage{fontawesome5}
\usepackage{multicol}
\setlength{\multicolsep}{-3.0pt}
\setlength{\columnsep}{-1pt}
\input{glyphtounicode}
\usepackage[margin=1.4cm]{geometry}

\pagestyle{fancy}
\fancyhf{}
\fancyfoot{}
\renewcommand{\headrulewidth}{0pt}
\renewcommand{\footrulewidth}{0pt}

\addtolength{\oddsidemargin}{-0.15in}
\addtolength{\textwidth}{0.3in}

\urlstyle{same}

\raggedbottom
\raggedright
\setlength{\tabcolsep}{0in}

\titleformat{\section}{
  \vspace{-4pt}\scshape\raggedright\large\bfseries
}{}{0em}{}[\color{black}\titlerule \vspace{-5pt}]

\pdfgentounicode=1

\newcommand{\resumeItem}[1]{
  \item\small{
    {#1 \vspace{0pt}}
  }
}

\newcommand{\resumeSubheading}[4]{
  \vspace{-2pt}\item
    \begin{tabular*}{1.001\textwidth}[t]{l@{\extracolsep{\fill}}r}
      \textbf{#1} & \textbf{\small #2} \\
      \textit{\small#3} & \textit{\small #4} \\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeProjectHeading}[2]{
    \item
    \begin{tabular*}{1.001\textwidth}{l@{\extracolsep{\fill}}r}
      \small#1 & \textbf{\small #2}\\
    \end{tabular*}\vspace{-7pt}
}

\newcommand{\resumeSubItem}[1]{\resumeItem{#1}\vspace{-4pt}}

\renewcommand\labelitemi{$\vcenter{\hbox{\tiny$\bullet$}}$}
\renewcommand\labelitemii{$\vcenter{\hbox{\tiny$\bullet$}}$}

\newcommand{\resumeSubHeadingListStart}{\begin{itemize}[leftmargin=0.0in, label={}]}
\newcommand{\resumeSubHeadingListEnd}{\end{itemize}}\vspace{0pt}
\newcommand{\resumeItemListStart}{\begin{itemize}}
\newcommand{\resumeItemListEnd}{\end{itemize}\vspace{-5pt}}

\begin{document}

\begin{center}
    {\Large \scshape <<.Name>>} \\[2mm]
    \footnotesize \raisebox{-0.1\height}
    <<.Contacts>>
    \vspace{-8pt}
\end{center}

\section{Professional Summary}
\small{
    <<.Summary>>
}
\vspace{-8pt}

\section{Work Experience}
    \resumeSubHeadingListStart
<<- range .Experiences>>
        \resumeSubheading
        {<<.Company>>}{<<.Duration>>}
        {<<.Role>>}{<<.JobType>>}
        \resumeItemListStart
<<- range .Bullets>>
            \resumeItem{<<.>>}
<<- end>>
        \resumeItemListEnd
<<- end>>
    \resumeSubHeadingListEnd

\section{Projects}
    \vspace{-5pt}
    \resumeSubHeadingListStart
<<- range .Projects>>
        \resumeProjectHeading
        {\textbf{<<.Name>>} $|$ \emph{<<.TechStack>>}}{}
        \resumeItemListStart
<<- range .Bullets>>
            \resumeItem{<<.>>}
<<- end>>
        \resumeItemListEnd
<<- end>>
    \resumeSubHeadingListEnd

\section{Technical Skills}
 \begin{itemize}[leftmargin=0.15in, label={}]
    \small{\item{
<<- range .SkillLines>>
        \textbf{<<.Label>>:} <<.Items>> \\
<<- end>>
    }}
 \end{itemize}

\end{document}
`

//nolint:gochecknoglobals // Parsed once at startup
var cvTemplate = template.Must(template.New("cv").Delims("<<", ">>").Parse(latexTemplate))

//nolint:gochecknoglobals // Built once at startup
var latexEscaper = strings.NewReplacer(
	"&", `\&`,
	"%", `\%`,
	"$", `\$`,
	"#", `\#`,
	"_", `\_`,
	"{", `\{`,
	"}", `\}`,
	"~", `\textasciitilde{}`,
	"^", `\textasciicircum{}`,
)

// skillLabels names the five skill categories for one role flavor.
type skillLabels struct {
	Languages  string
	Frameworks string
	Tools      string
	Cloud      string
	Other      string
}

//nolint:gochecknoglobals // Static lookup table
var skillLabelsByRole = map[jd.RoleCategory]skillLabels{
	jd.RoleMobile: {
		Languages:  "Languages",
		Frameworks: "Mobile Frameworks",
		Tools:      "Development Tools",
		Cloud:      "Cloud & Backend",
		Other:      "Mobile Technologies",
	},
	jd.RoleAIML: {
		Languages:  "Programming Languages",
		Frameworks: "ML/AI Frameworks",
		Tools:      "Data Science Tools",
		Cloud:      "Cloud Platforms",
		Other:      "Specializations",
	},
	jd.RoleFrontend: {
		Languages:  "Languages",
		Frameworks: "Frontend Frameworks",
		Tools:      "Development Tools",
		Cloud:      "Deployment & Cloud",
		Other:      "UI/UX & Design",
	},
	jd.RoleBackend: {
		Languages:  "Programming Languages",
		Frameworks: "Backend Frameworks",
		Tools:      "Databases & Tools",
		Cloud:      "Cloud & Infrastructure",
		Other:      "Architecture & APIs",
	},
}

//nolint:gochecknoglobals // Labels for roles without a curated set
var defaultSkillLabels = skillLabels{
	Languages:  "Languages",
	Frameworks: "Frameworks",
	Tools:      "Tools & Databases",
	Cloud:      "Cloud & DevOps",
	Other:      "Technologies",
}

type documentView struct {
	Name        string
	Contacts    string
	Summary     string
	Experiences []experienceView
	Projects    []projectView
	SkillLines  []skillLine
}

type experienceView struct {
	Company  string
	Duration string
	Role     string
	JobType  string
	Bullets  []string
}

type projectView struct {
	Name      string
	TechStack string
	Bullets   []string
}

type skillLine struct {
	Label string
	Items string
}

// LaTeX renders tailored CV content into standalone LaTeX document source.
type LaTeX struct{}

// NewLaTeX creates a LaTeX renderer.
func NewLaTeX() (renderer *LaTeX) {
	renderer = &LaTeX{}
	return renderer
}

// Render builds the document source for one tailored CV. Every free-text
// field is escaped before it reaches the template.
func (l *LaTeX) Render(doc tailor.Document) (document string, err error) {
	view := documentView{
		Name:        Escape(doc.Profile.Name),
		Contacts:    buildContactLine(doc.Profile),
		Summary:     Escape(doc.Summary),
		Experiences: buildExperienceViews(doc.Experiences),
		Projects:    buildProjectViews(doc.Projects),
		SkillLines:  buildSkillLines(doc.Skills, doc.Analysis),
	}

	var builder strings.Builder
	err = cvTemplate.Execute(&builder, view)
	if err != nil {
		err = errors.Wrap(err, "failed to execute document template")
		return document, err
	}

	document = builder.String()

	return document, err
}

// Escape replaces LaTeX special characters in free text.
func Escape(text string) (escaped string) {
	escaped = latexEscaper.Replace(text)
	return escaped
}

// WriteDocument writes rendered document source to a file, creating the
// output directory when needed.
func WriteDocument(content, outputPath string) (err error) {
	outputDir := filepath.Dir(outputPath)
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return err
	}

	err = os.WriteFile(outputPath, []byte(content), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write document: %s", outputPath)
		return err
	}

	return err
}

func buildContactLine(profile career.Profile) (line string) {
	parts := make([]string, 0, 5)

	if profile.Phone != "" {
		parts = append(parts, `\faPhone\ {`+Escape(profile.Phone)+`}`)
	}

	if profile.Email != "" {
		parts = append(parts, `{\faEnvelope\ {`+Escape(profile.Email)+`}}`)
	}

	if profile.LinkedIn != "" {
		parts = append(parts, `{\faLinkedin\ \underline{\href{`+profile.LinkedIn+`}{`+Escape(linkLabel(profile.LinkedIn))+`}}}`)
	}

	if profile.GitHub != "" {
		parts = append(parts, `{\faGithub\ \underline{\href{`+profile.GitHub+`}{`+Escape(linkLabel(profile.GitHub))+`}}}`)
	}

	if profile.Location != "" {
		parts = append(parts, `{\faMapMarker\ {`+Escape(profile.Location)+`}}`)
	}

	line = strings.Join(parts, " ~ \n    ")

	return line
}

// linkLabel shortens a profile URL into display text.
func linkLabel(url string) (label string) {
	label = strings.TrimPrefix(url, "https://")
	label = strings.TrimPrefix(label, "http://")
	label = strings.TrimPrefix(label, "www.")
	label = strings.TrimSuffix(label, "/")

	return label
}

func buildExperienceViews(experiences []tailor.TailoredExperience) (views []experienceView) {
	views = make([]experienceView, 0, len(experiences))

	for _, exp := range experiences {
		views = append(views, experienceView{
			Company:  Escape(exp.Company),
			Duration: Escape(exp.Duration),
			Role:     Escape(exp.Role),
			JobType:  Escape(exp.JobType),
			Bullets:  escapeAll(exp.Bullets),
		})
	}

	return views
}

func buildProjectViews(projects []tailor.TailoredProject) (views []projectView) {
	views = make([]projectView, 0, len(projects))

	for _, project := range projects {
		views = append(views, projectView{
			Name:      Escape(project.Name),
			TechStack: Escape(project.TechStack),
			Bullets:   escapeAll(project.Bullets),
		})
	}

	return views
}

// buildSkillLines lays out the skills section with labels matched to the
// role category. Empty categories are skipped.
func buildSkillLines(skills tailor.Skills, analysis jd.Profile) (lines []skillLine) {
	labels, ok := skillLabelsByRole[analysis.Role()]
	if !ok {
		labels = defaultSkillLabels
	}

	categories := []struct {
		label string
		items []string
	}{
		{label: labels.Languages, items: skills.Languages},
		{label: labels.Frameworks, items: skills.Frameworks},
		{label: labels.Tools, items: skills.Tools},
		{label: labels.Cloud, items: skills.Cloud},
		{label: labels.Other, items: skills.Other},
	}

	lines = make([]skillLine, 0, len(categories))

	for _, category := range categories {
		if len(category.items) == 0 {
			continue
		}

		items := category.items
		if len(items) > maxSkillsPerLine {
			items = items[:maxSkillsPerLine]
		}

		lines = append(lines, skillLine{
			Label: Escape(category.label),
			Items: Escape(strings.Join(items, ", ")),
		})
	}

	return lines
}

func escapeAll(items []string) (escaped []string) {
	escaped = make([]string, 0, len(items))

	for _, item := range items {
		escaped = append(escaped, Escape(item))
	}

	return escaped
}
