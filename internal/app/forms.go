package app

import tea "github.com/charmbracelet/bubbletea"

/* ----------------------------------------
	FORMS
---------------------------------------- */

// Field is one text prompt in a form.
type Field struct {
	Label       string
	Placeholder string
	Default     string
	Required    bool
}

// Form collects a fixed sequence of text inputs and hands the values
// to Submit. Values arrive in field order, with defaults applied for
// fields left blank.
type Form struct {
	Title  string
	Fields []Field
	Submit func(values []string) tea.Cmd
}

func jobFileForm(a *Actions) *Form {
	return &Form{
		Title: "Run From Job File",
		Fields: []Field{
			{Label: "Job file", Placeholder: "vlookup_job.yaml", Default: "vlookup_job.yaml", Required: true},
		},
		Submit: func(values []string) tea.Cmd {
			return a.RunJobFile(values[0])
		},
	}
}

func manualLookupForm(a *Actions) *Form {
	return &Form{
		Title: "Manual Lookup",
		Fields: []Field{
			{Label: "Primary workbook", Placeholder: "data.xlsx", Required: true},
			{Label: "Primary sheet", Placeholder: "first sheet"},
			{Label: "Reference workbook", Placeholder: "master.xlsx", Required: true},
			{Label: "Reference sheet", Placeholder: "first sheet"},
			{Label: "Search column", Placeholder: "Product Code", Required: true},
			{Label: "Lookup column", Placeholder: "Product Code", Required: true},
			{Label: "Return columns", Placeholder: "Product Name, Price", Required: true},
		},
		Submit: func(values []string) tea.Cmd {
			return a.RunManual(values[0], values[1], values[2], values[3], values[4], values[5], values[6])
		},
	}
}

func batchForm(a *Actions) *Form {
	return &Form{
		Title: "Batch Directory",
		Fields: []Field{
			{Label: "Directory", Placeholder: ".", Default: ".", Required: true},
			{Label: "Job file", Placeholder: "vlookup_job.yaml", Default: "vlookup_job.yaml", Required: true},
		},
		Submit: func(values []string) tea.Cmd {
			return a.RunBatchDir(values[0], values[1])
		},
	}
}

func templateForm(a *Actions) *Form {
	return &Form{
		Title: "Create Job Template",
		Fields: []Field{
			{Label: "Output path", Placeholder: "vlookup_job.yaml", Default: "vlookup_job.yaml", Required: true},
		},
		Submit: func(values []string) tea.Cmd {
			return a.CreateTemplate(values[0])
		},
	}
}
