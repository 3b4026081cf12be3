package app

import tea "github.com/charmbracelet/bubbletea"

/* ----------------------------------------
	MENU TREE
---------------------------------------- */

type MenuItem struct {
	Label   string
	Submenu *Menu
	Form    *Form
	Action  func() tea.Cmd
}

type Menu struct {
	Title  string
	Items  []MenuItem
	Parent *Menu
}

/* ----------------------------------------
	MENU TREE DEFINITION
---------------------------------------- */

func linkParents(menu *Menu, parent *Menu) {
	menu.Parent = parent

	for i := range menu.Items {
		item := &menu.Items[i]

		if item.Label == "Back" {
			item.Submenu = parent
			continue
		}

		if item.Submenu != nil {
			linkParents(item.Submenu, menu)
		}
	}
}

func buildMenuTree(a *Actions) *Menu {

	/* Submenus */
	samples := &Menu{
		Title: "Sample Data",
		Items: []MenuItem{
			{Label: "Generate Basic Samples", Action: a.GenerateBasicSamples},
			{Label: "Generate Business Samples", Action: a.GenerateBusinessSamples},
			{Label: "Generate HR Samples", Action: a.GenerateHRSamples},
			{Label: "Generate Inventory Samples", Action: a.GenerateInventorySamples},
			{Label: "Generate All Samples", Action: a.GenerateAllSamples},
			{Label: "Run Basic Sample Lookup", Action: a.RunBasicSample},
			{Label: "Run Business Sample Lookup", Action: a.RunBusinessSample},
			{Label: "Run HR Sample Lookup", Action: a.RunHRSample},
			{Label: "Run Inventory Sample Lookup", Action: a.RunInventorySample},
			{Label: "Back"},
		},
	}

	run := &Menu{
		Title: "Run Lookup",
		Items: []MenuItem{
			{Label: "From Job File", Form: jobFileForm(a)},
			{Label: "Manual Entry", Form: manualLookupForm(a)},
			{Label: "Back"},
		},
	}

	batchMenu := &Menu{
		Title: "Batch",
		Items: []MenuItem{
			{Label: "Process Directory", Form: batchForm(a)},
			{Label: "Back"},
		},
	}

	jobs := &Menu{
		Title: "Job Files",
		Items: []MenuItem{
			{Label: "Create Template", Form: templateForm(a)},
			{Label: "Back"},
		},
	}

	/* Root Menu */
	root := &Menu{
		Title: "Sheet Merge",
		Items: []MenuItem{
			{Label: "Run Lookup ->", Submenu: run},
			{Label: "Batch ->", Submenu: batchMenu},
			{Label: "Sample Data ->", Submenu: samples},
			{Label: "Job Files ->", Submenu: jobs},
			{Label: "Quit", Action: func() tea.Cmd { return tea.Quit }},
		},
	}

	linkParents(root, nil)

	return root
}
