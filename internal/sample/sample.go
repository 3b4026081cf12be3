// Package sample generates the demo workbooks used by the menu's
// "run with sample data" path, so the tool can be tried without any
// real files on hand.
package sample

import (
	"fmt"
	"path/filepath"

	"sheetmerge/internal/config"
	"sheetmerge/internal/table"
)

// File names of the generated demo workbooks.
const (
	OrdersFile    = "Sample_Orders.xlsx"
	ProductsFile  = "Sample_Products.xlsx"
	SalesFile     = "Sample_Sales.xlsx"
	StaffFile     = "Sample_Staff.xlsx"
	HRFile        = "Sample_HR.xlsx"
	EmployeesFile = "Sample_Employees.xlsx"
	InventoryFile = "Sample_Inventory.xlsx"
	ItemsFile     = "Sample_Items.xlsx"
)

// WriteBasic writes the basic demo pair: an orders workbook (two data
// sheets) and a product/customer master workbook. Returns the paths
// written.
func WriteBasic(dir string) ([]string, error) {
	orders := table.New([]string{"Order ID", "Product Code", "Quantity", "Order Date"})
	orders.Append(table.Row{"1", "A001", "2", "2024-05-01"})
	orders.Append(table.Row{"2", "A002", "1", "2024-05-01"})
	orders.Append(table.Row{"3", "B001", "3", "2024-05-02"})
	orders.Append(table.Row{"4", "A001", "1", "2024-05-02"})
	orders.Append(table.Row{"5", "C001", "2", "2024-05-03"})

	sales := table.New([]string{"Sale ID", "Product Code", "Amount", "Sale Date"})
	sales.Append(table.Row{"101", "A001", "1000", "2024-05-01"})
	sales.Append(table.Row{"102", "B001", "2000", "2024-05-02"})
	sales.Append(table.Row{"103", "A002", "800", "2024-05-03"})

	products := table.New([]string{"Product Code", "Product Name", "Price", "Category", "Stock"})
	products.Append(table.Row{"A001", "Apple", "100", "Fruit", "50"})
	products.Append(table.Row{"A002", "Orange", "80", "Fruit", "30"})
	products.Append(table.Row{"A003", "Banana", "120", "Fruit", "25"})
	products.Append(table.Row{"B001", "Bread", "200", "Bakery", "20"})
	products.Append(table.Row{"B002", "Cake", "350", "Bakery", "10"})

	customers := table.New([]string{"Customer ID", "Customer Name", "Region", "Phone"})
	customers.Append(table.Row{"C001", "Tanaka Trading", "Tokyo", "03-1234-5678"})
	customers.Append(table.Row{"C002", "Sato Inc", "Osaka", "06-2345-6789"})
	customers.Append(table.Row{"C003", "Suzuki & Co", "Aichi", "052-3456-7890"})

	ordersPath := filepath.Join(dir, OrdersFile)
	if err := table.Write(ordersPath,
		table.Sheet{Name: "Orders", Table: orders},
		table.Sheet{Name: "Sales", Table: sales},
	); err != nil {
		return nil, fmt.Errorf("write %s: %w", OrdersFile, err)
	}

	productsPath := filepath.Join(dir, ProductsFile)
	if err := table.Write(productsPath,
		table.Sheet{Name: "Products", Table: products},
		table.Sheet{Name: "Customers", Table: customers},
	); err != nil {
		return nil, fmt.Errorf("write %s: %w", ProductsFile, err)
	}

	return []string{ordersPath, productsPath}, nil
}

// WriteBusiness writes a second demo pair with sales figures and a
// staff master, including one sales rep missing from the master so an
// unmatched row shows up in the demo summary.
func WriteBusiness(dir string) ([]string, error) {
	sales := table.New([]string{"Rep ID", "Customer Code", "Amount", "Sale Date"})
	sales.Append(table.Row{"S001", "C001", "150000", "2024-05-01"})
	sales.Append(table.Row{"S002", "C002", "230000", "2024-05-02"})
	sales.Append(table.Row{"S001", "C003", "180000", "2024-05-03"})
	sales.Append(table.Row{"S003", "C001", "95000", "2024-05-04"})
	sales.Append(table.Row{"S009", "C004", "310000", "2024-05-05"})

	staff := table.New([]string{"Rep ID", "Rep Name", "Department", "Title", "Target"})
	staff.Append(table.Row{"S001", "Taro Tanaka", "Sales 1", "Lead", "5000000"})
	staff.Append(table.Row{"S002", "Hanako Sato", "Sales 1", "Manager", "6000000"})
	staff.Append(table.Row{"S003", "Ichiro Suzuki", "Sales 2", "Lead", "5500000"})

	salesPath := filepath.Join(dir, SalesFile)
	if err := table.Write(salesPath, table.Sheet{Name: "Sales Results", Table: sales}); err != nil {
		return nil, fmt.Errorf("write %s: %w", SalesFile, err)
	}

	staffPath := filepath.Join(dir, StaffFile)
	if err := table.Write(staffPath, table.Sheet{Name: "Staff Master", Table: staff}); err != nil {
		return nil, fmt.Errorf("write %s: %w", StaffFile, err)
	}

	return []string{salesPath, staffPath}, nil
}

// WriteHR writes the HR demo pair: an attendance workbook and an
// employee master workbook. Every attendance row has a master entry,
// so the demo summary comes out fully matched.
func WriteHR(dir string) ([]string, error) {
	attendance := table.New([]string{"Employee ID", "Date", "Clock In", "Clock Out", "Break Minutes"})
	attendance.Append(table.Row{"E001", "2024-06-03", "09:00", "18:00", "60"})
	attendance.Append(table.Row{"E002", "2024-06-03", "09:30", "18:30", "60"})
	attendance.Append(table.Row{"E003", "2024-06-03", "08:45", "17:45", "45"})
	attendance.Append(table.Row{"E004", "2024-06-03", "10:00", "19:00", "60"})
	attendance.Append(table.Row{"E005", "2024-06-03", "09:00", "17:30", "60"})
	attendance.Append(table.Row{"E001", "2024-06-04", "09:05", "18:10", "60"})
	attendance.Append(table.Row{"E002", "2024-06-04", "09:30", "19:00", "60"})
	attendance.Append(table.Row{"E003", "2024-06-04", "08:50", "18:00", "45"})

	evaluations := table.New([]string{"Employee ID", "Period", "Goal Grade", "Skill Grade", "Overall"})
	evaluations.Append(table.Row{"E001", "2024-H1", "A", "B", "A"})
	evaluations.Append(table.Row{"E002", "2024-H1", "B", "A", "A"})
	evaluations.Append(table.Row{"E003", "2024-H1", "B", "B", "B"})

	employees := table.New([]string{"Employee ID", "Name", "Department", "Title", "Base Pay"})
	employees.Append(table.Row{"E001", "Taro Yamada", "Sales", "Lead", "350000"})
	employees.Append(table.Row{"E002", "Hanako Tanaka", "Accounting", "Staff", "300000"})
	employees.Append(table.Row{"E003", "Jiro Sato", "Engineering", "Manager", "420000"})
	employees.Append(table.Row{"E004", "Yuki Suzuki", "Sales", "Staff", "280000"})
	employees.Append(table.Row{"E005", "Kenta Ito", "Engineering", "Staff", "310000"})
	employees.Append(table.Row{"E006", "Mika Kato", "HR", "Lead", "340000"})
	employees.Append(table.Row{"E007", "Shota Mori", "Accounting", "Manager", "400000"})
	employees.Append(table.Row{"E008", "Aoi Hayashi", "HR", "Staff", "270000"})

	hrPath := filepath.Join(dir, HRFile)
	if err := table.Write(hrPath,
		table.Sheet{Name: "Attendance", Table: attendance},
		table.Sheet{Name: "Evaluations", Table: evaluations},
	); err != nil {
		return nil, fmt.Errorf("write %s: %w", HRFile, err)
	}

	employeesPath := filepath.Join(dir, EmployeesFile)
	if err := table.Write(employeesPath, table.Sheet{Name: "Employee Master", Table: employees}); err != nil {
		return nil, fmt.Errorf("write %s: %w", EmployeesFile, err)
	}

	return []string{hrPath, employeesPath}, nil
}

// WriteInventory writes the inventory demo pair: a stock movement
// workbook and an item master workbook that also carries a vendor
// sheet.
func WriteInventory(dir string) ([]string, error) {
	movements := table.New([]string{"Slip No", "Item Code", "Movement", "Quantity", "Unit Price", "Date", "Partner Code"})
	movements.Append(table.Row{"T001", "I001", "In", "100", "500", "2024-06-01", "V001"})
	movements.Append(table.Row{"T002", "I002", "In", "50", "1200", "2024-06-01", "V002"})
	movements.Append(table.Row{"T003", "I001", "Out", "30", "800", "2024-06-02", "C001"})
	movements.Append(table.Row{"T004", "I003", "In", "200", "300", "2024-06-02", "V001"})
	movements.Append(table.Row{"T005", "I002", "Out", "20", "1800", "2024-06-03", "C002"})
	movements.Append(table.Row{"T006", "I004", "In", "80", "650", "2024-06-03", "V003"})
	movements.Append(table.Row{"T007", "I001", "Out", "40", "800", "2024-06-04", "C003"})
	movements.Append(table.Row{"T008", "I003", "Out", "120", "450", "2024-06-04", "C001"})

	items := table.New([]string{"Item Code", "Item Name", "Class", "List Price", "Supplier Code"})
	items.Append(table.Row{"I001", "Notebook A4", "Stationery", "800", "V001"})
	items.Append(table.Row{"I002", "Desk Lamp", "Appliance", "1800", "V002"})
	items.Append(table.Row{"I003", "Ballpoint Pen", "Stationery", "450", "V001"})
	items.Append(table.Row{"I004", "USB Cable", "Appliance", "950", "V003"})
	items.Append(table.Row{"I005", "File Folder", "Stationery", "350", "V001"})

	vendors := table.New([]string{"Partner Code", "Partner Name", "Type", "Phone"})
	vendors.Append(table.Row{"V001", "Yamato Supply", "Supplier", "03-1111-2222"})
	vendors.Append(table.Row{"V002", "Hikari Electric", "Supplier", "06-3333-4444"})
	vendors.Append(table.Row{"V003", "Sakura Parts", "Supplier", "052-5555-6666"})
	vendors.Append(table.Row{"C001", "Kita Retail", "Customer", "03-7777-8888"})
	vendors.Append(table.Row{"C002", "Minami Store", "Customer", "06-9999-0000"})
	vendors.Append(table.Row{"C003", "Higashi Mart", "Customer", "045-1234-5678"})

	inventoryPath := filepath.Join(dir, InventoryFile)
	if err := table.Write(inventoryPath, table.Sheet{Name: "Stock Movements", Table: movements}); err != nil {
		return nil, fmt.Errorf("write %s: %w", InventoryFile, err)
	}

	itemsPath := filepath.Join(dir, ItemsFile)
	if err := table.Write(itemsPath,
		table.Sheet{Name: "Item Master", Table: items},
		table.Sheet{Name: "Vendor Master", Table: vendors},
	); err != nil {
		return nil, fmt.Errorf("write %s: %w", ItemsFile, err)
	}

	return []string{inventoryPath, itemsPath}, nil
}

// WriteAll writes every demo pair into dir and returns all paths
// written.
func WriteAll(dir string) ([]string, error) {
	var paths []string
	for _, write := range []func(string) ([]string, error){WriteBasic, WriteBusiness, WriteHR, WriteInventory} {
		p, err := write(dir)
		if err != nil {
			return nil, err
		}
		paths = append(paths, p...)
	}
	return paths, nil
}

// BasicJob returns the inline job configuration matching WriteBasic's
// orders and products workbooks.
func BasicJob(dir string) config.Job {
	return config.Job{
		Primary:       config.Source{Path: filepath.Join(dir, OrdersFile), Sheet: "Orders"},
		Reference:     config.Source{Path: filepath.Join(dir, ProductsFile), Sheet: "Products"},
		SearchColumn:  "Product Code",
		LookupColumn:  "Product Code",
		ReturnColumns: []string{"Product Name", "Price", "Category"},
		Output:        config.JobOutput{AutoSameDir: true},
	}
}

// BusinessJob returns the inline job configuration matching
// WriteBusiness's sales and staff workbooks.
func BusinessJob(dir string) config.Job {
	return config.Job{
		Primary:       config.Source{Path: filepath.Join(dir, SalesFile), Sheet: "Sales Results"},
		Reference:     config.Source{Path: filepath.Join(dir, StaffFile), Sheet: "Staff Master"},
		SearchColumn:  "Rep ID",
		LookupColumn:  "Rep ID",
		ReturnColumns: []string{"Rep Name", "Department", "Title"},
		Output:        config.JobOutput{AutoSameDir: true},
	}
}

// HRJob returns the inline job configuration matching WriteHR's
// attendance and employee master workbooks.
func HRJob(dir string) config.Job {
	return config.Job{
		Primary:       config.Source{Path: filepath.Join(dir, HRFile), Sheet: "Attendance"},
		Reference:     config.Source{Path: filepath.Join(dir, EmployeesFile), Sheet: "Employee Master"},
		SearchColumn:  "Employee ID",
		LookupColumn:  "Employee ID",
		ReturnColumns: []string{"Name", "Department", "Base Pay"},
		Output:        config.JobOutput{AutoSameDir: true},
	}
}

// InventoryJob returns the inline job configuration matching
// WriteInventory's stock movement and item master workbooks.
func InventoryJob(dir string) config.Job {
	return config.Job{
		Primary:       config.Source{Path: filepath.Join(dir, InventoryFile), Sheet: "Stock Movements"},
		Reference:     config.Source{Path: filepath.Join(dir, ItemsFile), Sheet: "Item Master"},
		SearchColumn:  "Item Code",
		LookupColumn:  "Item Code",
		ReturnColumns: []string{"Item Name", "Class", "List Price"},
		Output:        config.JobOutput{AutoSameDir: true},
	}
}
