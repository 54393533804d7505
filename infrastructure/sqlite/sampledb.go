package sqlite

import (
	"database/sql"
	"fmt"
)

// SampleSummary reports how many rows each sample table holds after
// seeding.
type SampleSummary struct {
	Emails     int
	Invoices   int
	SalesLeads int
}

// Total returns the combined row count across all sample tables.
func (s SampleSummary) Total() int { return s.Emails + s.Invoices + s.SalesLeads }

type sampleEmail struct {
	email   string
	subject string
	body    string
}

type sampleInvoice struct {
	customer    string
	product     string
	amount      float64
	description string
}

type sampleLead struct {
	clientName  string
	description string
}

var sampleEmails = []sampleEmail{
	{
		"john.doe@example.com",
		"Welcome to our service",
		"Thank you for signing up! We're excited to have you on board. " +
			"Please verify your email address to get started.",
	},
	{
		"jane.smith@example.com",
		"Your order has been shipped",
		"Great news! Your order #12345 has been shipped and should arrive " +
			"within 3-5 business days. Track your package using the link below.",
	},
	{
		"support@company.com",
		"Password reset request",
		"We received a request to reset your password. If you didn't make " +
			"this request, please ignore this email. Click the link below to reset.",
	},
	{
		"newsletter@tech.com",
		"This week in technology",
		"Here are the top tech stories of the week: AI breakthroughs, new " +
			"smartphone releases, and cybersecurity updates. Read more inside.",
	},
	{
		"billing@service.com",
		"Invoice for January 2025",
		"Your invoice for January 2025 is ready. Amount due: $49.99. " +
			"Payment is due by February 1st, 2025. View invoice details below.",
	},
	{
		"team@startup.com",
		"Meeting reminder: Q1 Planning",
		"This is a reminder about our Q1 planning meeting scheduled for " +
			"tomorrow at 2 PM. Please review the agenda and come prepared.",
	},
	{
		"marketing@agency.com",
		"New campaign proposal",
		"We have a new marketing campaign proposal for Q2. The campaign will focus on " +
			"social media engagement and content marketing strategies.",
	},
	{
		"hr@company.com",
		"Benefits enrollment reminder",
		"This is a reminder that benefits enrollment period ends next Friday. " +
			"Please review your health insurance and retirement plan options.",
	},
	{
		"sales@business.com",
		"Quote request follow-up",
		"Following up on the quote request you sent last week. We can offer a " +
			"15% discount if you sign the contract before month end.",
	},
	{
		"accounts@vendor.com",
		"Payment confirmation",
		"We have received your payment of $2,500 for invoice #98765. " +
			"Thank you for your business.",
	},
}

var sampleInvoices = []sampleInvoice{
	{"Acme Corp", "Software License", 1999.99, "Annual enterprise software license renewal"},
	{"Tech Startup Inc", "Consulting Services", 5500.00, "Technical consulting for cloud migration project"},
	{"Global Solutions LLC", "Hardware Equipment", 12500.00, "10 workstations and networking equipment"},
	{"Digital Media Co", "Web Development", 8750.00, "Custom website development and design"},
	{"Retail Chain Ltd", "POS System", 15000.00, "Point of sale system for 5 locations"},
	{"Manufacturing Co", "Training Program", 3200.00, "Employee safety training and certification"},
	{"Finance Group", "Data Analytics", 6800.00, "Business intelligence dashboard implementation"},
	{"Healthcare Partners", "Security Audit", 4500.00, "Cybersecurity assessment and compliance review"},
	{"Education Institute", "Cloud Storage", 2100.00, "Cloud storage subscription for academic year"},
	{"Logistics Corp", "Mobile App", 9500.00, "Custom mobile application for fleet management"},
}

var sampleLeads = []sampleLead{
	{"Blue Ocean Enterprises", "Interested in upgrading their legacy CRM system to modern cloud solution"},
	{"Green Energy Partners", "Looking for data analytics platform to track renewable energy production"},
	{"Urban Development Group", "Need project management software for construction projects"},
	{"Premium Retail Brands", "Want to implement AI-powered inventory management system"},
	{"Medical Diagnostics Lab", "Seeking HIPAA-compliant patient data management platform"},
	{"International Shipping Co", "Interested in IoT tracking solution for cargo containers"},
	{"Restaurant Chain Network", "Looking for integrated POS and delivery management system"},
	{"Financial Advisory Firm", "Need secure client portal and document management system"},
	{"Sports Equipment Manufacturer", "Want e-commerce platform with B2B and B2C capabilities"},
	{"Travel Agency Network", "Interested in booking system integration and customer analytics"},
}

// CreateSampleDatabase creates the emails, invoices, and sales_leads
// tables and seeds each with ten rows of sample business data. Tables
// are created only when absent; the sample rows insert regardless, so
// repeated runs append duplicates.
func CreateSampleDatabase(db *sql.DB) (SampleSummary, error) {
	tx, err := db.Begin()
	if err != nil {
		return SampleSummary{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := createTables(tx); err != nil {
		return SampleSummary{}, err
	}
	if err := seedTables(tx); err != nil {
		return SampleSummary{}, err
	}
	if err := tx.Commit(); err != nil {
		return SampleSummary{}, fmt.Errorf("failed to commit sample data: %w", err)
	}

	return countRows(db)
}

func createTables(tx *sql.Tx) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS emails (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			email TEXT NOT NULL,
			subject TEXT NOT NULL,
			body TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS invoices (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			customer TEXT NOT NULL,
			product TEXT NOT NULL,
			amount REAL NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS sales_leads (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			client_name TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
	}

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

func seedTables(tx *sql.Tx) error {
	for _, e := range sampleEmails {
		if _, err := tx.Exec(
			"INSERT INTO emails (email, subject, body) VALUES (?, ?, ?)",
			e.email, e.subject, e.body,
		); err != nil {
			return fmt.Errorf("failed to insert email: %w", err)
		}
	}
	for _, inv := range sampleInvoices {
		if _, err := tx.Exec(
			"INSERT INTO invoices (customer, product, amount, description) VALUES (?, ?, ?, ?)",
			inv.customer, inv.product, inv.amount, inv.description,
		); err != nil {
			return fmt.Errorf("failed to insert invoice: %w", err)
		}
	}
	for _, lead := range sampleLeads {
		if _, err := tx.Exec(
			"INSERT INTO sales_leads (client_name, description) VALUES (?, ?)",
			lead.clientName, lead.description,
		); err != nil {
			return fmt.Errorf("failed to insert sales lead: %w", err)
		}
	}
	return nil
}

func countRows(db *sql.DB) (SampleSummary, error) {
	var summary SampleSummary
	counts := []struct {
		table string
		dest  *int
	}{
		{"emails", &summary.Emails},
		{"invoices", &summary.Invoices},
		{"sales_leads", &summary.SalesLeads},
	}

	for _, c := range counts {
		if err := db.QueryRow("SELECT COUNT(*) FROM " + c.table).Scan(c.dest); err != nil {
			return SampleSummary{}, fmt.Errorf("failed to count %s: %w", c.table, err)
		}
	}
	return summary, nil
}
