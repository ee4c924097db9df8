package knowledge

import "github.com/DataAlgoDev/Qbit-AI-Enterprise-App/models"

// defaultDocuments is the company knowledge corpus shipped with the binary.
func defaultDocuments() []models.Document {
	return []models.Document{
		{
			ID:       "leave_policy",
			Content:  "Annual Leave: 25 days per year for full-time employees. Sick Leave: 10 days per year (separate from annual leave). Maternity/Paternity Leave: 16 weeks of paid time off. Request Process: Must be submitted at least 2 weeks in advance through HR portal. Carryover: Up to 5 days of unused annual leave can be carried to next year.",
			Source:   "HR_Policy_2024.pdf",
			Category: "leave",
		},
		{
			ID:       "health_benefits",
			Content:  "Medical Coverage: 100% premium covered by company. Dental Coverage: 80% covered by company (employee pays 20%). Vision Coverage: 70% covered by company (employee pays 30%). Annual Checkups: Fully covered with no copay. Prescription Drugs: 90% coverage. Family Coverage: Available with $200/month employee contribution.",
			Source:   "Benefits_Guide_2024.pdf",
			Category: "health",
		},
		{
			ID:       "it_support",
			Content:  "Email Support: it-support@company.com. Phone Support: Extension 8592996481 for urgent issues. Self-Service Portal: portal.company.com for password resets. Ticket System: Submit non-urgent issues through IT portal. Software Installation: Requires manager approval. VPN Access: Available for remote work with two-factor authentication.",
			Source:   "IT_Support_Guide.pdf",
			Category: "it",
		},
		{
			ID:       "remote_work",
			Content:  "Frequency: Up to 3 days per week with manager approval. Equipment: Company provides laptop, monitor, and ergonomic chair. Core Hours: 10 AM to 3 PM local time for all team members. In-Person Requirements: Weekly team meetings on Wednesdays. Home Office Reimbursement: Up to $500 annually for setup costs.",
			Source:   "Remote_Work_Policy.pdf",
			Category: "remote",
		},
		{
			ID:       "performance_review",
			Content:  "Annual Reviews: Conducted in January with all employees. Mid-Year Check-ins: July meetings for feedback and goal adjustments. Rating Scale: 5-point scale from Exceeds Expectations to Unsatisfactory. Components: Goal setting, competency assessment, career development planning. Promotion Decisions: Based on performance, potential, and business needs.",
			Source:   "Performance_Management.pdf",
			Category: "performance",
		},
		{
			ID:       "compensation",
			Content:  "Base Salary: Competitive rates benchmarked against industry standards. Annual Reviews: Salary reviews in March with potential increases. Performance Bonuses: Up to 20% of base salary awarded quarterly. Stock Options: Granted to all full-time employees (4-year vesting). 401k Match: 6% company match. Professional Development: $2000 annual budget per employee.",
			Source:   "Compensation_Guide.pdf",
			Category: "compensation",
		},
		{
			ID:       "active_tickets",
			Content:  "Active IT Tickets: Ticket #IT-2024-1247 - 'Outlook Email Sync Issues' | Status: In Progress | Priority: Medium | Submitted: Sept 15, 2024 | Description: Email sync problems with Outlook mobile app, not receiving new emails automatically. IT team is investigating server configuration. Expected Resolution: Sept 18, 2024 | Assigned to: Hemant D (HR) | Last Update: Sept 16 - Applied initial server patch, monitoring results.",
			Source:   "IT_Ticket_System",
			Category: "tickets",
		},
	}
}

// defaultSynonyms broadens common phrasings of employee questions towards the
// vocabulary the corpus actually uses.
func defaultSynonyms() []SynonymEntry {
	return []SynonymEntry{
		{Phrase: "work from home", Synonyms: []string{"remote", "home office", "wfh"}},
		{Phrase: "remote work", Synonyms: []string{"remote", "home office", "wfh"}},
		{Phrase: "wfh", Synonyms: []string{"remote", "home office"}},
		{Phrase: "leave", Synonyms: []string{"annual", "vacation", "pto", "time off"}},
		{Phrase: "vacation", Synonyms: []string{"leave", "annual", "pto"}},
		{Phrase: "health", Synonyms: []string{"medical", "dental", "vision", "insurance"}},
		{Phrase: "insurance", Synonyms: []string{"health", "medical", "benefits"}},
		{Phrase: "it support", Synonyms: []string{"technical", "computer", "password"}},
		{Phrase: "performance", Synonyms: []string{"review", "evaluation", "rating"}},
		{Phrase: "salary", Synonyms: []string{"compensation", "pay", "bonus"}},
		{Phrase: "compensation", Synonyms: []string{"salary", "pay", "bonus", "benefits"}},
		{Phrase: "ticket", Synonyms: []string{"tickets", "active", "it ticket", "support ticket", "issue"}},
		{Phrase: "tickets", Synonyms: []string{"ticket", "active", "it ticket", "support ticket", "issues"}},
		{Phrase: "my tickets", Synonyms: []string{"active tickets", "open tickets", "pending tickets"}},
	}
}
