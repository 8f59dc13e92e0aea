package lint

// IssueCount breaks issues down by severity.
type IssueCount struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Total    int `json:"total"`
}

// IntegrationSummary reports the distinct integration ids referenced by the
// document, split by whether a working environment binding exists. Both
// lists are sorted and de-duplicated.
type IntegrationSummary struct {
	Configured []string `json:"configured"`
	Missing    []string `json:"missing"`
}

// InputSummary reports the document's interactive inputs: how many carry a
// usable value and which variable names still need one (sorted).
type InputSummary struct {
	Total         int      `json:"total"`
	WithValues    int      `json:"withValues"`
	NeedingValues []string `json:"needingValues"`
}

// Result is the aggregate outcome of one lint run. Success is true iff no
// error-severity issue was found; warnings never affect it.
type Result struct {
	Success      bool               `json:"success"`
	IssueCount   IssueCount         `json:"issueCount"`
	Issues       []Issue            `json:"issues"`
	Integrations IntegrationSummary `json:"integrations"`
	Inputs       InputSummary       `json:"inputs"`
}

// aggregate merges the already-ordered issue sequence with the checker
// summaries and computes counts and overall success.
func aggregate(issues []Issue, integrations IntegrationSummary, inputs InputSummary) *Result {
	if issues == nil {
		issues = []Issue{}
	}
	count := IssueCount{Total: len(issues)}
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityError:
			count.Errors++
		case SeverityWarning:
			count.Warnings++
		}
	}
	return &Result{
		Success:      count.Errors == 0,
		IssueCount:   count,
		Issues:       issues,
		Integrations: integrations,
		Inputs:       inputs,
	}
}
