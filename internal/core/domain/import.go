package domain

import "time"

// ImportOutcome is the backend's answer to one tenant's bulk import.
type ImportOutcome struct {
	TotalSubmitted int      `json:"totalCount"`
	ImportedCount  int      `json:"importedCount"`
	SkippedCount   int      `json:"skippedCount"`
	SkippedReasons []string `json:"skippedRecipes"`
}

// ImportTarget names one tenant to import into. Name is only a label.
type ImportTarget struct {
	TenantID string `json:"tenantId"`
	Name     string `json:"name,omitempty"`
}

// Label returns the display name used to prefix report lines.
func (t ImportTarget) Label() string {
	if t.Name != "" {
		return t.Name
	}
	return t.TenantID
}

// TenantImportResult records what happened for a single target.
type TenantImportResult struct {
	TenantID string `json:"tenantId"`
	Name     string `json:"name"`
	Imported int    `json:"imported"`
	Skipped  int    `json:"skipped"`
	Error    string `json:"error,omitempty"`
}

// Failed reports whether the tenant's bulk call failed outright.
func (r TenantImportResult) Failed() bool {
	return r.Error != ""
}

// ImportReport aggregates a batch import across all targeted tenants.
type ImportReport struct {
	ID            string               `json:"id,omitempty"`
	RecipeCount   int                  `json:"recipeCount"`
	TotalImported int                  `json:"totalImported"`
	TotalSkipped  int                  `json:"totalSkipped"`
	SkippedLog    []string             `json:"skippedLog"`
	Tenants       []TenantImportResult `json:"tenants"`
	StartedAt     time.Time            `json:"startedAt"`
	FinishedAt    time.Time            `json:"finishedAt"`
}
