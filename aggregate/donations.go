package aggregate

import (
	"fmt"
	"math"

	"github.com/jewelfoundation/admin-api/models"
)

// Package aggregate turns flat donation rows into the derived views the
// dashboard, donations page and analytics charts render. Everything here is
// a pure function over in-memory data: safe to re-run on every request,
// never mutates its input beyond documented copies, never touches the DB.

// FilterAll is the sentinel project id meaning "no project filter".
const FilterAll uint = 0

// AnonymousDonor is substituted when a donation carries no donor name.
const AnonymousDonor = "Anonymous"

// ProjectGroup is one project's donations in the order they were fetched.
// Title is resolved once at grouping time so callers never have to repeat
// the first-row-is-representative assumption themselves.
type ProjectGroup struct {
	ProjectID uint              `json:"project_id"`
	Title     string            `json:"title"`
	Donations []models.Donation `json:"donations"`
}

// Total sums the group's amounts. Malformed amounts (NaN, ±Inf) count as 0,
// so the result is deterministic regardless of row order.
func (g ProjectGroup) Total() float64 {
	var total float64
	for _, d := range g.Donations {
		total += coerceAmount(d.Amount)
	}
	return total
}

// MonthBucket is one (month, year) bucket of donation totals.
type MonthBucket struct {
	Label string  `json:"month"`
	Total float64 `json:"total"`
}

// AmountGroup counts donations sharing the same exact amount.
type AmountGroup struct {
	Amount float64 `json:"amount"`
	Count  int     `json:"count"`
}

// GroupByProject partitions donations by project id. Groups appear in the
// order a project was first seen and keep their donations in input order.
// The group title comes from the first donation's ProjectTitle, falling back
// to "Project {id}" when the join field is empty.
func GroupByProject(donations []models.Donation) []ProjectGroup {
	var groups []ProjectGroup
	index := make(map[uint]int)

	for _, d := range donations {
		i, seen := index[d.ProjectID]
		if !seen {
			title := d.ProjectTitle
			if title == "" {
				title = fmt.Sprintf("Project %d", d.ProjectID)
			}
			index[d.ProjectID] = len(groups)
			groups = append(groups, ProjectGroup{ProjectID: d.ProjectID, Title: title})
			i = len(groups) - 1
		}
		groups[i].Donations = append(groups[i].Donations, d)
	}

	return groups
}

// TotalsByProject computes the per-project donation sum for every project
// present in the input.
func TotalsByProject(donations []models.Donation) map[uint]float64 {
	totals := make(map[uint]float64)
	for _, d := range donations {
		totals[d.ProjectID] += coerceAmount(d.Amount)
	}
	return totals
}

// Sum totals every donation in the input.
func Sum(donations []models.Donation) float64 {
	var total float64
	for _, d := range donations {
		total += coerceAmount(d.Amount)
	}
	return total
}

// BucketByMonth groups donations into (month, year) buckets keyed off
// CreatedAt, not DonationDate — the donations-page chart has always bucketed
// on the row timestamp while the analytics modal plots donation dates.
// Buckets appear in the order first encountered; callers wanting calendar
// order must sort.
func BucketByMonth(donations []models.Donation) []MonthBucket {
	var buckets []MonthBucket
	index := make(map[string]int)

	for _, d := range donations {
		label := d.CreatedAt.Format("Jan 2006")
		i, seen := index[label]
		if !seen {
			index[label] = len(buckets)
			buckets = append(buckets, MonthBucket{Label: label})
			i = len(buckets) - 1
		}
		buckets[i].Total += coerceAmount(d.Amount)
	}

	return buckets
}

// FilterByProject returns the donations belonging to projectID.
// FilterAll (0) returns the input unchanged.
func FilterByProject(donations []models.Donation, projectID uint) []models.Donation {
	if projectID == FilterAll {
		return donations
	}
	var filtered []models.Donation
	for _, d := range donations {
		if d.ProjectID == projectID {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

// RecentN returns the last n donations by input position, newest-fetched
// first, with empty donor names replaced by AnonymousDonor. The input is
// not modified.
func RecentN(donations []models.Donation, n int) []models.Donation {
	if n > len(donations) {
		n = len(donations)
	}
	if n <= 0 {
		return []models.Donation{}
	}

	recent := make([]models.Donation, 0, n)
	for i := len(donations) - 1; i >= len(donations)-n; i-- {
		d := donations[i]
		if d.DonorName == "" {
			d.DonorName = AnonymousDonor
		}
		recent = append(recent, d)
	}
	return recent
}

// GroupByAmount counts donations per distinct amount, in the order each
// amount was first seen.
func GroupByAmount(donations []models.Donation) []AmountGroup {
	var groups []AmountGroup
	index := make(map[float64]int)

	for _, d := range donations {
		amount := coerceAmount(d.Amount)
		i, seen := index[amount]
		if !seen {
			index[amount] = len(groups)
			groups = append(groups, AmountGroup{Amount: amount})
			i = len(groups) - 1
		}
		groups[i].Count++
	}

	return groups
}

// coerceAmount zeroes values that cannot participate in a meaningful sum.
func coerceAmount(a float64) float64 {
	if math.IsNaN(a) || math.IsInf(a, 0) {
		return 0
	}
	return a
}
