package paging

import "fmt"

// Descriptor is the pagination state behind the page selector.
type Descriptor struct {
	Page         int    `json:"page"`
	PageSize     int    `json:"page_size"`
	TotalRecords int    `json:"total_records"`
	TotalPages   int    `json:"total_pages"`
	From         int    `json:"from"`
	To           int    `json:"to"`
	HasPrev      bool   `json:"has_prev"`
	HasNext      bool   `json:"has_next"`
	Summary      string `json:"summary"`
}

func describe(page, pageSize, totalRecords, totalPages int) Descriptor {
	d := Descriptor{
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: totalRecords,
		TotalPages:   totalPages,
		HasPrev:      page > 1,
		HasNext:      page < totalPages,
	}
	if totalRecords > 0 && pageSize > 0 {
		d.From = (page-1)*pageSize + 1
		d.To = min(page*pageSize, totalRecords)
		if d.From > totalRecords {
			d.From, d.To = 0, 0
		}
	}
	d.Summary = fmt.Sprintf("Showing %d to %d of %d entries", d.From, d.To, d.TotalRecords)
	return d
}

// clamp keeps n inside [1, totalPages]; with no known pages only page 1 is valid.
func clamp(n, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if n < 1 {
		return 1
	}
	if n > totalPages {
		return totalPages
	}
	return n
}
