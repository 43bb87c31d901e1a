package models

// Page is the HAL paging block DSpace attaches to list responses.
type Page struct {
	Size          int `json:"size"`
	TotalElements int `json:"totalElements"`
	TotalPages    int `json:"totalPages"`
	Number        int `json:"number"`
}

// Last reports whether p is the final page of its listing.
func (p Page) Last() bool {
	return p.Number+1 >= p.TotalPages
}
