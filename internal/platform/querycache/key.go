package querycache

import "fmt"

// Key identifies a cacheable read: resource name plus the pagination, search
// and id parameters of the call. Two keys differing in any component never
// share an entry.
type Key struct {
	Resource string
	Page     int
	Limit    int
	Search   string
	ID       string
}

// ListKey builds the key for a paginated list read.
func ListKey(resource string, page, limit int, search string) Key {
	return Key{Resource: resource, Page: page, Limit: limit, Search: search}
}

// GetKey builds the key for a single-record read.
func GetKey(resource, id string) Key {
	return Key{Resource: resource, ID: id}
}

func (k Key) String() string {
	if k.ID != "" {
		return fmt.Sprintf("%s/%s", k.Resource, k.ID)
	}
	return fmt.Sprintf("%s?page=%d&limit=%d&search=%s", k.Resource, k.Page, k.Limit, k.Search)
}
