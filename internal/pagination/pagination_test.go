package pagination

import "testing"

func TestDefaults(t *testing.T) {
	p := PageRequest{}
	p.Defaults()
	if p.Page != 1 || p.PageSize != 20 {
		t.Errorf("expected defaults 1/20, got %d/%d", p.Page, p.PageSize)
	}

	q := PageRequest{Page: 3, PageSize: 5}
	q.Defaults()
	if q.Page != 3 || q.PageSize != 5 {
		t.Errorf("explicit values must survive, got %d/%d", q.Page, q.PageSize)
	}
}

func TestNewPageResponse(t *testing.T) {
	t.Run("computes total pages", func(t *testing.T) {
		resp := NewPageResponse([]int{1, 2, 3}, 1, 10, 25)
		if resp.TotalPages != 3 {
			t.Errorf("expected 3 total pages, got %d", resp.TotalPages)
		}
	})

	t.Run("nil data renders as empty array", func(t *testing.T) {
		resp := NewPageResponse[int](nil, 1, 10, 0)
		if resp.Data == nil {
			t.Error("expected non-nil data slice")
		}
		if resp.TotalPages != 0 {
			t.Errorf("expected 0 total pages, got %d", resp.TotalPages)
		}
	})
}

func TestSlice(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}

	tests := []struct {
		name string
		req  PageRequest
		want []string
	}{
		{"first page", PageRequest{Page: 1, PageSize: 2}, []string{"a", "b"}},
		{"middle page", PageRequest{Page: 2, PageSize: 2}, []string{"c", "d"}},
		{"partial last page", PageRequest{Page: 3, PageSize: 2}, []string{"e"}},
		{"past the end", PageRequest{Page: 4, PageSize: 2}, []string{}},
		{"page larger than items", PageRequest{Page: 1, PageSize: 50}, items},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Slice(items, tt.req)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("expected %v, got %v", tt.want, got)
					break
				}
			}
		})
	}
}
