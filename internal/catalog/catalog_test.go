package catalog

import "testing"

func TestDefaultSampleData(t *testing.T) {
	c := Default()

	if len(c.Scripts) != 4 {
		t.Errorf("Expected 4 scripts, got %d", len(c.Scripts))
	}
	if len(c.Topics) != 4 {
		t.Errorf("Expected 4 topics, got %d", len(c.Topics))
	}
	if len(c.Ranking) != 5 {
		t.Errorf("Expected 5 ranking names, got %d", len(c.Ranking))
	}
	if len(c.Activity) != 4 {
		t.Errorf("Expected 4 activity entries, got %d", len(c.Activity))
	}
	for i, s := range c.Scripts {
		if s.ID != i+1 {
			t.Errorf("Scripts[%d].ID = %d; want %d", i, s.ID, i+1)
		}
	}
	if err := c.Validate(); err != nil {
		t.Errorf("Default catalog should be valid, got %v", err)
	}
}

func TestDefaultReturnsFreshTables(t *testing.T) {
	a := Default()
	a.Scripts[0].Title = "changed"
	a.Topics[0].Status = StatusClosed

	b := Default()
	if b.Scripts[0].Title != "Auto Farm Script" {
		t.Error("Default() shares script storage between calls")
	}
	if b.Topics[0].Status != StatusOpen {
		t.Error("Default() shares topic storage between calls")
	}
}

func TestHead(t *testing.T) {
	scripts := Default().Scripts

	tests := []struct {
		name string
		n    int
		want []int
	}{
		{"two", 2, []int{1, 2}},
		{"three", 3, []int{1, 2, 3}},
		{"more than table", 10, []int{1, 2, 3, 4}},
		{"zero", 0, []int{}},
		{"negative", -1, []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Head(scripts, tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("Head(%d) returned %d scripts; want %d", tt.n, len(got), len(tt.want))
			}
			for i, id := range tt.want {
				if got[i].ID != id {
					t.Errorf("Head(%d)[%d].ID = %d; want %d", tt.n, i, got[i].ID, id)
				}
			}
		})
	}
}

func TestHeadIgnoresPopularity(t *testing.T) {
	// The third script has the most likes; Head still follows table order.
	got := Head(Default().Scripts, 2)
	for _, s := range got {
		if s.Title == "ESP Wallhack" {
			t.Error("Head should not sort by likes")
		}
	}
}

func TestHeadCopies(t *testing.T) {
	scripts := Default().Scripts
	got := Head(scripts, 1)
	got[0].Title = "changed"
	if scripts[0].Title != "Auto Farm Script" {
		t.Error("Head should return a copy")
	}
}

func TestCategories(t *testing.T) {
	got := Categories()
	want := []string{"all", "farming", "movement", "visual"}
	if len(got) != len(want) {
		t.Fatalf("Expected %d categories, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %q; want %q", i, got[i], want[i])
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Catalog)
		wantErr bool
	}{
		{"default", func(c *Catalog) {}, false},
		{"negative likes", func(c *Catalog) { c.Scripts[1].Likes = -1 }, true},
		{"negative downloads", func(c *Catalog) { c.Scripts[0].Downloads = -5 }, true},
		{"negative views", func(c *Catalog) { c.Topics[2].Views = -1 }, true},
		{"unknown status", func(c *Catalog) { c.Topics[0].Status = "pinned" }, true},
		{"negative reputation", func(c *Catalog) { c.Profile.Stats.Reputation = -10 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			err := c.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
