// File: gridgraph/expand_test.go
package gridgraph

import (
	"reflect"
	"testing"
)

// helper to convert (x,y) to index
func idx(gg *GridGraph, x, y int) int {
	return gg.index(x, y)
}

// TestExpandIsland_BasicLine tests a simple 1×3 line with a single free cell between two used cells.
// Grid: "#.#", Conn4
// Expected: must convert the middle cell at cost 1, path indices [0,1,2].
func TestExpandIsland_BasicLine(t *testing.T) {
	gg, err := FromRows([]string{"#.#"}, Conn4)
	if err != nil {
		t.Fatalf("FromRows error: %v", err)
	}
	comps := gg.ConnectedComponents()
	if len(comps) != 2 {
		t.Fatalf("found %d components; want 2", len(comps))
	}

	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}

	wantPath := []int{idx(gg, 0, 0), idx(gg, 1, 0), idx(gg, 2, 0)}
	if cost != 1 {
		t.Errorf("cost = %d; want 1", cost)
	}
	if !reflect.DeepEqual(path, wantPath) {
		t.Errorf("path = %v; want %v", path, wantPath)
	}
}

// TestExpandIsland_MediumRow tests a 1×5 line where two used cells at the ends require converting 3 free cells.
func TestExpandIsland_MediumRow(t *testing.T) {
	gg, _ := FromRows([]string{"#...#"}, Conn4)
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}

	if cost != 3 {
		t.Errorf("cost = %d; want 3", cost)
	}
	if len(path) != 5 {
		t.Errorf("path length = %d; want 5", len(path))
	}
}

// TestExpandIsland_Diagonal tests that a diagonal pair is two regions under
// Conn4 (cost 1 to join) and one region under Conn8 (cost 0 to itself).
//
//	# .
//	. #
func TestExpandIsland_Diagonal(t *testing.T) {
	rows := []string{"#.", ".#"}

	gg4, _ := FromRows(rows, Conn4)
	if _, cost, err := gg4.ExpandIsland(0, 1); err != nil || cost != 1 {
		t.Errorf("Conn4: cost = %d, err = %v; want 1, nil", cost, err)
	}

	gg8, _ := FromRows(rows, Conn8)
	comps := gg8.ConnectedComponents()
	if len(comps) != 1 {
		t.Fatalf("Conn8: got %d components; want 1", len(comps))
	}
	path, cost, err := gg8.ExpandIsland(0, 0)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 0 {
		t.Errorf("cost = %d; want 0", cost)
	}
	if len(path) != 1 || path[0] != comps[0][0] {
		t.Errorf("path = %v; want [%d]", path, comps[0][0])
	}
}

// TestExpandIsland_SameComponent checks that a region joined to itself
// yields its first cell, for every region and both connectivities.
func TestExpandIsland_SameComponent(t *testing.T) {
	rows := []string{
		"..##.",
		"#...#",
		"#.#.#",
	}
	for _, conn := range []Connectivity{Conn4, Conn8} {
		gg, _ := FromRows(rows, conn)
		comps := gg.ConnectedComponents()
		for c := range comps {
			path, cost, err := gg.ExpandIsland(c, c)
			if err != nil {
				t.Fatalf("conn %v comp %d: %v", conn, c, err)
			}
			if cost != 0 || !reflect.DeepEqual(path, []int{comps[c][0]}) {
				t.Errorf("conn %v comp %d: path = %v cost %d; want [%d] cost 0", conn, c, path, cost, comps[c][0])
			}
		}
	}
}

// TestExpandIsland_CrossesThirdRegion checks that used cells of other
// regions cost nothing to cross.
//
//	#.#.#
func TestExpandIsland_CrossesThirdRegion(t *testing.T) {
	gg, _ := FromRows([]string{"#.#.#"}, Conn4)
	path, cost, err := gg.ExpandIsland(0, 2)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}
	want := []int{0, 1, 2, 3, 4}
	if !reflect.DeepEqual(path, want) {
		t.Errorf("path = %v; want %v", path, want)
	}
}

// TestExpandIsland_PrefersCheaperDetour checks that a longer path through a
// third region beats the straight run of free cells.
//
//	#...#
//	.....
//	#####
func TestExpandIsland_PrefersCheaperDetour(t *testing.T) {
	gg, _ := FromRows([]string{"#...#", ".....", "#####"}, Conn4)
	if n := len(gg.ConnectedComponents()); n != 3 {
		t.Fatalf("got %d components; want 3", n)
	}
	path, cost, err := gg.ExpandIsland(0, 1)
	if err != nil {
		t.Fatalf("ExpandIsland error: %v", err)
	}
	if cost != 2 {
		t.Errorf("cost = %d; want 2", cost)
	}
	if len(path) != 9 || path[0] != idx(gg, 0, 0) || path[8] != idx(gg, 4, 0) {
		t.Errorf("path = %v; want 9 cells from (0,0) to (4,0)", path)
	}
}

// TestExpandIsland_InvalidIndices ensures invalid component indices yield ErrComponentIndex.
func TestExpandIsland_InvalidIndices(t *testing.T) {
	gg, _ := FromRows([]string{"#.#"}, Conn4)

	_, _, err := gg.ExpandIsland(-1, 1)
	if err != ErrComponentIndex {
		t.Errorf("src=-1: got %v; want ErrComponentIndex", err)
	}
	_, _, err = gg.ExpandIsland(0, 2)
	if err != ErrComponentIndex {
		t.Errorf("dst=2: got %v; want ErrComponentIndex", err)
	}
}
