package catalog

import (
	"fmt"
	"testing"
	"time"
)

func testBatch(n int) []Item {
	now := time.Now()
	items := make([]Item, 0, n)
	for i := 0; i < n; i++ {
		it := NewItem(KindFacts, fmt.Sprintf("f%d", i), fmt.Sprintf("Fact %d", i), fmt.Sprintf("Body of fact %d", i))
		it.Date = now.Add(-time.Duration(i) * time.Minute)
		items = append(items, it)
	}
	return items
}

func TestEngineViewPageSize(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(20), true)

	v := e.View()
	if v.Visible != 6 {
		t.Errorf("expected 6 visible, got %d", v.Visible)
	}
	if v.Matched != 20 || v.Total != 20 {
		t.Errorf("expected 20 matched/total, got %d/%d", v.Matched, v.Total)
	}
	if !v.HasMore {
		t.Error("expected HasMore")
	}
	if !v.Live {
		t.Error("expected Live")
	}
}

func TestEngineRevealMonotonicAndClamped(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(10), true)

	prev := e.View().Visible
	for i := 0; i < 5; i++ {
		e.LoadMore()
		v := e.View()
		if v.Visible < prev {
			t.Fatalf("visible decreased: %d -> %d", prev, v.Visible)
		}
		if v.Visible > v.Matched {
			t.Fatalf("visible %d exceeds matched %d", v.Visible, v.Matched)
		}
		prev = v.Visible
	}

	v := e.View()
	if v.Visible != 10 {
		t.Errorf("expected clamp at 10, got %d", v.Visible)
	}
	if v.HasMore {
		t.Error("expected no more after full reveal")
	}
}

func TestEngineQueryResetsReveal(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(20), true)
	e.LoadMore()
	e.LoadMore()
	if v := e.View(); v.Visible != 18 {
		t.Fatalf("expected 18 visible before query, got %d", v.Visible)
	}

	e.SetQuery("fact 1")
	v := e.View()
	// "fact 1" matches Fact 1 and Fact 10..19
	if v.Matched != 11 {
		t.Errorf("expected 11 matched, got %d", v.Matched)
	}
	if v.Visible != 6 {
		t.Errorf("expected reveal reset to page size, got %d", v.Visible)
	}
}

func TestEngineFilterAndSortResetReveal(t *testing.T) {
	e := NewEngine(KindFacts, 4)
	e.SetItems(e.NextSeq(), testBatch(12), true)
	e.LoadMore()

	e.SetFilter("length", "short")
	if v := e.View(); v.Visible > 4 {
		t.Errorf("filter change should reset reveal, got %d", v.Visible)
	}

	e.Reveal(4)
	e.SetSort(SortAlpha)
	if v := e.View(); v.Visible > 4 {
		t.Errorf("sort change should reset reveal, got %d", v.Visible)
	}
}

func TestEngineShowAll(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(30), true)

	e.SetShowAll(true)
	if v := e.View(); v.Visible != 30 || v.HasMore {
		t.Errorf("show all: visible=%d hasMore=%v", v.Visible, v.HasMore)
	}

	// Filter changes keep the unbounded window
	e.SetQuery("fact 2")
	if v := e.View(); v.Visible != v.Matched {
		t.Errorf("show all after query: visible=%d matched=%d", v.Visible, v.Matched)
	}

	e.SetShowAll(false)
	if v := e.View(); v.Visible > 6 {
		t.Errorf("expected one page after disabling show all, got %d", v.Visible)
	}
}

func TestEngineStaleBatchDiscarded(t *testing.T) {
	e := NewEngine(KindFacts, 6)

	seqOld := e.NextSeq()
	seqNew := e.NextSeq()

	if !e.SetItems(seqNew, testBatch(5), true) {
		t.Fatal("latest batch rejected")
	}
	if e.SetItems(seqOld, testBatch(50), true) {
		t.Fatal("stale batch accepted")
	}
	if v := e.View(); v.Total != 5 {
		t.Errorf("stale batch overwrote state: total=%d", v.Total)
	}
}

func TestEngineFallbackNotLive(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(3), false)
	if v := e.View(); v.Live {
		t.Error("fallback batch should not be live")
	}
}

func TestEngineFind(t *testing.T) {
	e := NewEngine(KindFacts, 6)
	e.SetItems(e.NextSeq(), testBatch(3), true)

	if _, ok := e.Find("f1"); !ok {
		t.Error("expected to find f1")
	}
	if _, ok := e.Find("missing"); ok {
		t.Error("did not expect to find missing id")
	}
}
